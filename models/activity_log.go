package models

import (
	"gorm.io/gorm"
)

// ActivityLog is the append-only points ledger. Each row pairs a user action
// with a point award; inserting one also bumps users.points by the same
// amount inside the enclosing transaction.
type ActivityLog struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null" json:"userId"`
	Action       string `gorm:"not null" json:"action"`
	Description  string `gorm:"type:text" json:"description"`
	PointsEarned int    `gorm:"default:0" json:"pointsEarned"`
}

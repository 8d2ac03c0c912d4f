package models

import (
	"time"

	"gorm.io/gorm"
)

// Monster is the user's gamified companion. Its health reflects logged
// wellness data and always stays within [0,100]. Only one monster per user
// is active at a time; retired monsters keep their row with TombedAt set.
type Monster struct {
	gorm.Model
	UserID           uint       `gorm:"index;not null" json:"userId"`
	Name             string     `gorm:"not null" json:"name"`
	ImageURL         string     `json:"imageUrl"`
	DescriptiveWords StringList `gorm:"type:jsonb" json:"descriptiveWords"` // exactly 5, immutable
	Health           int        `gorm:"default:100" json:"health"`
	IsActive         bool       `gorm:"default:true;index" json:"isActive"`
	TombedAt         *time.Time `json:"tombedAt"`
}

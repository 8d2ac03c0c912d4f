package models

import (
	"gorm.io/gorm"
)

type SupplementLog struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null" json:"userId"`
	Date           string `gorm:"type:date;index;not null" json:"date"`
	SupplementName string `gorm:"not null" json:"supplementName"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	Notes          string `gorm:"type:text" json:"notes"`
}

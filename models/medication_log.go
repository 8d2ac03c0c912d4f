package models

import (
	"gorm.io/gorm"
)

type MedicationLog struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null" json:"userId"`
	Date           string `gorm:"type:date;index;not null" json:"date"`
	MedicationName string `gorm:"not null" json:"medicationName"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	Notes          string `gorm:"type:text" json:"notes"`
}

package models

import (
	"gorm.io/gorm"
)

type SymptomLog struct {
	gorm.Model
	UserID         uint        `gorm:"index;not null" json:"userId"`
	Date           string      `gorm:"type:date;index;not null" json:"date"`
	TimeOfDay      string      `gorm:"not null" json:"timeOfDay"` // morning, afternoon, evening
	Symptoms       SymptomList `gorm:"type:jsonb" json:"symptoms"`
	CustomSymptoms string      `gorm:"type:text" json:"customSymptoms"`
	Mood           int         `json:"mood"`           // 1-10
	OverallFeeling int         `json:"overallFeeling"` // 1-10
	Notes          string      `gorm:"type:text" json:"notes"`
}

package models

import (
	"gorm.io/gorm"
)

type SunExposureLog struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null" json:"userId"`
	Date      string `gorm:"type:date;index;not null" json:"date"`
	Duration  int    `json:"duration"` // minutes
	TimeOfDay string `json:"timeOfDay"`
	Location  string `json:"location"`
	Notes     string `gorm:"type:text" json:"notes"`
}

package models

import (
	"gorm.io/gorm"
)

type SleepLog struct {
	gorm.Model
	UserID     uint    `gorm:"index;not null" json:"userId"`
	Date       string  `gorm:"type:date;index;not null" json:"date"`
	BedTime    string  `json:"bedTime"`  // HH:MM
	WakeTime   string  `json:"wakeTime"` // HH:MM
	HoursSlept float64 `json:"hoursSlept"`
	Quality    int     `json:"quality"` // 1-10
	Notes      string  `gorm:"type:text" json:"notes"`
}

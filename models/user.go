package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email           string  `gorm:"uniqueIndex;not null" json:"email"`
	Password        string  `gorm:"not null" json:"-"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	ProfileImageURL string  `json:"profileImageUrl"`
	Height          float64 `json:"height"` // inches
	Weight          float64 `json:"weight"` // pounds
	Age             int     `json:"age"`
	Gender          string  `json:"gender"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	DiagnosisStatus string  `json:"diagnosisStatus"` // "diagnosed" | "suspect"
	Misdiagnoses    string  `gorm:"type:text" json:"misdiagnoses"`
	Points          int     `gorm:"default:0" json:"points"`
}

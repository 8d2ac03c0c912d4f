package models

import (
	"gorm.io/gorm"
)

type FoodLog struct {
	gorm.Model
	UserID    uint    `gorm:"index;not null" json:"userId"`
	Date      string  `gorm:"type:date;index;not null" json:"date"` // YYYY-MM-DD
	MealType  string  `gorm:"not null" json:"mealType"`             // breakfast, lunch, dinner, snack
	FoodItems string  `gorm:"type:text;not null" json:"foodItems"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	Sugar     float64 `json:"sugar"`
	AIAnalysis string `gorm:"type:text" json:"aiAnalysis"`
	// HealthImpact is the AI-assessed companion health delta, already
	// clamped to [-10, +10] when the log is created.
	HealthImpact int `json:"healthImpact"`
}

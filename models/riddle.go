package models

import (
	"gorm.io/gorm"
)

// DailyRiddle is the health trivia question for one calendar date.
type DailyRiddle struct {
	gorm.Model
	Date          string     `gorm:"type:date;uniqueIndex;not null" json:"date"`
	Question      string     `gorm:"type:text;not null" json:"question"`
	Options       StringList `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer int        `gorm:"not null" json:"-"` // never leaked before answering
	Explanation   string     `gorm:"type:text" json:"-"`
}

// RiddleAnswer records a user's single attempt at a riddle. The composite
// unique index makes the at-most-one-answer rule hold under concurrent
// submissions, not just at the pre-check.
type RiddleAnswer struct {
	gorm.Model
	UserID       uint `gorm:"not null;uniqueIndex:idx_riddle_answers_user_riddle" json:"userId"`
	RiddleID     uint `gorm:"not null;uniqueIndex:idx_riddle_answers_user_riddle" json:"riddleId"`
	Answer       int  `gorm:"not null" json:"answer"`
	IsCorrect    bool `gorm:"not null" json:"isCorrect"`
	PointsEarned int  `gorm:"default:0" json:"pointsEarned"`
}

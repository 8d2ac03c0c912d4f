package services

import (
	"time"

	"github.com/ancientastronautunearthed/fiber-app/models"

	"gorm.io/gorm"
)

// Point awards per rewarded action.
const (
	PointsProfileUpdate   = 10
	PointsMonsterCreated  = 50
	PointsFoodLog         = 5
	PointsSymptomLog      = 5
	PointsSleepLog        = 5
	PointsSunLog          = 3
	PointsSupplementLog   = 3
	PointsMedicationLog   = 3
	PointsCommunityPost   = 10
	PointsPostReply       = 5
	PointsRiddleCorrect   = 25
	PointsRiddleIncorrect = 5
)

// todayDate is the server-local calendar date used for all daily bucketing.
func todayDate() string {
	return time.Now().Format("2006-01-02")
}

// LogActivity appends one ledger row and bumps the owner's points counter by
// the same amount. Run it inside the transaction of the action being
// rewarded so the event and its award land together.
func LogActivity(tx *gorm.DB, userID uint, action, description string, points int) error {
	record := models.ActivityLog{
		UserID:       userID,
		Action:       action,
		Description:  description,
		PointsEarned: points,
	}
	if err := tx.Create(&record).Error; err != nil {
		return err
	}

	if points > 0 {
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("points", gorm.Expr("points + ?", points)).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListActivities returns the user's most recent ledger rows.
func ListActivities(db *gorm.DB, userID uint, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 10
	}
	var activities []models.ActivityLog
	err := db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

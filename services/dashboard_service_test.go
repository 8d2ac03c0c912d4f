package services

import (
	"testing"

	"github.com/ancientastronautunearthed/fiber-app/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeWeeklyActivities(t *testing.T) {
	activities := []models.ActivityLog{
		{Action: "food_logged", PointsEarned: 5},
		{Action: "community_post", PointsEarned: 10},
		{Action: "riddle_answered", PointsEarned: 25},
	}

	points, streak := SummarizeWeeklyActivities(activities)
	assert.Equal(t, 40, points)
	assert.Equal(t, 3, streak)
}

func TestSummarizeWeeklyActivitiesCapsStreak(t *testing.T) {
	activities := make([]models.ActivityLog, 12)
	for i := range activities {
		activities[i] = models.ActivityLog{Action: "sleep_logged", PointsEarned: 5}
	}

	points, streak := SummarizeWeeklyActivities(activities)
	assert.Equal(t, 60, points)
	assert.Equal(t, 7, streak)
}

func TestSummarizeWeeklyActivitiesEmpty(t *testing.T) {
	points, streak := SummarizeWeeklyActivities(nil)
	assert.Zero(t, points)
	assert.Zero(t, streak)
}

func TestDailyTaskCatalog(t *testing.T) {
	assert.Len(t, DailyTaskCatalog, 10)
	assert.Contains(t, DailyTaskCatalog, "food_log")
	assert.Contains(t, DailyTaskCatalog, "symptom_log")
	assert.Contains(t, DailyTaskCatalog, "sleep_log")
	assert.Contains(t, DailyTaskCatalog, "riddle_answer")
}

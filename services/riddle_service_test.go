package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRiddleAnswer(t *testing.T) {
	correct, points := ScoreRiddleAnswer(2, 2)
	assert.True(t, correct)
	assert.Equal(t, PointsRiddleCorrect, points)

	correct, points = ScoreRiddleAnswer(0, 2)
	assert.False(t, correct)
	assert.Equal(t, PointsRiddleIncorrect, points)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(assert.AnError))
	assert.True(t, isUniqueViolation(errSQLState23505{}))
}

type errSQLState23505 struct{}

func (errSQLState23505) Error() string {
	return `ERROR: duplicate key value violates unique constraint "idx_riddle_answers_user_riddle" (SQLSTATE 23505)`
}

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ancientastronautunearthed/fiber-app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrAlreadyAnswered = errors.New("already answered this riddle")
	ErrInvalidRiddle   = errors.New("invalid riddle")
)

type RiddleService struct {
	db     *gorm.DB
	gen    ContentGenerator
	logger *zap.Logger
}

func NewRiddleService(db *gorm.DB, gen ContentGenerator, logger *zap.Logger) *RiddleService {
	return &RiddleService{db: db, gen: gen, logger: logger}
}

// ScoreRiddleAnswer compares a submitted option index to the stored answer
// and returns the point award: 25 for correct, 5 for participation.
func ScoreRiddleAnswer(answer, correctAnswer int) (bool, int) {
	if answer == correctAnswer {
		return true, PointsRiddleCorrect
	}
	return false, PointsRiddleIncorrect
}

// TodaysRiddle returns the riddle for the current server-local date,
// generating and storing one if the scheduler hasn't run yet.
func (s *RiddleService) TodaysRiddle(ctx context.Context) (*models.DailyRiddle, error) {
	today := todayDate()

	var riddle models.DailyRiddle
	err := s.db.Where("date = ?", today).First(&riddle).Error
	if err == nil {
		return &riddle, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	generated := s.gen.DailyRiddle(ctx)
	riddle = models.DailyRiddle{
		Date:          today,
		Question:      generated.Question,
		Options:       generated.Options,
		CorrectAnswer: generated.CorrectAnswer,
		Explanation:   generated.Explanation,
	}
	if err := s.db.Create(&riddle).Error; err != nil {
		// A concurrent request may have inserted the same date first.
		if isUniqueViolation(err) {
			var existing models.DailyRiddle
			if ferr := s.db.Where("date = ?", today).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &riddle, nil
}

// AnswerResult is the response to a riddle submission: the stored answer plus
// the feedback withheld from the riddle payload until now.
type AnswerResult struct {
	models.RiddleAnswer
	CorrectAnswer int    `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// SubmitAnswer records a user's single attempt at today's riddle. A repeat
// submission fails with ErrAlreadyAnswered, either at the pre-check or at the
// unique index when two submissions race.
func (s *RiddleService) SubmitAnswer(ctx context.Context, userID, riddleID uint, answer int) (*AnswerResult, error) {
	riddle, err := s.TodaysRiddle(ctx)
	if err != nil {
		return nil, err
	}
	if riddle.ID != riddleID {
		return nil, ErrInvalidRiddle
	}

	var existing models.RiddleAnswer
	err = s.db.Where("user_id = ? AND riddle_id = ?", userID, riddleID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyAnswered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	isCorrect, points := ScoreRiddleAnswer(answer, riddle.CorrectAnswer)
	record := models.RiddleAnswer{
		UserID:       userID,
		RiddleID:     riddleID,
		Answer:       answer,
		IsCorrect:    isCorrect,
		PointsEarned: points,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		description := "Answered riddle"
		if isCorrect {
			description = "Answered riddle correctly!"
		}
		return LogActivity(tx, userID, "riddle_answered", description, points)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyAnswered
		}
		return nil, err
	}

	return &AnswerResult{
		RiddleAnswer:  record,
		CorrectAnswer: riddle.CorrectAnswer,
		Explanation:   riddle.Explanation,
	}, nil
}

// HasAnswered reports whether the user already answered the given riddle.
func (s *RiddleService) HasAnswered(userID, riddleID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.RiddleAnswer{}).
		Where("user_id = ? AND riddle_id = ?", userID, riddleID).
		Count(&count).Error
	return count > 0, err
}

// StartDailyScheduler pre-generates each day's riddle shortly after local
// midnight so the first morning request doesn't pay the generation latency.
func (s *RiddleService) StartDailyScheduler() {
	go func() {
		for {
			if _, err := s.TodaysRiddle(context.Background()); err != nil {
				s.logger.Error("daily riddle generation failed", zap.Error(err))
			}

			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), 0, 5, 0, 0, now.Location()).
				AddDate(0, 0, 1)
			s.logger.Info("next riddle generation scheduled",
				zap.String("at", next.Format("2006-01-02 15:04:05")))
			time.Sleep(time.Until(next))
		}
	}()
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// postgres unique_violation
	return strings.Contains(err.Error(), "SQLSTATE 23505") ||
		strings.Contains(err.Error(), "duplicate key")
}

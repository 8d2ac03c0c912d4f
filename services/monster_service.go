package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/ancientastronautunearthed/fiber-app/models"
	"github.com/ancientastronautunearthed/fiber-app/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	MinMonsterHealth = 0
	MaxMonsterHealth = 100
)

var ErrNoActiveMonster = errors.New("no active monster")

// ClampHealth bounds a companion health value to [0, 100].
func ClampHealth(h int) int {
	if h < MinMonsterHealth {
		return MinMonsterHealth
	}
	if h > MaxMonsterHealth {
		return MaxMonsterHealth
	}
	return h
}

// FoodHealthDelta re-clamps the AI health impact score to [-10, +10].
func FoodHealthDelta(healthImpact int) int {
	return clampHealthImpact(healthImpact)
}

// SymptomHealthDelta maps an overall feeling on a 1-10 scale to a companion
// health delta in [-8, +10]. A missing feeling counts as neutral (5).
func SymptomHealthDelta(overallFeeling int) int {
	if overallFeeling == 0 {
		overallFeeling = 5
	}
	return (overallFeeling - 5) * 2
}

// SleepHealthDelta maps a sleep quality on a 1-10 scale to a companion health
// delta in [-6, +7]. The positive end truncates to 7 because of the floor.
func SleepHealthDelta(quality int) int {
	if quality == 0 {
		quality = 5
	}
	return int(math.Floor(float64(quality-5) * 1.5))
}

type MonsterService struct {
	db     *gorm.DB
	gen    ContentGenerator
	art    *ImageService
	logger *zap.Logger
}

func NewMonsterService(db *gorm.DB, gen ContentGenerator, art *ImageService, logger *zap.Logger) *MonsterService {
	return &MonsterService{db: db, gen: gen, art: art, logger: logger}
}

// Create generates a companion from the user's five descriptive words and
// activates it, retiring any previously active companion in the same
// transaction so the one-active-per-user rule survives concurrent creates.
func (s *MonsterService) Create(ctx context.Context, userID uint, descriptiveWords []string) (*models.Monster, error) {
	concept := s.gen.MonsterConcept(ctx, descriptiveWords)
	imageURL := s.art.MonsterImage(ctx, concept.ImageDescription)

	// Generated URLs are short-lived; keep a durable copy when a bucket is
	// configured, otherwise keep whatever URL we have.
	if stored, err := utils.UploadImageFromURL(ctx, imageURL, "monster-art"); err == nil {
		imageURL = stored
	} else {
		s.logger.Warn("keeping original monster image URL", zap.Error(err))
	}

	monster := models.Monster{
		UserID:           userID,
		Name:             concept.Name,
		ImageURL:         imageURL,
		DescriptiveWords: descriptiveWords,
		Health:           MaxMonsterHealth,
		IsActive:         true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&models.Monster{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Updates(map[string]interface{}{"is_active": false, "tombed_at": now}).Error; err != nil {
			return err
		}
		if err := tx.Create(&monster).Error; err != nil {
			return err
		}
		return LogActivity(tx, userID, "monster_created", "Created new monster: "+monster.Name, PointsMonsterCreated)
	})
	if err != nil {
		return nil, err
	}
	return &monster, nil
}

// Active returns the user's active companion, or ErrNoActiveMonster.
func (s *MonsterService) Active(userID uint) (*models.Monster, error) {
	var monster models.Monster
	err := s.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&monster).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveMonster
		}
		return nil, err
	}
	return &monster, nil
}

// SetHealth sets a companion's health directly, clamped to [0, 100].
func (s *MonsterService) SetHealth(monsterID, userID uint, health int) error {
	result := s.db.Model(&models.Monster{}).
		Where("id = ? AND user_id = ?", monsterID, userID).
		UpdateColumn("health", ClampHealth(health))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Tomb retires a companion: it keeps its row but stops receiving health
// updates.
func (s *MonsterService) Tomb(monsterID, userID uint) error {
	now := time.Now()
	result := s.db.Model(&models.Monster{}).
		Where("id = ? AND user_id = ? AND is_active = ?", monsterID, userID, true).
		Updates(map[string]interface{}{"is_active": false, "tombed_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// applyHealthDelta adjusts the active companion's health inside the caller's
// transaction. The clamp runs inside the UPDATE itself so concurrent log
// submissions serialize on the row instead of racing a stale read. A user
// without an active companion is a silent no-op: the originating log still
// persists and points still accrue.
func applyHealthDelta(tx *gorm.DB, userID uint, delta int) error {
	if delta == 0 {
		return nil
	}

	return tx.Model(&models.Monster{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		UpdateColumn("health", healthDeltaExpr(delta)).Error
}

// healthDeltaExpr bounds health + delta to [0, 100] in SQL.
func healthDeltaExpr(delta int) clause.Expr {
	return gorm.Expr("LEAST(?, GREATEST(?, health + ?))", MaxMonsterHealth, MinMonsterHealth, delta)
}

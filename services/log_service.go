package services

import (
	"context"

	"github.com/ancientastronautunearthed/fiber-app/models"

	"gorm.io/gorm"
)

// LogService persists the six wellness log types. Each create composes the
// log insert, the companion health delta, the ledger append and the points
// increment in one transaction.
type LogService struct {
	db  *gorm.DB
	gen ContentGenerator
}

func NewLogService(db *gorm.DB, gen ContentGenerator) *LogService {
	return &LogService{db: db, gen: gen}
}

type FoodLogInput struct {
	Date      string `json:"date"`
	MealType  string `json:"mealType" binding:"required"`
	FoodItems string `json:"foodItems" binding:"required"`
}

type SymptomLogInput struct {
	Date           string             `json:"date"`
	TimeOfDay      string             `json:"timeOfDay" binding:"required"`
	Symptoms       models.SymptomList `json:"symptoms"`
	CustomSymptoms string             `json:"customSymptoms"`
	Mood           int                `json:"mood" binding:"omitempty,min=1,max=10"`
	OverallFeeling int                `json:"overallFeeling" binding:"omitempty,min=1,max=10"`
	Notes          string             `json:"notes"`
}

type SleepLogInput struct {
	Date       string  `json:"date"`
	BedTime    string  `json:"bedTime"`
	WakeTime   string  `json:"wakeTime"`
	HoursSlept float64 `json:"hoursSlept"`
	Quality    int     `json:"quality" binding:"required,min=1,max=10"`
	Notes      string  `json:"notes"`
}

type SunExposureLogInput struct {
	Date      string `json:"date"`
	Duration  int    `json:"duration" binding:"required,min=1"`
	TimeOfDay string `json:"timeOfDay"`
	Location  string `json:"location"`
	Notes     string `json:"notes"`
}

type RegimenLogInput struct {
	Date      string `json:"date"`
	Name      string `json:"name" binding:"required"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Notes     string `json:"notes"`
}

// CreateFoodLog runs the AI nutrition analysis (fail-open) outside the
// transaction, then persists the log and its downstream effects.
func (s *LogService) CreateFoodLog(ctx context.Context, userID uint, input FoodLogInput) (*models.FoodLog, error) {
	nutrition := s.gen.NutritionAnalysis(ctx, input.FoodItems)
	delta := FoodHealthDelta(nutrition.HealthImpact)

	log := models.FoodLog{
		UserID:       userID,
		Date:         orToday(input.Date),
		MealType:     input.MealType,
		FoodItems:    input.FoodItems,
		Calories:     nutrition.Calories,
		Protein:      nutrition.Protein,
		Carbs:        nutrition.Carbs,
		Fat:          nutrition.Fat,
		Sugar:        nutrition.Sugar,
		AIAnalysis:   nutrition.AIAnalysis,
		HealthImpact: delta,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&log).Error; err != nil {
			return err
		}
		if err := applyHealthDelta(tx, userID, delta); err != nil {
			return err
		}
		return LogActivity(tx, userID, "food_logged", "Logged "+input.MealType, PointsFoodLog)
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// CreateSymptomLog persists the log and returns it along with a supportive
// AI insight (static fallback when the service is unavailable).
func (s *LogService) CreateSymptomLog(ctx context.Context, userID uint, input SymptomLogInput) (*models.SymptomLog, string, error) {
	log := models.SymptomLog{
		UserID:         userID,
		Date:           orToday(input.Date),
		TimeOfDay:      input.TimeOfDay,
		Symptoms:       input.Symptoms,
		CustomSymptoms: input.CustomSymptoms,
		Mood:           input.Mood,
		OverallFeeling: input.OverallFeeling,
		Notes:          input.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&log).Error; err != nil {
			return err
		}
		if err := applyHealthDelta(tx, userID, SymptomHealthDelta(input.OverallFeeling)); err != nil {
			return err
		}
		return LogActivity(tx, userID, "symptoms_logged", "Logged "+input.TimeOfDay+" symptoms", PointsSymptomLog)
	})
	if err != nil {
		return nil, "", err
	}

	insight := s.gen.SymptomInsight(ctx, input.Symptoms, input.OverallFeeling, input.Notes)
	return &log, insight, nil
}

func (s *LogService) CreateSleepLog(userID uint, input SleepLogInput) (*models.SleepLog, error) {
	log := models.SleepLog{
		UserID:     userID,
		Date:       orToday(input.Date),
		BedTime:    input.BedTime,
		WakeTime:   input.WakeTime,
		HoursSlept: input.HoursSlept,
		Quality:    input.Quality,
		Notes:      input.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&log).Error; err != nil {
			return err
		}
		if err := applyHealthDelta(tx, userID, SleepHealthDelta(input.Quality)); err != nil {
			return err
		}
		return LogActivity(tx, userID, "sleep_logged", "Logged sleep quality", PointsSleepLog)
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *LogService) CreateSunExposureLog(userID uint, input SunExposureLogInput) (*models.SunExposureLog, error) {
	log := models.SunExposureLog{
		UserID:    userID,
		Date:      orToday(input.Date),
		Duration:  input.Duration,
		TimeOfDay: input.TimeOfDay,
		Location:  input.Location,
		Notes:     input.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&log).Error; err != nil {
			return err
		}
		return LogActivity(tx, userID, "sun_logged", "Logged sun exposure", PointsSunLog)
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *LogService) CreateSupplementLog(userID uint, input RegimenLogInput) (*models.SupplementLog, error) {
	log := models.SupplementLog{
		UserID:         userID,
		Date:           orToday(input.Date),
		SupplementName: input.Name,
		Dosage:         input.Dosage,
		Frequency:      input.Frequency,
		Notes:          input.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&log).Error; err != nil {
			return err
		}
		return LogActivity(tx, userID, "supplement_logged", "Logged supplement: "+input.Name, PointsSupplementLog)
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *LogService) CreateMedicationLog(userID uint, input RegimenLogInput) (*models.MedicationLog, error) {
	log := models.MedicationLog{
		UserID:         userID,
		Date:           orToday(input.Date),
		MedicationName: input.Name,
		Dosage:         input.Dosage,
		Frequency:      input.Frequency,
		Notes:          input.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&log).Error; err != nil {
			return err
		}
		return LogActivity(tx, userID, "medication_logged", "Logged medication: "+input.Name, PointsMedicationLog)
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *LogService) ListFoodLogs(userID uint, date string) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := s.byUserAndDate(userID, date).Find(&logs).Error
	return logs, err
}

func (s *LogService) ListSymptomLogs(userID uint, date string) ([]models.SymptomLog, error) {
	var logs []models.SymptomLog
	err := s.byUserAndDate(userID, date).Find(&logs).Error
	return logs, err
}

func (s *LogService) ListSleepLogs(userID uint, date string) ([]models.SleepLog, error) {
	var logs []models.SleepLog
	err := s.byUserAndDate(userID, date).Find(&logs).Error
	return logs, err
}

func (s *LogService) ListSunExposureLogs(userID uint, date string) ([]models.SunExposureLog, error) {
	var logs []models.SunExposureLog
	err := s.byUserAndDate(userID, date).Find(&logs).Error
	return logs, err
}

func (s *LogService) ListSupplementLogs(userID uint, date string) ([]models.SupplementLog, error) {
	var logs []models.SupplementLog
	err := s.byUserAndDate(userID, date).Find(&logs).Error
	return logs, err
}

func (s *LogService) ListMedicationLogs(userID uint, date string) ([]models.MedicationLog, error) {
	var logs []models.MedicationLog
	err := s.byUserAndDate(userID, date).Find(&logs).Error
	return logs, err
}

func (s *LogService) byUserAndDate(userID uint, date string) *gorm.DB {
	q := s.db.Where("user_id = ?", userID).Order("created_at DESC")
	if date != "" {
		q = q.Where("date = ?", date)
	}
	return q
}

func orToday(date string) string {
	if date == "" {
		return todayDate()
	}
	return date
}

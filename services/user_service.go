package services

import (
	"errors"

	"github.com/ancientastronautunearthed/fiber-app/config"
	"github.com/ancientastronautunearthed/fiber-app/models"

	"gorm.io/gorm"
)

type UserProfileInput struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Height          float64 `json:"height"`
	Weight          float64 `json:"weight"`
	Age             int     `json:"age"`
	Gender          string  `json:"gender"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	DiagnosisStatus string  `json:"diagnosisStatus"`
	Misdiagnoses    string  `json:"misdiagnoses"`
}

func GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// UpdateUserProfile applies the submitted subset of profile fields and
// rewards the update with an activity entry.
func UpdateUserProfile(userID uint, input UserProfileInput) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.City != "" {
		user.City = input.City
	}
	if input.State != "" {
		user.State = input.State
	}
	if input.DiagnosisStatus != "" {
		user.DiagnosisStatus = input.DiagnosisStatus
	}
	if input.Misdiagnoses != "" {
		user.Misdiagnoses = input.Misdiagnoses
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		return LogActivity(tx, userID, "profile_update", "Updated profile information", PointsProfileUpdate)
	})
	if err != nil {
		return nil, err
	}

	// Reload so the response carries the freshly awarded points.
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

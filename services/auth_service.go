package services

import (
	"errors"

	"github.com/ancientastronautunearthed/fiber-app/config"
	"github.com/ancientastronautunearthed/fiber-app/models"
	"github.com/ancientastronautunearthed/fiber-app/utils"
)

var ErrEmailTaken = errors.New("email already registered")

// registrationError maps a unique violation on the email column to
// ErrEmailTaken so the handler can answer with something better than a 500.
func registrationError(err error) error {
	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func RegisterUser(email, password, firstName, lastName string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, registrationError(err)
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

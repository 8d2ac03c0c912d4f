package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationErrorMapsUniqueViolation(t *testing.T) {
	assert.ErrorIs(t, registrationError(errSQLState23505{}), ErrEmailTaken)
	assert.Equal(t, assert.AnError, registrationError(assert.AnError))
	assert.NoError(t, registrationError(nil))
}

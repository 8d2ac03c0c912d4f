package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDescriptiveWords(t *testing.T) {
	assert.NoError(t, ValidateDescriptiveWords([]string{"fuzzy", "purple", "sleepy", "brave", "tiny"}))

	assert.Error(t, ValidateDescriptiveWords(nil))
	assert.Error(t, ValidateDescriptiveWords([]string{"one", "two", "three", "four"}))
	assert.Error(t, ValidateDescriptiveWords([]string{"one", "two", "three", "four", "five", "six"}))
	assert.Error(t, ValidateDescriptiveWords([]string{"one", "two", "  ", "four", "five"}))
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampHealth(t *testing.T) {
	assert.Equal(t, 0, ClampHealth(-5))
	assert.Equal(t, 0, ClampHealth(0))
	assert.Equal(t, 42, ClampHealth(42))
	assert.Equal(t, 100, ClampHealth(100))
	assert.Equal(t, 100, ClampHealth(117))
}

func TestFoodHealthDelta(t *testing.T) {
	assert.Equal(t, 7, FoodHealthDelta(7))
	assert.Equal(t, -4, FoodHealthDelta(-4))
	assert.Equal(t, 10, FoodHealthDelta(25))
	assert.Equal(t, -10, FoodHealthDelta(-25))
	assert.Equal(t, 0, FoodHealthDelta(0))
}

func TestSymptomHealthDelta(t *testing.T) {
	assert.Equal(t, 10, SymptomHealthDelta(10))
	assert.Equal(t, 0, SymptomHealthDelta(5))
	assert.Equal(t, -8, SymptomHealthDelta(1))
	// An unset feeling defaults to neutral.
	assert.Equal(t, 0, SymptomHealthDelta(0))
}

func TestSleepHealthDelta(t *testing.T) {
	assert.Equal(t, 7, SleepHealthDelta(10))
	assert.Equal(t, 1, SleepHealthDelta(6))
	assert.Equal(t, 0, SleepHealthDelta(5))
	// Floor, not truncation: (2-5)*1.5 = -4.5 rounds down to -5.
	assert.Equal(t, -5, SleepHealthDelta(2))
	assert.Equal(t, -6, SleepHealthDelta(1))
	// An unset quality defaults to neutral.
	assert.Equal(t, 0, SleepHealthDelta(0))
}

func TestHealthDeltaExpr(t *testing.T) {
	expr := healthDeltaExpr(-6)
	assert.Equal(t, "LEAST(?, GREATEST(?, health + ?))", expr.SQL)
	assert.Equal(t, []interface{}{MaxMonsterHealth, MinMonsterHealth, -6}, expr.Vars)
}

func TestHealthDeltasStayWithinBounds(t *testing.T) {
	for q := 1; q <= 10; q++ {
		h := ClampHealth(50 + SleepHealthDelta(q))
		assert.GreaterOrEqual(t, h, MinMonsterHealth)
		assert.LessOrEqual(t, h, MaxMonsterHealth)

		h = ClampHealth(50 + SymptomHealthDelta(q))
		assert.GreaterOrEqual(t, h, MinMonsterHealth)
		assert.LessOrEqual(t, h, MaxMonsterHealth)
	}
}

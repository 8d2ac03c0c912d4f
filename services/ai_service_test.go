package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestClampHealthImpact(t *testing.T) {
	assert.Equal(t, -10, clampHealthImpact(-30))
	assert.Equal(t, -3, clampHealthImpact(-3))
	assert.Equal(t, 10, clampHealthImpact(42))
	assert.Equal(t, 0, clampHealthImpact(0))
}

func TestFallbackMonsterConcept(t *testing.T) {
	concept := fallbackMonsterConcept([]string{"fuzzy", "purple", "sleepy", "brave", "tiny"})
	assert.Equal(t, "fuzzy Guardian", concept.Name)
	assert.NotEmpty(t, concept.ImageDescription)

	concept = fallbackMonsterConcept(nil)
	assert.Equal(t, "Guardian", concept.Name)
}

func TestFallbackRiddle(t *testing.T) {
	riddle := fallbackRiddle()
	assert.Len(t, riddle.Options, 4)
	assert.GreaterOrEqual(t, riddle.CorrectAnswer, 0)
	assert.Less(t, riddle.CorrectAnswer, len(riddle.Options))
	assert.Equal(t, "Salmon", riddle.Options[riddle.CorrectAnswer])
	assert.NotEmpty(t, riddle.Explanation)
}

// Without an OPENAI_API_KEY the generator should still return usable content.
func TestGeneratorFallsBackWithoutAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	gen := NewOpenAIGenerator(zap.NewNop())

	ctx := context.Background()

	nutrition := gen.NutritionAnalysis(ctx, "oatmeal with blueberries")
	assert.NotEmpty(t, nutrition.AIAnalysis)
	assert.Zero(t, nutrition.HealthImpact)

	insight := gen.SymptomInsight(ctx, nil, 5, "")
	assert.Equal(t, fallbackSymptomInsight, insight)

	riddle := gen.DailyRiddle(ctx)
	assert.Equal(t, fallbackRiddle().Question, riddle.Question)
}

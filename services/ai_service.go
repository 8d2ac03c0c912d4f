package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ancientastronautunearthed/fiber-app/models"

	"github.com/tmc/langchaingo/llms"
	langopenai "github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// MonsterConcept is the AI-produced companion concept: a display name plus an
// image prompt handed to the art generator.
type MonsterConcept struct {
	Name             string `json:"name"`
	ImageDescription string `json:"imageDescription"`
}

// NutritionData is the AI nutrition assessment for a free-text meal
// description. HealthImpact is clamped to [-10, +10] before it leaves this
// package.
type NutritionData struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Sugar        float64 `json:"sugar"`
	AIAnalysis   string  `json:"aiAnalysis"`
	HealthImpact int     `json:"healthImpact"`
}

// RiddleData is one generated daily trivia question.
type RiddleData struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// ContentGenerator is the single capability the rest of the system depends on
// for AI-produced content. Implementations are total: any upstream failure is
// absorbed into a static fallback, so callers never branch on an error.
type ContentGenerator interface {
	MonsterConcept(ctx context.Context, descriptiveWords []string) MonsterConcept
	NutritionAnalysis(ctx context.Context, foodItems string) NutritionData
	SymptomInsight(ctx context.Context, symptoms []models.SymptomEntry, overallFeeling int, notes string) string
	DailyRiddle(ctx context.Context) RiddleData
}

// OpenAIGenerator backs ContentGenerator with gpt-4o chat completions.
type OpenAIGenerator struct {
	llm    llms.Model
	logger *zap.Logger
}

// NewOpenAIGenerator never fails: when the OpenAI client cannot be built
// (typically a missing OPENAI_API_KEY), every method serves its fallback.
func NewOpenAIGenerator(logger *zap.Logger) *OpenAIGenerator {
	llm, err := langopenai.New(langopenai.WithModel("gpt-4o"))
	if err != nil {
		logger.Warn("OpenAI client unavailable, serving fallback content", zap.Error(err))
		return &OpenAIGenerator{llm: nil, logger: logger}
	}
	return &OpenAIGenerator{llm: llm, logger: logger}
}

func (g *OpenAIGenerator) completeJSON(ctx context.Context, system, user string, out interface{}) error {
	if g.llm == nil {
		return fmt.Errorf("llm not configured")
	}

	resp, err := g.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
		llms.TextParts(schema.ChatMessageTypeHuman, user),
	}, llms.WithJSONMode())
	if err != nil {
		return err
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("empty completion")
	}
	return json.Unmarshal([]byte(resp.Choices[0].Content), out)
}

func (g *OpenAIGenerator) MonsterConcept(ctx context.Context, descriptiveWords []string) MonsterConcept {
	var concept MonsterConcept
	err := g.completeJSON(ctx,
		"You are a creative monster naming expert. Generate unique, friendly monster names and detailed image descriptions based on descriptive words. Respond with JSON.",
		fmt.Sprintf("Create a friendly monster companion based on these 5 descriptive words: %s. "+
			"Generate a unique name and a detailed image description that captures the essence of these words. "+
			"The monster should be cute, friendly, and suitable as a health companion. "+
			"Return JSON with 'name' and 'imageDescription' fields.",
			strings.Join(descriptiveWords, ", ")),
		&concept)
	if err != nil || concept.Name == "" {
		g.logger.Warn("monster concept generation failed", zap.Error(err))
		return fallbackMonsterConcept(descriptiveWords)
	}
	if concept.ImageDescription == "" {
		concept.ImageDescription = "A gentle creature with healing powers"
	}
	return concept
}

func (g *OpenAIGenerator) NutritionAnalysis(ctx context.Context, foodItems string) NutritionData {
	var data NutritionData
	err := g.completeJSON(ctx,
		"You are a nutrition analysis expert. Analyze food items and provide nutritional data and a health impact assessment "+
			"for someone managing a chronic inflammatory condition. Health impact runs from -10 (very anti-inflammatory) to "+
			"+10 (very inflammatory). Respond with JSON.",
		fmt.Sprintf("Analyze these food items for nutritional content: %q. "+
			"Provide estimated calories, protein (g), carbs (g), fat (g), sugar (g), a brief analysis of the nutritional "+
			"quality, and a health impact score (-10 to +10). "+
			"Return JSON with fields: calories, protein, carbs, fat, sugar, aiAnalysis, healthImpact.",
			foodItems),
		&data)
	if err != nil {
		g.logger.Warn("nutrition analysis failed", zap.Error(err))
		return fallbackNutrition()
	}
	data.HealthImpact = clampHealthImpact(data.HealthImpact)
	if data.AIAnalysis == "" {
		data.AIAnalysis = "Nutritional analysis completed."
	}
	return data
}

func (g *OpenAIGenerator) SymptomInsight(ctx context.Context, symptoms []models.SymptomEntry, overallFeeling int, notes string) string {
	if g.llm == nil {
		return fallbackSymptomInsight
	}

	encoded, _ := json.Marshal(symptoms)
	user := fmt.Sprintf("User logged these symptoms: %s, overall feeling: %d/10", encoded, overallFeeling)
	if notes != "" {
		user += ", notes: " + notes
	}
	user += ". Provide a supportive insight about their symptoms and gentle suggestions for self-care. " +
		"Mention the importance of consulting healthcare providers."

	resp, err := g.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem,
			"You are a supportive health companion providing gentle insights about symptom patterns. "+
				"Always recommend consulting healthcare providers for medical advice. Keep responses supportive and under 150 words."),
		llms.TextParts(schema.ChatMessageTypeHuman, user),
	})
	if err != nil || len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		g.logger.Warn("symptom insight generation failed", zap.Error(err))
		return fallbackSymptomInsight
	}
	return resp.Choices[0].Content
}

func (g *OpenAIGenerator) DailyRiddle(ctx context.Context) RiddleData {
	var riddle RiddleData
	err := g.completeJSON(ctx,
		"You are an educational health quiz creator. Generate health and nutrition riddles appropriate for people "+
			"managing chronic conditions. Focus on anti-inflammatory foods, supplements, lifestyle factors, and general "+
			"wellness. Respond with JSON.",
		"Create a daily health riddle with a question, 4 multiple choice options, the correct answer index (0-3), "+
			"and a brief explanation. Return JSON with fields: question, options (array), correctAnswer (number), explanation.",
		&riddle)
	if err != nil || riddle.Question == "" || len(riddle.Options) != 4 ||
		riddle.CorrectAnswer < 0 || riddle.CorrectAnswer > 3 {
		g.logger.Warn("riddle generation failed", zap.Error(err))
		return fallbackRiddle()
	}
	return riddle
}

func clampHealthImpact(impact int) int {
	if impact < -10 {
		return -10
	}
	if impact > 10 {
		return 10
	}
	return impact
}

const fallbackSymptomInsight = "Thank you for tracking your symptoms today. Consistent monitoring helps identify patterns. " +
	"Please consult your healthcare provider for personalized advice."

func fallbackMonsterConcept(descriptiveWords []string) MonsterConcept {
	name := "Guardian"
	if len(descriptiveWords) > 0 {
		name = descriptiveWords[0] + " Guardian"
	}
	return MonsterConcept{
		Name:             name,
		ImageDescription: "A gentle creature with healing powers",
	}
}

func fallbackNutrition() NutritionData {
	return NutritionData{
		AIAnalysis: "Unable to analyze nutrition at this time. Please try again later.",
	}
}

func fallbackRiddle() RiddleData {
	return RiddleData{
		Question:      "Which of these foods is known for its anti-inflammatory properties?",
		Options:       []string{"Processed sugar", "Salmon", "White bread", "Fried foods"},
		CorrectAnswer: 1,
		Explanation: "Salmon is rich in omega-3 fatty acids, which have powerful anti-inflammatory properties " +
			"that may help manage chronic conditions.",
	}
}

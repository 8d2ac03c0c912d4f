package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

const fallbackMonsterImageURL = "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150"

// ImageService wraps the OpenAI image generation endpoint. Like every other
// AI-backed call in this system it fails open: any error yields the stock
// fallback image URL.
type ImageService struct {
	apiKey string
	client *http.Client
	logger *zap.Logger
}

func NewImageService(logger *zap.Logger) *ImageService {
	return &ImageService{
		apiKey: os.Getenv("OPENAI_API_KEY"),
		client: &http.Client{Timeout: 60 * time.Second},
		logger: logger,
	}
}

type imageGenerationRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
}

type imageGenerationResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// MonsterImage renders companion art for the given concept description.
func (s *ImageService) MonsterImage(ctx context.Context, imageDescription string) string {
	url, err := s.generate(ctx, fmt.Sprintf(
		"A cute, friendly, cartoon-style monster companion for a health app. %s. "+
			"The monster should be colorful, approachable, and have a magical/mystical appearance. "+
			"Digital art style, suitable for a mobile app avatar.",
		imageDescription))
	if err != nil {
		s.logger.Warn("monster image generation failed", zap.Error(err))
		return fallbackMonsterImageURL
	}
	return url
}

func (s *ImageService) generate(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	payload := imageGenerationRequest{
		Model:   "dall-e-3",
		Prompt:  prompt,
		N:       1,
		Size:    "1024x1024",
		Quality: "standard",
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal image payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.openai.com/v1/images/generations", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to build image request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call image API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image API error %d: %s", resp.StatusCode, string(body))
	}

	var out imageGenerationResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to parse image response: %w", err)
	}
	if len(out.Data) == 0 || out.Data[0].URL == "" {
		return "", fmt.Errorf("image response contained no URL")
	}
	return out.Data[0].URL, nil
}

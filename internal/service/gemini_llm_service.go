package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/quizdesk/backoffice/config"
	"github.com/quizdesk/backoffice/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeminiLLMService generates answer explanations for the admin review flow.
type GeminiLLMService interface {
	ExplainAnswer(question *model.Question) (string, error)
}

type geminiLLMService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (GeminiLLMService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return &geminiLLMService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiLLMService{client: model, cfg: cfg}, nil
}

func (s *geminiLLMService) ExplainAnswer(question *model.Question) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	var prompt strings.Builder
	prompt.WriteString("You are a subject tutor preparing study material for a quiz platform.\n")
	prompt.WriteString("Explain briefly (3-5 sentences) why the given answer to this multiple-choice question is correct. ")
	prompt.WriteString("Mention why the most tempting wrong option is wrong when that helps.\n\n")
	prompt.WriteString(fmt.Sprintf("Question: %s\n", question.Text))
	for i, option := range question.Options {
		prompt.WriteString(fmt.Sprintf("Option %d: %s\n", i+1, option))
	}
	prompt.WriteString(fmt.Sprintf("Correct answer: %s\n", question.Answer))

	resp, err := s.client.GenerateContent(context.Background(), genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("Gemini explanation request failed")
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	explanation := strings.TrimSpace(out.String())
	if explanation == "" {
		return "", fmt.Errorf("gemini returned an empty explanation")
	}
	return explanation, nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"voxdocs/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

const maxAnswerLength = 1000

type LLMService struct {
	client *gigago.Client
	config *config.GigaChatConfig
	logger *zap.Logger
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	return &LLMService{
		client: client,
		config: cfg,
		logger: logger,
	}, nil
}

func buildSystemPrompt(knowledgeContext string) string {
	return fmt.Sprintf(`You are an expert assistant for the Bubble no-code platform. You answer questions about building applications in Bubble and nothing else.

Rules:
- Keep answers under 1000 characters.
- Explain things step by step and back them up with a short concrete example where it helps.
- Answer conversationally, as if speaking to the user.
- Base your answers on the documentation excerpts below when they are relevant.

Documentation excerpts:
%s`, knowledgeContext)
}

// GenerateAnswer produces a grounded answer for a question that passed the
// quick-response check. The model is picked by the complexity policy and the
// result is truncated to the spoken-answer length cap.
func (s *LLMService) GenerateAnswer(ctx context.Context, question, knowledgeContext string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("%w: empty question", ErrInvalidInput)
	}

	if s.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.RequestTimeout)
		defer cancel()
	}

	modelName := s.selectModel(complexityScore(question))

	model := s.client.GenerativeModel(modelName)
	model.SystemInstruction = buildSystemPrompt(knowledgeContext)
	model.Temperature = 0.3

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: question},
	}

	resp, err := model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrGeneration)
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("%w: empty answer", ErrGeneration)
	}

	if runes := []rune(answer); len(runes) > maxAnswerLength {
		answer = string(runes[:maxAnswerLength])
	}

	s.logger.Debug("Answer generated",
		zap.String("model", modelName),
		zap.Int("length", len(answer)),
	)

	return answer, nil
}

// selectModel returns the first configured model rated for the score.
// Thresholds are ascending; an empty or unusable list falls back to the
// default complex model.
func (s *LLMService) selectModel(score float64) string {
	return selectModelByThresholds(s.config.ModelThresholds, s.config.DefaultModel, score)
}

func selectModelByThresholds(thresholds []config.ModelThreshold, defaultModel string, score float64) string {
	for _, t := range thresholds {
		if t.Model != "" && t.Threshold >= score {
			return t.Model
		}
	}
	return defaultModel
}

// complexityScore estimates question complexity from average word length,
// clamped into [1, 4].
func complexityScore(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 1
	}

	score := float64(len(text)) / float64(len(words)) / 5
	if score < 1 {
		return 1
	}
	if score > 4 {
		return 4
	}
	return score
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type answerGenerator interface {
	GenerateAnswer(ctx context.Context, question, knowledgeContext string) (string, error)
}

type contextFetcher interface {
	FetchContext(ctx context.Context) (string, error)
}

// ResponderService produces knowledge-grounded answers for questions that
// were not resolved by the cache or the quick-response rules.
type ResponderService struct {
	rag    contextFetcher
	llm    answerGenerator
	logger *zap.Logger
}

func NewResponderService(rag contextFetcher, llm answerGenerator, logger *zap.Logger) *ResponderService {
	return &ResponderService{
		rag:    rag,
		llm:    llm,
		logger: logger,
	}
}

func (s *ResponderService) GenerateGroundedAnswer(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("%w: empty question", ErrInvalidInput)
	}

	knowledgeContext, err := s.rag.FetchContext(ctx)
	if err != nil {
		return "", err
	}

	answer, err := s.llm.GenerateAnswer(ctx, question, knowledgeContext)
	if err != nil {
		return "", err
	}

	s.logger.Info("Grounded answer generated", zap.Int("length", len(answer)))
	return answer, nil
}

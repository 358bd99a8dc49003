package service

import (
	"context"
	"fmt"
	"strings"

	"voxdocs/internal/models"
	"voxdocs/pkg/config"

	"go.uber.org/zap"
)

type knowledgeLister interface {
	List(ctx context.Context, limit int, includeInactive bool) ([]*models.KnowledgeBase, error)
}

// RAGService loads the knowledge slice that grounds generated answers.
type RAGService struct {
	knowledgeRepo knowledgeLister
	config        *config.KnowledgeBaseConfig
	logger        *zap.Logger
}

func NewRAGService(knowledgeRepo knowledgeLister, cfg *config.KnowledgeBaseConfig, logger *zap.Logger) *RAGService {
	return &RAGService{
		knowledgeRepo: knowledgeRepo,
		config:        cfg,
		logger:        logger,
	}
}

// FetchContext returns the knowledge context block for generation. A fetch
// failure aborts the whole request upstream; there is no silent fallback to
// an ungrounded answer.
func (s *RAGService) FetchContext(ctx context.Context) (string, error) {
	if s.config.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.FetchTimeout)
		defer cancel()
	}

	entries, err := s.knowledgeRepo.List(ctx, s.config.FetchLimit, s.config.IncludeInactive)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	}

	s.logger.Debug("Knowledge base fetched", zap.Int("entries", len(entries)))

	return BuildContext(entries), nil
}

// BuildContext concatenates entries as "<title>: <content> (<url>)" lines.
func BuildContext(entries []*models.KnowledgeBase) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", entry.Title, entry.Content, entry.URL))
	}
	return strings.Join(lines, "\n")
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeType string

const (
	KnowledgeTypeDocumentation KnowledgeType = "documentation"
	KnowledgeTypeVideo         KnowledgeType = "video"
)

type KnowledgeBase struct {
	ID        uuid.UUID     `db:"id"`
	Type      KnowledgeType `db:"type"`
	Title     string        `db:"title"`
	Content   string        `db:"content"`
	URL       string        `db:"url"`
	Active    bool          `db:"active"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

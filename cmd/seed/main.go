package main

import (
	"context"
	"log"
	"time"

	"voxdocs/internal/models"
	"voxdocs/internal/repository"
	"voxdocs/pkg/config"
	"voxdocs/pkg/logger"
	"voxdocs/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS knowledge_base (
	id UUID PRIMARY KEY,
	type TEXT NOT NULL,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	url TEXT NOT NULL,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS response_cache (
	id UUID PRIMARY KEY,
	key TEXT NOT NULL,
	question TEXT NOT NULL,
	response TEXT NOT NULL,
	audio_url TEXT NOT NULL,
	performance_metrics JSONB,
	hit_count INT NOT NULL DEFAULT 0,
	last_hit_at TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_response_cache_key ON response_cache (key);
CREATE INDEX IF NOT EXISTS idx_response_cache_expires_at ON response_cache (expires_at);
`

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding...")

	if err := createSchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}

	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)
	if err := seedKnowledgeBase(ctx, knowledgeRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed knowledge base", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func createSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schema)
	return err
}

func seedKnowledgeBase(ctx context.Context, repo *repository.KnowledgeRepository, appLogger *zap.Logger) error {
	entries := []struct {
		kbType  models.KnowledgeType
		title   string
		content string
		url     string
	}{
		{
			models.KnowledgeTypeDocumentation,
			"Getting started with Bubble",
			"Bubble lets you build web applications visually. Start by creating a new app, then use the design tab to lay out pages, the data tab to define types and fields, and the workflow tab to wire up behavior.",
			"https://manual.bubble.io/getting-started",
		},
		{
			models.KnowledgeTypeDocumentation,
			"Workflows",
			"A workflow is an event plus a sequence of actions. Events include button clicks, page loads, and schedule triggers. Actions can create, change, or delete data, navigate between pages, show alerts, and call external APIs.",
			"https://manual.bubble.io/core-resources/workflows",
		},
		{
			models.KnowledgeTypeDocumentation,
			"The database",
			"Bubble has a built-in database. You define data types with fields, create privacy rules to control access, and query data with searches and constraints directly in the editor.",
			"https://manual.bubble.io/core-resources/data",
		},
		{
			models.KnowledgeTypeDocumentation,
			"Responsive design",
			"The responsive engine positions elements with rows, columns, and alignment containers. Set minimum and maximum widths and use conditionals to adapt the layout to different screen sizes.",
			"https://manual.bubble.io/core-resources/responsive",
		},
		{
			models.KnowledgeTypeDocumentation,
			"Plugins and API connector",
			"Plugins extend Bubble with new elements and actions. The API Connector plugin lets you call any external REST API and use the response as a data source or in workflows.",
			"https://manual.bubble.io/core-resources/api",
		},
		{
			models.KnowledgeTypeVideo,
			"Building your first app",
			"A guided video walkthrough of building a simple to-do app: creating data types, laying out the page with a repeating group, and adding workflows for creating and completing tasks.",
			"https://bubble.io/academy/first-app",
		},
	}

	now := time.Now()
	for _, e := range entries {
		kb := &models.KnowledgeBase{
			ID:        uuid.New(),
			Type:      e.kbType,
			Title:     e.title,
			Content:   e.content,
			URL:       e.url,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(ctx, kb); err != nil {
			return err
		}
		appLogger.Info("Seeded knowledge entry", zap.String("title", e.title))
	}

	return nil
}

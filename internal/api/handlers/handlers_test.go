package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"voxdocs/internal/models"
	"voxdocs/internal/repository"
	"voxdocs/internal/service"
	"voxdocs/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type stubCache struct{}

func (stubCache) Lookup(context.Context, string) (*models.CacheEntry, error) {
	return nil, repository.ErrCacheMiss
}
func (stubCache) Insert(context.Context, *models.CacheEntry) error { return nil }
func (stubCache) RecordAccess(context.Context, string, models.ProcessingMetrics, bool) error {
	return nil
}

type stubQuick struct{}

func (stubQuick) Match(string) (string, bool) { return "Hello! Ask me about Bubble.", true }

type stubResponder struct{}

func (stubResponder) GenerateGroundedAnswer(context.Context, string) (string, error) {
	return "", service.ErrGeneration
}

type stubSynth struct{}

func (stubSynth) SynthesizeDataURL(context.Context, string) (string, error) {
	return "data:audio/mpeg;base64,AAAA", nil
}

func newAskApp() *fiber.App {
	askService := service.NewAskService(stubCache{}, stubQuick{}, stubResponder{}, stubSynth{}, &config.CacheConfig{
		TTL:          30 * 24 * time.Hour,
		WriteTimeout: time.Second,
	}, zap.NewNop())

	app := fiber.New()
	handler := NewAskHandler(askService, zap.NewNop())
	app.Post("/api/v1/ask", handler.Ask)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func TestAskHandlerSuccess(t *testing.T) {
	app := newAskApp()

	status, body := postJSON(t, app, "/api/v1/ask", map[string]string{"text": "hello"})
	if status != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if body["response"] != "Hello! Ask me about Bubble." {
		t.Errorf("Unexpected response text: %v", body["response"])
	}
	if body["audioUrl"] != "data:audio/mpeg;base64,AAAA" {
		t.Errorf("Unexpected audio URL: %v", body["audioUrl"])
	}
}

func TestAskHandlerEmptyText(t *testing.T) {
	app := newAskApp()

	status, body := postJSON(t, app, "/api/v1/ask", map[string]string{"text": ""})
	if status != fiber.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", status)
	}
	if msg, ok := body["error"].(string); !ok || msg == "" {
		t.Error("Expected an error message in the body")
	}
}

func newSecretApp(values map[string]string) *fiber.App {
	app := fiber.New()
	handler := NewSecretHandler(&config.SecretsConfig{Values: values}, zap.NewNop())
	app.Post("/api/v1/secrets", handler.GetSecret)
	return app
}

func TestSecretHandlerKnownSecret(t *testing.T) {
	app := newSecretApp(map[string]string{"stripe_client_id": "pk_test_123"})

	status, body := postJSON(t, app, "/api/v1/secrets", map[string]string{"secretName": "stripe_client_id"})
	if status != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if body["stripe_client_id"] != "pk_test_123" {
		t.Errorf("Expected the secret value keyed by its name, got %v", body)
	}
}

func TestSecretHandlerUnknownSecret(t *testing.T) {
	app := newSecretApp(map[string]string{})

	status, body := postJSON(t, app, "/api/v1/secrets", map[string]string{"secretName": "missing"})
	if status != fiber.StatusNotFound {
		t.Fatalf("Expected 404, got %d", status)
	}
	if msg, ok := body["error"].(string); !ok || msg == "" {
		t.Error("Expected an error message in the body")
	}
}

func TestSecretHandlerMissingName(t *testing.T) {
	app := newSecretApp(map[string]string{})

	status, _ := postJSON(t, app, "/api/v1/secrets", map[string]string{})
	if status != fiber.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", status)
	}
}

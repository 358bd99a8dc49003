package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"voxdocs/internal/api/handlers"
	"voxdocs/internal/service"
	"voxdocs/pkg/auth"
	"voxdocs/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func newTestApp() *fiber.App {
	logger := zap.NewNop()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	tts := service.NewTTSService(&config.SpeechConfig{
		Voice:          "May_24000",
		Format:         "mp3",
		RequestTimeout: time.Second,
	}, false, logger)

	return SetupRouter(
		handlers.NewAskHandler(nil, logger),
		handlers.NewSpeechHandler(tts, logger),
		handlers.NewSecretHandler(&config.SecretsConfig{Values: map[string]string{}}, logger),
		jwtManager,
		logger,
	)
}

func TestSpeechEndpointRequiresToken(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/speech", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Expected 401 without a token, got %d", resp.StatusCode)
	}
}

func TestPreflightIsPermissive(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("OPTIONS", "/api/v1/ask", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		t.Errorf("Preflight should succeed, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected permissive CORS, got %q", got)
	}
}

package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"voxdocs/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	speechOAuthURL = "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"
	speechBaseURL  = "https://smartspeech.sber.ru/rest/v1"
)

// TTSService synthesizes speech through the SaluteSpeech REST API.
// Documentation: https://developers.sber.ru/docs/ru/salutespeech/synthesis/synthesis
type TTSService struct {
	config     *config.SpeechConfig
	logger     *zap.Logger
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewTTSService(cfg *config.SpeechConfig, insecureSkipVerify bool, logger *zap.Logger) *TTSService {
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	if insecureSkipVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
		logger.Warn("SaluteSpeech TLS certificate verification is disabled")
	}

	return &TTSService{
		config:     cfg,
		logger:     logger,
		httpClient: httpClient,
	}
}

// token returns a cached OAuth access token, refreshing it when stale.
// The NGW gateway expects the API key pre-encoded in Base64 and a unique
// RqUID header per request.
func (s *TTSService) token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != "" && time.Now().Before(s.tokenExpiry) {
		return s.accessToken, nil
	}

	formData := url.Values{}
	formData.Set("scope", s.config.Scope)

	req, err := http.NewRequestWithContext(ctx, "POST", speechOAuthURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create OAuth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", uuid.New().String())
	req.Header.Set("Authorization", "Basic "+s.config.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OAuth failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var oauthResp struct {
		AccessToken string `json:"access_token"`
		ExpiresAt   int64  `json:"expires_at"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&oauthResp); err != nil {
		return "", fmt.Errorf("failed to decode OAuth response: %w", err)
	}
	if oauthResp.AccessToken == "" {
		return "", fmt.Errorf("empty access token in OAuth response")
	}

	s.accessToken = oauthResp.AccessToken
	// expires_at is in unix milliseconds; renew a minute early
	s.tokenExpiry = time.UnixMilli(oauthResp.ExpiresAt).Add(-time.Minute)

	s.logger.Info("SaluteSpeech access token obtained")
	return s.accessToken, nil
}

// Synthesize converts text to an MP3 byte stream with the configured voice.
// Any provider failure or empty stream aborts the request; there is no
// text-only degraded mode.
func (s *TTSService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidInput)
	}

	accessToken, err := s.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}

	synthURL := fmt.Sprintf("%s/text:synthesize?format=%s&voice=%s",
		speechBaseURL, url.QueryEscape(s.config.Format), url.QueryEscape(s.config.Voice))

	req, err := http.NewRequestWithContext(ctx, "POST", synthURL, bytes.NewReader([]byte(text)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	req.Header.Set("Content-Type", "application/text")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrSynthesis, resp.StatusCode, string(bodyBytes))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: empty audio stream", ErrSynthesis)
	}

	return audio, nil
}

// SynthesizeDataURL returns the synthesized audio encoded as a data URL,
// ready for direct playback in the client.
func (s *TTSService) SynthesizeDataURL(ctx context.Context, text string) (string, error) {
	audio, err := s.Synthesize(ctx, text)
	if err != nil {
		return "", err
	}
	return "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(audio), nil
}

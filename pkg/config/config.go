package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	JWT           JWTConfig
	GigaChat      GigaChatConfig
	Speech        SpeechConfig
	Cache         CacheConfig
	KnowledgeBase KnowledgeBaseConfig
	Secrets       SecretsConfig
	Logger        LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
}

// ModelThreshold maps a GigaChat model name to the upper complexity bound it
// is allowed to handle. Thresholds are kept in ascending order.
type ModelThreshold struct {
	Model     string
	Threshold float64
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
	DefaultModel       string
	ModelThresholds    []ModelThreshold
	RequestTimeout     time.Duration
}

type SpeechConfig struct {
	APIKey         string
	Scope          string
	Voice          string
	Format         string
	RequestTimeout time.Duration
}

type CacheConfig struct {
	TTL          time.Duration
	WriteTimeout time.Duration
}

type KnowledgeBaseConfig struct {
	FetchLimit      int
	IncludeInactive bool
	FetchTimeout    time.Duration
}

type SecretsConfig struct {
	// Values resolvable through the /secrets endpoint, keyed by secret name.
	Values map[string]string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	llmTimeout, _ := strconv.Atoi(getEnv("GIGACHAT_TIMEOUT_SECONDS", "30"))
	speechTimeout, _ := strconv.Atoi(getEnv("SPEECH_TIMEOUT_SECONDS", "20"))
	cacheTTLDays, _ := strconv.Atoi(getEnv("CACHE_TTL_DAYS", "30"))
	cacheWriteTimeout, _ := strconv.Atoi(getEnv("CACHE_WRITE_TIMEOUT_SECONDS", "10"))
	kbLimit, _ := strconv.Atoi(getEnv("KB_FETCH_LIMIT", "10"))
	kbTimeout, _ := strconv.Atoi(getEnv("KB_FETCH_TIMEOUT_SECONDS", "10"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"
	includeInactive := getEnv("KB_INCLUDE_INACTIVE", "false") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "voxdocs"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: insecureSkipVerify,
			DefaultModel:       getEnv("GIGACHAT_DEFAULT_MODEL", "GigaChat-Max"),
			ModelThresholds:    parseModelThresholds(getEnv("GIGACHAT_MODEL_THRESHOLDS", "GigaChat:2,GigaChat-Pro:3,GigaChat-Max:4")),
			RequestTimeout:     time.Duration(llmTimeout) * time.Second,
		},
		Speech: SpeechConfig{
			APIKey:         getEnv("SPEECH_API_KEY", ""),
			Scope:          getEnv("SPEECH_SCOPE", "SALUTE_SPEECH_PERS"),
			Voice:          getEnv("SPEECH_VOICE", "May_24000"),
			Format:         getEnv("SPEECH_FORMAT", "mp3"),
			RequestTimeout: time.Duration(speechTimeout) * time.Second,
		},
		Cache: CacheConfig{
			TTL:          time.Duration(cacheTTLDays) * 24 * time.Hour,
			WriteTimeout: time.Duration(cacheWriteTimeout) * time.Second,
		},
		KnowledgeBase: KnowledgeBaseConfig{
			FetchLimit:      kbLimit,
			IncludeInactive: includeInactive,
			FetchTimeout:    time.Duration(kbTimeout) * time.Second,
		},
		Secrets: SecretsConfig{
			Values: parseSecrets(getEnv("CLIENT_SECRETS", "")),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

// parseModelThresholds parses "model:threshold,model:threshold" pairs.
// Malformed pairs are skipped; the caller falls back to the default model
// when the resulting list is empty.
func parseModelThresholds(raw string) []ModelThreshold {
	var thresholds []ModelThreshold
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			continue
		}
		threshold, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		thresholds = append(thresholds, ModelThreshold{
			Model:     strings.TrimSpace(parts[0]),
			Threshold: threshold,
		})
	}
	return thresholds
}

// parseSecrets parses "name=value,name=value" pairs for the secrets endpoint.
func parseSecrets(raw string) map[string]string {
	secrets := make(map[string]string)
	if raw == "" {
		return secrets
	}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		secrets[parts[0]] = parts[1]
	}
	return secrets
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

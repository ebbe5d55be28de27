package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string
	HTTPPort    string
	LogLevel    string

	// Redis Config
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Webhook Config (лента событий тревог для внешних дашбордов)
	WebhookURL        string
	WebhookSecret     string
	WebhookTimeout    time.Duration
	WebhookMaxRetries int
	WebhookBaseDelay  time.Duration

	// Параметры обнаружения получателей
	StationSearchRadiusMeters   float64
	StationSearchLimit          int
	BystanderRadiusMeters       float64
	BystanderLimit              int
	NearbyAlertsRadiusMeters    float64
	NearbyAlertsLimit           int
	EvidenceStationRadiusMeters float64

	// Evidence Pipeline
	DefaultStationPhone string
	UploadsDir          string
	PublicBaseURL       string
	MaxAttachmentBytes  int64

	// Face Recognition
	FaceModelsDir string
	DatasetDir    string
	FrameCount    int

	// SMS (Twilio). Пустые значения включают mock-режим с логированием.
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	// Push (Firebase Cloud Messaging)
	FirebaseCredentialsFile string

	// Email (SMTP)
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// API Keys for authentication
	APIKeys []string
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", 1*time.Second),

		StationSearchRadiusMeters:   getEnvAsFloat("STATION_SEARCH_RADIUS_METERS", 10000),
		StationSearchLimit:          getEnvAsInt("STATION_SEARCH_LIMIT", 3),
		BystanderRadiusMeters:       getEnvAsFloat("BYSTANDER_RADIUS_METERS", 500),
		BystanderLimit:              getEnvAsInt("BYSTANDER_LIMIT", 50),
		NearbyAlertsRadiusMeters:    getEnvAsFloat("NEARBY_ALERTS_RADIUS_METERS", 5000),
		NearbyAlertsLimit:           getEnvAsInt("NEARBY_ALERTS_LIMIT", 20),
		EvidenceStationRadiusMeters: getEnvAsFloat("EVIDENCE_STATION_RADIUS_METERS", 50000),

		DefaultStationPhone: os.Getenv("DEFAULT_STATION_PHONE"),
		UploadsDir:          getEnv("UPLOADS_DIR", "uploads"),
		PublicBaseURL:       getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		MaxAttachmentBytes:  getEnvAsInt64("MAX_ATTACHMENT_BYTES", 25*1024*1024),

		FaceModelsDir: getEnv("FACE_MODELS_DIR", "models"),
		DatasetDir:    getEnv("DATASET_DIR", "dataset"),
		FrameCount:    getEnvAsInt("VIDEO_FRAME_COUNT", 5),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_PHONE_NUMBER"),

		FirebaseCredentialsFile: os.Getenv("FIREBASE_CREDENTIALS_FILE"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getEnvAsInt("SMTP_PORT", 587),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASSWORD"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsInt64 возвращает значение переменной окружения как int64 или значение по умолчанию
func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

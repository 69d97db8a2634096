// Package config は環境変数と .env から実行時設定を読み込みます。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/survey-banner-kit/pkg/domain"
	"github.com/shouni/survey-banner-kit/pkg/generator"
	"github.com/shouni/survey-banner-kit/pkg/storage"
)

// FallbackStrategy はフォールバックの戦略です。
type FallbackStrategy string

const (
	FallbackPlaceholder FallbackStrategy = "placeholder"
	FallbackStock       FallbackStrategy = "stock"
)

// Config はアプリケーション設定です。
type Config struct {
	GeminiAPIKey     string
	GeminiModel      string
	OutputDir        string
	RemoteTimeout    time.Duration
	FetchTimeout     time.Duration
	FallbackStrategy FallbackStrategy
	LogLevel         string
	LogFormat        string

	// StockImageURLs は STOCK_IMAGE_URL_<SPECIALTY> で上書きされたストック画像の取得元です。
	// https:// または gs:// を指定できます。
	StockImageURLs map[domain.Specialty]string
	// Seed は GEMINI_SEED が指定された場合のみ設定されます。
	Seed *int64
}

// Load は .env（存在すれば）と環境変数から設定を読み込みます。
// GEMINI_API_KEY が無い場合は *domain.ConfigurationError を返します。
func Load() (*Config, error) {
	// ファイルが無くてもエラーにしない
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv は現在の環境変数のみから設定を組み立てます。
func FromEnv() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey:   strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:    getEnv("GEMINI_IMAGE_MODEL", generator.DefaultModel),
		OutputDir:      getEnv("OUTPUT_DIR", storage.DefaultDir),
		RemoteTimeout:  time.Second * time.Duration(getEnvInt("REMOTE_TIMEOUT_SECONDS", int(generator.DefaultTimeout/time.Second))),
		FetchTimeout:   time.Second * time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 30)),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		StockImageURLs: make(map[domain.Specialty]string),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, &domain.ConfigurationError{Key: "GEMINI_API_KEY", Msg: "is required"}
	}

	switch s := FallbackStrategy(strings.ToLower(getEnv("FALLBACK_STRATEGY", string(FallbackPlaceholder)))); s {
	case FallbackPlaceholder, FallbackStock:
		cfg.FallbackStrategy = s
	default:
		return nil, &domain.ConfigurationError{Key: "FALLBACK_STRATEGY", Msg: fmt.Sprintf("unsupported value %q", s)}
	}

	for _, sp := range domain.Specialties() {
		if u := getEnv(StockURLEnvKey(sp), ""); u != "" {
			cfg.StockImageURLs[sp] = u
		}
	}

	if v := getEnv("GEMINI_SEED", ""); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, &domain.ConfigurationError{Key: "GEMINI_SEED", Msg: fmt.Sprintf("invalid integer %q", v)}
		}
		cfg.Seed = &seed
	}

	return cfg, nil
}

// StockURLEnvKey は診療科のストック画像URLを上書きする環境変数名を返します。
// 例: STOCK_IMAGE_URL_EMERGENCY_MEDICINE
func StockURLEnvKey(s domain.Specialty) string {
	return "STOCK_IMAGE_URL_" + strings.ToUpper(string(s))
}

// UsesGCS は gs:// の取得元が設定されているかを返します。
func (c *Config) UsesGCS() bool {
	for _, u := range c.StockImageURLs {
		if remoteio.IsGCSURI(u) {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

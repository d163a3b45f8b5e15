package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type StoreConfig struct {
	Dir string
}

type PollConfig struct {
	UnreadInterval time.Duration
}

type Config struct {
	APIConfig   *APIConfig
	StoreConfig *StoreConfig
	PollConfig  *PollConfig
}

const (
	defaultBaseURL        = "http://localhost:8080/api"
	defaultRequestTimeout = 10 * time.Second
	defaultUnreadInterval = 30 * time.Second
)

func LoadConfig(logger *zap.Logger) (*Config, error) {
	// missing .env is fine, the defaults cover local use
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	/** api config */
	baseURL := os.Getenv("OSEEK_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	requestTimeout := defaultRequestTimeout
	if rts := os.Getenv("OSEEK_REQUEST_TIMEOUT"); rts != "" {
		d, err := time.ParseDuration(rts)
		if err != nil {
			return nil, err
		}
		requestTimeout = d
	}

	apiConfig := &APIConfig{
		BaseURL:        baseURL,
		RequestTimeout: requestTimeout,
	}

	/** store config */
	dir := os.Getenv("OSEEK_STORE_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".oseek")
	}

	storeConfig := &StoreConfig{
		Dir: dir,
	}

	/** poll config */
	unreadInterval := defaultUnreadInterval
	if uis := os.Getenv("OSEEK_UNREAD_POLL_INTERVAL"); uis != "" {
		d, err := time.ParseDuration(uis)
		if err != nil {
			return nil, err
		}
		unreadInterval = d
	}

	pollConfig := &PollConfig{
		UnreadInterval: unreadInterval,
	}

	return &Config{
		APIConfig:   apiConfig,
		StoreConfig: storeConfig,
		PollConfig:  pollConfig,
	}, nil
}

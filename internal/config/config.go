package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string

	// Base URL of the external language trainer REST API
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Page size for item search pagination
	PageSize int
	// Number of questions per quiz session
	QuizQuestions int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		APIBaseURL:  strings.TrimRight(os.Getenv("LANGUAGE_API_BASE_URL"), "/"),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("LANGUAGE_API_BASE_URL is required")
	}

	var err error
	if cfg.HTTPTimeout, err = getDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.PageSize, err = getInt("PAGE_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.QuizQuestions, err = getInt("QUIZ_QUESTIONS", 5); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, value)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, value)
	}
	return d, nil
}

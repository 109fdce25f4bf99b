package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setRequired(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("BOT_PASSWORD", "test_password")
	t.Setenv("LANGUAGE_API_BASE_URL", "http://localhost:8080/api")
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantErr string
	}{
		{name: "missing bot token", unset: "BOT_TOKEN", wantErr: "BOT_TOKEN"},
		{name: "missing bot password", unset: "BOT_PASSWORD", wantErr: "BOT_PASSWORD"},
		{name: "missing api base url", unset: "LANGUAGE_API_BASE_URL", wantErr: "LANGUAGE_API_BASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("QUIZ_QUESTIONS", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 5, cfg.QuizQuestions)
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	setRequired(t)
	t.Setenv("LANGUAGE_API_BASE_URL", "http://localhost:8080/api/")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_TIMEOUT", "30s")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("QUIZ_QUESTIONS", "7")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 7, cfg.QuizQuestions)
}

func TestLoad_BadNumbers(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "page size not a number", key: "PAGE_SIZE", value: "ten"},
		{name: "page size zero", key: "PAGE_SIZE", value: "0"},
		{name: "quiz questions negative", key: "QUIZ_QUESTIONS", value: "-1"},
		{name: "timeout not a duration", key: "HTTP_TIMEOUT", value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

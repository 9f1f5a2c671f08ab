package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LLM_PROVIDER", "OPENROUTER_API_KEY", "GEMINI_API_KEY", "LLM_MODEL",
		"OPENROUTER_BASE_URL", "LLM_TIMEOUT", "PORT", "ENV",
		"MAX_FILE_SIZE", "MAX_PROMPT_CHARS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "8000" {
		t.Errorf("default port: got %s", cfg.Server.Port)
	}
	if cfg.LLM.Provider != ProviderOpenRouter {
		t.Errorf("default provider: got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "openai/gpt-4o-mini" {
		t.Errorf("default model: got %s", cfg.LLM.Model)
	}
	if cfg.LLM.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("default base url: got %s", cfg.LLM.BaseURL)
	}
	if cfg.LLM.Timeout != 60*time.Second {
		t.Errorf("default timeout: got %s", cfg.LLM.Timeout)
	}
	if cfg.Upload.MaxFileSize != 10485760 {
		t.Errorf("default max file size: got %d", cfg.Upload.MaxFileSize)
	}
	if cfg.Upload.MaxPromptChars != 4000 {
		t.Errorf("default max prompt chars: got %d", cfg.Upload.MaxPromptChars)
	}
	if cfg.Configured() {
		t.Errorf("must not report configured without an API key")
	}
}

func TestLoadGeminiProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "GEMINI")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("LLM_MODEL", "")

	cfg := Load()

	if cfg.LLM.Provider != ProviderGemini {
		t.Errorf("provider must be lowercased: got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.APIKey != "gm-key" {
		t.Errorf("gemini provider must use GEMINI_API_KEY, got %s", cfg.LLM.APIKey)
	}
	if cfg.LLM.Model != "gemini-2.5-flash" {
		t.Errorf("gemini default model: got %s", cfg.LLM.Model)
	}
	if !cfg.Configured() {
		t.Errorf("expected configured with an API key present")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openrouter")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("LLM_MODEL", "mistralai/mistral-large")
	t.Setenv("LLM_TIMEOUT", "90s")
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_FILE_SIZE", "1024")
	t.Setenv("MAX_PROMPT_CHARS", "2000")

	cfg := Load()

	if cfg.Server.Port != "9090" {
		t.Errorf("port override: got %s", cfg.Server.Port)
	}
	if cfg.LLM.Model != "mistralai/mistral-large" {
		t.Errorf("model override: got %s", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 90*time.Second {
		t.Errorf("timeout override: got %s", cfg.LLM.Timeout)
	}
	if cfg.Upload.MaxFileSize != 1024 {
		t.Errorf("max file size override: got %d", cfg.Upload.MaxFileSize)
	}
	if cfg.Upload.MaxPromptChars != 2000 {
		t.Errorf("max prompt chars override: got %d", cfg.Upload.MaxPromptChars)
	}
}

func TestLoadBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "not-a-duration")

	cfg := Load()

	if cfg.LLM.Timeout != 60*time.Second {
		t.Errorf("bad timeout must fall back to default, got %s", cfg.LLM.Timeout)
	}
}

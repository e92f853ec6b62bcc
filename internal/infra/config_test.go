package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "")
	t.Setenv("PROMPT_PROVIDER", "")
	t.Setenv("PIPELINE_SHAPE", "")
	t.Setenv("CORS_ALLOWED_ORIGIN", "")
	t.Setenv("GATE_EXTRA_KEYWORDS", "")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "5000")
	}
	if cfg.AllowedOrigin != "http://localhost:3000" {
		t.Fatalf("AllowedOrigin = %q", cfg.AllowedOrigin)
	}
	if cfg.PromptProvider != "openai" || cfg.OpenAIModel != "gpt-3.5-turbo" {
		t.Fatalf("provider/model = %q/%q", cfg.PromptProvider, cfg.OpenAIModel)
	}
	if cfg.PipelineShape != "translate" || cfg.GateMinWords != 5 {
		t.Fatalf("shape/min words = %q/%d", cfg.PipelineShape, cfg.GateMinWords)
	}
	if cfg.UpstreamTimeout != 60*time.Second {
		t.Fatalf("UpstreamTimeout = %s", cfg.UpstreamTimeout)
	}
	if len(cfg.GateExtraKeywords) != 0 {
		t.Fatalf("GateExtraKeywords = %#v", cfg.GateExtraKeywords)
	}
}

func TestLoadConfigRequiresOpenAIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without OPENAI_API_KEY")
	}
}

func TestLoadConfigGeminiNeedsKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PROMPT_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without GEMINI_API_KEY")
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.PromptProvider != "gemini" {
		t.Fatalf("PromptProvider = %q", cfg.PromptProvider)
	}
}

func TestLoadConfigRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "provider", key: "PROMPT_PROVIDER", val: "llama"},
		{name: "shape", key: "PIPELINE_SHAPE", val: "summarize-everything"},
		{name: "timeout", key: "UPSTREAM_TIMEOUT_SECONDS", val: "-1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", "sk-test")
			t.Setenv(tc.key, tc.val)
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.val)
			}
		})
	}
}

func TestLoadConfigParsesExtraKeywords(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GATE_EXTRA_KEYWORDS", " gibberish, ,no idea ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	expected := []string{"gibberish", "no idea"}
	if len(cfg.GateExtraKeywords) != len(expected) {
		t.Fatalf("GateExtraKeywords = %#v, want %#v", cfg.GateExtraKeywords, expected)
	}
	for i, kw := range expected {
		if cfg.GateExtraKeywords[i] != kw {
			t.Fatalf("GateExtraKeywords[%d] = %q, want %q", i, cfg.GateExtraKeywords[i], kw)
		}
	}
}

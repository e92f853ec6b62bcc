package inject

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/do"

	"promptimage/internal/generate"
	"promptimage/internal/infra"
	"promptimage/internal/pipeline"
	"promptimage/internal/providers/prompt"
)

func testConfig() *infra.Config {
	return &infra.Config{
		AppEnv:          "test",
		Port:            "0",
		AllowedOrigin:   "http://localhost:3000",
		DefaultLocale:   "ko",
		PromptProvider:  "openai",
		OpenAIAPIKey:    "sk-test",
		OpenAIModel:     "gpt-3.5",
		PipelineShape:   pipeline.ShapeTranslateEnhance,
		GateMinWords:    7,
		UpstreamTimeout: 5 * time.Second,
		RateLimitPerMin: 0,
	}
}

func TestSetupResolvesServer(t *testing.T) {
	injector := Setup(testConfig(), zerolog.New(io.Discard))

	if _, err := do.Invoke[*infra.HTTPServer](injector); err != nil {
		t.Fatalf("invoke server: %v", err)
	}

	svc := do.MustInvoke[*generate.Service](injector)
	stages := svc.Stages()
	if len(stages) != 2 || stages[1].Gate == nil || stages[1].Gate.MinWords != 7 {
		t.Fatalf("unexpected stages: %+v", stages)
	}

	completer := do.MustInvoke[pipeline.Completer](injector)
	openai, ok := completer.(*prompt.OpenAICompleter)
	if !ok {
		t.Fatalf("completer = %T, want *prompt.OpenAICompleter", completer)
	}
	if openai.Model() != "gpt-3.5-turbo" {
		t.Fatalf("model = %q", openai.Model())
	}
}

func TestSetupSelectsGemini(t *testing.T) {
	cfg := testConfig()
	cfg.PromptProvider = "gemini"
	cfg.GeminiAPIKey = "g-key"
	injector := Setup(cfg, zerolog.New(io.Discard))

	completer := do.MustInvoke[pipeline.Completer](injector)
	if _, ok := completer.(*prompt.GeminiCompleter); !ok {
		t.Fatalf("completer = %T, want *prompt.GeminiCompleter", completer)
	}
}

func TestSetupExtraKeywords(t *testing.T) {
	cfg := testConfig()
	cfg.GateExtraKeywords = []string{"gibberish"}
	injector := Setup(cfg, zerolog.New(io.Discard))

	rules := do.MustInvoke[*pipeline.KeywordRuleSet](injector)
	if _, ok := rules.Match("this is gibberish to me"); !ok {
		t.Fatal("expected extra keyword to match")
	}
	if rules.Len() != len(pipeline.DefaultKeywords)+1 {
		t.Fatalf("rules.Len() = %d", rules.Len())
	}
}

func TestSetupRouterServesHealth(t *testing.T) {
	injector := Setup(testConfig(), zerolog.New(io.Discard))
	router := do.MustInvoke[http.Handler](injector)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ok") {
		t.Fatalf("healthz = %d %s", rec.Code, rec.Body.String())
	}
}

package inject

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/samber/do"

	"promptimage/internal/generate"
	"promptimage/internal/http/handlers"
	httpapi "promptimage/internal/http/httpapi"
	"promptimage/internal/infra"
	"promptimage/internal/pipeline"
	"promptimage/internal/providers/image"
	"promptimage/internal/providers/prompt"
)

// Setup registers every service the API needs. Nothing is constructed until
// it is first invoked.
func Setup(cfg *infra.Config, logger zerolog.Logger) *do.Injector {
	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			logger.Debug().Msg(fmt.Sprintf(format, args...))
		},
	})

	do.ProvideValue[*infra.Config](injector, cfg)
	do.ProvideValue[zerolog.Logger](injector, logger)
	do.ProvideValue[*http.Client](injector, &http.Client{Timeout: cfg.UpstreamTimeout})

	do.Provide[*pipeline.KeywordRuleSet](injector, func(i *do.Injector) (*pipeline.KeywordRuleSet, error) {
		keywords := append(append([]string{}, pipeline.DefaultKeywords...), cfg.GateExtraKeywords...)
		return pipeline.NewKeywordRuleSet(keywords...), nil
	})
	do.Provide[*pipeline.InvalidInputPatternSet](injector, func(i *do.Injector) (*pipeline.InvalidInputPatternSet, error) {
		return pipeline.NewInvalidInputPatternSet(pipeline.DefaultInvalidInputPatterns...)
	})
	do.Provide[*pipeline.Normalizer](injector, func(i *do.Injector) (*pipeline.Normalizer, error) {
		return pipeline.NewNormalizer(do.MustInvoke[*pipeline.InvalidInputPatternSet](i)), nil
	})
	do.Provide[[]pipeline.StageSpec](injector, func(i *do.Injector) ([]pipeline.StageSpec, error) {
		return pipeline.Preset(cfg.PipelineShape, cfg.GateMinWords)
	})

	do.Provide[pipeline.Completer](injector, newCompleter)
	do.Provide[image.Generator](injector, func(i *do.Injector) (image.Generator, error) {
		return image.NewOpenAIGenerator(image.OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIImageModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
			HTTPClient:   do.MustInvoke[*http.Client](i),
		})
	})

	do.Provide[*pipeline.Pipeline](injector, func(i *do.Injector) (*pipeline.Pipeline, error) {
		return pipeline.NewPipeline(
			do.MustInvoke[pipeline.Completer](i),
			do.MustInvoke[*pipeline.KeywordRuleSet](i),
			logger,
		), nil
	})
	do.Provide[*generate.Service](injector, func(i *do.Injector) (*generate.Service, error) {
		return generate.NewService(
			do.MustInvoke[*pipeline.Normalizer](i),
			do.MustInvoke[*pipeline.Pipeline](i),
			do.MustInvoke[[]pipeline.StageSpec](i),
			do.MustInvoke[image.Generator](i),
			logger,
		), nil
	})
	do.Provide[*handlers.App](injector, func(i *do.Injector) (*handlers.App, error) {
		return handlers.NewApp(do.MustInvoke[*generate.Service](i), logger), nil
	})
	do.Provide[http.Handler](injector, func(i *do.Injector) (http.Handler, error) {
		return httpapi.NewRouter(do.MustInvoke[*handlers.App](i), httpapi.Options{
			AllowedOrigin:   cfg.AllowedOrigin,
			DefaultLocale:   cfg.DefaultLocale,
			RateLimitPerMin: cfg.RateLimitPerMin,
			Logger:          logger,
		}), nil
	})
	do.Provide[*infra.HTTPServer](injector, func(i *do.Injector) (*infra.HTTPServer, error) {
		return infra.NewHTTPServer(cfg, do.MustInvoke[http.Handler](i)), nil
	})

	return injector
}

func newCompleter(i *do.Injector) (pipeline.Completer, error) {
	cfg := do.MustInvoke[*infra.Config](i)
	logger := do.MustInvoke[zerolog.Logger](i)
	client := do.MustInvoke[*http.Client](i)

	switch cfg.PromptProvider {
	case "gemini":
		return prompt.NewGeminiCompleter(prompt.GeminiOptions{
			APIKey:     cfg.GeminiAPIKey,
			Model:      cfg.GeminiModel,
			BaseURL:    cfg.GeminiBaseURL,
			HTTPClient: client,
		})
	default:
		return prompt.NewOpenAICompleter(prompt.OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
			HTTPClient:   client,
			OnWarning: func(reason, detail string) {
				logger.Warn().Str("reason", reason).Str("detail", detail).Msg("openai model adjusted")
			},
		})
	}
}

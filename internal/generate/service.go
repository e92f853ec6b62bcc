// Package generate runs one prompt end to end: normalization, the stage
// pipeline and the final image request.
package generate

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"promptimage/internal/domain"
	"promptimage/internal/pipeline"
	"promptimage/internal/providers/image"
)

// Runner executes a stage list.
type Runner interface {
	Run(ctx context.Context, seed domain.NormalizedPrompt, stages []pipeline.StageSpec) (pipeline.Run, error)
}

type Service struct {
	normalizer *pipeline.Normalizer
	runner     Runner
	stages     []pipeline.StageSpec
	images     image.Generator
	logger     zerolog.Logger
}

func NewService(normalizer *pipeline.Normalizer, runner Runner, stages []pipeline.StageSpec, images image.Generator, logger zerolog.Logger) *Service {
	return &Service{
		normalizer: normalizer,
		runner:     runner,
		stages:     stages,
		images:     images,
		logger:     logger,
	}
}

// Stages returns the configured stage list.
func (s *Service) Stages() []pipeline.StageSpec {
	return s.stages
}

// Generate returns exactly one of domain.Success, domain.Rejected or
// domain.Failed. The image provider is called at most once and only after
// every gate has passed.
func (s *Service) Generate(ctx context.Context, req domain.PromptRequest) domain.Outcome {
	runID := uuid.NewString()
	base := zerolog.Ctx(ctx)
	if base.GetLevel() == zerolog.Disabled {
		base = &s.logger
	}
	log := base.With().Str("run_id", runID).Logger()
	ctx = log.WithContext(ctx)

	log.Info().Str("prompt", req.RawText).Msg("received prompt")
	seed, err := s.normalizer.Normalize(req.RawText)
	if err != nil {
		return s.classify(&log, err)
	}

	run, err := s.runner.Run(ctx, seed, s.stages)
	if err != nil {
		return s.classify(&log, err)
	}

	asset, err := s.images.Generate(ctx, image.GenerateRequest{Prompt: run.Output, RequestID: runID})
	if err != nil {
		return s.classify(&log, err)
	}
	log.Info().
		Str("image_prompt", run.Output).
		Str("image_url", asset.URL).
		Int("stages", len(run.History)).
		Msg("image generated")
	return domain.Success{ImageURL: asset.URL}
}

func (s *Service) classify(log *zerolog.Logger, err error) domain.Outcome {
	var rej *domain.RejectionError
	if errors.As(err, &rej) {
		log.Warn().Str("verdict", rej.Reason.String()).Str("stage", rej.Stage).Msg("prompt rejected")
		return domain.Rejected{Reason: rej.Reason, Stage: rej.Stage}
	}
	event := log.Error().Err(err)
	var callErr *domain.ExternalCallError
	if errors.As(err, &callErr) {
		event = event.Str("capability", callErr.Capability).Str("op", callErr.Op).Int("status", callErr.StatusCode)
	}
	event.Msg("generation failed")
	return domain.Failed{Cause: err}
}

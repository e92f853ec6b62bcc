package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"promptimage/internal/domain"
)

var ErrNoStages = errors.New("pipeline has no stages")

// Completer is the text completion capability used by every stage.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// StageSpec describes one text transformation step.
type StageSpec struct {
	Name              string
	SystemInstruction string
	Gate              *GateSpec
}

// Run is the result of a successful pipeline run.
type Run struct {
	Output  string
	History []domain.StageResult
}

// Pipeline feeds a prompt through an ordered list of stages, gating the
// output of stages that ask for it.
type Pipeline struct {
	completer Completer
	keywords  *KeywordRuleSet
	logger    zerolog.Logger
}

func NewPipeline(completer Completer, keywords *KeywordRuleSet, logger zerolog.Logger) *Pipeline {
	return &Pipeline{completer: completer, keywords: keywords, logger: logger}
}

// Run executes stages strictly in order. Each stage gets the previous
// stage's output; the first one gets the seed. It stops at the first
// external failure or rejected gate, returning the history so far together
// with the error. Rejections are *domain.RejectionError.
func (p *Pipeline) Run(ctx context.Context, seed domain.NormalizedPrompt, stages []StageSpec) (Run, error) {
	if len(stages) == 0 {
		return Run{}, ErrNoStages
	}
	log := p.loggerFor(ctx)
	log.Debug().Strs("stages", StageNames(stages)).Str("input", seed.Text).Msg("pipeline started")

	input := seed.Text
	history := make([]domain.StageResult, 0, len(stages))
	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return Run{History: history}, domain.NewExternalCallError("pipeline", "canceled", 0, err)
		}
		output, err := p.completer.Complete(ctx, stage.SystemInstruction, input)
		if err != nil {
			log.Error().Err(err).Str("stage", stage.Name).Msg("stage call failed")
			return Run{History: history}, fmt.Errorf("stage %s: %w", stage.Name, err)
		}
		history = append(history, domain.StageResult{Stage: stage.Name, Output: output})

		verdict := domain.GateVerdict{Passed: true}
		if stage.Gate != nil {
			verdict = NewGate(p.keywords, stage.Gate.MinWords).Evaluate(output)
		}
		if !verdict.Passed {
			log.Warn().
				Str("stage", stage.Name).
				Str("output", output).
				Str("verdict", verdict.Reason.String()).
				Msg("stage output rejected")
			return Run{History: history}, &domain.RejectionError{Reason: verdict.Reason, Stage: stage.Name}
		}
		log.Info().
			Str("stage", stage.Name).
			Str("output", output).
			Str("verdict", lo.Ternary(stage.Gate != nil, "passed", "ungated")).
			Msg("stage completed")
		input = output
	}
	return Run{Output: input, History: history}, nil
}

func (p *Pipeline) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &p.logger
}

// StageNames lists the stage names in order.
func StageNames(stages []StageSpec) []string {
	return lo.Map(stages, func(s StageSpec, _ int) string { return s.Name })
}

package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Pipeline shapes selectable at startup.
const (
	ShapeTranslate        = "translate"
	ShapeExplainTranslate = "explain-translate"
	ShapeTranslateEnhance = "translate-enhance"
)

// DefaultMinWords is the word threshold used by length-checked gates.
const DefaultMinWords = 5

const (
	explainInstruction = "You help people describe pictures. Rewrite the user's short Korean description " +
		"as one or two vivid Korean sentences describing the scene to draw. Reply with the description only."
	translateInstruction = "You are a translator that converts Korean to English. Reply with the English translation only."
	enhanceInstruction   = "You write prompts for an image generation model. Expand the English description into " +
		"a single detailed prompt that names the subject, its setting, the lighting and the visual style. " +
		"Reply with the prompt only."
)

var presets = map[string]func(minWords int) []StageSpec{
	ShapeTranslate: func(int) []StageSpec {
		return []StageSpec{
			{Name: "translate", SystemInstruction: translateInstruction, Gate: &GateSpec{}},
		}
	},
	ShapeExplainTranslate: func(minWords int) []StageSpec {
		return []StageSpec{
			{Name: "explain", SystemInstruction: explainInstruction},
			{Name: "translate", SystemInstruction: translateInstruction, Gate: &GateSpec{MinWords: minWords}},
		}
	},
	ShapeTranslateEnhance: func(minWords int) []StageSpec {
		return []StageSpec{
			{Name: "translate", SystemInstruction: translateInstruction, Gate: &GateSpec{}},
			{Name: "enhance", SystemInstruction: enhanceInstruction, Gate: &GateSpec{MinWords: minWords}},
		}
	},
}

// Preset returns the stage list for a named shape. A non-positive minWords
// falls back to DefaultMinWords.
func Preset(shape string, minWords int) ([]StageSpec, error) {
	build, ok := presets[strings.ToLower(strings.TrimSpace(shape))]
	if !ok {
		return nil, fmt.Errorf("unknown pipeline shape %q (want one of %s)", shape, strings.Join(Shapes(), ", "))
	}
	if minWords <= 0 {
		minWords = DefaultMinWords
	}
	return build(minWords), nil
}

// Shapes lists the known preset names.
func Shapes() []string {
	names := lo.Keys(presets)
	sort.Strings(names)
	return names
}

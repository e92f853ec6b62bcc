package pipeline

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"promptimage/internal/domain"
)

// GateSpec configures the gate that runs after a stage. The keyword check is
// always on; MinWords of zero disables the length check.
type GateSpec struct {
	MinWords int
}

// Gate classifies model output as acceptable or not.
//
// Keywords are matched as plain substrings of the lower-cased text, so
// "unclear" also hits "unclearly". Word boundaries are not considered.
type Gate struct {
	keywords *KeywordRuleSet
	minWords int
}

func NewGate(keywords *KeywordRuleSet, minWords int) *Gate {
	return &Gate{keywords: keywords, minWords: minWords}
}

// Evaluate checks keywords first, then the word count.
func (g *Gate) Evaluate(text string) domain.GateVerdict {
	// cases.Caser keeps state, so one per call.
	lowered := cases.Lower(language.Und).String(text)
	if _, hit := g.keywords.Match(lowered); hit {
		return domain.GateVerdict{Passed: false, Reason: domain.ReasonLowConfidenceTranslation}
	}
	if g.minWords > 0 && len(strings.Fields(text)) < g.minWords {
		return domain.GateVerdict{Passed: false, Reason: domain.ReasonResponseTooShort}
	}
	return domain.GateVerdict{Passed: true}
}

package pipeline

import (
	"testing"

	"promptimage/internal/domain"
)

func TestGateEvaluate(t *testing.T) {
	t.Parallel()
	keywords := NewKeywordRuleSet(DefaultKeywords...)
	cases := []struct {
		name     string
		minWords int
		text     string
		passed   bool
		reason   domain.ReasonCode
	}{
		{name: "clean", minWords: 5, text: "a cat sitting on a chair", passed: true},
		{name: "keyword_case_insensitive", text: "This does NOT make sense to me", reason: domain.ReasonLowConfidenceTranslation},
		{name: "clarify", text: "Could you clarify what you want drawn?", reason: domain.ReasonLowConfidenceTranslation},
		{name: "substring_hit", text: "an unclearly lit room with a sleeping cat", reason: domain.ReasonLowConfidenceTranslation},
		{name: "too_short", minWords: 5, text: "a cat", reason: domain.ReasonResponseTooShort},
		{name: "length_check_off", minWords: 0, text: "a cat", passed: true},
		{name: "keyword_before_length", minWords: 5, text: "Ambiguous.", reason: domain.ReasonLowConfidenceTranslation},
		{name: "exact_threshold", minWords: 5, text: "one two three four five", passed: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := NewGate(keywords, tc.minWords).Evaluate(tc.text)
			if got.Passed != tc.passed {
				t.Fatalf("Passed = %t, want %t (reason %s)", got.Passed, tc.passed, got.Reason)
			}
			if got.Reason != tc.reason {
				t.Fatalf("Reason = %s, want %s", got.Reason, tc.reason)
			}
		})
	}
}

func TestKeywordRuleSetNormalizesEntries(t *testing.T) {
	set := NewKeywordRuleSet("  Unclear ", "unclear", "", "HUH")
	if set.Len() != 2 {
		t.Fatalf("Len = %d, want 2", set.Len())
	}
	if kw, ok := set.Match("huh? what"); !ok || kw != "huh" {
		t.Fatalf("Match = %q, %t", kw, ok)
	}
	if _, ok := set.Match("a clear sky"); ok {
		t.Fatal("unexpected match")
	}
}

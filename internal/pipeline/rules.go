package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultKeywords mark model output that signals the model could not make
// sense of its input.
var DefaultKeywords = []string{
	"does not make sense",
	"doesn't make sense",
	"not make sense",
	"ambiguous",
	"could you clarify",
	"can you clarify",
	"please clarify",
	"unclear",
	"not sure what you mean",
	"cannot translate",
	"can't translate",
	"unable to translate",
	"please provide more context",
	"meaningless",
	"i'm sorry",
	"i apologize",
}

// DefaultInvalidInputPatterns match raw prompts that carry no content signal.
// Each entry is matched against the whole prompt.
var DefaultInvalidInputPatterns = []string{
	// symbols and punctuation only
	`[\p{P}\p{S}\s]+`,
	// a single run of latin letters such as "asdf"
	`[A-Za-z]+`,
	// hangul jamo that never compose into a syllable, e.g. "ㅋㅋㅋ"
	`[\x{3131}-\x{318E}\x{1100}-\x{11FF}\s]+`,
}

// KeywordRuleSet is an immutable set of lower-cased substrings. It is built
// once at startup and shared read-only by every gate.
type KeywordRuleSet struct {
	keywords []string
}

// NewKeywordRuleSet lower-cases, trims and de-duplicates keywords.
func NewKeywordRuleSet(keywords ...string) *KeywordRuleSet {
	caser := cases.Lower(language.Und)
	cleaned := lo.FilterMap(keywords, func(kw string, _ int) (string, bool) {
		kw = strings.TrimSpace(caser.String(kw))
		return kw, kw != ""
	})
	return &KeywordRuleSet{keywords: lo.Uniq(cleaned)}
}

// Match reports the first keyword contained in lowered. The caller must
// lower-case the text first.
func (k *KeywordRuleSet) Match(lowered string) (string, bool) {
	if k == nil {
		return "", false
	}
	return lo.Find(k.keywords, func(kw string) bool {
		return strings.Contains(lowered, kw)
	})
}

// Len returns the number of distinct keywords.
func (k *KeywordRuleSet) Len() int {
	if k == nil {
		return 0
	}
	return len(k.keywords)
}

// InvalidInputPatternSet is an immutable list of fully anchored expressions.
type InvalidInputPatternSet struct {
	patterns []*regexp.Regexp
}

// NewInvalidInputPatternSet compiles patterns, anchoring each one at both
// ends so that only whole-string matches count.
func NewInvalidInputPatternSet(patterns ...string) (*InvalidInputPatternSet, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSuffix(strings.TrimPrefix(p, "^"), "$")
		re, err := regexp.Compile(`^(?:` + p + `)$`)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return &InvalidInputPatternSet{patterns: compiled}, nil
}

// MustInvalidInputPatternSet is like NewInvalidInputPatternSet but panics on
// an invalid expression.
func MustInvalidInputPatternSet(patterns ...string) *InvalidInputPatternSet {
	set, err := NewInvalidInputPatternSet(patterns...)
	if err != nil {
		panic(err)
	}
	return set
}

// Matches reports whether text fully matches any pattern.
func (s *InvalidInputPatternSet) Matches(text string) bool {
	if s == nil {
		return false
	}
	return lo.SomeBy(s.patterns, func(re *regexp.Regexp) bool {
		return re.MatchString(text)
	})
}

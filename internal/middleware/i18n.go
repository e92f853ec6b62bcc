package middleware

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

var LocaleKey = localeContextKey{}

// Supported locales. Korean comes first so that it wins ties.
var supportedLocales = []language.Tag{language.Korean, language.English}

var localeMatcher = language.NewMatcher(supportedLocales)

// I18N stores the best supported locale ("ko" or "en") in the request
// context, preferring X-Locale over Accept-Language over defaultLocale.
func I18N(defaultLocale string) func(http.Handler) http.Handler {
	fallback := normalizeLocale(defaultLocale)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := detectLocale(r, fallback)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func detectLocale(r *http.Request, fallback string) string {
	if v := strings.TrimSpace(r.Header.Get("X-Locale")); v != "" {
		if locale, ok := matchLocale(v); ok {
			return locale
		}
	}
	if v := strings.TrimSpace(r.Header.Get("Accept-Language")); v != "" {
		if locale, ok := matchLocale(v); ok {
			return locale
		}
	}
	if fallback != "" {
		return fallback
	}
	return "ko"
}

func matchLocale(header string) (string, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	base, _ := supportedLocales[idx].Base()
	return base.String(), true
}

func normalizeLocale(locale string) string {
	if locale == "" {
		return ""
	}
	if matched, ok := matchLocale(locale); ok {
		return matched
	}
	return ""
}

func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok {
		return v
	}
	return "ko"
}

// AngelaMos | 2026
// i18n.go

package i18n

import (
	"context"
	"net/http"
	"strings"
)

const DefaultLocale = "en"

type contextKey struct{}

var localeKey contextKey

var supportedLocales = map[string]struct{}{
	"en":    {},
	"ko":    {},
	"zh-CN": {},
	"zh-TW": {},
}

// Middleware resolves the request locale from the "locale" query param, then
// the "locale" cookie, then the Accept-Language header, and stores it in the
// request context. Locale affects message text only, never error codes.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithLocale(r.Context(), FromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey, canonicalize(locale))
}

func FromContext(ctx context.Context) string {
	if locale, ok := ctx.Value(localeKey).(string); ok && locale != "" {
		return locale
	}
	return DefaultLocale
}

func FromRequest(r *http.Request) string {
	if r == nil {
		return DefaultLocale
	}

	if locale := canonicalize(r.URL.Query().Get("locale")); locale != "" {
		return locale
	}

	if cookie, err := r.Cookie("locale"); err == nil {
		if locale := canonicalize(cookie.Value); locale != "" {
			return locale
		}
	}

	return NormalizeLocale(r.Header.Get("Accept-Language"))
}

// NormalizeLocale picks the first supported language out of an
// Accept-Language header, ignoring quality weights.
func NormalizeLocale(header string) string {
	if strings.TrimSpace(header) == "" {
		return DefaultLocale
	}

	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(part)
		if idx := strings.Index(lang, ";"); idx >= 0 {
			lang = lang[:idx]
		}
		if locale := canonicalize(lang); locale != "" {
			return locale
		}
	}

	return DefaultLocale
}

// canonicalize maps a language tag onto a supported locale, or "" if none
// matches. Chinese keeps its region; everything else matches on base tag.
func canonicalize(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	lower := strings.ToLower(tag)
	switch lower {
	case "zh-cn", "zh-hans", "zh":
		return "zh-CN"
	case "zh-tw", "zh-hant", "zh-hk":
		return "zh-TW"
	}

	base := lower
	if idx := strings.Index(base, "-"); idx >= 0 {
		base = base[:idx]
	}
	if _, ok := supportedLocales[base]; ok {
		return base
	}

	return ""
}

// T translates a message key for the context locale. The English text is the
// key itself, so a missing translation falls back to the key.
func T(ctx context.Context, key string) string {
	locale := FromContext(ctx)
	if locale == DefaultLocale {
		return key
	}

	if catalog, ok := catalogs[locale]; ok {
		if translated, ok := catalog[key]; ok {
			return translated
		}
	}

	return key
}

package locale

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam - tilni tanlash uchun query parametr
	LangParam = "lang"
	// CookieName - tanlangan til saqlanadigan cookie
	CookieName = "lang"
)

var (
	supportedTags = []language.Tag{language.Uzbek, language.Russian, language.English}
	matcher       = language.NewMatcher(supportedTags)
)

// Tag returns the language tag for l.
func (l Locale) Tag() language.Tag {
	switch l {
	case Uzbek:
		return language.Uzbek
	case Russian:
		return language.Russian
	default:
		return language.English
	}
}

// Resolve determines the locale for the request: the lang query parameter
// first, then the lang cookie, then Accept-Language, then def. The bool
// reports whether the choice came from the query and should be persisted.
func Resolve(r *http.Request, def Locale) (Locale, bool) {
	if r == nil {
		return def, false
	}

	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if l, ok := Parse(v); ok {
			return l, true
		}
	}

	if c, err := r.Cookie(CookieName); err == nil {
		if l, ok := Parse(c.Value); ok {
			return l, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if l, ok := MatchAcceptLanguage(accept); ok {
			return l, false
		}
	}

	return def, false
}

// MatchAcceptLanguage picks the best supported locale for an
// Accept-Language header value.
func MatchAcceptLanguage(accept string) (Locale, bool) {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return Default, false
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default, false
	}
	return All()[index], true
}

// SetCookie persists the selected locale for a year.
func SetCookie(w http.ResponseWriter, l Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    l.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

type ctxKey struct{}

// WithLocale stores l in ctx.
func WithLocale(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the locale stored by WithLocale, or Default.
func FromContext(ctx context.Context) Locale {
	if l, ok := ctx.Value(ctxKey{}).(Locale); ok {
		return l
	}
	return Default
}

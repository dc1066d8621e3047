package handlers

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"urmonov-web/pkg/locale"
)

// segmentTitles - yo'l segmentidan sahifa nomi kaliti
var segmentTitles = map[string]string{
	"blogs":    "pageNames.blog",
	"news":     "pageNames.news",
	"new":      "pageNames.news",
	"services": "pageNames.services",
	"about":    "pageNames.about",
}

// PageTitle returns the breadcrumb title for a path. Blog and news detail
// pages use their list title; other paths use the last segment, translated
// when known and capitalized otherwise.
func PageTitle(path string, l locale.Locale) string {
	switch {
	case path == "/blogs" || strings.HasPrefix(path, "/blog/"):
		return locale.T(l, "pageNames.blog")
	case path == "/news" || strings.HasPrefix(path, "/new/"):
		return locale.T(l, "pageNames.news")
	}

	segment := "home"
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(parts) > 0 {
		segment = parts[len(parts)-1]
	}
	if key, ok := segmentTitles[segment]; ok {
		return locale.T(l, key)
	}
	return capitalize(segment)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

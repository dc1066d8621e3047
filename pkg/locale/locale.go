// Package locale selects locale-suffixed content fields and negotiates the
// visitor's language. Supported locales are fixed: uz, ru and en.
package locale

import "strings"

// Locale - qo'llab-quvvatlanadigan til kodi
type Locale string

const (
	Uzbek   Locale = "uz"
	Russian Locale = "ru"
	English Locale = "en"
)

// Default is used when nothing else decides the locale.
const Default = Uzbek

// All returns the supported locales in display order.
func All() []Locale {
	return []Locale{Uzbek, Russian, English}
}

// Parse normalizes s into a supported locale. The second result reports
// whether s named one of them.
func Parse(s string) (Locale, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	switch Locale(s) {
	case Uzbek, Russian, English:
		return Locale(s), true
	}
	return Default, false
}

func (l Locale) String() string {
	return string(l)
}

// Pick returns uz for Uzbek, ru for Russian and en for every other locale.
func Pick(uz, ru, en string, l Locale) string {
	switch l {
	case Uzbek:
		return uz
	case Russian:
		return ru
	default:
		return en
	}
}

// Text - uch tildagi matn
type Text struct {
	UZ string `json:"uz"`
	RU string `json:"ru"`
	EN string `json:"en"`
}

// In returns the text for l.
func (t Text) In(l Locale) string {
	return Pick(t.UZ, t.RU, t.EN, l)
}

// Set stores value under l; unknown locales write the English slot.
func (t *Text) Set(l Locale, value string) {
	switch l {
	case Uzbek:
		t.UZ = value
	case Russian:
		t.RU = value
	default:
		t.EN = value
	}
}

// Only returns a Text holding value for l and empty strings elsewhere.
func Only(l Locale, value string) Text {
	var t Text
	t.Set(l, value)
	return t
}

// Field reads name_<l> from an opaque record. A nil record, a missing field
// or a non-string value all read as "".
func Field(record map[string]any, name string, l Locale) string {
	if record == nil {
		return ""
	}
	key := name + "_" + Pick("uz", "ru", "en", l)
	s, _ := record[key].(string)
	return s
}

package locale

import (
	"html/template"
	"strings"

	"golang.org/x/net/html"
)

// Raw marks upstream markup as safe for templates. Nothing is sanitized:
// the content API is trusted to send the HTML it wants rendered.
func Raw(s string) template.HTML {
	return template.HTML(s)
}

// StripTags drops every tag from s and keeps the text content. Text inside
// script and style elements is dropped as well.
func StripTags(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skip := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF yoki buzilgan markup: yig'ilgan matn qaytadi
			return b.String()
		case html.StartTagToken:
			name, _ := z.TagName()
			if isRawTextTag(string(name)) {
				skip++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if isRawTextTag(string(name)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isRawTextTag(name string) bool {
	return name == "script" || name == "style"
}

// Truncate cuts s to n runes and appends "..." when anything was cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// Prefix returns at most the first n runes of s, without an ellipsis.
func Prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

package models

import (
	"regexp"

	"urmonov-web/pkg/locale"
)

var youtubeIDPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)([\w-]+)`)

// VideoLink - ijtimoiy tarmoqdagi video (/social-videos/)
type VideoLink struct {
	UUID    string `json:"uuid"`
	Link    string `json:"link"`
	TitleUZ string `json:"title_uz"`
	TitleRU string `json:"title_ru"`
	TitleEN string `json:"title_en"`
}

// GetTitle - tanlangan tildagi nom
func (v *VideoLink) GetTitle(l locale.Locale) string {
	return locale.Pick(v.TitleUZ, v.TitleRU, v.TitleEN, l)
}

// VideoID - YouTube havolasidan video identifikatori
func (v *VideoLink) VideoID() string {
	if v.Link == "" {
		return ""
	}
	m := youtubeIDPattern.FindStringSubmatch(v.Link)
	if m == nil {
		return ""
	}
	return m[1]
}

// Thumbnail - video muqovasi
func (v *VideoLink) Thumbnail() string {
	return "https://img.youtube.com/vi/" + v.VideoID() + "/hqdefault.jpg"
}

// EmbedURL - iframe uchun havola
func (v *VideoLink) EmbedURL() string {
	return "https://www.youtube.com/embed/" + v.VideoID() + "?autoplay=1"
}

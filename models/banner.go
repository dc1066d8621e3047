package models

import "urmonov-web/pkg/locale"

// Banner - bosh sahifadagi banner (/banner/)
type Banner struct {
	Image      string `json:"image"`
	TitleUZ    string `json:"title_uz"`
	TitleRU    string `json:"title_ru"`
	TitleEN    string `json:"title_en"`
	SubtitleUZ string `json:"subtitle_uz"`
	SubtitleRU string `json:"subtitle_ru"`
	SubtitleEN string `json:"subtitle_en"`
}

// GetTitle - tanlangan tildagi sarlavha
func (b *Banner) GetTitle(l locale.Locale) string {
	if b == nil {
		return ""
	}
	return locale.Pick(b.TitleUZ, b.TitleRU, b.TitleEN, l)
}

// GetSubtitle - tanlangan tildagi qo'shimcha sarlavha
func (b *Banner) GetSubtitle(l locale.Locale) string {
	if b == nil {
		return ""
	}
	return locale.Pick(b.SubtitleUZ, b.SubtitleRU, b.SubtitleEN, l)
}

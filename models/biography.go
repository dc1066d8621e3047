package models

import (
	"html/template"

	"urmonov-web/pkg/locale"
)

// Biography - shifokor biografiyasi (/biography/)
type Biography struct {
	Image         string `json:"image"`
	Experience    string `json:"experience"`
	TitleUZ       string `json:"title_uz"`
	TitleRU       string `json:"title_ru"`
	TitleEN       string `json:"title_en"`
	DescriptionUZ string `json:"description_uz"`
	DescriptionRU string `json:"description_ru"`
	DescriptionEN string `json:"description_en"`
}

// GetTitle - tanlangan tildagi sarlavha
func (b *Biography) GetTitle(l locale.Locale) string {
	if b == nil {
		return ""
	}
	return locale.Pick(b.TitleUZ, b.TitleRU, b.TitleEN, l)
}

// GetDescription - tavsif HTML ko'rinishida (API dan kelganicha)
func (b *Biography) GetDescription(l locale.Locale) template.HTML {
	if b == nil {
		return ""
	}
	return locale.Raw(locale.Pick(b.DescriptionUZ, b.DescriptionRU, b.DescriptionEN, l))
}

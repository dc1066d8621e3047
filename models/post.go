package models

import (
	"html/template"

	"urmonov-web/pkg/locale"
)

// Kartochka va "boshqa maqolalar" ro'yxatidagi sarlavha uzunligi
const (
	CardTitleLength    = 50
	RelatedTitleLength = 45
)

// Post - blog maqolasi va yangilik uchun umumiy maydonlar
type Post struct {
	UUID          string `json:"uuid"`
	Image         string `json:"image"`
	TitleUZ       string `json:"title_uz"`
	TitleRU       string `json:"title_ru"`
	TitleEN       string `json:"title_en"`
	DescriptionUZ string `json:"description_uz"`
	DescriptionRU string `json:"description_ru"`
	DescriptionEN string `json:"description_en"`
}

// GetTitle - tanlangan tildagi sarlavha
func (p *Post) GetTitle(l locale.Locale) string {
	if p == nil {
		return ""
	}
	return locale.Pick(p.TitleUZ, p.TitleRU, p.TitleEN, l)
}

// GetCardTitle - kartochka uchun qisqa sarlavha
func (p *Post) GetCardTitle(l locale.Locale) string {
	return locale.Prefix(p.GetTitle(l), CardTitleLength)
}

// GetRelatedTitle - "boshqa maqolalar" ro'yxati uchun sarlavha
func (p *Post) GetRelatedTitle(l locale.Locale) string {
	return locale.Prefix(p.GetTitle(l), RelatedTitleLength)
}

// GetDescription - maqola matni HTML ko'rinishida
func (p *Post) GetDescription(l locale.Locale) template.HTML {
	if p == nil {
		return ""
	}
	return locale.Raw(locale.Pick(p.DescriptionUZ, p.DescriptionRU, p.DescriptionEN, l))
}

// BlogPost - blog maqolasi (/blogs/, /blog/{id})
type BlogPost struct {
	Post
}

// NewsItem - yangilik (/news/, /new/{id})
type NewsItem struct {
	Post
	Date     string    `json:"date"`
	Hashtags []Hashtag `json:"hashtags"`
}

// Hashtag - yangilik tegi
type Hashtag struct {
	TitleUZ string `json:"title_uz"`
	TitleRU string `json:"title_ru"`
	TitleEN string `json:"title_en"`
}

// GetTitle - tanlangan tildagi teg
func (h Hashtag) GetTitle(l locale.Locale) string {
	return locale.Pick(h.TitleUZ, h.TitleRU, h.TitleEN, l)
}

// Others - joriy elementdan boshqa elementlar (o'xshash maqolalar ro'yxati)
func Others[T interface{ ID() string }](items []T, currentID string) []T {
	rest := make([]T, 0, len(items))
	for _, it := range items {
		if it.ID() != currentID {
			rest = append(rest, it)
		}
	}
	return rest
}

// ID - ro'yxat kaliti va navigatsiya identifikatori
func (p Post) ID() string {
	return p.UUID
}

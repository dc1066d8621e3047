package models

import (
	"html/template"
	"regexp"

	"urmonov-web/pkg/locale"
)

var mapSrcPattern = regexp.MustCompile(`src="([^"]+)"`)

// AboutUs - klinika haqida va aloqa ma'lumotlari (/about-us/)
type AboutUs struct {
	Image         string `json:"image"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	MapEmbed      string `json:"map_embed"` // <iframe src="..."> HTML
	DescriptionUZ string `json:"description_uz"`
	DescriptionRU string `json:"description_ru"`
	DescriptionEN string `json:"description_en"`
	AddressUZ     string `json:"address_uz"`
	AddressRU     string `json:"address_ru"`
	AddressEN     string `json:"address_en"`
}

// GetDescription - tavsif HTML ko'rinishida
func (a *AboutUs) GetDescription(l locale.Locale) template.HTML {
	if a == nil {
		return ""
	}
	return locale.Raw(locale.Pick(a.DescriptionUZ, a.DescriptionRU, a.DescriptionEN, l))
}

// GetAddress - tanlangan tildagi manzil
func (a *AboutUs) GetAddress(l locale.Locale) string {
	if a == nil {
		return ""
	}
	return locale.Pick(a.AddressUZ, a.AddressRU, a.AddressEN, l)
}

// MapSrc - embed HTML ichidagi birinchi src="..." qiymati
func (a *AboutUs) MapSrc() string {
	if a == nil || a.MapEmbed == "" {
		return ""
	}
	m := mapSrcPattern.FindStringSubmatch(a.MapEmbed)
	if m == nil {
		return ""
	}
	return m[1]
}

// Social - ijtimoiy tarmoq havolalari (/socials/)
type Social struct {
	Instagram string `json:"instagram"`
	Telegram  string `json:"telegram"`
	YouTube   string `json:"youtube"`
	WhatsApp  string `json:"whatsapp"`
	LinkedIn  string `json:"linkedin"`
	Facebook  string `json:"facebook"`
	TikTok    string `json:"tiktok"`
}

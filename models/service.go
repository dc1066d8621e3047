package models

import (
	"html/template"

	"urmonov-web/pkg/locale"
)

// Kartochkadagi qisqa tavsif uzunligi
const ServiceSummaryLength = 370

// Service - klinika xizmati (/services/, /services/popular/)
type Service struct {
	UUID          string `json:"uuid"`
	Image         string `json:"image"`
	Popular       bool   `json:"popular"`
	TitleUZ       string `json:"title_uz"`
	TitleRU       string `json:"title_ru"`
	TitleEN       string `json:"title_en"`
	DescriptionUZ string `json:"description_uz"`
	DescriptionRU string `json:"description_ru"`
	DescriptionEN string `json:"description_en"`
}

// GetTitle - tanlangan tildagi nom
func (s *Service) GetTitle(l locale.Locale) string {
	return locale.Pick(s.TitleUZ, s.TitleRU, s.TitleEN, l)
}

// GetDescription - to'liq tavsif HTML ko'rinishida
func (s *Service) GetDescription(l locale.Locale) template.HTML {
	return locale.Raw(locale.Pick(s.DescriptionUZ, s.DescriptionRU, s.DescriptionEN, l))
}

// GetSummary - teglar olib tashlangan, qisqartirilgan tavsif
func (s *Service) GetSummary(l locale.Locale) string {
	text := locale.StripTags(locale.Pick(s.DescriptionUZ, s.DescriptionRU, s.DescriptionEN, l))
	return locale.Truncate(text, ServiceSummaryLength)
}

// PopularOnly - faqat popular=true xizmatlar
func PopularOnly(services []Service) []Service {
	popular := make([]Service, 0, len(services))
	for _, s := range services {
		if s.Popular {
			popular = append(popular, s)
		}
	}
	return popular
}

// FindService - uuid bo'yicha xizmat. Bo'sh uuid birinchi xizmatni tanlaydi,
// noma'lum uuid hech narsa tanlamaydi.
func FindService(services []Service, uuid string) *Service {
	if len(services) == 0 {
		return nil
	}
	if uuid == "" {
		return &services[0]
	}
	for i := range services {
		if services[i].UUID == uuid {
			return &services[i]
		}
	}
	return nil
}

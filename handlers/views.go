package handlers

import (
	"urmonov-web/models"
	"urmonov-web/pkg/locale"
)

// BioSection - biografiya bo'limi (bosh sahifa va "Biz haqimizda")
type BioSection struct {
	Locale    locale.Locale
	Biography *models.Biography
	About     *models.AboutUs
}

// ServiceCard - xizmat kartochkasi
type ServiceCard struct {
	Locale  locale.Locale
	Service *models.Service
}

// PostCard - blog yoki yangilik kartochkasi
type PostCard struct {
	Locale locale.Locale
	Href   string
	Post   *models.Post
}

func viewFuncs() map[string]any {
	return map[string]any{
		"bio": func(l locale.Locale, b *models.Biography, a *models.AboutUs) BioSection {
			return BioSection{Locale: l, Biography: b, About: a}
		},
		"serviceCard": func(l locale.Locale, s *models.Service) ServiceCard {
			return ServiceCard{Locale: l, Service: s}
		},
		"postCard": func(l locale.Locale, href string, p *models.Post) PostCard {
			return PostCard{Locale: l, Href: href, Post: p}
		},
	}
}

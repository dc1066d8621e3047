package models

import (
	"net/url"

	"urmonov-web/pkg/locale"
)

// Review - bemor fikri (/reviews/)
type Review struct {
	UUID          string `json:"uuid"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	DescriptionUZ string `json:"description_uz"`
	DescriptionRU string `json:"description_ru"`
	DescriptionEN string `json:"description_en"`
}

// GetDescription - tanlangan tildagi fikr matni
func (r *Review) GetDescription(l locale.Locale) string {
	return locale.Pick(r.DescriptionUZ, r.DescriptionRU, r.DescriptionEN, l)
}

// FAQ - ko'p beriladigan savol (/faqs/)
type FAQ struct {
	UUID       string `json:"uuid"`
	Confirmed  bool   `json:"confirmed"`
	QuestionUZ string `json:"question_uz"`
	QuestionRU string `json:"question_ru"`
	QuestionEN string `json:"question_en"`
	AnswerUZ   string `json:"answer_uz"`
	AnswerRU   string `json:"answer_ru"`
	AnswerEN   string `json:"answer_en"`
}

// GetQuestion - tanlangan tildagi savol
func (f *FAQ) GetQuestion(l locale.Locale) string {
	return locale.Pick(f.QuestionUZ, f.QuestionRU, f.QuestionEN, l)
}

// GetAnswer - tanlangan tildagi javob
func (f *FAQ) GetAnswer(l locale.Locale) string {
	return locale.Pick(f.AnswerUZ, f.AnswerRU, f.AnswerEN, l)
}

// Statistic - raqamlardagi ko'rsatkich (/statistics/)
type Statistic struct {
	UUID    string `json:"uuid"`
	Value   string `json:"value"`
	TitleUZ string `json:"title_uz"`
	TitleRU string `json:"title_ru"`
	TitleEN string `json:"title_en"`
}

// GetTitle - tanlangan tildagi nom
func (s *Statistic) GetTitle(l locale.Locale) string {
	return locale.Pick(s.TitleUZ, s.TitleRU, s.TitleEN, l)
}

// NavItem - navigatsiya sarlavhasi (/nav-title/)
type NavItem struct {
	UUID    string `json:"uuid"`
	Type    string `json:"type"`
	TitleUZ string `json:"title_uz"`
	TitleRU string `json:"title_ru"`
	TitleEN string `json:"title_en"`
}

// GetTitle - tanlangan tildagi sarlavha
func (n *NavItem) GetTitle(l locale.Locale) string {
	return locale.Pick(n.TitleUZ, n.TitleRU, n.TitleEN, l)
}

// Navbar dagi sarlavha uzunligi
const NavTitleLength = 12

// GetShortTitle - navbar uchun qisqartirilgan sarlavha
func (n *NavItem) GetShortTitle(l locale.Locale) string {
	return locale.Prefix(n.GetTitle(l), NavTitleLength)
}

// Href - nav elementi havolasi: news va blog bitta yozuvga, qolganlari
// /<type> sahifasiga olib boradi
func (n *NavItem) Href() string {
	switch n.Type {
	case "news":
		return "/new/" + url.PathEscape(n.UUID)
	case "blog":
		return "/blog/" + url.PathEscape(n.UUID)
	default:
		return "/" + n.Type
	}
}

// NavTitle - berilgan turdagi nav sarlavhasi
func NavTitle(items []NavItem, kind string, l locale.Locale) string {
	for i := range items {
		if items[i].Type == kind {
			return items[i].GetTitle(l)
		}
	}
	return ""
}

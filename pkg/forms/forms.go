// Package forms holds the visitor submission forms (contact, FAQ question
// and patient review) and the submit flow shared by all three.
package forms

import (
	"context"
	"errors"

	"urmonov-web/pkg/content"
	"urmonov-web/pkg/locale"
)

// MaxImageSize - sharh rasmining maksimal hajmi (3MB)
const MaxImageSize = 3 * 1024 * 1024

// Forma kalitlari
const (
	KeyContact  = "contact"
	KeyQuestion = "faq"
	KeyReview   = "review"
)

var errImageTooLarge = errors.New("image exceeds 3MB")

// Poster is the part of the content client the forms need.
type Poster interface {
	PostJSON(ctx context.Context, path string, body any) error
	PostMultipart(ctx context.Context, path string, fields map[string]string, files ...content.File) error
}

// Translator fills the other locales of a visitor's text.
type Translator interface {
	Translate(ctx context.Context, from locale.Locale, text string) (locale.Text, error)
}

// Form is one of the visitor forms.
type Form interface {
	// Key - forma nomi (contact, faq, review)
	Key() string
	// Endpoint - API dagi POST manzili
	Endpoint() string
	// Check runs the required and format rules.
	Check() error
	// Send posts the form; it is only called after Check passed.
	Send(ctx context.Context, p Poster, l locale.Locale, tr Translator) error
	// Reset clears every field.
	Reset()
}

// ContactForm - "Biz bilan bog'laning" formasi, JSON ko'rinishida yuboriladi
type ContactForm struct {
	FullName string `form:"full_name" json:"full_name" validate:"required"`
	Phone    string `form:"phone" json:"phone" validate:"required,phone_uz"`
	Message  string `form:"message" json:"message" validate:"required"`
}

// QuestionForm - FAQ bo'limidagi savol formasi
type QuestionForm struct {
	Question string `form:"question" validate:"required"`
}

// ReviewForm - bemor fikri formasi, rasm bilan
type ReviewForm struct {
	Name        string  `form:"name" validate:"required"`
	Description string  `form:"description" validate:"required"`
	Image       *Upload `form:"image" validate:"required"`
}

// Upload - yuklangan rasm
type Upload struct {
	Filename string
	Data     []byte
}

// Size returns the upload size in bytes.
func (u *Upload) Size() int {
	if u == nil {
		return 0
	}
	return len(u.Data)
}

package forms

import (
	"context"

	"go.uber.org/zap"

	"urmonov-web/pkg/content"
	"urmonov-web/pkg/locale"
	"urmonov-web/pkg/logger"
	"urmonov-web/pkg/validator"
)

func (f *ContactForm) Key() string { return KeyContact }
func (f *ContactForm) Endpoint() string { return content.PathSubmitContact }
func (f *ContactForm) Check() error { return validator.Validate(f) }
func (f *ContactForm) Reset() { *f = ContactForm{} }

// Send posts the form as JSON.
func (f *ContactForm) Send(ctx context.Context, p Poster, _ locale.Locale, _ Translator) error {
	return p.PostJSON(ctx, f.Endpoint(), f)
}

func (f *QuestionForm) Key() string { return KeyQuestion }
func (f *QuestionForm) Endpoint() string { return content.PathSubmitFAQ }
func (f *QuestionForm) Check() error { return validator.Validate(f) }
func (f *QuestionForm) Reset() { *f = QuestionForm{} }

// Send posts question_uz/ru/en as multipart; only the active locale is
// filled unless a translator supplies the others.
func (f *QuestionForm) Send(ctx context.Context, p Poster, l locale.Locale, tr Translator) error {
	q := localized(ctx, tr, l, f.Question)
	return p.PostMultipart(ctx, f.Endpoint(), map[string]string{
		"question_uz": q.UZ,
		"question_ru": q.RU,
		"question_en": q.EN,
	})
}

func (f *ReviewForm) Key() string { return KeyReview }
func (f *ReviewForm) Endpoint() string { return content.PathSubmitReview }
func (f *ReviewForm) Reset() { *f = ReviewForm{} }

// Check requires every field and limits the image to MaxImageSize.
func (f *ReviewForm) Check() error {
	if err := validator.Validate(f); err != nil {
		return err
	}
	if f.Image.Size() == 0 {
		return validator.ValidationErrors{{Field: "image", Rule: "required"}}
	}
	if f.Image.Size() > MaxImageSize {
		return errImageTooLarge
	}
	return nil
}

// Send posts name, image and description_uz/ru/en as multipart.
func (f *ReviewForm) Send(ctx context.Context, p Poster, l locale.Locale, tr Translator) error {
	d := localized(ctx, tr, l, f.Description)
	fields := map[string]string{
		"name":           f.Name,
		"description_uz": d.UZ,
		"description_ru": d.RU,
		"description_en": d.EN,
	}
	return p.PostMultipart(ctx, f.Endpoint(), fields, content.File{
		Field: "image",
		Name:  f.Image.Filename,
		Data:  f.Image.Data,
	})
}

func localized(ctx context.Context, tr Translator, l locale.Locale, text string) locale.Text {
	if tr == nil {
		return locale.Only(l, text)
	}
	t, err := tr.Translate(ctx, l, text)
	if err != nil {
		logger.Warn("Translation failed, sending single locale", zap.String("locale", l.String()), zap.Error(err))
		return locale.Only(l, text)
	}
	t.Set(l, text)
	return t
}

package forms

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"urmonov-web/pkg/locale"
	"urmonov-web/pkg/logger"
	"urmonov-web/pkg/validator"
)

// Submitter validates a form and forwards it to the content API.
type Submitter struct {
	poster     Poster
	translator Translator
}

// NewSubmitter creates a Submitter. tr may be nil.
func NewSubmitter(p Poster, tr Translator) *Submitter {
	return &Submitter{poster: p, translator: tr}
}

// Submit checks f and, only if it passes, posts it. On success the form is
// reset; on any failure the entered values are left untouched so the
// visitor can retry. There is no automatic retry.
func (s *Submitter) Submit(ctx context.Context, f Form, l locale.Locale) State {
	if err := f.Check(); err != nil {
		logger.Debug("Form rejected", zap.String("form", f.Key()), zap.Error(err))
		return failed(Reason(err))
	}

	if err := f.Send(ctx, s.poster, l, s.translator); err != nil {
		logger.Warn("Form submission failed",
			zap.String("form", f.Key()),
			zap.String("endpoint", f.Endpoint()),
			zap.Error(err),
		)
		return failed(ReasonError)
	}

	logger.Info("Form submitted", zap.String("form", f.Key()), zap.String("locale", l.String()))
	f.Reset()
	return succeeded()
}

// Reason maps a check error to the banner text key. Missing fields win over
// a malformed phone.
func Reason(err error) string {
	if errors.Is(err, errImageTooLarge) {
		return ReasonImageSize
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		if verrs.Has("required") {
			return ReasonRequired
		}
		if verrs.Has("phone_uz") {
			return ReasonPhone
		}
	}
	return ReasonRequired
}

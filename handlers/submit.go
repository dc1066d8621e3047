package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"urmonov-web/pkg/apperror"
	"urmonov-web/pkg/forms"
	"urmonov-web/pkg/locale"
	"urmonov-web/pkg/logger"
	"urmonov-web/pkg/notify"
	"urmonov-web/pkg/response"
)

// SubmitContact - POST /contact (navbar va banner dagi forma)
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "", func(r *http.Request) (forms.Form, error) {
		return forms.ContactFromRequest(r)
	})
}

// SubmitQuestion - POST /faq
func (h *Handler) SubmitQuestion(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "faq", func(r *http.Request) (forms.Form, error) {
		return forms.QuestionFromRequest(r)
	})
}

// SubmitReview - POST /review
func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "patients", func(r *http.Request) (forms.Form, error) {
		return forms.ReviewFromRequest(r)
	})
}

// submit runs one form submission: parse, rate limit, validate and post.
// The outcome is shown as a banner; a failed form is kept as a draft so the
// next page view reopens it with the entered values.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, anchor string, parse func(*http.Request) (forms.Form, error)) {
	l := locale.FromContext(r.Context())
	visitor := VisitorID(r)
	log := logger.With(
		zap.String("request_id", RequestID(r.Context())),
		zap.String("path", r.URL.Path),
	)

	form, err := parse(r)
	var state forms.State
	switch {
	case err != nil:
		log.Warn("Form parse failed", zap.Error(err))
		state = forms.State{Kind: forms.Failed, Reason: forms.ReasonError}
	case !h.allow(r):
		log.Info("Form rate limited", zap.String("ip", clientIP(r)))
		state = forms.State{Kind: forms.Failed, Reason: forms.ReasonRateLimited}
	default:
		state = h.submitter.Submit(r.Context(), form, l)
	}

	message := locale.T(l, state.Reason)
	kind := notify.Success
	if state.Kind == forms.Failed {
		kind = notify.Error
		h.drafts.Put(visitor, form, state)
	}
	h.board.Show(visitor, kind, message)

	if wantsJSON(r) {
		writeOutcome(w, r, state, message)
		return
	}

	target := returnPath(r)
	if anchor != "" {
		target += "#" + anchor
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// allow - forma yuborish limiti (mijoz IP bo'yicha). Limiter xatosida
// so'rov o'tkaziladi.
func (h *Handler) allow(r *http.Request) bool {
	if h.limiter == nil {
		return true
	}
	ok, err := h.limiter.Allow(r.Context(), clientIP(r))
	if err != nil {
		logger.Warn("Rate limiter unavailable", zap.Error(err))
		return true
	}
	return ok
}

func writeOutcome(w http.ResponseWriter, r *http.Request, state forms.State, message string) {
	if state.Kind == forms.Succeeded {
		response.JSON(w, http.StatusOK, response.Response{Success: true, Message: message})
		return
	}

	var err error
	switch state.Reason {
	case forms.ReasonRateLimited:
		err = apperror.NewRateLimitError(message)
	case forms.ReasonError:
		err = apperror.NewUpstreamError(message, nil)
	default:
		err = apperror.NewValidationError(message)
	}
	response.Error(w, r, err)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// returnPath - forma yuborilgan sahifa yo'li. Faqat shu saytdagi yo'l qabul
// qilinadi.
func returnPath(r *http.Request) string {
	if p := r.PostFormValue("return"); isLocalPath(p) {
		return p
	}
	if ref := r.Referer(); ref != "" {
		if u, err := url.Parse(ref); err == nil && u.Host == r.Host && isLocalPath(u.Path) {
			if u.RawQuery != "" {
				return u.Path + "?" + u.RawQuery
			}
			return u.Path
		}
	}
	return "/"
}

func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}

package forms

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Multipart so'rov uchun xotira chegarasi
const maxMemory = 8 << 20

// ContactFromRequest reads a ContactForm from a posted form. The form is
// never nil: on a parse error it holds whatever fields were decoded.
func ContactFromRequest(r *http.Request) (*ContactForm, error) {
	err := parse(r)
	return &ContactForm{
		FullName: strings.TrimSpace(r.PostFormValue("full_name")),
		Phone:    strings.TrimSpace(r.PostFormValue("phone")),
		Message:  strings.TrimSpace(r.PostFormValue("message")),
	}, err
}

// QuestionFromRequest reads a QuestionForm from a posted form.
func QuestionFromRequest(r *http.Request) (*QuestionForm, error) {
	err := parse(r)
	return &QuestionForm{Question: strings.TrimSpace(r.PostFormValue("question"))}, err
}

// ReviewFromRequest reads a ReviewForm, including the optional image part.
// An image over MaxImageSize is kept truncated at MaxImageSize+1 bytes so
// Check rejects it without buffering the whole upload. Like the other
// readers it returns the partial form together with any error.
func ReviewFromRequest(r *http.Request) (*ReviewForm, error) {
	err := parse(r)
	f := &ReviewForm{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}
	if err != nil {
		return f, err
	}

	file, hdr, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return f, nil
	case err != nil:
		return f, fmt.Errorf("read image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return f, fmt.Errorf("read image: %w", err)
	}
	if len(data) > 0 {
		f.Image = &Upload{Filename: hdr.Filename, Data: data}
	}
	return f, nil
}

func parse(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return fmt.Errorf("parse multipart: %w", err)
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}
	return nil
}

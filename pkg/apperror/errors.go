package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError - ilova xatosi
type AppError struct {
	Code       string `json:"code"`    // Mijoz uchun xato kodi
	Message    string `json:"message"` // Foydalanuvchiga ko'rsatiladigan matn
	HTTPStatus int    `json:"-"`
	Internal   error  `json:"-"` // Ichki xato (mijozga ko'rsatilmaydi)
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// NewNotFoundError - resurs topilmadi
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    message,
		HTTPStatus: http.StatusNotFound,
	}
}

// NewValidationError - kiritilgan ma'lumotlar xatosi
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewUpstreamError - kontent API xatosi
func NewUpstreamError(message string, internal error) *AppError {
	return &AppError{
		Code:       "UPSTREAM_ERROR",
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
		Internal:   internal,
	}
}

// NewRateLimitError - so'rovlar limiti oshdi
func NewRateLimitError(message string) *AppError {
	return &AppError{
		Code:       "RATE_LIMIT_EXCEEDED",
		Message:    message,
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// NewInternalError - server ichki xatosi
func NewInternalError(message string, internal error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Internal:   internal,
	}
}

// FromError - errorni AppError ga aylantiradi
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError("Internal server error", err)
}

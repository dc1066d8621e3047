package response

import (
	"encoding/json"
	"net/http"

	"urmonov-web/pkg/apperror"
	"urmonov-web/pkg/logger"

	"go.uber.org/zap"
)

// Response - standart JSON javob formati
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo - mijoz uchun xato ma'lumoti
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON - istalgan statusli JSON javob
func JSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Success - muvaffaqiyatli javob (200)
func Success(w http.ResponseWriter, data interface{}, message string) {
	JSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error - xato javobi
func Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.FromError(err)

	if appErr.Internal != nil {
		logger.Error("Request error",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.String("error_code", appErr.Code),
			zap.Error(appErr.Internal),
			zap.String("remote_addr", r.RemoteAddr),
		)
	} else {
		logger.Warn("Client error",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.String("error_code", appErr.Code),
			zap.String("message", appErr.Message),
		)
	}

	JSON(w, appErr.HTTPStatus, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    appErr.Code,
			Message: appErr.Message,
		},
	})
}

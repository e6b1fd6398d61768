package middleware

import (
	"errors"
	"log"

	"careerease/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware renders every returned error as an envelope. Panics become 500.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("[HTTP] panic recovered: rid=%s path=%s err=%v", requestID(c), c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= 500 {
			m.logger.Printf("[HTTP] request failed: rid=%s method=%s path=%s status=%d err=%v", requestID(c), c.Method(), c.Path(), status, err)
		}
		return response.Error(c, status, msg, data)
	}
}

func normalizeError(err error) (int, string, interface{}) {
	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		if appErr.StatusCode >= 500 || appErr.StatusCode <= 0 {
			return serverError(appErr.StatusCode)
		}
		return appErr.StatusCode, messageOr(appErr.Message, appErr.StatusCode), appErr.Data
	case errors.As(err, &fiberErr):
		if fiberErr.Code >= 500 || fiberErr.Code <= 0 {
			return serverError(fiberErr.Code)
		}
		return fiberErr.Code, messageOr(fiberErr.Message, fiberErr.Code), nil
	}
	return serverError(fiber.StatusInternalServerError)
}

// serverError hides 5xx detail. 503 keeps its status, the rest become 500.
func serverError(status int) (int, string, interface{}) {
	if status == fiber.StatusServiceUnavailable {
		return status, response.MessageServiceUnavailable, nil
	}
	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}

func messageOr(msg string, status int) string {
	if msg == "" {
		return response.DefaultMessage(status)
	}
	return msg
}

func requestID(c fiber.Ctx) string {
	if rid, ok := c.Locals(requestIDKey).(string); ok {
		return rid
	}
	return "-"
}

package middleware

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

type AccessLogMiddleware struct {
	logger *log.Logger
	skip   map[string]struct{}
}

// NewAccessLogMiddleware logs one line per request except for skipPaths.
func NewAccessLogMiddleware(logger *log.Logger, skipPaths ...string) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return &AccessLogMiddleware{logger: logger, skip: skip}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDHeader, rid)
		c.Locals(requestIDKey, rid)

		err := c.Next()

		if _, ok := m.skip[c.Path()]; ok {
			return err
		}

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			var ae *AppError
			switch {
			case errors.As(err, &ae):
				status = ae.StatusCode
			case errors.As(err, &fe):
				status = fe.Code
			}
		}

		m.logger.Printf(
			"[HTTP] rid=%s ip=%s method=%s path=%s status=%d latency=%s resp_bytes=%d ua=%q",
			rid, c.IP(), c.Method(), c.OriginalURL(), status, time.Since(start), len(c.Response().Body()), c.Get("User-Agent"),
		)
		return err
	}
}

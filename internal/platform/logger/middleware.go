package logger

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestLogger tags each request with an id and logs its outcome.
func RequestLogger(log *Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// header values alias the request buffer
		id := strings.Clone(c.Get(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(requestIDKey, id)
		c.Set(RequestIDHeader, id)

		err := c.Next()

		kv := []interface{}{
			"request_id", id,
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		}
		switch {
		case err != nil:
			log.Error("request failed", append(kv, "error", err)...)
			return err
		case c.Response().StatusCode() >= fiber.StatusInternalServerError:
			log.Warn("request served with server error", kv...)
		default:
			log.Debug("request served", kv...)
		}
		return nil
	}
}

// RequestID returns the id assigned by RequestLogger, or "".
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}

// FromCtx returns log scoped to the current request.
func FromCtx(c *fiber.Ctx, log *Logger) *Logger {
	if id := RequestID(c); id != "" {
		return log.With("request_id", id)
	}
	return log
}

package middleware

import (
	"recipe-service/internal/pkg/logger"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequestID() fiber.Handler
		Recover() fiber.Handler
		AccessLog() fiber.Handler
	}

	middleware struct {
		log *logger.Logger
	}
)

func NewMiddleware(log *logger.Logger) Middleware {
	return &middleware{log: log.With("component", "http")}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, " + RequestIDHeader,
	})
}

func (m *middleware) RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    RequestIDHeader,
		Generator: uuid.NewString,
	})
}

func (m *middleware) Recover() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			m.log.Error("panic while serving request",
				"method", c.Method(),
				"path", c.Path(),
				"request_id", c.GetRespHeader(RequestIDHeader),
				"panic", e,
			)
		},
	})
}

// AccessLog emits one debug line per request through the application logger.
// The plain-text access log is handled by fiber's logger middleware.
func (m *middleware) AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		m.log.Debug("request served",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
			"request_id", c.GetRespHeader(RequestIDHeader),
		)
		return err
	}
}

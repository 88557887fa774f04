package middleware

import (
	"context"
	"log/slog"
	"time"

	"greenscore/config"
	deliverycontext "greenscore/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestObserver receives one observation per completed HTTP request
type RequestObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// LoggerMiddleware controllable logging middleware
type LoggerMiddleware struct {
	logger   *slog.Logger
	observer RequestObserver
	debug    bool
}

// NewLoggerMiddleware creates a new logger middleware. observer may be nil.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, observer RequestObserver) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:   logger,
		observer: observer,
		debug:    config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Render through the HTTP error handler now so the logged status is the one sent.
			c.Error(err)
		}

		if m.observer != nil {
			m.observer.ObserveHTTPRequest(c.Request().Method, routeOf(c), c.Response().Status, time.Since(start))
		}
		if m.debug {
			m.logRequest(c, start, err)
		}

		return nil
	}
}

// routeOf returns the registered route pattern, keeping metric label cardinality bounded.
func routeOf(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}

	return "unmatched"
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", routeOf(c)),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}

package logging

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"
)

// New returns a colored console logger when stderr is a terminal and a JSON
// logger otherwise.
func New(level string) *log.Logger {
	if log.IsTerminal(os.Stderr.Fd()) {
		return &log.Logger{
			Level:  log.ParseLevel(level),
			Caller: 1,
			Writer: &log.ConsoleWriter{
				ColorOutput:    true,
				EndWithMessage: true,
			},
		}
	}
	return NewWriter(level, os.Stderr)
}

// NewWriter returns a JSON logger writing to w.
func NewWriter(level string, w io.Writer) *log.Logger {
	return &log.Logger{
		Level:  log.ParseLevel(level),
		Writer: &log.IOWriter{Writer: w},
	}
}

// Requests logs one line per request once the handler chain is done.
func Requests(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := logger.Info()
		if status >= http.StatusInternalServerError {
			entry = logger.Error()
		} else if status >= http.StatusBadRequest {
			entry = logger.Warn()
		}
		if len(c.Errors) > 0 {
			entry = entry.Str("errors", c.Errors.String())
		}
		entry.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// Recovery turns a handler panic into a logged 500.
func Recovery(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Msg("recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}

package server

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	RequestIDKey contextKey = "requestID"
	LoggerKey    contextKey = "logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with an id, taken from the incoming header
// when present, and stores a request-scoped logger in the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(string(RequestIDKey), requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		ctx := context.WithValue(c.Request.Context(), LoggerKey, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetLogger returns the request-scoped logger, or the global one outside
// of RequestID.
func GetLogger(c *gin.Context) zerolog.Logger {
	if logger, ok := c.Request.Context().Value(LoggerKey).(zerolog.Logger); ok {
		return logger
	}
	return log.Logger
}

// untracked paths are served without an access log line.
var untracked = []string{"/static/", "/favicon", "/healthz"}

// AccessLog writes one line per page or API request. Client addresses are
// logged only as a salted hash, and not at all when the client sends DNT.
func AccessLog(salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		for _, prefix := range untracked {
			if strings.HasPrefix(path, prefix) {
				return
			}
		}

		logger := GetLogger(c)
		ev := logger.Info()
		if c.Writer.Status() >= 500 {
			ev = logger.Error()
		}
		if c.GetHeader("DNT") != "1" {
			ev = ev.Str("visitor", hashIP(c.ClientIP(), salt))
		}
		ev.Str("method", c.Request.Method).
			Str("path", path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	}
}

// hashIP is stable for a given salt, so repeat visits correlate within a
// process without the address being stored.
func hashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// NewSalt returns a random hex salt for hashIP.
func NewSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

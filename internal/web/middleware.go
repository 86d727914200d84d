package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// privacy hashes client addresses before they reach the logs. The salt lives
// only in memory, so hashes are stable for one process lifetime.
type privacy struct {
	salt string
}

func newPrivacy() (*privacy, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return &privacy{salt: hex.EncodeToString(b)}, nil
}

func (p *privacy) hashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + p.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// client returns the hashed address of the caller, or false when the browser
// asked not to be tracked.
func (p *privacy) client(c *gin.Context) (string, bool) {
	if c.GetHeader("DNT") == "1" {
		return "", false
	}
	return p.hashIP(c.ClientIP()), true
}

func skipLogging(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/favicon") ||
		path == "/healthz"
}

// requestLogger logs one line per request. Static files are skipped and the
// client is left out entirely when the browser sends DNT: 1.
func requestLogger(log *zap.Logger, p *privacy) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipLogging(path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if c.GetHeader("HX-Request") == "true" {
			fields = append(fields, zap.Bool("htmx", true))
		}
		if client, ok := p.client(c); ok {
			fields = append(fields,
				zap.String("client", client),
				zap.String("user_agent", c.GetHeader("User-Agent")),
			)
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

func recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, err any) {
		log.Error("panic serving request",
			zap.String("path", c.Request.URL.Path),
			zap.Any("error", err),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}

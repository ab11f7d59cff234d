package middleware

import (
	"bytes"
	"log/slog"
	"net/http"

	"experience-booking/internal/infra/cache"

	"github.com/gin-gonic/gin"
)

const (
	CacheStatusHeader = "X-Cache"
	cacheHit          = "HIT"
	cacheMiss         = "MISS"
)

// captureWriter tees the response body so it can be cached after the handler runs.
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache serves successful GET responses of group from store.
// Cache failures never fail the request; they only bypass the cache.
func ResponseCache(store cache.Store, group string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key, err := store.Key(ctx, group, c.Request.URL.RequestURI())
		if err != nil {
			logger.Warn("Cache key lookup failed", "group", group, "error", err)
			c.Next()
			return
		}
		if key == "" {
			c.Next()
			return
		}

		entry, err := store.Get(ctx, key)
		if err != nil {
			logger.Warn("Cache read failed", "group", group, "error", err)
		}
		if entry != nil {
			for k, vals := range entry.Header {
				if http.CanonicalHeaderKey(k) == "Content-Length" {
					continue
				}
				for _, v := range vals {
					c.Writer.Header().Add(k, v)
				}
			}
			c.Header(CacheStatusHeader, cacheHit)
			c.Status(entry.Status)
			_, _ = c.Writer.Write(entry.Body)
			c.Abort()
			return
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Header(CacheStatusHeader, cacheMiss)

		c.Next()

		if cw.Status() != http.StatusOK || len(c.Errors) > 0 {
			return
		}
		header := make(http.Header)
		if ct := cw.Header().Get("Content-Type"); ct != "" {
			header.Set("Content-Type", ct)
		}
		e := &cache.Entry{Status: cw.Status(), Header: header, Body: bytes.Clone(cw.buf.Bytes())}
		if err := store.Set(ctx, key, e); err != nil {
			logger.Warn("Cache write failed", "group", group, "error", err)
		}
	}
}

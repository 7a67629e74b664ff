// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware holds the HTTP chain shared by the public and admin APIs.

Order matters. The server mounts, outermost first:

  - RequestID: correlation id in the context and the X-Request-ID header.
  - StructuredLogger: per-request slog logger and the http_request_finished event.
  - RateLimit: token bucket per client IP.
  - PanicRecovery: turns a panic into a 500 envelope.
  - CORS: the configured origin allow-list.

[Authenticate] is mounted on the admin group only.
*/
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/constants"
	"github.com/taibuivan/legaldesign/internal/platform/ctxutil"
	"github.com/taibuivan/legaldesign/internal/platform/respond"
	"github.com/taibuivan/legaldesign/pkg/uuid"
)

// # Request Tracing

// RequestID keeps a client supplied X-Request-ID or issues a UUIDv7.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := strings.TrimSpace(request.Header.Get(constants.HeaderXRequestID))
			if requestID == "" {
				requestID = uuid.New()
			}

			writer.Header().Set(constants.HeaderXRequestID, requestID)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithRequestID(request.Context(), requestID)))
		})
	}
}

// # Activity Logging

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// levelFor maps a response status to the log level of its request line.
func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// StructuredLogger injects a request-scoped logger and logs one line per
// request once the handler returns.
func StructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			started := time.Now()

			requestLogger := logger.With(
				slog.String("request_id", ctxutil.GetRequestID(request.Context())),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", RealIP(request)),
			)

			recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
			request = request.WithContext(ctxutil.WithLogger(request.Context(), requestLogger))

			next.ServeHTTP(recorder, request)

			attributes := []any{
				slog.Int("status", recorder.status),
				slog.Int64("latency_ms", time.Since(started).Milliseconds()),
				slog.String("user_agent", request.UserAgent()),
			}

			requestLogger.Log(request.Context(), levelFor(recorder.status), "http_request_finished", attributes...)
		})
	}
}

// # Rate Limiting

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter holds one token bucket per client IP. Idle buckets are evicted
// by a sweeper that stops with the context given to [NewRateLimiter].
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int

	// retryAfter is the time for one token to refill, in whole seconds.
	retryAfter int
}

// NewRateLimiter builds a limiter allowing rps requests per second per IP
// with the given burst.
func NewRateLimiter(ctx context.Context, rps float64, burst int) *RateLimiter {
	limiter := &RateLimiter{
		visitors:   make(map[string]*visitor),
		limit:      rate.Limit(rps),
		burst:      burst,
		retryAfter: max(1, int(math.Ceil(1/rps))),
	}
	go limiter.sweep(ctx)
	return limiter
}

// RateLimit applies the default per-IP limits from constants.
func RateLimit(ctx context.Context) func(http.Handler) http.Handler {
	return NewRateLimiter(ctx, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst).Handler
}

// Handler rejects requests over the limit with 429 and a Retry-After header.
func (limiter *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !limiter.allow(RealIP(request)) {
			writer.Header().Set("Retry-After", strconv.Itoa(limiter.retryAfter))
			respond.Error(writer, request, apperr.RateLimited(limiter.retryAfter))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

func (limiter *RateLimiter) allow(ip string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	entry, found := limiter.visitors[ip]
	if !found {
		entry = &visitor{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.visitors[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

func (limiter *RateLimiter) sweep(ctx context.Context) {
	ticker := time.NewTicker(constants.RateLimitCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.mu.Lock()
			for ip, entry := range limiter.visitors {
				if time.Since(entry.lastSeen) > constants.RateLimitClientTTL {
					delete(limiter.visitors, ip)
				}
			}
			limiter.mu.Unlock()
		}
	}
}

// # Reliability & Safety

// PanicRecovery logs the panic with its stack and answers with the generic
// 500 envelope.
func PanicRecovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 2048)
				stack = stack[:runtime.Stack(stack, false)]

				logger.ErrorContext(request.Context(), "panic_recovered",
					slog.String("request_id", ctxutil.GetRequestID(request.Context())),
					slog.Any("error", recovered),
					slog.String("stack", string(stack)),
				)

				respond.Error(writer, request, apperr.Internal(fmt.Errorf("panic: %v", recovered)))
			}()

			next.ServeHTTP(writer, request)
		})
	}
}

// # Cross-Origin Resource Sharing

// OriginPolicy supplies the CORS allow-list. A "*" entry allows any origin.
type OriginPolicy interface {
	AllowedOrigins() []string
}

type originSet struct {
	wildcard bool
	listed   map[string]struct{}
}

func newOriginSet(origins []string) originSet {
	set := originSet{listed: make(map[string]struct{}, len(origins))}
	for _, origin := range origins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "*" {
			set.wildcard = true
			continue
		}
		set.listed[origin] = struct{}{}
	}
	return set
}

func (set originSet) allows(origin string) bool {
	if set.wildcard {
		return true
	}
	_, ok := set.listed[origin]
	return ok
}

// CORS answers cross-origin requests from the configured allow-list. The
// matching origin is echoed back so credentials keep working with "*".
// Preflight requests end here with 204.
func CORS(policy OriginPolicy) func(http.Handler) http.Handler {
	origins := newOriginSet(policy.AllowedOrigins())

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			if origins.allows(origin) {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Add("Vary", constants.HeaderOrigin)
				header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization, X-Request-ID")
				header.Set("Access-Control-Expose-Headers", "X-Request-ID, Retry-After")
				header.Set("Access-Control-Allow-Credentials", "true")
				header.Set("Access-Control-Max-Age", "300")
			}

			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// # Helpers

// RealIP returns the client address, preferring X-Real-IP, then the first
// X-Forwarded-For hop, then the connection address.
func RealIP(request *http.Request) string {
	if ip := request.Header.Get(constants.HeaderXRealIP); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}

package httpadapter

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"dha-marketplace/internal/config/configs"
)

// ClientLimiter throttles callers by address, one token bucket each.
// Buckets unused for longer than the configured idle period are swept, at
// most once per period.
type ClientLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type bucket struct {
	limiter *rate.Limiter
	seen    time.Time
}

// NewClientLimiter returns a limiter for cfg, or nil when cfg.RPS is not
// positive.
func NewClientLimiter(cfg configs.RateLimit) *ClientLimiter {
	if cfg.RPS <= 0 {
		return nil
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(cfg.RPS),
		burst:   burst,
		idle:    cfg.TTL,
		now:     time.Now,
	}
}

// Allow takes one token from addr's bucket.
func (l *ClientLimiter) Allow(addr string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.idle {
		for k, b := range l.buckets {
			if now.Sub(b.seen) > l.idle {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[addr]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[addr] = b
	}
	b.seen = now
	return b.limiter.AllowN(now, 1)
}

// Tracked reports how many client buckets are held.
func (l *ClientLimiter) Tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// logRequests writes one line per completed request.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.logger.Info("request completed",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// throttle answers 429 once a client address runs out of tokens. RealIP
// must run first so the address is the caller's.
func (h *Handler) throttle(next http.Handler) http.Handler {
	retryAfter := "1"
	if lim := h.opts.RateLimit.limit; lim > 0 && lim < 1 {
		retryAfter = strconv.Itoa(int(time.Duration(float64(time.Second)/float64(lim)).Seconds()))
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr := remoteHost(r)
		if !h.opts.RateLimit.Allow(addr) {
			h.logger.Warn("rate limited", slog.String("client_ip", addr), slog.String("path", r.URL.Path))
			w.Header().Set("Retry-After", retryAfter)
			h.writeMessage(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAuthorization rejects requests without an Authorization header.
// The header is forwarded to the backend, which owns token validation.
func requireAuthorization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			respondMessage(w, http.StatusUnauthorized, msgAuthRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin lets through only customers whose profile carries a
// non-zero role.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := h.svc.Backend.Profile(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			h.writeError(w, r, err, "Failed to verify admin access")
			return
		}
		if !p.IsAdmin() {
			h.writeMessage(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

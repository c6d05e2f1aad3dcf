package server

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/kanruethaiii/backend-cat/custom/util"
	"github.com/romana/rlog"
	"golang.org/x/time/rate"
	"net"
	"net/http"
	"sync"
	"time"
)

const REQUEST_ID_HEADER = "X-Request-Id"

// recoverPanic turns a handler panic into a 500 and closes the connection.
func recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				rlog.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, err)
				util.WriteError(w, http.StatusInternalServerError, fmt.Sprintf("%v", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimit keeps one token bucket per client IP. Idle clients are dropped after 3 minutes
// until ctx is done.
func rateLimit(ctx context.Context, config util.RateLimitConfig, next http.Handler) http.Handler {
	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			mu.Lock()
			for ip, c := range clients {
				if time.Since(c.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		mu.Lock()
		if _, found := clients[ip]; !found {
			clients[ip] = &client{limiter: rate.NewLimiter(rate.Limit(config.Rps), config.Burst)}
		}
		clients[ip].lastSeen = time.Now()
		if !clients[ip].limiter.Allow() {
			mu.Unlock()
			util.WriteError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// logRequest tags each request with an id and logs it once served.
func logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(REQUEST_ID_HEADER, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		rlog.Infof("[%s] %s %s %d %s", requestID, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

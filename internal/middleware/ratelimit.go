// Package middleware throttles credential endpoints with per-key token
// buckets, over both HTTP and gRPC.
package middleware

import (
	"context"
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/PaulBabatuyi/portfolio/internal/ratelimit"
)

// IdleTTL is how long an untouched bucket survives cleanup.
const IdleTTL = 10 * time.Minute

// LimiterStore maintains per-key rate limiters and performs periodic cleanup.
type LimiterStore struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	clients  map[string]*clientEntry
	clock    clock.Clock
	logger   lager.Logger
	stopOnce sync.Once
	stopCh   chan struct{}
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiterStore creates a store allowing limitPerMinute events per key
// with the given burst, and starts the cleanup loop.
func NewLimiterStore(limitPerMinute, burst int, cleanupInterval time.Duration, clk clock.Clock, logger lager.Logger) *LimiterStore {
	if limitPerMinute <= 0 {
		limitPerMinute = 60
	}
	if burst <= 0 {
		burst = 1
	}
	s := &LimiterStore{
		limit:   rate.Every(time.Minute / time.Duration(limitPerMinute)),
		burst:   burst,
		clients: map[string]*clientEntry{},
		clock:   clk,
		logger:  logger.Session("login-throttle"),
		stopCh:  make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go s.cleanupLoop(cleanupInterval)
	}
	return s
}

func (s *LimiterStore) cleanupLoop(interval time.Duration) {
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C():
			if n := s.cleanup(); n > 0 {
				s.logger.Debug("cleanup", lager.Data{"removed": n})
			}
		case <-s.stopCh:
			return
		}
	}
}

func (s *LimiterStore) cleanup() int {
	cutoff := s.clock.Now().Add(-IdleTTL)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for k, v := range s.clients {
		if v.lastSeen.Before(cutoff) {
			delete(s.clients, k)
			removed++
		}
	}
	return removed
}

// Stop ends the cleanup loop. Safe to call more than once.
func (s *LimiterStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *LimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Allow reports whether an event for key is permitted now. When it is not,
// the returned duration is how long until a token is available.
func (s *LimiterStore) Allow(key string) (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	e, ok := s.clients[key]
	if !ok {
		e = &clientEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[key] = e
	}
	e.lastSeen = now

	r := e.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Minute
	}
	if d := r.DelayFrom(now); d > 0 {
		r.CancelAt(now)
		return false, d
	}
	return true, 0
}

// RateLimitHTTP throttles requests per client address.
func RateLimitHTTP(store *LimiterStore, endpoint string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := ratelimit.ClientIdentifier(r)
			if client == ratelimit.UnknownClient {
				if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
					client = host
				}
			}
			ok, wait := store.Allow(ratelimit.Key(endpoint, client))
			if !ok {
				store.logger.Info("throttled", lager.Data{"endpoint": endpoint, "client": client})
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(wait)))
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "too many attempts, try again later"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitUnaryInterceptor applies the store to the supplied methods. Calls
// carrying an email are keyed by it to protect the account, others by peer
// address.
func RateLimitUnaryInterceptor(store *LimiterStore, limitedMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if !limitedMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		key := ratelimit.UnknownClient
		if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
			key = p.Addr.String()
			if host, _, err := net.SplitHostPort(key); err == nil {
				key = host
			}
		}

		type emailGetter interface{ GetEmail() string }
		if eg, ok := req.(emailGetter); ok {
			if e := eg.GetEmail(); e != "" {
				key = "email:" + e
			}
		}

		if ok, wait := store.Allow(ratelimit.Key(info.FullMethod, key)); !ok {
			store.logger.Info("throttled", lager.Data{"method": info.FullMethod, "key": key})
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded, retry in %ds", retryAfterSeconds(wait))
		}

		return handler(ctx, req)
	}
}

func retryAfterSeconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}

package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/denmor86/ya-wallet/internal/helpers"
	"golang.org/x/time/rate"
)

const (
	// лимит запросов в секунду с одного адреса
	RequestsPerSecond = 5
	Burst             = 10
	// адрес без запросов дольше этого времени забывается
	VisitorTTL = 3 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter - ограничитель частоты запросов по адресу клиента
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{visitors: make(map[string]*visitor)}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) getLimiter(addr string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[addr]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(RequestsPerSecond, Burst)}
		rl.visitors[addr] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		for addr, v := range rl.visitors {
			if time.Since(v.lastSeen) > VisitorTTL {
				delete(rl.visitors, addr)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimitHandle — ограничение частоты запросов к ручкам аутентификации
func (rl *RateLimiter) RateLimitHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			addr = r.RemoteAddr
		}

		if !rl.getLimiter(addr).Allow() {
			helpers.WriteMessage(w, http.StatusTooManyRequests, "Too many requests")
			return
		}

		h.ServeHTTP(w, r)
	})
}

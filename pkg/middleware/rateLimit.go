package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type ipLimiters struct {
	ips   map[string]*ipLimiter
	lock  sync.Mutex
	limit rate.Limit
	burst int
}

type ipLimiter struct {
	limiter *rate.Limiter
	updated time.Time
}

func (l *ipLimiters) GetLimiter(ip string) *rate.Limiter {

	l.lock.Lock()
	defer l.lock.Unlock()

	limiter, exists := l.ips[ip]

	if !exists {

		limiter = &ipLimiter{
			limiter: rate.NewLimiter(l.limit, l.burst),
		}

		l.ips[ip] = limiter
	}

	// Touch IP
	limiter.updated = time.Now()

	return limiter.limiter
}

func (l *ipLimiters) clean() {
	for {
		cutoff := time.Now().Add(time.Hour * -1)

		l.lock.Lock()
		for k, v := range l.ips {
			if v.updated.Before(cutoff) {
				delete(l.ips, k)
			}
		}
		l.lock.Unlock()

		time.Sleep(time.Minute)
	}
}

func NewLimiters(per time.Duration, burst int) *ipLimiters {

	if burst < 1 {
		burst = 1
	}

	l := &ipLimiters{
		ips:   map[string]*ipLimiter{},
		lock:  sync.Mutex{},
		limit: rate.Every(per),
		burst: burst,
	}

	go l.clean()

	return l
}

func RateLimiterBlock(limiters *ipLimiters, handler http.HandlerFunc) func(http.Handler) http.Handler {

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			if !limiters.GetLimiter(r.RemoteAddr).Allow() {
				handler(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

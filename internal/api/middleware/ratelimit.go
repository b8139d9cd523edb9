package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// staleAfter is how long an idle client's limiter survives before cleanup.
const staleAfter = 5 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiters hands out one token bucket per client IP and evicts buckets for
// clients that have gone quiet.
type ipLimiters struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
}

func newIPLimiters(r rate.Limit, burst int) *ipLimiters {
	l := &ipLimiters{
		limiters: make(map[string]*clientLimiter),
		rate:     r,
		burst:    burst,
	}
	go l.evictStale()
	return l
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.limiters[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[ip] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter
}

func (l *ipLimiters) evictStale() {
	ticker := time.NewTicker(staleAfter)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		for ip, cl := range l.limiters {
			if time.Since(cl.lastSeen) > staleAfter {
				delete(l.limiters, ip)
			}
		}
		l.mu.Unlock()
	}
}

// PerIP rate limits requests by client IP.
func PerIP(requestsPerSecond float64, burst int) gin.HandlerFunc {
	limiters := newIPLimiters(rate.Limit(requestsPerSecond), burst)

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// MessageLimiter bounds the message rate of a single long-lived connection,
// used by the WebSocket chat transport.
type MessageLimiter struct {
	limiter *rate.Limiter
}

// NewMessageLimiter allows messagesPerMinute sustained with the same burst.
func NewMessageLimiter(messagesPerMinute int) *MessageLimiter {
	return &MessageLimiter{
		limiter: rate.NewLimiter(rate.Limit(messagesPerMinute)/60.0, messagesPerMinute),
	}
}

// Allow reports whether another message may be processed now.
func (m *MessageLimiter) Allow() bool {
	return m.limiter.Allow()
}

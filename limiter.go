package jsonblog

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// SearchLimiter rate-limits search requests per client IP. The search box
// sends one request per keystroke, so the limit is per second with a burst
// that covers fast typing.
type SearchLimiter struct {
	mu      sync.Mutex
	clients map[string]*limiterEntry
	rate    rate.Limit
	burst   int
	idle    time.Duration

	stop      chan struct{}
	closeOnce sync.Once
}

type limiterEntry struct {
	limiter *rate.Limiter
	seen    time.Time
}

// NewSearchLimiter creates a SearchLimiter allowing perSecond requests with
// the given burst. Clients idle longer than idle are forgotten.
func NewSearchLimiter(perSecond float64, burst int, idle time.Duration) *SearchLimiter {
	l := &SearchLimiter{
		clients: make(map[string]*limiterEntry),
		rate:    rate.Limit(perSecond),
		burst:   burst,
		idle:    idle,
		stop:    make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *SearchLimiter) cleanup() {
	ticker := time.NewTicker(l.idle)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			l.sweep(now)
		}
	}
}

// Close stops the idle sweep. It is safe to call more than once.
func (l *SearchLimiter) Close() {
	l.closeOnce.Do(func() { close(l.stop) })
}

func (l *SearchLimiter) sweep(now time.Time) {
	cutoff := now.Add(-l.idle)
	l.mu.Lock()
	for ip, e := range l.clients {
		if e.seen.Before(cutoff) {
			delete(l.clients, ip)
		}
	}
	l.mu.Unlock()
}

// Allow reports whether ip may search now and consumes a token if so.
func (l *SearchLimiter) Allow(ip string) bool {
	now := time.Now()
	l.mu.Lock()
	e, ok := l.clients[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[ip] = e
	}
	e.seen = now
	l.mu.Unlock()
	return e.limiter.AllowN(now, 1)
}

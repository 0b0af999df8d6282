package jsonblog

import (
	"testing"
	"time"
)

func TestSearchLimiterBlocksAfterBurst(t *testing.T) {
	limiter := NewSearchLimiter(0.001, 2, time.Minute)
	ip := "203.0.113.10"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first request to be allowed")
	}
	if !limiter.Allow(ip) {
		t.Fatalf("expected second request to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected third request to be blocked")
	}
}

func TestSearchLimiterRefills(t *testing.T) {
	limiter := NewSearchLimiter(10, 1, time.Minute)
	ip := "203.0.113.20"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first request to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected second request to be blocked")
	}

	time.Sleep(200 * time.Millisecond)
	if !limiter.Allow(ip) {
		t.Fatalf("expected request after refill to be allowed")
	}
}

func TestSearchLimiterIsPerIP(t *testing.T) {
	limiter := NewSearchLimiter(0.001, 1, time.Minute)

	if !limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be allowed")
	}
	if !limiter.Allow("203.0.113.31") {
		t.Fatalf("expected second ip to be allowed independently")
	}
	if limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be blocked after burst")
	}
}

func TestSearchLimiterSweep(t *testing.T) {
	limiter := NewSearchLimiter(1, 1, time.Minute)
	limiter.Allow("203.0.113.40")
	limiter.sweep(time.Now().Add(2 * time.Minute))

	limiter.mu.Lock()
	n := len(limiter.clients)
	limiter.mu.Unlock()
	if n != 0 {
		t.Errorf("%d clients left after sweep, want 0", n)
	}
}

func TestSearchLimiterClose(t *testing.T) {
	limiter := NewSearchLimiter(1, 1, time.Millisecond)
	limiter.Close()
	limiter.Close()

	select {
	case <-limiter.stop:
	default:
		t.Fatal("expected stop channel to be closed")
	}
	if !limiter.Allow("203.0.113.50") {
		t.Error("expected Allow to keep working after Close")
	}
}

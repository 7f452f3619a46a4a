package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// TestNewRateLimiter tests rate limiter creation.
func TestNewRateLimiter(t *testing.T) {
	logger := zerolog.Nop()
	rl := NewRateLimiter(120, 0, &logger)

	if rl.visitors == nil {
		t.Error("visitors map not initialized")
	}
	if rl.limit != rate.Limit(2) {
		t.Errorf("expected 2 tokens/s, got %v", rl.limit)
	}
	if rl.burst != 1 {
		t.Errorf("expected burst to be raised to 1, got %d", rl.burst)
	}
}

// TestRateLimiter_Allow tests basic rate limiting logic.
func TestRateLimiter_Allow(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name          string
		burst         int
		requests      int
		expectedAllow int
	}{
		{"within burst", 10, 5, 5},
		{"at burst", 10, 10, 10},
		{"exceeds burst", 10, 15, 10},
		{"burst of one", 1, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// One token per minute: nothing refills during the test.
			rl := NewRateLimiter(1, tt.burst, &logger)

			allowed := 0
			for i := 0; i < tt.requests; i++ {
				if rl.allow("192.168.1.1") {
					allowed++
				}
			}
			if allowed != tt.expectedAllow {
				t.Errorf("expected %d allowed, got %d", tt.expectedAllow, allowed)
			}
		})
	}
}

// TestRateLimiter_MultipleIPs tests that clients have separate buckets.
func TestRateLimiter_MultipleIPs(t *testing.T) {
	logger := zerolog.Nop()
	rl := NewRateLimiter(1, 2, &logger)

	for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
		if !rl.allow(ip) || !rl.allow(ip) {
			t.Errorf("expected first two requests from %s to pass", ip)
		}
		if rl.allow(ip) {
			t.Errorf("expected third request from %s to be limited", ip)
		}
	}
	if n := rl.visitorCount(); n != 2 {
		t.Errorf("expected 2 visitors, got %d", n)
	}
}

// TestRateLimiter_ConcurrentRequests tests that the burst is never exceeded.
func TestRateLimiter_ConcurrentRequests(t *testing.T) {
	logger := zerolog.Nop()
	rl := NewRateLimiter(1, 20, &logger)

	var allowed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.allow("192.168.1.1") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != 20 {
		t.Errorf("expected exactly 20 allowed, got %d", got)
	}
}

// TestRateLimiter_Middleware tests the HTTP middleware.
func TestRateLimiter_Middleware(t *testing.T) {
	logger := zerolog.Nop()
	rl := NewRateLimiter(1, 2, &logger)

	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/v1/pokemon", nil)
		req.RemoteAddr = "203.0.113.5:4000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)

		if w.Code == http.StatusTooManyRequests {
			if w.Header().Get("Retry-After") == "" {
				t.Error("expected Retry-After header")
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected JSON error body, got %s", ct)
			}
		}
	}

	expected := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range expected {
		if codes[i] != expected[i] {
			t.Errorf("request %d: expected %d, got %d", i, expected[i], codes[i])
		}
	}

	// Same host, different port: still the same client.
	req := httptest.NewRequest("GET", "/api/v1/pokemon", nil)
	req.RemoteAddr = "203.0.113.5:4001"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected port change to share the bucket, got %d", w.Code)
	}
}

// TestClientIP tests client address extraction.
func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		trusted    []string
		remoteAddr string
		forwarded  string
		expected   string
	}{
		{"remote addr", nil, "192.0.2.1:1234", "", "192.0.2.1"},
		{"no port", nil, "192.0.2.9", "", "192.0.2.9"},
		{"forwarded ignored without trusted proxies", nil, "10.0.0.1:1234", "198.51.100.7", "10.0.0.1"},
		{"forwarded ignored from untrusted peer", []string{"10.0.0.0/8"}, "192.0.2.1:1234", "198.51.100.7", "192.0.2.1"},
		{"forwarded single", []string{"10.0.0.0/8"}, "10.0.0.1:1234", "198.51.100.7", "198.51.100.7"},
		{"spoofed first hop skipped", []string{"10.0.0.0/8"}, "10.0.0.1:1234", "1.2.3.4, 198.51.100.7", "198.51.100.7"},
		{"trusted hops skipped", []string{"10.0.0.0/8"}, "10.0.0.1:1234", "198.51.100.7, 10.0.0.2", "198.51.100.7"},
		{"single address entry", []string{"10.0.0.1"}, "10.0.0.1:1234", "198.51.100.7", "198.51.100.7"},
		{"all hops trusted", []string{"10.0.0.0/8"}, "10.0.0.1:1234", "10.0.0.3, 10.0.0.2", "10.0.0.3"},
		{"trusted peer without header", []string{"10.0.0.0/8"}, "10.0.0.1:1234", "", "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zerolog.Nop()
			rl := NewRateLimiter(60, 1, &logger)
			if err := rl.TrustProxies(tt.trusted); err != nil {
				t.Fatalf("TrustProxies: %v", err)
			}

			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := rl.clientIP(req); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

// TestRateLimiter_TrustProxiesInvalid tests that malformed proxy entries are rejected.
func TestRateLimiter_TrustProxiesInvalid(t *testing.T) {
	logger := zerolog.Nop()
	rl := NewRateLimiter(60, 1, &logger)

	if err := rl.TrustProxies([]string{"10.0.0.0/8", "proxy.internal"}); err == nil {
		t.Fatal("expected an error for a host name entry")
	}
}

// TestRateLimiter_ForwardedForRotation tests that rotating X-Forwarded-For
// from a direct client neither bypasses the limit nor adds visitors.
func TestRateLimiter_ForwardedForRotation(t *testing.T) {
	logger := zerolog.Nop()
	rl := NewRateLimiter(1, 1, &logger)

	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	allowed := 0
	for i := 0; i < 100; i++ {
		req := httptest.NewRequest("GET", "/api/v1/pokemon", nil)
		req.RemoteAddr = "203.0.113.5:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code == http.StatusOK {
			allowed++
		}
	}

	if allowed != 1 {
		t.Errorf("expected 1 allowed request, got %d", allowed)
	}
	if n := rl.visitorCount(); n != 1 {
		t.Errorf("expected 1 visitor, got %d", n)
	}
}

// TestRateLimiter_Cleanup tests idle visitor eviction.
func TestRateLimiter_Cleanup(t *testing.T) {
	logger := zerolog.Nop()
	rl := NewRateLimiter(60, 5, &logger)

	rl.allow("10.0.0.1")
	rl.allow("10.0.0.2")

	if removed := rl.cleanup(time.Now()); removed != 0 {
		t.Errorf("expected no fresh visitors removed, got %d", removed)
	}
	if removed := rl.cleanup(time.Now().Add(visitorTTL + time.Second)); removed != 2 {
		t.Errorf("expected 2 idle visitors removed, got %d", removed)
	}
	if n := rl.visitorCount(); n != 0 {
		t.Errorf("expected 0 visitors, got %d", n)
	}
}

// TestRateLimiter_RunStops tests that Run returns when the context ends.
func TestRateLimiter_RunStops(t *testing.T) {
	logger := zerolog.Nop()
	rl := NewRateLimiter(60, 5, &logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

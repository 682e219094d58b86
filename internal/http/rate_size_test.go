package handlers_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Burst hits return 429; /healthz is exempt.
func TestRateLimits(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimitPerMin = 3
	app := newTestApp(t, cfg)
	logs := observeLogs(t)

	for i := 0; i < 4; i++ {
		resp, _ := doJSON(t, app, "GET", "/api/products", nil)
		if i < 3 && resp.StatusCode == http.StatusTooManyRequests {
			t.Fatalf("hit rate limit too early at %d", i)
		}
		if i == 3 && resp.StatusCode != http.StatusTooManyRequests {
			t.Fatalf("expected 429 after limit, got %d", resp.StatusCode)
		}
	}
	if logs.FilterMessage("rate.limit.hit").Len() != 1 {
		t.Fatal("rate limit hit was not logged")
	}
	if resp, _ := doJSON(t, app, "GET", "/healthz", nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz should bypass the limiter, got %d", resp.StatusCode)
	}
}

// Oversized POST rejected with 413.
func TestBodySizeLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.BodyLimit = 1 << 10
	app := newTestApp(t, cfg)

	oversize := append([]byte(`{"region":"`), bytes.Repeat([]byte("A"), 4<<10)...)
	oversize = append(oversize, []byte(`"}`)...)
	req := httptest.NewRequest("POST", "/api/carts", bytes.NewReader(oversize))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	// fasthttp may refuse the body before a response is written
	if err != nil {
		if strings.Contains(err.Error(), "body size exceeds") || strings.Contains(err.Error(), "too large") {
			return
		}
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 413 for oversize, got %d body=%s", resp.StatusCode, string(body))
	}
}

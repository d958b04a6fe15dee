package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/linkdock/linkdock/internal/domain"
)

func TestCheckStatusClassification(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		config   *domain.HealthCheckConfig
		expected string
	}{
		{
			name: "200 means online",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			expected: domain.StatusOnline,
		},
		{
			name: "unexpected status means offline",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			expected: domain.StatusOffline,
		},
		{
			name: "custom expected status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			config:   &domain.HealthCheckConfig{ExpectedStatus: 204},
			expected: domain.StatusOnline,
		},
		{
			name: "json key present",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "healthy", "uptime": 3600}`))
			},
			config:   &domain.HealthCheckConfig{JSONKey: "status"},
			expected: domain.StatusOnline,
		},
		{
			name: "json key missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"uptime": 3600}`))
			},
			config:   &domain.HealthCheckConfig{JSONKey: "status"},
			expected: domain.StatusOffline,
		},
		{
			name: "json value matches",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "healthy"}`))
			},
			config:   &domain.HealthCheckConfig{JSONKey: "status", JSONValue: "healthy"},
			expected: domain.StatusOnline,
		},
		{
			name: "json value differs",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "degraded"}`))
			},
			config:   &domain.HealthCheckConfig{JSONKey: "status", JSONValue: "healthy"},
			expected: domain.StatusOffline,
		},
		{
			name: "numeric json value compared as literal",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"code": 1}`))
			},
			config:   &domain.HealthCheckConfig{JSONKey: "code", JSONValue: "1"},
			expected: domain.StatusOnline,
		},
		{
			name: "boolean json value compared as literal",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"ok": true}`))
			},
			config:   &domain.HealthCheckConfig{JSONKey: "ok", JSONValue: "true"},
			expected: domain.StatusOnline,
		},
		{
			name: "non-json body with key assertion",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>ok</html>`))
			},
			config:   &domain.HealthCheckConfig{JSONKey: "status"},
			expected: domain.StatusOffline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			bm := domain.Bookmark{URL: srv.URL, HealthCheckConfig: tt.config}
			res := NewChecker(5 * time.Second).Check(context.Background(), bm)

			if res.Status != tt.expected {
				t.Errorf("Status = %q, want %q", res.Status, tt.expected)
			}
			if res.SSLChecked {
				t.Error("SSLChecked = true for plain http probe")
			}
			if res.CheckedAt.IsZero() {
				t.Error("CheckedAt not set")
			}
		})
	}
}

func TestCheckUsesHeadUnlessBodyNeeded(t *testing.T) {
	var method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.Write([]byte(`{"status": "ok"}`))
	}))
	defer srv.Close()

	checker := NewChecker(5 * time.Second)

	checker.Check(context.Background(), domain.Bookmark{URL: srv.URL})
	if method != http.MethodHead {
		t.Errorf("plain probe method = %s, want HEAD", method)
	}

	checker.Check(context.Background(), domain.Bookmark{
		URL:               srv.URL,
		HealthCheckConfig: &domain.HealthCheckConfig{JSONKey: "status"},
	})
	if method != http.MethodGet {
		t.Errorf("body probe method = %s, want GET", method)
	}
}

func TestCheckConfigURLOverridesBookmarkURL(t *testing.T) {
	probed := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probed = true
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	bm := domain.Bookmark{
		URL:               "http://127.0.0.1:1", // would fail if probed
		HealthCheckConfig: &domain.HealthCheckConfig{URL: srv.URL},
	}
	res := NewChecker(5 * time.Second).Check(context.Background(), bm)

	if !probed {
		t.Fatal("config URL was not probed")
	}
	if res.Status != domain.StatusOnline {
		t.Errorf("Status = %q, want online", res.Status)
	}
}

func TestCheckTimeoutIsOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	res := NewChecker(50 * time.Millisecond).Check(context.Background(), domain.Bookmark{URL: srv.URL})
	if res.Status != domain.StatusOffline {
		t.Errorf("Status = %q, want offline on timeout", res.Status)
	}
}

func TestCheckUnreachableHostIsOffline(t *testing.T) {
	res := NewChecker(time.Second).Check(context.Background(), domain.Bookmark{URL: "http://127.0.0.1:1"})
	if res.Status != domain.StatusOffline {
		t.Errorf("Status = %q, want offline", res.Status)
	}
}

func TestCheckSSLFailureSkipsProbe(t *testing.T) {
	// Nothing listens on port 1, so the TLS handshake fails before any
	// certificate is seen.
	bm := domain.Bookmark{
		URL:               "https://127.0.0.1:1",
		HealthCheckConfig: &domain.HealthCheckConfig{CheckSSL: true},
	}

	res := NewChecker(500 * time.Millisecond).Check(context.Background(), bm)

	if res.Status != domain.StatusOffline {
		t.Errorf("Status = %q, want offline", res.Status)
	}
	if !res.SSLChecked {
		t.Error("SSLChecked = false, want true")
	}
	if res.SSLExpiryDays != nil {
		t.Errorf("SSLExpiryDays = %v, want nil when handshake failed", *res.SSLExpiryDays)
	}
}

func TestCheckSSLSkippedForPlainHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	bm := domain.Bookmark{
		URL:               srv.URL,
		HealthCheckConfig: &domain.HealthCheckConfig{CheckSSL: true},
	}
	res := NewChecker(5 * time.Second).Check(context.Background(), bm)

	if res.SSLChecked {
		t.Error("SSLChecked = true for http scheme")
	}
	if res.Status != domain.StatusOnline {
		t.Errorf("Status = %q, want online", res.Status)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		key      string
		expected string
		found    bool
	}{
		{name: "string", body: `{"k": "v"}`, key: "k", expected: "v", found: true},
		{name: "integer keeps literal form", body: `{"k": 42}`, key: "k", expected: "42", found: true},
		{name: "float keeps literal form", body: `{"k": 1.50}`, key: "k", expected: "1.50", found: true},
		{name: "bool", body: `{"k": false}`, key: "k", expected: "false", found: true},
		{name: "null", body: `{"k": null}`, key: "k", expected: "null", found: true},
		{name: "missing", body: `{}`, key: "k", found: false},
		{name: "array body", body: `[1, 2]`, key: "k", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lookupFlatKey([]byte(tt.body), tt.key)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && got != tt.expected {
				t.Errorf("value = %q, want %q", got, tt.expected)
			}
		})
	}
}

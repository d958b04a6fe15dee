package executor

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/linkdock/linkdock/internal/domain"
)

func TestExecuteCapturesResponse(t *testing.T) {
	var gotMethod, gotBody, gotContentType, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)

		w.Header().Set("X-Custom", "yes")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "abc"}`))
	}))
	defer srv.Close()

	call := domain.ApiCall{
		URL:     srv.URL,
		Method:  http.MethodPost,
		Body:    `{"action": "restart"}`,
		Headers: map[string]string{"Authorization": "Bearer tok"},
	}
	res := NewRunner(5 * time.Second).Execute(context.Background(), call)

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotBody != `{"action": "restart"}` {
		t.Errorf("body = %q", gotBody)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q", gotAuth)
	}

	if res.Status != http.StatusCreated {
		t.Errorf("Status = %d, want 201", res.Status)
	}
	if res.StatusText != "Created" {
		t.Errorf("StatusText = %q, want Created", res.StatusText)
	}
	if res.Body != `{"id": "abc"}` {
		t.Errorf("Body = %q", res.Body)
	}
	if res.Headers["X-Custom"] != "yes" {
		t.Errorf("Headers[X-Custom] = %q, want yes", res.Headers["X-Custom"])
	}
	if res.Duration < 0 {
		t.Errorf("Duration = %d, want >= 0", res.Duration)
	}
	if res.Timestamp == "" {
		t.Error("Timestamp not set")
	}
	if res.ValidationResult != nil {
		t.Error("ValidationResult set without validation enabled")
	}
}

func TestExecuteGetDropsBody(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
	}))
	defer srv.Close()

	call := domain.ApiCall{
		URL:    srv.URL,
		Method: http.MethodGet,
		Body:   `{"ignored": true}`,
	}
	NewRunner(5 * time.Second).Execute(context.Background(), call)

	if gotBody != "" {
		t.Errorf("GET carried a body: %q", gotBody)
	}
}

func TestExecuteRecordHeadersOverrideContentType(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
	}))
	defer srv.Close()

	call := domain.ApiCall{
		URL:     srv.URL,
		Method:  http.MethodPost,
		Body:    "a=b",
		Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	}
	NewRunner(5 * time.Second).Execute(context.Background(), call)

	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q, want override", gotContentType)
	}
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		config     domain.ResponseValidationConfig
		wantPassed bool
		wantReason string
	}{
		{
			name:       "status only pass",
			status:     200,
			body:       "ok",
			config:     domain.ResponseValidationConfig{},
			wantPassed: true,
		},
		{
			name:       "status mismatch",
			status:     404,
			body:       "",
			config:     domain.ResponseValidationConfig{},
			wantPassed: false,
			wantReason: "Expected status 200, got 404",
		},
		{
			name:       "custom expected status",
			status:     202,
			body:       "",
			config:     domain.ResponseValidationConfig{ExpectedStatus: 202},
			wantPassed: true,
		},
		{
			name:       "dot path match",
			status:     200,
			body:       `{"data": {"success": true}}`,
			config:     domain.ResponseValidationConfig{JSONKey: "data.success", JSONValue: "true"},
			wantPassed: true,
		},
		{
			name:       "dot path value mismatch",
			status:     200,
			body:       `{"data": {"success": false}}`,
			config:     domain.ResponseValidationConfig{JSONKey: "data.success", JSONValue: "true"},
			wantPassed: false,
			wantReason: `Expected "true" at "data.success", got "false"`,
		},
		{
			name:       "key missing",
			status:     200,
			body:       `{"data": {}}`,
			config:     domain.ResponseValidationConfig{JSONKey: "data.success"},
			wantPassed: false,
			wantReason: `Key "data.success" not found in response`,
		},
		{
			name:       "key exists without value assertion",
			status:     200,
			body:       `{"data": {"success": "anything"}}`,
			config:     domain.ResponseValidationConfig{JSONKey: "data.success"},
			wantPassed: true,
		},
		{
			name:       "non-json body",
			status:     200,
			body:       "<html></html>",
			config:     domain.ResponseValidationConfig{JSONKey: "data"},
			wantPassed: false,
			wantReason: "Failed to parse response as JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			call := domain.ApiCall{
				URL:                       srv.URL,
				Method:                    http.MethodGet,
				ResponseValidationEnabled: true,
				ResponseValidationConfig:  &tt.config,
			}
			res := NewRunner(5 * time.Second).Execute(context.Background(), call)

			if res.ValidationResult == nil {
				t.Fatal("ValidationResult is nil")
			}
			if res.ValidationResult.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v (reason %q)",
					res.ValidationResult.Passed, tt.wantPassed, res.ValidationResult.Reason)
			}
			if tt.wantReason != "" && res.ValidationResult.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", res.ValidationResult.Reason, tt.wantReason)
			}
		})
	}
}

func TestExecuteTimeoutSynthesizesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	call := domain.ApiCall{
		URL:                       srv.URL,
		Method:                    http.MethodGet,
		ResponseValidationEnabled: true,
		ResponseValidationConfig:  &domain.ResponseValidationConfig{},
	}
	res := NewRunner(100 * time.Millisecond).Execute(context.Background(), call)

	if res.Status != 0 {
		t.Errorf("Status = %d, want synthetic 0", res.Status)
	}
	if res.StatusText != "Request Timeout" {
		t.Errorf("StatusText = %q, want Request Timeout", res.StatusText)
	}
	if res.ValidationResult == nil || res.ValidationResult.Passed {
		t.Errorf("ValidationResult = %+v, want failed", res.ValidationResult)
	}
	if res.ValidationResult.Reason != "Request timeout" {
		t.Errorf("Reason = %q, want Request timeout", res.ValidationResult.Reason)
	}
}

func TestExecuteNetworkErrorSynthesizesResponse(t *testing.T) {
	call := domain.ApiCall{
		URL:    "http://127.0.0.1:1",
		Method: http.MethodGet,
	}
	res := NewRunner(time.Second).Execute(context.Background(), call)

	if res.Status != 0 {
		t.Errorf("Status = %d, want synthetic 0", res.Status)
	}
	if res.StatusText != "Network Error" {
		t.Errorf("StatusText = %q, want Network Error", res.StatusText)
	}
	if res.Body == "" {
		t.Error("Body should carry the transport error message")
	}
	if res.ValidationResult != nil {
		t.Error("ValidationResult set without validation enabled")
	}
}

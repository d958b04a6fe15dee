package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/linkdock/linkdock/internal/domain"
	"github.com/linkdock/linkdock/internal/utils"
)

// DefaultTimeout bounds one ad-hoc execution end to end.
const DefaultTimeout = 30 * time.Second

const maxResponseBody = 10 << 20

// Runner executes saved API calls. Request-level failures (timeout,
// DNS, refused connection) become synthetic zero-status responses
// rather than errors, so the caller always gets a renderable result.
type Runner struct {
	client  *http.Client
	timeout time.Duration
	now     func() time.Time
}

// NewRunner builds a runner with the given execution timeout.
func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
		now:     time.Now,
	}
}

// Execute issues the configured request and captures the response,
// measuring wall-clock duration and optionally evaluating the
// configured response assertion.
func (r *Runner) Execute(ctx context.Context, call domain.ApiCall) domain.ApiResponse {
	start := r.now()

	var body io.Reader = http.NoBody
	if call.Body != "" && call.Method != http.MethodGet {
		body = strings.NewReader(call.Body)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, call.Method, call.URL, body)
	if err != nil {
		return r.failure(call, start, "Network Error", err.Error(), "Network error")
	}

	// Record headers override the default Content-Type.
	req.Header.Set("Content-Type", "application/json")
	for k, v := range call.Headers {
		req.Header.Set(k, v)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			msg := fmt.Sprintf("Request timed out after %d seconds", int(r.timeout.Seconds()))
			return r.failure(call, start, "Request Timeout", msg, "Request timeout")
		}
		return r.failure(call, start, "Network Error", err.Error(), "Network error")
	}
	defer utils.Close(resp.Body)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return r.failure(call, start, "Network Error", err.Error(), "Network error")
	}

	headers := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		headers[k] = resp.Header.Get(k)
	}

	out := domain.ApiResponse{
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Headers:    headers,
		Body:       string(raw),
		Duration:   r.now().Sub(start).Milliseconds(),
		Timestamp:  r.now().Format(time.RFC3339),
	}
	if call.ResponseValidationEnabled && call.ResponseValidationConfig != nil {
		out.ValidationResult = validate(out.Status, out.Body, *call.ResponseValidationConfig)
	}
	return out
}

// failure synthesizes a zero-status response for a request-level
// failure, with a matching failed validation result when validation is
// enabled.
func (r *Runner) failure(call domain.ApiCall, start time.Time, statusText, body, reason string) domain.ApiResponse {
	out := domain.ApiResponse{
		Status:     0,
		StatusText: statusText,
		Headers:    map[string]string{},
		Body:       body,
		Duration:   r.now().Sub(start).Milliseconds(),
		Timestamp:  r.now().Format(time.RFC3339),
	}
	if call.ResponseValidationEnabled && call.ResponseValidationConfig != nil {
		out.ValidationResult = &domain.ValidationResult{Passed: false, Reason: reason}
	}
	return out
}

// validate evaluates the response assertion: expected status first,
// then an optional dot-path JSON key lookup with stringified value
// comparison.
func validate(status int, body string, cfg domain.ResponseValidationConfig) *domain.ValidationResult {
	expected := cfg.ExpectedStatus
	if expected == 0 {
		expected = domain.DefaultExpectedStatus
	}
	if status != expected {
		return &domain.ValidationResult{
			Passed: false,
			Reason: fmt.Sprintf("Expected status %d, got %d", expected, status),
		}
	}

	if cfg.JSONKey == "" {
		return &domain.ValidationResult{Passed: true}
	}

	if !gjson.Valid(body) {
		return &domain.ValidationResult{
			Passed: false,
			Reason: "Failed to parse response as JSON",
		}
	}

	value := gjson.Get(body, cfg.JSONKey)
	if !value.Exists() {
		return &domain.ValidationResult{
			Passed: false,
			Reason: fmt.Sprintf("Key %q not found in response", cfg.JSONKey),
		}
	}

	if cfg.JSONValue != "" && value.String() != cfg.JSONValue {
		return &domain.ValidationResult{
			Passed: false,
			Reason: fmt.Sprintf("Expected %q at %q, got %q", cfg.JSONValue, cfg.JSONKey, value.String()),
		}
	}
	return &domain.ValidationResult{Passed: true}
}

// isTimeout distinguishes deadline expiry from other transport
// failures.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Timeout()
	}
	return false
}

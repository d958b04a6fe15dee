package health

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/linkdock/linkdock/internal/domain"
	"github.com/linkdock/linkdock/internal/utils"
)

const (
	// DefaultTimeout bounds both the TLS inspection and the HTTP probe.
	DefaultTimeout = 10 * time.Second

	// maxProbeBody caps how much of a response body is read for the
	// JSON key assertion.
	maxProbeBody = 1 << 20
)

// Checker probes bookmark targets and classifies the outcome. Every
// failure mode (DNS, refused connection, timeout, bad TLS, JSON
// mismatch) folds into an offline result; Check never returns an
// error.
type Checker struct {
	client  *http.Client
	timeout time.Duration
	now     func() time.Time
}

// NewChecker builds a checker with the given probe timeout.
func NewChecker(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Checker{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
		now:     time.Now,
	}
}

// Check runs one health check for the bookmark. The probe target is
// the config URL when set, else the bookmark URL; expected status
// defaults to 200.
func (c *Checker) Check(ctx context.Context, bm domain.Bookmark) domain.HealthResult {
	res := domain.HealthResult{
		Status:    domain.StatusOffline,
		CheckedAt: c.now(),
	}

	cfg := domain.HealthCheckConfig{}
	if bm.HealthCheckConfig != nil {
		cfg = *bm.HealthCheckConfig
	}

	target := cfg.URL
	if target == "" {
		target = bm.URL
	}
	expected := cfg.ExpectedStatus
	if expected == 0 {
		expected = domain.DefaultExpectedStatus
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return res
	}

	if cfg.CheckSSL && parsed.Scheme == "https" {
		res.SSLChecked = true
		days, err := c.certExpiryDays(parsed.Host)
		if err != nil {
			// Connection failed before a certificate was seen:
			// offline, expiry unknown, no HTTP probe.
			return res
		}
		res.SSLExpiryDays = &days
		if days <= 0 {
			return res // expired certificate, skip the probe
		}
	}

	res.Status = c.probe(ctx, target, expected, cfg)
	return res
}

// probe issues the HTTP request and classifies the response.
// GET is used when the body must be inspected, HEAD otherwise.
func (c *Checker) probe(ctx context.Context, target string, expected int, cfg domain.HealthCheckConfig) string {
	method := http.MethodHead
	if cfg.JSONKey != "" {
		method = http.MethodGet
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, http.NoBody)
	if err != nil {
		return domain.StatusOffline
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.StatusOffline
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != expected {
		return domain.StatusOffline
	}

	if cfg.JSONKey == "" {
		return domain.StatusOnline
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProbeBody))
	if err != nil {
		return domain.StatusOffline
	}

	value, ok := lookupFlatKey(body, cfg.JSONKey)
	if !ok {
		return domain.StatusOffline
	}
	if cfg.JSONValue != "" && value != cfg.JSONValue {
		return domain.StatusOffline
	}
	return domain.StatusOnline
}

// certExpiryDays opens a TLS connection to host (":443" assumed when
// no port is given) and returns ceil(days) until the leaf certificate
// expires.
func (c *Checker) certExpiryDays(host string) (int, error) {
	addr := host
	if _, _, err := net.SplitHostPort(host); err != nil {
		addr = net.JoinHostPort(host, "443")
	}
	serverName, _, _ := net.SplitHostPort(addr)

	dialer := &net.Dialer{Timeout: c.timeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	})
	if err != nil {
		return 0, err
	}
	defer utils.Close(conn)

	certs := conn.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		return 0, errNoCertificate
	}

	until := certs[0].NotAfter.Sub(c.now())
	return int(math.Ceil(until.Hours() / 24)), nil
}

var errNoCertificate = errors.New("no peer certificate presented")

// lookupFlatKey parses body as a JSON object and returns the
// stringified value at key. Flat lookup only; nested paths belong to
// the execution engine.
func lookupFlatKey(body []byte, key string) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var obj map[string]interface{}
	if err := dec.Decode(&obj); err != nil {
		return "", false
	}

	v, ok := obj[key]
	if !ok {
		return "", false
	}
	return stringify(v), true
}

// stringify matches the loose string comparison the config expresses:
// numbers keep their literal form, booleans become "true"/"false".
func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case nil:
		return "null"
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// CategoryDeletePolicy values accepted by LINKDOCK_CATEGORY_DELETE_POLICY.
const (
	DeletePolicyOrphan  = "orphan"
	DeletePolicyCascade = "cascade"
	DeletePolicyReject  = "reject"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DataDir  string // directory holding the persisted document
	SeedFile string // optional bootstrap YAML (empty = disabled)

	HealthTimeout  time.Duration // per health probe (TLS + HTTP)
	ExecuteTimeout time.Duration // per ad-hoc API execution
	PingTimeout    time.Duration // per one-off reachability ping

	SweepEnabled bool // server-side periodic health sweep
	SweepWorkers int  // bounded concurrency of one sweep

	CategoryDeletePolicy string // orphan | cascade | reject

	ProbeBurst        int // token bucket burst for execute/ping endpoints
	ProbeRefillPerMin int // token refill rate per client IP

	AllowedOrigins []string // CORS; empty = allow all
	AllowedHosts   []string // optional, restrict access to specific Host headers
	AllowedCIDRS   []string // optional, restrict access to specific IPs/CIDRs
	TrustProxy     bool     // true => trust X-Forwarded-For headers
}

func Load() *Config {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("LINKDOCK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LINKDOCK_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LINKDOCK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LINKDOCK_PRETTY_LOG", true),

		// Persistence
		DataDir:  getenv("LINKDOCK_DATA_DIR", "./data"),
		SeedFile: getenv("LINKDOCK_SEED_FILE", ""),

		// Engines
		HealthTimeout:  mustDuration("LINKDOCK_HEALTH_TIMEOUT", 10*time.Second),
		ExecuteTimeout: mustDuration("LINKDOCK_EXECUTE_TIMEOUT", 30*time.Second),
		PingTimeout:    mustDuration("LINKDOCK_PING_TIMEOUT", 5*time.Second),

		// Health sweep
		SweepEnabled: mustBool("LINKDOCK_SWEEP_ENABLED", true),
		SweepWorkers: getenvInt("LINKDOCK_SWEEP_WORKERS", 4),

		CategoryDeletePolicy: getenv("LINKDOCK_CATEGORY_DELETE_POLICY", DeletePolicyOrphan),

		// Outbound probe abuse limiting
		ProbeBurst:        getenvInt("LINKDOCK_PROBE_BURST", 5),
		ProbeRefillPerMin: getenvInt("LINKDOCK_PROBE_REFILL_PER_MIN", 30),

		// Access restrictions
		AllowedOrigins: splitAndTrim(getenv("LINKDOCK_ALLOWED_ORIGINS", "")),
		AllowedHosts:   splitAndTrim(getenv("LINKDOCK_ALLOWED_HOSTS", "")),
		AllowedCIDRS:   splitAndTrim(getenv("LINKDOCK_ALLOWED_CIDRS", "")),
		TrustProxy:     mustBool("LINKDOCK_TRUST_PROXY", false),
	}

	switch cfg.CategoryDeletePolicy {
	case DeletePolicyOrphan, DeletePolicyCascade, DeletePolicyReject:
	default:
		panic(fmt.Sprintf("❌ FATAL: Invalid LINKDOCK_CATEGORY_DELETE_POLICY %q (want orphan|cascade|reject)", cfg.CategoryDeletePolicy))
	}

	if cfg.SweepWorkers < 1 {
		cfg.SweepWorkers = 1
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

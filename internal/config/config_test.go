package config

import (
	"os"
	"testing"
	"time"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      string
		expected string
	}{
		{
			name:     "variable set",
			key:      "TEST_VAR",
			value:    "test_value",
			def:      "default",
			expected: "test_value",
		},
		{
			name:     "variable not set uses default",
			key:      "TEST_VAR_MISSING",
			value:    "",
			def:      "default",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := getenv(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("getenv() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      int
		expected int
	}{
		{
			name:     "valid integer",
			key:      "TEST_INT",
			value:    "42",
			def:      1,
			expected: 42,
		},
		{
			name:     "invalid integer uses default",
			key:      "TEST_INT_INVALID",
			value:    "not_a_number",
			def:      7,
			expected: 7,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_INT_MISSING",
			value:    "",
			def:      3,
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := getenvInt(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("getenvInt() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DURATION",
			value:    "5s",
			def:      1 * time.Second,
			expected: 5 * time.Second,
		},
		{
			name:     "invalid duration uses default",
			key:      "TEST_DURATION_INVALID",
			value:    "invalid",
			def:      10 * time.Second,
			expected: 10 * time.Second,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_DURATION_MISSING",
			value:    "",
			def:      15 * time.Second,
			expected: 15 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := mustDuration(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{
			name:     "true value",
			key:      "TEST_BOOL",
			value:    "true",
			def:      false,
			expected: true,
		},
		{
			name:     "false value",
			key:      "TEST_BOOL_FALSE",
			value:    "false",
			def:      true,
			expected: false,
		},
		{
			name:     "invalid value uses default",
			key:      "TEST_BOOL_INVALID",
			value:    "invalid",
			def:      true,
			expected: true,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_BOOL_MISSING",
			value:    "",
			def:      false,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := mustBool(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single value",
			input:    "value1",
			expected: []string{"value1"},
		},
		{
			name:     "multiple values with spaces",
			input:    "value1, value2, value3",
			expected: []string{"value1", "value2", "value3"},
		},
		{
			name:     "quoted values",
			input:    `"http://localhost:3000", 'http://localhost:5173'`,
			expected: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "blank entries dropped",
			input:    "a,, ,b",
			expected: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndTrim(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("splitAndTrim() = %v, want %v", result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLoadRejectsBadDeletePolicy(t *testing.T) {
	t.Setenv("LINKDOCK_CATEGORY_DELETE_POLICY", "explode")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Load() should have panicked on invalid delete policy")
		}
	}()
	_ = Load()
}

func TestLoadDefaults(t *testing.T) {
	if err := os.Unsetenv("LINKDOCK_CATEGORY_DELETE_POLICY"); err != nil {
		t.Fatalf("failed to unset env var: %v", err)
	}

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %v, want :8080", cfg.ListenPort)
	}
	if cfg.HealthTimeout != 10*time.Second {
		t.Errorf("HealthTimeout = %v, want 10s", cfg.HealthTimeout)
	}
	if cfg.ExecuteTimeout != 30*time.Second {
		t.Errorf("ExecuteTimeout = %v, want 30s", cfg.ExecuteTimeout)
	}
	if cfg.PingTimeout != 5*time.Second {
		t.Errorf("PingTimeout = %v, want 5s", cfg.PingTimeout)
	}
	if cfg.CategoryDeletePolicy != DeletePolicyOrphan {
		t.Errorf("CategoryDeletePolicy = %v, want %v", cfg.CategoryDeletePolicy, DeletePolicyOrphan)
	}
}

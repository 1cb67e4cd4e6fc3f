package config

import (
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
			name:     "variable not set",
			key:      "TEST_VAR_MISSING",
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
			value:    "750ms",
			def:      time.Second,
			expected: 750 * time.Millisecond,
		},
		{
			name:     "invalid duration falls back",
			key:      "TEST_DURATION_INVALID",
			value:    "soon",
			def:      time.Second,
			expected: time.Second,
		},
		{
			name:     "unset falls back",
			key:      "TEST_DURATION_MISSING",
			def:      2 * time.Second,
			expected: 2 * time.Second,
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
			name:     "invalid value falls back",
			key:      "TEST_BOOL_INVALID",
			value:    "yep",
			def:      true,
			expected: true,
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

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("WRITEWELL_STORAGE", "cassandra")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Load() should have panicked on unknown backend")
		}
	}()

	Load()
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.StorageBackend != BackendFile {
		t.Errorf("default StorageBackend = %q, want %q", cfg.StorageBackend, BackendFile)
	}
	if cfg.AutosaveDebounce != 300*time.Millisecond {
		t.Errorf("default AutosaveDebounce = %v, want 300ms", cfg.AutosaveDebounce)
	}
	if cfg.BackupFile != "" {
		t.Errorf("default BackupFile = %q, want empty (disabled)", cfg.BackupFile)
	}
}

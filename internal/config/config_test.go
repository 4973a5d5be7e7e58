package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsFloatOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal float64
		expected   float64
	}{
		{"parses float", "TEST_FLOAT_1", "12.5", 1.0, 12.5},
		{"uses default for empty", "TEST_FLOAT_2", "", 1.0, 1.0},
		{"uses default for non-numeric", "TEST_FLOAT_3", "slow", 1.0, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsFloatOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.DeckPath != "deck.json" {
		t.Errorf("Expected default deck path 'deck.json', got %q", cfg.DeckPath)
	}
	if cfg.Scheduler.SlowSeconds != 10 {
		t.Errorf("Expected slow threshold 10, got %v", cfg.Scheduler.SlowSeconds)
	}
	if cfg.Scheduler.MasteredMinReps != 3 {
		t.Errorf("Expected mastery repetition minimum 3, got %d", cfg.Scheduler.MasteredMinReps)
	}
	if cfg.Scheduler.MasteredMinIntervalDays != 21 {
		t.Errorf("Expected mastery interval minimum 21, got %d", cfg.Scheduler.MasteredMinIntervalDays)
	}
	if cfg.Scheduler.ForecastDays != 7 {
		t.Errorf("Expected forecast window 7, got %d", cfg.Scheduler.ForecastDays)
	}
}

func TestLoadOverrides(t *testing.T) {
	os.Setenv("SRS_SLOW_SECONDS", "4.5")
	os.Setenv("SRS_FORECAST_DAYS", "14")
	defer os.Unsetenv("SRS_SLOW_SECONDS")
	defer os.Unsetenv("SRS_FORECAST_DAYS")

	cfg := Load()

	if cfg.Scheduler.SlowSeconds != 4.5 {
		t.Errorf("Expected slow threshold 4.5, got %v", cfg.Scheduler.SlowSeconds)
	}
	if cfg.Scheduler.ForecastDays != 14 {
		t.Errorf("Expected forecast window 14, got %d", cfg.Scheduler.ForecastDays)
	}
}

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"parlo-engine/internal/srs"
)

type Config struct {
	// Deck
	DeckPath string

	// Scheduler tuning
	Scheduler srs.Params
}

// Load reads the configuration from the environment. Every variable has a
// default, so Load never fails; unparseable values fall back silently.
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	def := srs.DefaultParams()

	cfg := &Config{
		DeckPath: getEnvOrDefault("DECK_PATH", "deck.json"),
		Scheduler: srs.Params{
			SlowSeconds:             getEnvAsFloatOrDefault("SRS_SLOW_SECONDS", def.SlowSeconds),
			VerySlowSeconds:         getEnvAsFloatOrDefault("SRS_VERY_SLOW_SECONDS", def.VerySlowSeconds),
			StruggleSeconds:         getEnvAsFloatOrDefault("SRS_STRUGGLE_SECONDS", def.StruggleSeconds),
			DifficultyStep:          getEnvAsFloatOrDefault("SRS_DIFFICULTY_STEP", def.DifficultyStep),
			MasteredMinReps:         getEnvAsIntOrDefault("SRS_MASTERED_MIN_REPS", def.MasteredMinReps),
			MasteredMinIntervalDays: getEnvAsIntOrDefault("SRS_MASTERED_MIN_INTERVAL_DAYS", def.MasteredMinIntervalDays),
			ForecastDays:            getEnvAsIntOrDefault("SRS_FORECAST_DAYS", def.ForecastDays),
		},
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

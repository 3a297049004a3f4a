package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings loaded from the environment. A .env file
// is honored when present so local runs need no exported variables.
type Config struct {
	Environment string
	LogLevel    slog.Level

	// Institution identity and the cycle the process starts in.
	CollegeName     string
	LogoLeft        string
	LogoRight       string
	CurrentYear     string
	CurrentSemester string

	// Analytics policy constants. Domain policy with no stronger justification
	// than current institutional practice, so they are configurable rather
	// than hardcoded.
	PassGPAThreshold float64
	PassRateWeight   float64
	AttendanceWeight float64
	CATPassMark      float64

	// Administrator credentials. Single fixed identity/secret pair checked
	// verbatim. INSECURE: kept for compatibility with the existing operator
	// workflow; any multi-user deployment must replace this with a real
	// identity provider.
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := &Config{
		Environment:      getEnv("ENVIRONMENT", "development"),
		LogLevel:         parseLogLevel(getEnv("LOG_LEVEL", "info")),
		CollegeName:      getEnv("COLLEGE_NAME", "Thanthai Periyar Government Institute of Technology"),
		LogoLeft:         getEnv("LOGO_LEFT", "/tpgit.png"),
		LogoRight:        getEnv("LOGO_RIGHT", "/tamilnadu.png"),
		CurrentYear:      getEnv("CURRENT_YEAR", "2025-2026"),
		CurrentSemester:  getEnv("CURRENT_SEMESTER", "1st"),
		PassGPAThreshold: getEnvFloat("PASS_GPA_THRESHOLD", 5.0),
		PassRateWeight:   getEnvFloat("PASS_RATE_WEIGHT", 0.6),
		AttendanceWeight: getEnvFloat("ATTENDANCE_WEIGHT", 0.4),
		CATPassMark:      getEnvFloat("CAT_PASS_MARK", 50),
		AdminEmail:       getEnv("ADMIN_EMAIL", "admin@gmail.com"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", "12345"),
	}
	return cfg, nil
}

// SystemDefaults is the SystemConfig seed derived from the environment.
func (c *Config) SystemDefaults() SystemSeed {
	return SystemSeed{
		CollegeName:     c.CollegeName,
		LogoLeft:        c.LogoLeft,
		LogoRight:       c.LogoRight,
		CurrentYear:     c.CurrentYear,
		CurrentSemester: c.CurrentSemester,
	}
}

type SystemSeed struct {
	CollegeName     string
	LogoLeft        string
	LogoRight       string
	CurrentYear     string
	CurrentSemester string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func parseLogLevel(v string) slog.Level {
	switch v {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A
// .env file in the working directory, when present, is loaded first; real
// environment variables win over .env entries.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CAREERCOMPASS_USER_API"); v != "" {
		cfg.UserAPIBaseURL = v
	}
	if v := os.Getenv("CAREERCOMPASS_CAREER_API"); v != "" {
		cfg.CareerAPIBaseURL = v
	}
	if v := os.Getenv("CAREERCOMPASS_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("CAREERCOMPASS_UPLOAD_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.UploadTimeout = d
		}
	}
	if v := os.Getenv("CAREERCOMPASS_SESSION_DB"); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv("CAREERCOMPASS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

package config

import (
	"encoding/json"
	"os"

	"github.com/careercompass/careercompass/internal/flagx"
	"github.com/careercompass/careercompass/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// may be written either as strings like "15s" or as integer nanoseconds.
type jsonConfig struct {
	UserAPIBaseURL   string          `json:"user_api_base_url"`
	CareerAPIBaseURL string          `json:"career_api_base_url"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	UploadTimeout    *timex.Duration `json:"upload_timeout"`
	SessionDBPath    string          `json:"session_db_path"`
	LoginPath        string          `json:"login_path"`
	LogLevel         string          `json:"log_level"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c/-config flag. Absent flag means no JSON is loaded. Read or unmarshal
// errors panic; intended usage is defaults -> env -> parseJSON ->
// parseFlags, later stages overriding earlier ones. Only fields present in
// the file are copied.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.UserAPIBaseURL != "" {
		cfg.UserAPIBaseURL = jc.UserAPIBaseURL
	}
	if jc.CareerAPIBaseURL != "" {
		cfg.CareerAPIBaseURL = jc.CareerAPIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.UploadTimeout != nil {
		cfg.UploadTimeout = jc.UploadTimeout.Duration
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.LoginPath != "" {
		cfg.LoginPath = jc.LoginPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the CareerCompass CLI.
//
// Fields:
//   - UserAPIBaseURL: base URL of the user service (login/signup/profile).
//   - CareerAPIBaseURL: base URL of the career service (CV upload).
//   - RequestTimeout: bound applied to each JSON API call.
//   - UploadTimeout: bound applied to the multipart CV upload.
//   - SessionDBPath: location of the session database. Defaults to the OS
//     temp directory so the session does not outlive the machine session.
//   - LoginPath: route unauthenticated visitors are redirected to.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	UserAPIBaseURL   string
	CareerAPIBaseURL string
	RequestTimeout   time.Duration
	UploadTimeout    time.Duration
	SessionDBPath    string
	LoginPath        string
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.UserAPIBaseURL = "http://localhost:5000"
	c.CareerAPIBaseURL = "http://localhost:5001"
	c.RequestTimeout = 15 * time.Second
	c.UploadTimeout = 30 * time.Second
	c.SessionDBPath = filepath.Join(os.TempDir(), "careercompass-session.db")
	c.LoginPath = "/login"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given via -c/-config), and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}

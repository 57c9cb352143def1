package config

import (
	"flag"
	"os"
	"time"

	"github.com/careercompass/careercompass/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   base URL of the user service
//	-r string   base URL of the career service
//	-t string   request timeout, e.g. "15s"
//	-s string   path to the session database
//	-l string   log level (debug|info|warn|error)
//
// Only the flags listed here are parsed, via flagx.FilterArgs, so other
// components' flags are left alone.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-r", "-t", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.UserAPIBaseURL, "u", cfg.UserAPIBaseURL, "base URL of the user service")
	fs.StringVar(&cfg.CareerAPIBaseURL, "r", cfg.CareerAPIBaseURL, "base URL of the career service")
	requestTimeout := fs.String("t", cfg.RequestTimeout.String(), "request timeout (e.g. 15s)")
	fs.StringVar(&cfg.SessionDBPath, "s", cfg.SessionDBPath, "path to the session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if d, err := time.ParseDuration(*requestTimeout); err == nil {
		cfg.RequestTimeout = d
	} else {
		panic(err)
	}
}

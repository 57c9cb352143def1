// Package config loads runtime settings for the CareerCompass CLI from
// layered sources: built-in defaults, then environment variables (with an
// optional .env file), then a JSON config file, then command-line flags.
// Later sources take precedence.
package config

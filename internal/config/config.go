// Package config reads the server settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// MinFormTTL is the shortest FORM_TTL accepted. The sweeper runs every half
// TTL.
const MinFormTTL = time.Minute

// Config holds all application configuration
type Config struct {
	Port              string
	FormID            string
	FormspreeEndpoint string
	SubmitTimeout     time.Duration
	FormTTL           time.Duration
	GinMode           string
	LogLevel          string
	ContentFile       string
}

// Default returns the settings used when the environment is silent.
// FormID has no default and must be supplied.
func Default() *Config {
	return &Config{
		Port:              "8080",
		FormspreeEndpoint: "https://formspree.io/f",
		SubmitTimeout:     15 * time.Second,
		FormTTL:           30 * time.Minute,
		GinMode:           "release",
		LogLevel:          "info",
	}
}

// Load builds a Config from environment variables on top of Default.
func Load() (*Config, error) {
	cfg := Default()

	str := map[string]*string{
		"PORT":               &cfg.Port,
		"FORMSPREE_FORM_ID":  &cfg.FormID,
		"FORMSPREE_ENDPOINT": &cfg.FormspreeEndpoint,
		"GIN_MODE":           &cfg.GinMode,
		"LOG_LEVEL":          &cfg.LogLevel,
		"CONTENT_FILE":       &cfg.ContentFile,
	}
	for key, dst := range str {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"SUBMIT_TIMEOUT": &cfg.SubmitTimeout,
		"FORM_TTL":       &cfg.FormTTL,
	}
	for key, dst := range durations {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
	}

	return cfg, nil
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.FormID == "" {
		return fmt.Errorf("FORMSPREE_FORM_ID is required")
	}
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("PORT %q is not a valid port", c.Port)
	}
	u, err := url.Parse(c.FormspreeEndpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("FORMSPREE_ENDPOINT %q must be an absolute http(s) URL", c.FormspreeEndpoint)
	}
	if c.SubmitTimeout <= 0 {
		return fmt.Errorf("SUBMIT_TIMEOUT must be > 0")
	}
	if c.FormTTL < MinFormTTL {
		return fmt.Errorf("FORM_TTL must be at least %s", MinFormTTL)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE %q must be debug, release or test", c.GinMode)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + c.Port }

// Debug reports whether the server runs in gin's debug mode.
func (c *Config) Debug() bool { return c.GinMode == "debug" }

// Package config loads application configuration from environment
// variables. Required values halt startup with a fatal log when missing;
// everything else falls back to a sensible default so the service runs
// out of the box against its seeded demo data.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting read at startup. The site and API
// fields are only the initial values; both settings groups are mutable at
// runtime through the settings endpoints.
type Config struct {
	Env          string // application environment (dev/test/prod)
	Port         string // HTTP port to listen on
	JWTSecret    string // secret used to sign access tokens
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing

	AdminEmail    string // login email of the seeded administrator
	AdminPassword string // initial administrator password

	AMQPURL string // RabbitMQ URL for the audit pipeline; empty disables it

	SiteName      string // initial site name shown in the panel chrome
	ItemsPerPage  int    // initial table page size
	Notifications bool   // initial email-notification toggle
	DarkMode      bool   // initial theme flag

	APIBaseURL    string // initial backend base URL for the stub client
	APIKey        string // initial backend API key
	APITimeoutSec int    // initial backend request timeout in seconds
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Env:          envStr("APP_ENV", "dev"),
		Port:         envStr("APP_PORT", "8080"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: envInt("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:   envInt("BCRYPT_COST", 10),

		AdminEmail:    must("ADMIN_EMAIL"),
		AdminPassword: must("ADMIN_PASSWORD"),

		AMQPURL: envStr("RABBITMQ_URL", os.Getenv("AMQP_URL")),

		SiteName:      envStr("SITE_NAME", "Catalog Admin"),
		ItemsPerPage:  envInt("ITEMS_PER_PAGE", 10),
		Notifications: envBool("ENABLE_NOTIFICATIONS", true),
		DarkMode:      envBool("DARK_MODE", false),

		APIBaseURL:    envStr("API_BASE_URL", "http://localhost:8000/api/v1/"),
		APIKey:        envStr("API_KEY", "demo-api-key-12345"),
		APITimeoutSec: envInt("API_TIMEOUT_SEC", 30),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envBool(k string, d bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}

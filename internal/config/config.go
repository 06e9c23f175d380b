// Package config provides configuration management for the umbrella driver.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values for a run.
type Config struct {
	Env string

	// Art-Net configuration
	ArtNetBroadcast    string
	ArtNetBroadcastSet bool   // ARTNET_BROADCAST was given explicitly
	ArtNetInterface    string // derive the broadcast address from this interface when set
	ArtNetPort         int
	ArtNetUniverse     int

	// Fixture configuration
	FixtureCount      int
	Brightness        int  // 0 (off) .. 8 (full); stored, not applied
	ControlBrightness bool // stored, not applied

	// Demo configuration
	ImagePath   string
	DemoHold    time.Duration
	DemoRainbow bool

	// Optional settings store; empty disables it
	DatabaseURL string
}

// Load loads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env: getEnv("ENV", "development"),

		// Art-Net
		ArtNetBroadcast:    getEnv("ARTNET_BROADCAST", "10.20.255.255"),
		ArtNetBroadcastSet: isEnvSet("ARTNET_BROADCAST"),
		ArtNetInterface:    getEnv("ARTNET_INTERFACE", ""),
		ArtNetPort:         getEnvInt("ARTNET_PORT", 6454),
		ArtNetUniverse:     getEnvInt("ARTNET_UNIVERSE", 3),

		// Fixtures
		FixtureCount:      getEnvInt("FIXTURE_COUNT", 12),
		Brightness:        getEnvInt("BRIGHTNESS", 6),
		ControlBrightness: getEnvBool("BRIGHTNESS_CONTROL", false),

		// Demo
		ImagePath:   getEnv("IMAGE_PATH", ""),
		DemoHold:    getEnvDuration("DEMO_HOLD", time.Second),
		DemoRainbow: getEnvBool("DEMO_RAINBOW", false),

		// Settings store
		DatabaseURL: getEnv("DATABASE_URL", ""),
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// HasSettingsStore returns true if a settings database is configured.
func (c *Config) HasSettingsStore() bool {
	return c.DatabaseURL != ""
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// isEnvSet reports whether key is set to a non-empty value.
func isEnvSet(key string) bool {
	value, exists := os.LookupEnv(key)
	return exists && value != ""
}

// getEnvInt returns the integer value of an environment variable or a default value.
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getEnvDuration reads a millisecond count and returns it as a duration.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}

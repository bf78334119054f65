package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultFeedURL is the feed served when nothing else is configured
const DefaultFeedURL = "https://nav.al/feed"

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load("./config/settings.yaml")
	})

	return initErr
}

// Reset clears the loaded configuration so Init can run again (for testing)
func Reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
}

func load(configPath string) error {
	setDefaults()

	// Environment variables override file values, e.g. FEEDCAST_FEED_URL
	viper.SetEnvPrefix("FEEDCAST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPath = filepath.Clean(configPath)
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env vars apply
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Set overrides a config value, used for command line flags
func Set(key string, value any) {
	viper.Set(key, value)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if strings.TrimSpace(viper.GetString("feed.url")) == "" {
		return fmt.Errorf("feed.url must not be empty")
	}

	if viper.GetDuration("feed.timeout") <= 0 {
		return fmt.Errorf("feed.timeout must be positive")
	}

	if err := validateTitleFormat(viper.GetString("feed.title_format")); err != nil {
		return err
	}

	if viper.GetString("database.path") == "" {
		log.Warn("No archive database path configured")
	}

	// Auto-correct invalid retry settings
	if viper.GetInt("feed.retry_attempts") <= 0 {
		viper.Set("feed.retry_attempts", 1)
	}

	if viper.GetInt("rate_limiting.rps") <= 0 {
		viper.Set("rate_limiting.rps", 10)
	}
	if viper.GetInt("rate_limiting.burst") <= 0 {
		viper.Set("rate_limiting.burst", 20)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if strings.TrimSpace(c.Feed.URL) == "" {
		return fmt.Errorf("feed.url must not be empty")
	}

	if c.Feed.Timeout <= 0 {
		return fmt.Errorf("feed.timeout must be positive")
	}

	if err := validateTitleFormat(c.Feed.TitleFormat); err != nil {
		return err
	}

	if c.Feed.RetryAttempts <= 0 {
		c.Feed.RetryAttempts = 1
	}

	if c.RateLimiting.RPS <= 0 {
		c.RateLimiting.RPS = 10
	}
	if c.RateLimiting.Burst <= 0 {
		c.RateLimiting.Burst = 20
	}

	return nil
}

// validateTitleFormat requires exactly one integer verb; an empty format
// leaves the parser default in place.
func validateTitleFormat(format string) error {
	if format == "" {
		return nil
	}
	if strings.Contains(fmt.Sprintf(format, 1), "%!") {
		return fmt.Errorf("feed.title_format %q must contain a single integer verb such as %%d", format)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.idle_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Feed defaults
	viper.SetDefault("feed.url", DefaultFeedURL)
	viper.SetDefault("feed.title", "Naval podcast feed")
	viper.SetDefault("feed.title_format", "episode #%d")
	viper.SetDefault("feed.timeout", 30*time.Second)
	viper.SetDefault("feed.user_agent", "feedcast/1.0")
	viper.SetDefault("feed.max_bytes", 50*1024*1024)
	viper.SetDefault("feed.retry_attempts", 3)
	viper.SetDefault("feed.retry_delay", 1*time.Second)

	// Archive database defaults
	viper.SetDefault("database.path", "./data/archive.db")
	viper.SetDefault("database.verbose", false)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 10)
	viper.SetDefault("rate_limiting.burst", 20)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.max_request_bytes", 1048576)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
	viper.SetDefault("monitoring.enable_docs", true)
}

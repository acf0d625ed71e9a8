package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all client configuration.
type Config struct {
	APIBase       string        `yaml:"api_base"`
	Feed          string        `yaml:"feed"`
	StoryLimit    int           `yaml:"story_limit"`
	MaxConcurrent int           `yaml:"max_concurrent"`
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	StaleGuard    bool          `yaml:"stale_guard"`

	Store         string `yaml:"store"`
	DBPath        string `yaml:"db_path"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	SearchKey     string `yaml:"search_key"`
	DefaultSearch string `yaml:"default_search"`

	RefreshCron     string `yaml:"refresh_cron"`
	LogFile         string `yaml:"log_file"`
	LogLevel        string `yaml:"log_level"`
	PreviewMaxChars int    `yaml:"preview_max_chars"`
}

// Defaults returns a Config with all default values set.
func Defaults() Config {
	return Config{
		APIBase:         DefaultAPIBase,
		Feed:            DefaultFeed,
		MaxConcurrent:   DefaultMaxConcurrent,
		HTTPTimeout:     DefaultHTTPTimeout,
		Store:           StoreSQLite,
		DBPath:          DefaultDBPath,
		RedisAddr:       DefaultRedisAddr,
		SearchKey:       DefaultSearchKey,
		DefaultSearch:   DefaultSearch,
		LogFile:         DefaultLogFile,
		LogLevel:        "info",
		PreviewMaxChars: DefaultPreviewMaxChars,
	}
}

// Load builds the configuration from defaults, an optional YAML file, a .env
// file and the environment, in that order of precedence (later wins).
// HS_CONFIG overrides path. A missing file is not an error.
func Load(path string) (Config, error) {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	if envPath := os.Getenv("HS_CONFIG"); envPath != "" {
		path = envPath
	}

	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.APIBase = getEnvOrDefault("HS_API_BASE", c.APIBase)
	c.Feed = getEnvOrDefault("HS_FEED", c.Feed)
	c.Store = getEnvOrDefault("HS_STORE", c.Store)
	c.DBPath = getEnvOrDefault("HS_DB_PATH", c.DBPath)
	c.RedisAddr = getEnvOrDefault("REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = getEnvOrDefault("REDIS_PASSWORD", c.RedisPassword)
	c.SearchKey = getEnvOrDefault("HS_SEARCH_KEY", c.SearchKey)
	c.DefaultSearch = getEnvOrDefault("HS_DEFAULT_SEARCH", c.DefaultSearch)
	c.RefreshCron = getEnvOrDefault("HS_REFRESH_CRON", c.RefreshCron)
	c.LogFile = getEnvOrDefault("HS_LOG_FILE", c.LogFile)
	c.LogLevel = getEnvOrDefault("HS_LOG_LEVEL", c.LogLevel)

	var err error
	if c.StoryLimit, err = getEnvInt("HS_STORY_LIMIT", c.StoryLimit); err != nil {
		return err
	}
	if c.MaxConcurrent, err = getEnvInt("HS_MAX_CONCURRENT", c.MaxConcurrent); err != nil {
		return err
	}
	if c.RedisDB, err = getEnvInt("REDIS_DB", c.RedisDB); err != nil {
		return err
	}
	if c.PreviewMaxChars, err = getEnvInt("HS_PREVIEW_MAX_CHARS", c.PreviewMaxChars); err != nil {
		return err
	}

	if v := os.Getenv("HS_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid HS_HTTP_TIMEOUT %q: %w", v, err)
		}
		c.HTTPTimeout = d
	}
	if v := os.Getenv("HS_STALE_GUARD"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid HS_STALE_GUARD %q: %w", v, err)
		}
		c.StaleGuard = b
	}
	return nil
}

// Validate checks that values are usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBase) == "" {
		return fmt.Errorf("api_base is required")
	}
	if strings.TrimSpace(c.Feed) == "" {
		return fmt.Errorf("feed is required")
	}
	if c.StoryLimit < 0 {
		return fmt.Errorf("story_limit must be >= 0, got %d", c.StoryLimit)
	}
	if c.MaxConcurrent < 0 {
		return fmt.Errorf("max_concurrent must be >= 0, got %d", c.MaxConcurrent)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive, got %s", c.HTTPTimeout)
	}
	if c.SearchKey == "" {
		return fmt.Errorf("search_key is required")
	}

	switch c.Store {
	case StoreSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("db_path is required for the sqlite store")
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis_addr is required for the redis store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store %q (want %s, %s or %s)", c.Store, StoreSQLite, StoreRedis, StoreMemory)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	return nil
}

// ListURL resolves the configured feed to the identifier-list URL
func (c Config) ListURL() string {
	return ResolveFeedURL(c.APIBase, c.Feed)
}

// ItemBaseURL returns the prefix for item requests
func (c Config) ItemBaseURL() string {
	return ItemBaseURL(c.APIBase)
}

// SlogLevel maps LogLevel to a slog level
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

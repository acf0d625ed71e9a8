package config

import "time"

// Hacker News API Constants
const (
	// DefaultAPIBase is the root of the Hacker News Firebase API
	DefaultAPIBase = "https://hacker-news.firebaseio.com/v0"

	// DefaultFeed is the feed preset loaded at startup
	DefaultFeed = "top"

	// DefaultHTTPTimeout bounds every list and item request
	DefaultHTTPTimeout = 10 * time.Second

	// DefaultMaxConcurrent limits in-flight item requests (0 means unbounded)
	DefaultMaxConcurrent = 20
)

// Search Term Constants
const (
	// DefaultSearchKey is the storage key holding the last search term
	DefaultSearchKey = "search"

	// DefaultSearch is used when nothing has been persisted yet
	DefaultSearch = "React"
)

// Storage Constants
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"

	// DefaultDBPath is the sqlite file used by the sqlite store
	DefaultDBPath = "./hackerstories.db"

	// DefaultRedisAddr matches the local redis used in development
	DefaultRedisAddr = "localhost:6379"
)

// Client Constants
const (
	// DefaultLogFile receives logs while the TUI owns the terminal
	DefaultLogFile = "hackerstories.log"

	// DefaultPreviewMaxChars truncates article previews
	DefaultPreviewMaxChars = 1500

	// DefaultConfigPath is read when present; a missing file is not an error
	DefaultConfigPath = "./hackerstories.yaml"
)

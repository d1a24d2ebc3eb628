package notak

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/notak/notak/pkg/store"
	"github.com/notak/notak/pkg/store/postgres"
	"github.com/notak/notak/pkg/store/sqlite"
)

// Config holds application configuration shared by all commands.
type Config struct {
	// Database configuration. SQLitePath selects the SQLite backend when
	// non-empty; otherwise PostgresDSN is used.
	PostgresDSN string
	SQLitePath  string

	// ReadOnly rejects all write operations at the store level.
	ReadOnly bool

	// Server configuration.
	ServerPort string
}

// App holds the application state: the persistence layer, configuration
// and the logger shared by handlers and middleware.
type App struct {
	store    store.Store
	config   *Config
	logger   zerolog.Logger
	readOnly bool // runtime read-only state, can be toggled
}

// New creates a new application instance and connects the configured
// store backend.
func New(config *Config) (*App, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	var appStore store.Store
	var err error
	if config.SQLitePath != "" {
		appStore, err = sqlite.NewSQLiteStore(config.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite store: %w", err)
		}
		logger.Info().Str("path", config.SQLitePath).Msg("opened SQLite store")
	} else {
		appStore, err = postgres.NewPostgresStore(config.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		logger.Info().Msg("connected to PostgreSQL")
	}

	app := &App{
		config:   config,
		logger:   logger,
		readOnly: config.ReadOnly,
	}

	// Wrap the store with read-only protection
	app.store = store.NewReadOnlyStore(appStore, app.IsReadOnly)

	return app, nil
}

// Close closes the application and its resources.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// Store returns the underlying store (useful for testing).
func (a *App) Store() store.Store {
	return a.store
}

// SetReadOnly toggles the application's read-only mode at runtime.
// While enabled, the ReadOnlyStore wrapper rejects Create, Update and
// Delete; reads continue to work. Intended for maintenance windows such
// as database backups.
func (a *App) SetReadOnly(readOnly bool) {
	a.readOnly = readOnly
	a.logger.Info().Bool("read_only", readOnly).Msg("application read-only mode changed")
}

// IsReadOnly reports whether the application is currently read-only.
// Checked by the ReadOnlyStore wrapper on every write operation.
func (a *App) IsReadOnly() bool {
	return a.readOnly
}

// getEnv retrieves an environment variable with a fallback default.
// Empty values are treated the same as unset ones.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

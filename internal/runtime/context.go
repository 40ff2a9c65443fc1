package runtime

import (
	"ohmytheme.dev/ohmytheme/internal/cache"
	"ohmytheme.dev/ohmytheme/internal/config"
	"ohmytheme.dev/ohmytheme/internal/tui"
)

// Context provides access to the store, cache, and output for commands
type Context struct {
	Store *config.Store
	Cache *cache.Manager
	Splog *tui.Splog
}

// NewContext creates a new context with the given store and cache manager
func NewContext(store *config.Store, cacheManager *cache.Manager) *Context {
	return &Context{
		Store: store,
		Cache: cacheManager,
		Splog: tui.NewSplog(),
	}
}

// GetContext resolves the user-level store and cache locations and
// creates a context with file logging enabled.
func GetContext() (*Context, error) {
	store, err := config.DefaultStore()
	if err != nil {
		return nil, err
	}

	cacheManager, err := cache.DefaultManager()
	if err != nil {
		return nil, err
	}

	ctx := NewContext(store, cacheManager)

	// File logging is best-effort; an unwritable log location falls
	// back to console-only output
	if splog, err := tui.NewSplogWithLogFile(tui.GetLogFilePath()); err == nil {
		ctx.Splog = splog
	}

	return ctx, nil
}

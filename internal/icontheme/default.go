package icontheme

import (
	"sync"

	"github.com/deji/icon-lookup/internal/config"
	"github.com/deji/icon-lookup/internal/logger"
)

// Process-wide state used by SetIconTheme and IconPath
var (
	defaultMu     sync.RWMutex
	defaultLoader *Loader
	activeTheme   = FallbackTheme
)

// Default returns the process-wide loader, building it from the
// environment on first use.
func Default() *Loader {
	defaultMu.RLock()
	l := defaultLoader
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLoader == nil {
		cfg, err := config.Load()
		if err != nil {
			logger.Warn("Ignoring icon environment: %v", err)
			cfg, _ = config.LoadFrom(nil)
		}
		defaultLoader = NewLoader(cfg)
	}
	return defaultLoader
}

// SetDefault replaces the process-wide loader
func SetDefault(l *Loader) {
	defaultMu.Lock()
	defaultLoader = l
	defaultMu.Unlock()
}

// SetIconTheme sets the theme IconPath searches first
func SetIconTheme(name string) {
	defaultMu.Lock()
	activeTheme = name
	defaultMu.Unlock()
	logger.Debug("Active icon theme set to '%s'", name)
}

// IconTheme returns the active theme name
func IconTheme() string {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return activeTheme
}

// IconPath resolves icon at size in the active theme with the default
// loader. It returns "" when no file matches.
func IconPath(icon string, size int) string {
	return Default().FindIcon(icon, size, IconTheme())
}

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

var (
	defaultDataDirs   = []string{"/usr/local/share", "/usr/share"}
	defaultExtensions = []string{"png", "svg", "xpm"}
)

// Config holds the environment that decides where icons are searched
type Config struct {
	Home       string   `env:"HOME"`
	DataHome   string   `env:"XDG_DATA_HOME"`
	DataDirs   []string `env:"XDG_DATA_DIRS" envSeparator:":"`
	PixmapsDir string   `env:"ICON_LOOKUP_PIXMAPS_DIR" envDefault:"/usr/share/pixmaps"`
	Extensions []string `env:"ICON_LOOKUP_EXTENSIONS" envSeparator:","`
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom reads the configuration from the given variables only
func LoadFrom(environ map[string]string) (*Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	c.DataDirs = compact(c.DataDirs)
	if len(c.DataDirs) == 0 {
		c.DataDirs = append([]string(nil), defaultDataDirs...)
	}

	exts := compact(c.Extensions)
	for i, ext := range exts {
		exts[i] = strings.ToLower(strings.TrimPrefix(ext, "."))
	}
	c.Extensions = exts
	if len(c.Extensions) == 0 {
		c.Extensions = append([]string(nil), defaultExtensions...)
	}

	if strings.TrimSpace(c.DataHome) == "" && c.Home != "" {
		c.DataHome = filepath.Join(c.Home, ".local", "share")
	}
}

// BaseDirs returns the icon base directories in lookup order:
// $XDG_DATA_HOME/icons, $HOME/.icons, each $XDG_DATA_DIRS/icons, then the
// pixmaps directory. Duplicates keep their first position.
func (c *Config) BaseDirs() []string {
	var dirs []string
	if c.DataHome != "" {
		dirs = append(dirs, filepath.Join(c.DataHome, "icons"))
	}
	if c.Home != "" {
		dirs = append(dirs, filepath.Join(c.Home, ".icons"))
	}
	for _, d := range c.DataDirs {
		dirs = append(dirs, filepath.Join(d, "icons"))
	}
	if c.PixmapsDir != "" {
		dirs = append(dirs, filepath.Clean(c.PixmapsDir))
	}

	seen := make(map[string]bool, len(dirs))
	out := dirs[:0]
	for _, d := range dirs {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

func compact(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

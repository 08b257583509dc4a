package icontheme

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/deji/icon-lookup/internal/config"
	"github.com/deji/icon-lookup/internal/logger"
)

// ErrThemeNotFound is returned when no base directory holds <theme>/index.theme
var ErrThemeNotFound = errors.New("icon theme not found")

// Icon is a file found by Loader.Icons
type Icon struct {
	Name    string
	Path    string
	Theme   string
	Context Context
}

// Loader resolves icons against a fixed set of base directories.
// Parsed themes are cached until Reload.
type Loader struct {
	baseDirs   []string
	extensions []string

	mu     sync.Mutex
	themes map[string]*Theme
}

// NewLoader creates a loader for the base directories and extensions of cfg
func NewLoader(cfg *config.Config) *Loader {
	return &Loader{
		baseDirs:   cfg.BaseDirs(),
		extensions: append([]string(nil), cfg.Extensions...),
		themes:     make(map[string]*Theme),
	}
}

// BaseDirs returns the directories searched, in order
func (l *Loader) BaseDirs() []string {
	return append([]string(nil), l.baseDirs...)
}

// Extensions returns the file extensions tried, in order
func (l *Loader) Extensions() []string {
	return append([]string(nil), l.extensions...)
}

// WithExtensions returns a loader sharing l's base directories that tries
// only exts. The theme cache is not shared.
func (l *Loader) WithExtensions(exts []string) *Loader {
	var clean []string
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			clean = append(clean, ext)
		}
	}
	if len(clean) == 0 {
		clean = l.Extensions()
	}
	return &Loader{
		baseDirs:   l.BaseDirs(),
		extensions: clean,
		themes:     make(map[string]*Theme),
	}
}

// Reload drops every cached theme
func (l *Loader) Reload() {
	l.mu.Lock()
	l.themes = make(map[string]*Theme)
	l.mu.Unlock()
}

// Theme returns the parsed metadata of the named theme. The first base
// directory holding <name>/index.theme wins.
func (l *Loader) Theme(name string) (*Theme, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) {
		return nil, fmt.Errorf("%w: invalid name %q", ErrThemeNotFound, name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if theme, ok := l.themes[name]; ok {
		if theme == nil {
			return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
		}
		return theme, nil
	}

	for _, base := range l.baseDirs {
		index := filepath.Join(base, name, indexFile)
		if !fileExists(index) {
			continue
		}

		theme, err := parseIndex(name, index)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded icon theme '%s' from %s", name, index)
		if logger.IsDebugEnabled() {
			for _, dir := range theme.Directories {
				logger.Debug("  %s: size %d (%d-%d) type %s context %s", dir.Path, dir.Size, dir.MinSize, dir.MaxSize, dir.Type, dir.Context)
			}
		}
		l.themes[name] = theme
		return theme, nil
	}

	l.themes[name] = nil
	return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
}

// FindIcon resolves icon at size in theme: the theme and its parents
// first, then hicolor, then unthemed icons directly inside the base
// directories. It returns "" when nothing matches.
func (l *Loader) FindIcon(icon string, size int, theme string) string {
	if icon == "" {
		return ""
	}
	if filepath.IsAbs(icon) {
		return icon
	}
	icon = l.stripExtension(icon)

	visited := make(map[string]bool)
	if path := l.findInTree(icon, size, theme, visited); path != "" {
		return path
	}
	if path := l.findInTree(icon, size, FallbackTheme, visited); path != "" {
		return path
	}
	return l.lookupFallback(icon)
}

// findInTree searches name and then its parents depth first. Themes
// already in visited are skipped so cyclic Inherits terminate.
func (l *Loader) findInTree(icon string, size int, name string, visited map[string]bool) string {
	if visited[name] {
		return ""
	}
	visited[name] = true

	theme, err := l.Theme(name)
	if err != nil {
		logger.Debug("Skipping theme '%s': %v", name, err)
		return ""
	}

	if path := l.lookupInTheme(theme, icon, size); path != "" {
		return path
	}
	for _, parent := range theme.Parents() {
		if path := l.findInTree(icon, size, parent, visited); path != "" {
			return path
		}
	}
	return ""
}

// lookupInTheme prefers any directory matching size exactly, in index
// order, and otherwise the existing file with the smallest size distance.
func (l *Loader) lookupInTheme(theme *Theme, icon string, size int) string {
	for _, dir := range theme.Directories {
		if !dir.MatchesSize(size) {
			continue
		}
		if path := l.firstExisting(theme.Name, dir.Path, icon); path != "" {
			logger.Debug("Matched '%s' at size %d in %s", icon, size, path)
			return path
		}
	}

	closest := ""
	minimal := math.MaxInt
	for _, dir := range theme.Directories {
		distance := dir.SizeDistance(size)
		if distance >= minimal {
			continue
		}
		if path := l.firstExisting(theme.Name, dir.Path, icon); path != "" {
			closest = path
			minimal = distance
		}
	}
	if closest != "" {
		logger.Debug("Closest match for '%s' at size %d is %s (distance %d)", icon, size, closest, minimal)
	}
	return closest
}

func (l *Loader) firstExisting(theme, subdir, icon string) string {
	for _, base := range l.baseDirs {
		for _, ext := range l.extensions {
			path := filepath.Join(base, theme, subdir, icon+"."+ext)
			if fileExists(path) {
				return path
			}
		}
	}
	return ""
}

func (l *Loader) lookupFallback(icon string) string {
	for _, base := range l.baseDirs {
		for _, ext := range l.extensions {
			path := filepath.Join(base, icon+"."+ext)
			if fileExists(path) {
				logger.Debug("Using unthemed icon %s", path)
				return path
			}
		}
	}
	return ""
}

func (l *Loader) stripExtension(icon string) string {
	ext := filepath.Ext(icon)
	if ext == "" {
		return icon
	}
	for _, known := range l.extensions {
		if strings.EqualFold(ext[1:], known) {
			return strings.TrimSuffix(icon, ext)
		}
	}
	return icon
}

// Themes lists every installed theme, sorted by directory name. A name
// present in several base directories is reported once.
func (l *Loader) Themes() ([]*Theme, error) {
	seen := make(map[string]bool)
	var themes []*Theme

	for _, base := range l.baseDirs {
		entries, err := os.ReadDir(base)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				logger.Debug("Cannot read %s: %v", base, err)
			}
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if seen[name] || !fileExists(filepath.Join(base, name, indexFile)) {
				continue
			}
			seen[name] = true

			theme, err := l.Theme(name)
			if err != nil {
				logger.Warn("Skipping theme '%s': %v", name, err)
				continue
			}
			themes = append(themes, theme)
		}
	}

	sort.Slice(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return themes, nil
}

// Icons lists the icons usable at size in theme and its parents. When ctx
// is not ContextAny only directories of that context are scanned. The
// first file for a given icon name wins, following lookup precedence.
func (l *Loader) Icons(theme string, size int, ctx Context) ([]Icon, error) {
	if _, err := l.Theme(theme); err != nil {
		return nil, err
	}

	found := make(map[string]Icon)
	visited := make(map[string]bool)
	l.collectIcons(theme, size, ctx, visited, found)

	icons := make([]Icon, 0, len(found))
	for _, icon := range found {
		icons = append(icons, icon)
	}
	sort.Slice(icons, func(i, j int) bool { return icons[i].Name < icons[j].Name })
	return icons, nil
}

func (l *Loader) collectIcons(name string, size int, ctx Context, visited map[string]bool, found map[string]Icon) {
	if visited[name] {
		return
	}
	visited[name] = true

	theme, err := l.Theme(name)
	if err != nil {
		logger.Debug("Skipping theme '%s': %v", name, err)
		return
	}

	allowed := make(map[string]bool, len(l.extensions))
	for _, ext := range l.extensions {
		allowed[ext] = true
	}

	for _, dir := range theme.Directories {
		if !dir.MatchesSize(size) || (ctx != ContextAny && dir.Context != ctx) {
			continue
		}
		for _, base := range l.baseDirs {
			entries, err := os.ReadDir(filepath.Join(base, theme.Name, dir.Path))
			if err != nil {
				continue
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				file := entry.Name()
				ext := strings.TrimPrefix(filepath.Ext(file), ".")
				if !allowed[strings.ToLower(ext)] {
					continue
				}
				iconName := strings.TrimSuffix(file, filepath.Ext(file))
				if _, ok := found[iconName]; ok {
					continue
				}
				found[iconName] = Icon{
					Name:    iconName,
					Path:    filepath.Join(base, theme.Name, dir.Path, file),
					Theme:   theme.Name,
					Context: dir.Context,
				}
			}
		}
	}

	for _, parent := range theme.Parents() {
		l.collectIcons(parent, size, ctx, visited, found)
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

package icontheme

import (
	"fmt"
	"strings"

	"github.com/deji/icon-lookup/internal/logger"
	"gopkg.in/ini.v1"
)

const (
	indexFile    = "index.theme"
	themeSection = "Icon Theme"

	// FallbackTheme is searched after the active theme and its parents
	FallbackTheme = "hicolor"
)

// DirType is the size-matching rule of a theme directory
type DirType int

const (
	DirThreshold DirType = iota
	DirFixed
	DirScalable
)

func (t DirType) String() string {
	switch t {
	case DirFixed:
		return "Fixed"
	case DirScalable:
		return "Scalable"
	default:
		return "Threshold"
	}
}

func parseDirType(s string) DirType {
	switch strings.TrimSpace(s) {
	case "Fixed":
		return DirFixed
	case "Scalable":
		return DirScalable
	default:
		return DirThreshold
	}
}

// Directory is one subdirectory entry of an index.theme
type Directory struct {
	Path      string
	Size      int
	Scale     int
	MinSize   int
	MaxSize   int
	Threshold int
	Type      DirType
	Context   Context
}

// Theme is a parsed index.theme
type Theme struct {
	// Name is the theme's directory name, used in lookups
	Name        string
	DisplayName string
	Comment     string
	Inherits    []string
	Hidden      bool
	Directories []Directory

	// IndexPath is the index.theme the metadata was read from
	IndexPath string
}

// Parents returns the themes to search after t. A theme that names no
// parents inherits hicolor, except hicolor itself.
func (t *Theme) Parents() []string {
	if len(t.Inherits) > 0 {
		return t.Inherits
	}
	if t.Name == FallbackTheme {
		return nil
	}
	return []string{FallbackTheme}
}

// parseIndex reads an index.theme file. Directory groups with a missing or
// invalid Size are skipped with a warning.
func parseIndex(name, path string) (*Theme, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters:      "=",
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	sec, err := f.GetSection(themeSection)
	if err != nil {
		return nil, fmt.Errorf("%s has no [%s] group", path, themeSection)
	}

	theme := &Theme{
		Name:        name,
		DisplayName: sec.Key("Name").String(),
		Comment:     sec.Key("Comment").String(),
		Inherits:    splitList(sec.Key("Inherits").String()),
		Hidden:      sec.Key("Hidden").MustBool(false),
		IndexPath:   path,
	}
	if theme.DisplayName == "" {
		theme.DisplayName = name
	}

	subdirs := splitList(sec.Key("Directories").String())
	subdirs = append(subdirs, splitList(sec.Key("ScaledDirectories").String())...)

	seen := make(map[string]bool, len(subdirs))
	for _, subdir := range subdirs {
		if seen[subdir] {
			continue
		}
		seen[subdir] = true

		dir, ok := parseDirectory(f, subdir)
		if !ok {
			logger.Warn("Bad entry '%s' in %s, skipping...", subdir, path)
			continue
		}
		theme.Directories = append(theme.Directories, dir)
	}

	logger.Debug("Parsed %s: %d directories, inherits %v", path, len(theme.Directories), theme.Inherits)
	return theme, nil
}

func parseDirectory(f *ini.File, subdir string) (Directory, bool) {
	sec, err := f.GetSection(subdir)
	if err != nil || !sec.HasKey("Size") {
		return Directory{}, false
	}

	size, err := sec.Key("Size").Int()
	if err != nil || size <= 0 {
		return Directory{}, false
	}

	dir := Directory{
		Path:      subdir,
		Size:      size,
		Scale:     sec.Key("Scale").MustInt(1),
		MinSize:   sec.Key("MinSize").MustInt(size),
		MaxSize:   sec.Key("MaxSize").MustInt(size),
		Threshold: sec.Key("Threshold").MustInt(2),
		Type:      parseDirType(sec.Key("Type").String()),
		Context:   ParseContext(sec.Key("Context").String()),
	}
	if dir.Scale < 1 {
		dir.Scale = 1
	}
	return dir, true
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"reflect"
	"testing"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"HOME": "/home/ede"})
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.DataHome != "/home/ede/.local/share" {
		t.Errorf("DataHome = %q, expected derived from HOME", cfg.DataHome)
	}
	if !reflect.DeepEqual(cfg.DataDirs, []string{"/usr/local/share", "/usr/share"}) {
		t.Errorf("DataDirs = %v, expected defaults", cfg.DataDirs)
	}
	if cfg.PixmapsDir != "/usr/share/pixmaps" {
		t.Errorf("PixmapsDir = %q", cfg.PixmapsDir)
	}
	if !reflect.DeepEqual(cfg.Extensions, []string{"png", "svg", "xpm"}) {
		t.Errorf("Extensions = %v, expected png,svg,xpm", cfg.Extensions)
	}
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"HOME":                    "/home/ede",
		"XDG_DATA_HOME":           "/data",
		"XDG_DATA_DIRS":           "/opt/kde/share::/usr/share",
		"ICON_LOOKUP_PIXMAPS_DIR": "/srv/pixmaps/",
		"ICON_LOOKUP_EXTENSIONS":  ".PNG, xpm",
	})
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.DataHome != "/data" {
		t.Errorf("DataHome = %q, expected /data", cfg.DataHome)
	}
	if !reflect.DeepEqual(cfg.DataDirs, []string{"/opt/kde/share", "/usr/share"}) {
		t.Errorf("DataDirs = %v, empty entries should be dropped", cfg.DataDirs)
	}
	if !reflect.DeepEqual(cfg.Extensions, []string{"png", "xpm"}) {
		t.Errorf("Extensions = %v, expected normalized png,xpm", cfg.Extensions)
	}

	expected := []string{
		"/data/icons",
		"/home/ede/.icons",
		"/opt/kde/share/icons",
		"/usr/share/icons",
		"/srv/pixmaps",
	}
	if got := cfg.BaseDirs(); !reflect.DeepEqual(got, expected) {
		t.Errorf("BaseDirs() = %v, expected %v", got, expected)
	}
}

func TestBaseDirsDeduplicates(t *testing.T) {
	cfg := &Config{
		Home:       "/home/ede",
		DataHome:   "/usr/share",
		DataDirs:   []string{"/usr/share", "/usr/local/share"},
		PixmapsDir: "/usr/share/pixmaps",
	}

	expected := []string{
		"/usr/share/icons",
		"/home/ede/.icons",
		"/usr/local/share/icons",
		"/usr/share/pixmaps",
	}
	if got := cfg.BaseDirs(); !reflect.DeepEqual(got, expected) {
		t.Errorf("BaseDirs() = %v, expected %v", got, expected)
	}
}

func TestBaseDirsWithoutHome(t *testing.T) {
	cfg, err := LoadFrom(nil)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.DataHome != "" {
		t.Errorf("DataHome should stay empty without HOME, got %q", cfg.DataHome)
	}

	dirs := cfg.BaseDirs()
	if len(dirs) != 3 || dirs[0] != "/usr/local/share/icons" {
		t.Errorf("BaseDirs() = %v, expected system dirs and pixmaps only", dirs)
	}
}

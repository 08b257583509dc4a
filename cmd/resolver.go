package cmd

import (
	"context"

	"github.com/deji/icon-lookup/internal/icontheme"
)

// IconResolver interface for dependency injection
type IconResolver interface {
	SetTheme(ctx context.Context, name string)
	IconPath(ctx context.Context, icon string, size int) string
}

// ThemeCatalog lists what is installed
type ThemeCatalog interface {
	Themes(ctx context.Context) ([]*icontheme.Theme, error)
	Icons(ctx context.Context, theme string, size int, iconCtx icontheme.Context) ([]icontheme.Icon, error)
}

// DefaultIconResolver resolves through the process-wide icontheme state.
// A non-empty Extensions overrides the configured extension order.
type DefaultIconResolver struct {
	Extensions []string
}

func (d *DefaultIconResolver) SetTheme(ctx context.Context, name string) {
	icontheme.SetIconTheme(name)
}

func (d *DefaultIconResolver) IconPath(ctx context.Context, icon string, size int) string {
	if len(d.Extensions) == 0 {
		return icontheme.IconPath(icon, size)
	}
	return icontheme.Default().WithExtensions(d.Extensions).FindIcon(icon, size, icontheme.IconTheme())
}

// DefaultThemeCatalog reads themes through the process-wide loader
type DefaultThemeCatalog struct {
	Extensions []string
}

func (d *DefaultThemeCatalog) loader() *icontheme.Loader {
	if len(d.Extensions) == 0 {
		return icontheme.Default()
	}
	return icontheme.Default().WithExtensions(d.Extensions)
}

func (d *DefaultThemeCatalog) Themes(ctx context.Context) ([]*icontheme.Theme, error) {
	return d.loader().Themes()
}

func (d *DefaultThemeCatalog) Icons(ctx context.Context, theme string, size int, iconCtx icontheme.Context) ([]icontheme.Icon, error) {
	return d.loader().Icons(theme, size, iconCtx)
}

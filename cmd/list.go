package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/deji/icon-lookup/internal/icontheme"
	"github.com/deji/icon-lookup/internal/logger"
	"github.com/spf13/cobra"
)

var listContext string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <icon-theme> <icon-size>",
	Short: "List every icon available at a size in a theme",
	Long: `List every icon usable at the given size in a theme and the themes it
inherits from. Each line holds the icon name and the file it resolves to.

Use --context to restrict the listing to one kind of icon, for example
Applications, Actions, Devices or MimeTypes.

Example:
  icon-lookup list Adwaita 48 --context Applications`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := parseIconSize(args[1])
		if err != nil {
			return err
		}
		iconCtx, err := parseContextFlag(listContext)
		if err != nil {
			return err
		}
		return listIcons(cmd.Context(), cmd.OutOrStdout(), &DefaultThemeCatalog{Extensions: extensions}, args[0], size, iconCtx)
	},
}

func parseContextFlag(value string) (icontheme.Context, error) {
	if value == "" {
		return icontheme.ContextAny, nil
	}
	iconCtx, ok := icontheme.LookupContext(value)
	if !ok {
		return icontheme.ContextAny, fmt.Errorf("unknown icon context %q (valid: %s)", value, strings.Join(icontheme.ContextNames(), ", "))
	}
	return iconCtx, nil
}

func listIcons(ctx context.Context, out io.Writer, catalog ThemeCatalog, theme string, size int, iconCtx icontheme.Context) error {
	icons, err := catalog.Icons(ctx, theme, size, iconCtx)
	if err != nil {
		return fmt.Errorf("failed to list icons: %w", err)
	}

	logger.Debug("Found %d icons of size %d in theme '%s'", len(icons), size, theme)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, icon := range icons {
		fmt.Fprintf(w, "%s\t%s\n", icon.Name, icon.Path)
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listContext, "context", "c", "", "Only list icons of this context (e.g. Applications, Actions)")
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var showHiddenThemes bool

// themesCmd represents the themes command
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List installed icon themes",
	Long: `List the icon themes found in the icon base directories.

Each line shows the theme directory name (the value to pass to icon-lookup),
its display name and the themes it inherits from. Themes marked Hidden in
their index.theme, such as hicolor, are only listed with --all.

Example:
  icon-lookup themes --all`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listThemes(cmd.Context(), cmd.OutOrStdout(), &DefaultThemeCatalog{Extensions: extensions}, showHiddenThemes)
	},
}

func listThemes(ctx context.Context, out io.Writer, catalog ThemeCatalog, all bool) error {
	themes, err := catalog.Themes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list themes: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, theme := range themes {
		if theme.Hidden && !all {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", theme.Name, theme.DisplayName, strings.Join(theme.Parents(), ","))
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(themesCmd)

	themesCmd.Flags().BoolVarP(&showHiddenThemes, "all", "a", false, "Include hidden themes")
}

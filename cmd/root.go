/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/deji/icon-lookup/internal/logger"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	extensions []string
)

// rootCmd resolves an icon when called with exactly three arguments
var rootCmd = &cobra.Command{
	Use:   "icon-lookup <icon-theme> <icon-name> <icon-size>",
	Short: "Resolve a freedesktop icon name to a file path",
	Long: `icon-lookup resolves an icon name to a file path following the freedesktop
Icon Theme Specification. The given theme is searched first, then the themes it
inherits, then hicolor, then unthemed icons in the base directories.

The resolved path is printed on its own line. When no icon matches, an empty
line is printed.

Flags go before the positional arguments, so a negative size such as -5 is
passed to the lookup as a size.

Example:
  icon-lookup Adwaita document-open 48`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevelFromString(logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			printUsage(cmd.OutOrStdout(), cmd.Root().Name())
			return nil
		}

		size, err := parseIconSize(args[2])
		if err != nil {
			return err
		}

		resolver := &DefaultIconResolver{Extensions: extensions}
		return lookupIcon(cmd.Context(), cmd.OutOrStdout(), resolver, args[0], args[1], size)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

func execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("%v", err)
	}
	return err
}

func printUsage(w io.Writer, fallback string) {
	fmt.Fprintf(w, "Usage: %s <icon-theme> <icon-name> <icon-size>\n", programName(fallback))
}

// programName is argv[0] as invoked, or fallback when it is empty
func programName(fallback string) string {
	if len(os.Args) > 0 && os.Args[0] != "" {
		return os.Args[0]
	}
	return fallback
}

func parseIconSize(arg string) (int, error) {
	size, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid icon size %q: %w", arg, err)
	}
	return size, nil
}

// lookupIcon activates theme and prints the resolved path, or an empty
// line when nothing matches
func lookupIcon(ctx context.Context, out io.Writer, resolver IconResolver, theme, icon string, size int) error {
	resolver.SetTheme(ctx, theme)

	path := resolver.IconPath(ctx, icon, size)
	if path == "" {
		logger.Debug("No icon '%s' at size %d in theme '%s'", icon, size, theme)
	} else {
		logger.Debug("Resolved '%s' to %s", icon, path)
	}

	_, err := fmt.Fprintln(out, path)
	return err
}

func init() {
	// Stop flag parsing at the icon theme so "-5" stays a size
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Set the logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringSliceVarP(&extensions, "extensions", "e", nil, "Icon file extensions to try, in order (default from ICON_LOOKUP_EXTENSIONS or png,svg,xpm)")
}

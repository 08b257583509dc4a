package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/deji/icon-lookup/internal/config"
	"github.com/deji/icon-lookup/internal/icontheme"
	"github.com/deji/icon-lookup/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// setupQuietTesting sets up quiet logging for tests that don't need log output
// Returns a cleanup function that should be called with defer
func setupQuietTesting() func() {
	return logger.QuietTests()
}

// hasSubcommand reports whether rootCmd has a child with the given name
func hasSubcommand(name string) bool {
	for _, c := range rootCmd.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// resetFlags restores every flag of c and its children to its default.
// cobra commands are package globals, so parsed values survive between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// executeRoot runs rootCmd with args and returns what it printed
func executeRoot(args ...string) (string, error) {
	return executeWith(rootCmd.Execute, args...)
}

// executeWith prepares rootCmd for args and calls run, which is expected
// to execute rootCmd
func executeWith(run func() error, args ...string) (string, error) {
	resetFlags(rootCmd)
	if args == nil {
		args = []string{}
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := run()
	return buf.String(), err
}

// iconTree is a throwaway icon base directory installed as the
// process-wide loader
type iconTree struct {
	t    *testing.T
	root string
}

func newIconTree(t *testing.T) *iconTree {
	t.Helper()

	root := t.TempDir()
	cfg, err := config.LoadFrom(map[string]string{
		"HOME":                    filepath.Join(root, "home"),
		"XDG_DATA_DIRS":           filepath.Join(root, "share"),
		"ICON_LOOKUP_PIXMAPS_DIR": filepath.Join(root, "pixmaps"),
	})
	if err != nil {
		t.Fatalf("config.LoadFrom failed: %v", err)
	}

	originalTheme := icontheme.IconTheme()
	icontheme.SetDefault(icontheme.NewLoader(cfg))
	t.Cleanup(func() {
		icontheme.SetDefault(nil)
		icontheme.SetIconTheme(originalTheme)
	})

	return &iconTree{t: t, root: root}
}

func (it *iconTree) iconsDir() string {
	return filepath.Join(it.root, "share", "icons")
}

func (it *iconTree) theme(name, index string) {
	it.t.Helper()
	it.write(filepath.Join(it.iconsDir(), name, "index.theme"), []byte(index))
}

// icon writes an icon file below <theme>/<subdir> and returns its path
func (it *iconTree) icon(theme, subdir, file string, data []byte) string {
	it.t.Helper()
	path := filepath.Join(it.iconsDir(), theme, subdir, file)
	it.write(path, data)
	return path
}

func (it *iconTree) write(path string, data []byte) {
	it.t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		it.t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		it.t.Fatalf("write: %v", err)
	}
}

const testHicolorIndex = `[Icon Theme]
Name=Hicolor
Hidden=true
Directories=16x16/apps,48x48/apps,scalable/apps

[16x16/apps]
Size=16
Context=Applications

[48x48/apps]
Size=48
Context=Applications

[scalable/apps]
Size=128
MinSize=8
MaxSize=512
Type=Scalable
Context=Applications
`

const testEdeIndex = `[Icon Theme]
Name=EDE
Comment=Equinox Desktop Environment
Directories=32x32/apps,32x32/actions

[32x32/apps]
Size=32
Type=Fixed
Context=Applications

[32x32/actions]
Size=32
Type=Fixed
Context=Actions
`

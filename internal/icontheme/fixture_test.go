package icontheme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deji/icon-lookup/internal/config"
)

// fixture lays out a fake icon tree:
//
//	<root>/home/.icons         user themes
//	<root>/usr/share/icons     system themes
//	<root>/pixmaps             unthemed icons
type fixture struct {
	t    *testing.T
	root string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{t: t, root: t.TempDir()}
}

func (f *fixture) userDir() string {
	return filepath.Join(f.root, "home", ".icons")
}

func (f *fixture) systemDir() string {
	return filepath.Join(f.root, "usr", "share", "icons")
}

func (f *fixture) pixmapsDir() string {
	return filepath.Join(f.root, "pixmaps")
}

func (f *fixture) config() *config.Config {
	return &config.Config{
		Home:       filepath.Join(f.root, "home"),
		DataDirs:   []string{filepath.Join(f.root, "usr", "share")},
		PixmapsDir: f.pixmapsDir(),
		Extensions: []string{"png", "svg", "xpm"},
	}
}

func (f *fixture) loader() *Loader {
	return NewLoader(f.config())
}

// index writes <base>/<theme>/index.theme
func (f *fixture) index(base, theme, content string) {
	f.t.Helper()
	f.write(filepath.Join(base, theme, "index.theme"), content)
}

// icon creates an empty icon file and returns its path
func (f *fixture) icon(parts ...string) string {
	f.t.Helper()
	path := filepath.Join(parts...)
	f.write(path, "")
	return path
}

func (f *fixture) write(path, content string) {
	f.t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		f.t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		f.t.Fatalf("write %s: %v", path, err)
	}
}

const hicolorIndex = `[Icon Theme]
Name=Hicolor
Comment=Fallback icon theme
Hidden=true
Directories=16x16/apps,48x48/apps,scalable/apps

[16x16/apps]
Size=16
Context=Applications
Type=Threshold

[48x48/apps]
Size=48
Context=Applications
Type=Threshold

[scalable/apps]
Size=128
MinSize=8
MaxSize=512
Context=Applications
Type=Scalable
`

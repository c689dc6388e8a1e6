package assets

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/brawlcore/leveldata"
)

var (
	//go:embed levels/*.tmx
	levelFS embed.FS

	//go:embed attacks/*.yaml
	attackFS embed.FS
)

// Dir is where edited copies of the embedded tables are looked up first.
var Dir = "assets"

// Load returns an authored file, preferring the copy under Dir on disk so
// tables can be edited without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(DiskPath(clean)); err == nil {
		return data, nil
	}
	return attackFS.ReadFile(clean)
}

// DiskPath is the on-disk location of an authored file.
func DiskPath(name string) string {
	return filepath.Join(Dir, filepath.FromSlash(cleanPath(name)))
}

func cleanPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}

// LoadArena loads an embedded arena by stem name.
func LoadArena(name string) (*leveldata.Arena, error) {
	return leveldata.LoadArena(levelFS, "levels/"+name+".tmx")
}

// LoadArenas loads every embedded arena.
func LoadArenas() (map[string]*leveldata.Arena, []string, error) {
	return leveldata.LoadAllArenas(levelFS, "levels")
}

package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from an arena.
const (
	LayerSolid         = "solid"
	GroupPlatforms     = "Platforms"
	GroupPlayerSpawn   = "PlayerSpawn"
	GroupEnemySpawn    = "EnemySpawn"
	GroupDestructibles = "Destructibles"
	DefaultEnemyType   = "grunt"
)

// ErrNoSpawn is returned for an arena without a player spawn point.
var ErrNoSpawn = errors.New("arena has no player spawn")

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
		TileSize:  levelMap.TileWidth,
	}

	// Parse solid tiles
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerSolid {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				arena.SolidRects = append(arena.SolidRects, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				arena.PlatformRects = append(arena.PlatformRects, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupDestructibles:
			for _, o := range og.Objects {
				arena.Destructibles = append(arena.Destructibles, Destructible{
					Rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					HP:   o.Properties.GetFloat("hp"),
				})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				arena.PlayerSpawns = append(arena.PlayerSpawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case GroupEnemySpawn:
			for _, o := range og.Objects {
				kind := o.Properties.GetString("type")
				if kind == "" {
					kind = DefaultEnemyType
				}
				arena.EnemySpawns = append(arena.EnemySpawns, EnemySpawn{
					X:    o.X,
					Y:    o.Y,
					Type: kind,
					Wave: o.Properties.GetBool("wave"),
				})
			}
		}
	}

	if len(arena.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}

	// Sort spawns by index, then left-to-right for consistent assignment
	sort.Slice(arena.PlayerSpawns, func(i, j int) bool {
		a, b := arena.PlayerSpawns[i], arena.PlayerSpawns[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}

// Package leveldata parses arena TMX files into plain collision and spawn
// data. It has no dependencies on donburi or resolv.
package leveldata

// Arena holds everything the simulation needs from one TMX arena.
type Arena struct {
	Name          string
	SolidRects    []Rect
	PlatformRects []Rect
	Destructibles []Destructible
	PlayerSpawns  []SpawnPoint
	EnemySpawns   []EnemySpawn
	MapWidth      int
	MapHeight     int
	TileSize      int
}

// Rect is an axis aligned collision rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// EnemySpawn places one enemy of a named type.
type EnemySpawn struct {
	X, Y float64
	Type string
	Wave bool // counted by the wave orchestrator
}

// Destructible is a breakable prop.
type Destructible struct {
	Rect
	HP float64 // 0 uses the configured default
}

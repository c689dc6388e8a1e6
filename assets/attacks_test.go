package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/brawlcore/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTables(t *testing.T) {
	tables, err := LoadTables()
	require.NoError(t, err)

	for _, combo := range []string{"Z", "ZZ", "ZZZ", ">Z", ">ZZ", "X", "XZ", "JZ", "DZ", "DJZ"} {
		assert.True(t, tables.Player.Has(combo), combo)
	}
	assert.True(t, tables.Player["ZZZ"].EndOfChain)
	assert.Equal(t, config.LoadAmmo, tables.Player["VX"].Special)
	assert.Equal(t, config.LoadFireAmmo, tables.Player["<X"].Special)
	assert.True(t, tables.Player[">X"].ConsumesAmmo)
	assert.Equal(t, config.EnterCannonMode, tables.Player[">X"].Special)

	assert.Equal(t, []string{"brute", "grunt", "thrower"}, tables.EnemyNames())
	brute := tables.Enemies["brute"]
	assert.Equal(t, 90.0, brute.Health)
	assert.Equal(t, 5, brute.PoiseHits)
	assert.Equal(t, 240.0, brute.Primary.Knockback.X)
	assert.Nil(t, brute.Ranged)
	require.NotNil(t, tables.Enemies["thrower"].Ranged)
	assert.Equal(t, "knife_throw", tables.Enemies["thrower"].Ranged.Name)
}

func TestParsePlayerMoves(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name: "valid",
			doc: `
moves:
  - name: jab
    combo: Z
    modifier: 1
    element: fire
    special: load_ammo
    self_propel: {x: 10, y: -5}
`,
		},
		{
			name: "duplicate combo",
			doc: `
moves:
  - {name: a, combo: Z}
  - {name: b, combo: Z}
`,
			wantErr: ErrDuplicateCombo,
		},
		{
			name:    "unknown special",
			doc:     "moves:\n  - {name: a, combo: Z, special: fly}\n",
			wantErr: ErrUnknownSpecial,
		},
		{
			name:    "unknown element",
			doc:     "moves:\n  - {name: a, combo: Z, element: lava}\n",
			wantErr: ErrUnknownElement,
		},
		{
			name:    "missing combo",
			doc:     "moves:\n  - {name: a}\n",
			wantErr: ErrMissingCombo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParsePlayerMoves([]byte(tt.doc))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			jab := table["Z"]
			require.NotNil(t, jab)
			assert.Equal(t, config.Fire, jab.Element)
			assert.Equal(t, config.LoadAmmo, jab.Special)
			assert.Equal(t, -5.0, jab.SelfPropel.Y)
			assert.Equal(t, "Z", jab.Combo)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := ParsePlayerMoves([]byte("moves:\n  - {name: a, combo: Z, damage: 3}\n"))
	assert.Error(t, err)

	_, err = ParseEnemyTypes([]byte("enemies:\n  grunt:\n    speed: 3\n"))
	assert.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	table, err := ParsePlayerMoves(nil)
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestDiskCopyWins(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "attacks"), 0o755))
	doc := "moves:\n  - {name: only, combo: X, modifier: 3}\n"
	require.NoError(t, os.WriteFile(DiskPath(PlayerMovesFile), []byte(doc), 0o644))

	tables, err := LoadTables()
	require.NoError(t, err)
	assert.Len(t, tables.Player, 1)
	assert.Equal(t, 3.0, tables.Player["X"].DamageModifier)
	assert.NotEmpty(t, tables.Enemies, "enemy types fall back to the embedded copy")
}

func TestDiskPath(t *testing.T) {
	old := Dir
	Dir = "content"
	t.Cleanup(func() { Dir = old })

	assert.Equal(t, filepath.Join("content", "attacks", "player.yaml"), DiskPath("assets/attacks/player.yaml"))
	assert.Equal(t, filepath.Join("content", "attacks", "player.yaml"), DiskPath(PlayerMovesFile))
}

func TestEmbeddedArenas(t *testing.T) {
	arenas, names, err := LoadArenas()
	require.NoError(t, err)
	require.Contains(t, names, "arena")

	arena := arenas["arena"]
	assert.NotEmpty(t, arena.SolidRects)
	assert.Len(t, arena.PlatformRects, 3)
	assert.Len(t, arena.EnemySpawns, 3)
	assert.Len(t, arena.Destructibles, 2)
	assert.Equal(t, 640, arena.MapWidth)
}

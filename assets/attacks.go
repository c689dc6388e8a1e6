package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi/features/math"
	"gopkg.in/yaml.v3"
)

const (
	PlayerMovesFile = "attacks/player.yaml"
	EnemyTypesFile  = "attacks/enemies.yaml"
)

var (
	ErrDuplicateCombo = errors.New("duplicate combo string")
	ErrUnknownSpecial = errors.New("unknown special action")
	ErrUnknownElement = errors.New("unknown element")
	ErrMissingCombo   = errors.New("player move without combo string")
)

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VecSpec) vec() math.Vec2 {
	return math.Vec2{X: v.X, Y: v.Y}
}

type AttackSpec struct {
	Name             string  `yaml:"name"`
	Combo            string  `yaml:"combo"`
	Modifier         float64 `yaml:"modifier"`
	Element          string  `yaml:"element"`
	AttackClip       string  `yaml:"attack_clip"`
	RecoverClip      string  `yaml:"recover_clip"`
	SelfPropel       VecSpec `yaml:"self_propel"`
	Knockback        VecSpec `yaml:"knockback"`
	EndOfChain       bool    `yaml:"end_of_chain"`
	Special          string  `yaml:"special"`
	MissileDirection VecSpec `yaml:"missile_direction"`
	ConsumesAmmo     bool    `yaml:"consumes_ammo"`
	Cooldown         float64 `yaml:"cooldown"`
}

type PlayerMovesSpec struct {
	Moves []AttackSpec `yaml:"moves"`
}

type EnemyTypeSpec struct {
	Health    float64     `yaml:"health"`
	Attack    float64     `yaml:"attack"`
	PoiseHits int         `yaml:"poise_hits"`
	MoveSpeed float64     `yaml:"move_speed"`
	Primary   AttackSpec  `yaml:"primary"`
	Ranged    *AttackSpec `yaml:"ranged"`
}

type EnemyTypesSpec struct {
	Enemies map[string]EnemyTypeSpec `yaml:"enemies"`
}

// EnemyType is a resolved enemy definition. Zero stats mean the enemy
// config default applies.
type EnemyType struct {
	Name      string
	Health    float64
	Attack    float64
	PoiseHits int
	MoveSpeed float64
	Primary   *config.AttackDefinition
	Ranged    *config.AttackDefinition
}

// Tables is the authored combat content of a simulation.
type Tables struct {
	Player  config.ComboTable
	Enemies map[string]*EnemyType
}

// EnemyNames returns the enemy type names in sorted order.
func (t *Tables) EnemyNames() []string {
	names := make([]string, 0, len(t.Enemies))
	for name := range t.Enemies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadTables loads the player move list and the enemy types.
func LoadTables() (*Tables, error) {
	data, err := Load(PlayerMovesFile)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", PlayerMovesFile, err)
	}
	player, err := ParsePlayerMoves(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", PlayerMovesFile, err)
	}

	data, err = Load(EnemyTypesFile)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", EnemyTypesFile, err)
	}
	enemies, err := ParseEnemyTypes(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", EnemyTypesFile, err)
	}

	return &Tables{Player: player, Enemies: enemies}, nil
}

// MustLoadTables is LoadTables for the embedded content, which is known to
// be valid.
func MustLoadTables() *Tables {
	t, err := LoadTables()
	if err != nil {
		panic(err)
	}
	return t
}

// ParsePlayerMoves builds a combo table. Combo strings must be unique.
func ParsePlayerMoves(data []byte) (config.ComboTable, error) {
	var spec PlayerMovesSpec
	if err := decode(data, &spec); err != nil {
		return nil, err
	}

	table := make(config.ComboTable, len(spec.Moves))
	for _, m := range spec.Moves {
		if m.Combo == "" {
			return nil, fmt.Errorf("move %q: %w", m.Name, ErrMissingCombo)
		}
		if table.Has(m.Combo) {
			return nil, fmt.Errorf("move %q combo %q: %w", m.Name, m.Combo, ErrDuplicateCombo)
		}
		def, err := m.definition()
		if err != nil {
			return nil, err
		}
		table[m.Combo] = def
	}
	return table, nil
}

// ParseEnemyTypes resolves every enemy type of an authored file.
func ParseEnemyTypes(data []byte) (map[string]*EnemyType, error) {
	var spec EnemyTypesSpec
	if err := decode(data, &spec); err != nil {
		return nil, err
	}

	types := make(map[string]*EnemyType, len(spec.Enemies))
	for name, s := range spec.Enemies {
		primary, err := s.Primary.definition()
		if err != nil {
			return nil, fmt.Errorf("enemy %q: %w", name, err)
		}
		t := &EnemyType{
			Name:      name,
			Health:    s.Health,
			Attack:    s.Attack,
			PoiseHits: s.PoiseHits,
			MoveSpeed: s.MoveSpeed,
			Primary:   primary,
		}
		if s.Ranged != nil {
			if t.Ranged, err = s.Ranged.definition(); err != nil {
				return nil, fmt.Errorf("enemy %q: %w", name, err)
			}
		}
		types[name] = t
	}
	return types, nil
}

func decode(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}

func (s AttackSpec) definition() (*config.AttackDefinition, error) {
	element, ok := config.ParseElement(s.Element)
	if !ok {
		return nil, fmt.Errorf("move %q element %q: %w", s.Name, s.Element, ErrUnknownElement)
	}
	special, ok := config.ParseSpecialTag(s.Special)
	if !ok {
		return nil, fmt.Errorf("move %q special %q: %w", s.Name, s.Special, ErrUnknownSpecial)
	}
	return &config.AttackDefinition{
		Name:             s.Name,
		DamageModifier:   s.Modifier,
		Element:          element,
		AttackClip:       s.AttackClip,
		RecoverClip:      s.RecoverClip,
		SelfPropel:       s.SelfPropel.vec(),
		Knockback:        s.Knockback.vec(),
		Combo:            s.Combo,
		EndOfChain:       s.EndOfChain,
		Special:          special,
		MissileDirection: s.MissileDirection.vec(),
		ConsumesAmmo:     s.ConsumesAmmo,
		Cooldown:         s.Cooldown,
	}, nil
}

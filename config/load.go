package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the layout of a YAML override file. Every block is optional and
// only the keys present in the file replace the defaults.
type File struct {
	Sim        *Config           `yaml:"sim"`
	Player     *PlayerConfig     `yaml:"player"`
	Enemy      *EnemyConfig      `yaml:"enemy"`
	Combat     *CombatConfig     `yaml:"combat"`
	Physics    *PhysicsConfig    `yaml:"physics"`
	Projectile *ProjectileConfig `yaml:"projectile"`
}

// Load decodes YAML overrides from r on top of the current configuration.
// Unknown keys are rejected. The overrides are applied only if the whole
// document decodes and validates.
func Load(r io.Reader) error {
	sim := *C
	player, enemy, combat := Player, Enemy, Combat
	physics, projectile := Physics, Projectile
	f := File{
		Sim:        &sim,
		Player:     &player,
		Enemy:      &enemy,
		Combat:     &combat,
		Physics:    &physics,
		Projectile: &projectile,
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return fmt.Errorf("config: decode: %w", err)
	}
	if err := f.validate(); err != nil {
		return err
	}

	C = &sim
	Player, Enemy, Combat = player, enemy, combat
	Physics, Projectile = physics, projectile
	return nil
}

// LoadFile applies the overrides stored at path.
func LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	if err := Load(file); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Validate checks the values the simulation divides by or sizes storage with.
func Validate() error {
	f := File{
		Sim:        C,
		Player:     &Player,
		Enemy:      &Enemy,
		Combat:     &Combat,
		Physics:    &Physics,
		Projectile: &Projectile,
	}
	return f.validate()
}

func (f File) validate() error {
	switch {
	case f.Physics.FixedStep <= 0:
		return fmt.Errorf("config: physics.fixed_step must be positive, got %v", f.Physics.FixedStep)
	case f.Physics.SpaceCellSize <= 0:
		return fmt.Errorf("config: physics.space_cell_size must be positive, got %d", f.Physics.SpaceCellSize)
	case f.Player.MaxAmmo < 0:
		return fmt.Errorf("config: player.max_ammo must not be negative, got %d", f.Player.MaxAmmo)
	case f.Projectile.PoolSize < 0:
		return fmt.Errorf("config: projectile.pool_size must not be negative, got %d", f.Projectile.PoolSize)
	case f.Sim.TickRate <= 0:
		return fmt.Errorf("config: sim.tick_rate must be positive, got %d", f.Sim.TickRate)
	}
	return nil
}

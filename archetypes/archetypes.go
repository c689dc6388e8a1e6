package archetypes

import (
	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/tags"
	"github.com/yohamta/donburi"
)

var (
	Runtime = newArchetype(
		tags.Runtime,
		components.Runtime,
		components.Space,
		components.ProjectilePool,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Combatant,
		components.Object,
		components.Movement,
		components.Health,
		components.Hurtbox,
		components.Animation,
		components.Combo,
		components.Ammo,
		components.Input,
		components.Poise,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Combatant,
		components.Object,
		components.Movement,
		components.Health,
		components.Hurtbox,
		components.Animation,
		components.Poise,
	)
	Destructible = newArchetype(
		tags.Destructible,
		components.Object,
		components.Health,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Animation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}

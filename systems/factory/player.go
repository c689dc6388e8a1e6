package factory

import (
	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/systems"
	"github.com/automoto/brawlcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, x, y float64, table cfg.ComboTable, anim components.Animator) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	width, height := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x, y, width, height)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer)
	addToSpace(w, player, obj)

	components.Combatant.SetValue(player, components.CombatantData{
		Kind: components.KindPlayer,
		Stats: components.Stats{
			components.StatHealth:  cfg.Player.Health,
			components.StatAttack:  cfg.Player.Attack,
			components.StatMagic:   cfg.Player.Magic,
			components.StatDefense: cfg.Player.Defense,
			components.StatSpirit:  cfg.Player.Spirit,
		},
		State:  cfg.Idle,
		Active: true,
	})
	components.Movement.SetValue(player, components.MovementData{
		BaseSpeed:     cfg.Player.MoveSpeed,
		SpeedModifier: 1,
		JumpImpulseX:  cfg.Player.JumpImpulseX,
		JumpImpulseY:  cfg.Player.JumpImpulseY,
		Facing:        cfg.DirectionRight,
		Mass:          cfg.Player.Mass,
		CanMove:       true,
	})
	components.Health.SetValue(player, components.HealthData{
		Current:   cfg.Player.Health,
		Max:       cfg.Player.Health,
		MercyTime: cfg.Player.MercyTime,
	})
	components.Hurtbox.SetValue(player, components.HurtboxData{
		Reach: cfg.Player.HurtboxReach,
		Mask:  systems.HitMask(components.KindPlayer),
	})
	components.Combo.SetValue(player, components.ComboData{Table: table})

	ammo := components.NewAmmo(cfg.Player.MaxAmmo)
	ammo.Turkeys = cfg.Player.StartTurkeys
	components.Ammo.SetValue(player, ammo)

	components.Poise.SetValue(player, components.PoiseData{
		Threshold:      cfg.Player.PoiseHits,
		StoicTime:      cfg.Combat.StoicTime,
		InterruptDelay: cfg.Combat.InterruptDelay,
		Handlers:       systems.StaggerHandlers(w, player),
	})

	if anim == nil {
		anim = components.NopAnimator{}
	}
	components.Animation.SetValue(player, components.AnimationData{Animator: anim})

	return player
}

package factory

import (
	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/assets"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/systems"
	"github.com/automoto/brawlcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy of the given type. Zero stats on the type fall
// back to the enemy config. A wave enemy is counted by the orchestrator when
// it dies.
func CreateEnemy(w donburi.World, x, y float64, enemyType *assets.EnemyType, wave bool, anim components.Animator) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	width, height := cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight
	obj := resolv.NewObject(x, y, width, height)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	addToSpace(w, enemy, obj)

	health := orDefault(enemyType.Health, cfg.Enemy.Health)
	poiseHits := enemyType.PoiseHits
	if poiseHits == 0 {
		poiseHits = cfg.Enemy.PoiseHits
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:        enemyType.Name,
		Primary:         enemyType.Primary,
		Ranged:          enemyType.Ranged,
		DetectRange:     cfg.Enemy.DetectRange,
		AttackRange:     cfg.Enemy.AttackRange,
		BodySize:        width / 2,
		BubbleDistance:  cfg.Enemy.BubbleDistance,
		HeightThreshold: cfg.Enemy.HeightThreshold,
		ClimbCooldown:   cfg.Enemy.ClimbCooldown,
	})
	components.Combatant.SetValue(enemy, components.CombatantData{
		Kind: components.KindEnemy,
		Stats: components.Stats{
			components.StatHealth:  health,
			components.StatAttack:  orDefault(enemyType.Attack, cfg.Enemy.Attack),
			components.StatMagic:   cfg.Enemy.Magic,
			components.StatDefense: cfg.Enemy.Defense,
			components.StatSpirit:  cfg.Enemy.Spirit,
		},
		State:  cfg.Idle,
		Active: true,
		Wave:   wave,
	})
	components.Movement.SetValue(enemy, components.MovementData{
		BaseSpeed:     orDefault(enemyType.MoveSpeed, cfg.Enemy.MoveSpeed),
		SpeedModifier: 1,
		JumpImpulseX:  cfg.Enemy.JumpImpulseX,
		JumpImpulseY:  cfg.Enemy.JumpImpulseY,
		Facing:        cfg.DirectionLeft, // Start facing left
		Mass:          cfg.Enemy.Mass,
		CanMove:       true,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})
	components.Hurtbox.SetValue(enemy, components.HurtboxData{
		Reach: cfg.Enemy.HurtboxReach,
		Mask:  systems.HitMask(components.KindEnemy),
	})
	components.Poise.SetValue(enemy, components.PoiseData{
		Threshold:      poiseHits,
		StoicTime:      cfg.Combat.StoicTime,
		InterruptDelay: cfg.Combat.InterruptDelay,
		Handlers:       systems.StaggerHandlers(w, enemy),
	})

	if anim == nil {
		anim = components.NopAnimator{}
	}
	components.Animation.SetValue(enemy, components.AnimationData{Animator: anim})

	return enemy
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

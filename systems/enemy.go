package systems

import (
	"math"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateEnemies runs the decision controller of every living enemy.
func UpdateEnemies(w donburi.World) {
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if !alive(e) {
			return
		}
		enemy := components.Enemy.Get(e)

		if enemy.Target != nil && !alive(enemy.Target) {
			enemy.Target = nil
			components.Movement.Get(e).Intent = 0
		}
		if enemy.Target == nil {
			detectTarget(w, e, enemy)
			return
		}

		updateEnemyAI(w, e, enemy)
	})
}

// detectTarget binds the nearest player in range whose line of sight from
// the enemy is not blocked by terrain.
func detectTarget(w donburi.World, e *donburi.Entry, enemy *components.EnemyData) {
	self := components.Object.Get(e)
	tags.Player.Each(w, func(p *donburi.Entry) {
		if enemy.Target != nil || !alive(p) {
			return
		}
		target := components.Object.Get(p)
		dx := target.CenterX() - self.CenterX()
		dy := target.CenterY() - self.CenterY()
		dist := math.Hypot(dx, dy)
		if dist > enemy.DetectRange {
			return
		}
		if !inSight(w, self, target, dx, dy, dist) {
			return
		}

		enemy.Target = p
		logger(w).Debug("target detected", "entity", e.Entity(), "target", p.Entity())
		components.Detected.Publish(w, components.DetectEventData{
			Enemy:  e.Entity(),
			Target: p.Entity(),
		})
	})
}

// inSight casts a single ray from self to target; the target must be the
// nearest body it crosses.
func inSight(w donburi.World, self, target *components.ObjectData, dx, dy, dist float64) bool {
	if dist == 0 {
		return true
	}
	hits := RayCast(SpaceOf(w), self.CenterX(), self.CenterY(), dx, dy, dist, tags.ResolvSolid, tags.ResolvPlayer)
	return len(hits) > 0 && hits[0].Object == target.Object
}

func updateEnemyAI(w donburi.World, e *donburi.Entry, enemy *components.EnemyData) {
	mv := components.Movement.Get(e)
	c := components.Combatant.Get(e)
	self := components.Object.Get(e)
	target := components.Object.Get(enemy.Target)

	dx := target.CenterX() - self.CenterX()
	dy := target.CenterY() - self.CenterY()
	distance := math.Abs(dx)

	handleChase(w, e, enemy, mv, dx, dy)

	if c.InAttack || Timers(w).Active(e.Entity(), cfg.TimerAttackCooldown) {
		return
	}
	switch {
	case distance < enemy.AttackRange+enemy.BodySize:
		startEnemyAttack(w, e, enemy.Primary)
	case enemy.Ranged != nil && distance <= enemy.DetectRange:
		startEnemyAttack(w, e, enemy.Ranged)
	}
}

// handleChase steers toward the target until inside the bubble distance and
// climbs or drops when the target is on another level.
func handleChase(w donburi.World, e *donburi.Entry, enemy *components.EnemyData, mv *components.MovementData, dx, dy float64) {
	if !mv.CanMove {
		mv.Intent = 0
		return
	}

	// Face the target
	if dx != 0 {
		mv.Facing = sign(dx)
	}
	if math.Abs(dx) > enemy.BubbleDistance {
		mv.Intent = sign(dx)
	} else {
		mv.Intent = 0
	}

	if math.Abs(dy) <= enemy.HeightThreshold || !mv.Grounded {
		return
	}
	timers := Timers(w)
	if timers.Active(e.Entity(), cfg.TimerClimbCooldown) {
		return
	}

	var moved bool
	if dy < 0 {
		moved = Jump(w, e)
	} else {
		moved = FallThroughPlatform(w, e)
	}
	if moved {
		timers.Start(e.Entity(), cfg.TimerClimbCooldown, enemy.ClimbCooldown, nil)
	}
}

func startEnemyAttack(w donburi.World, e *donburi.Entry, move *cfg.AttackDefinition) {
	if move == nil {
		return
	}
	components.Combatant.Get(e).Attack = move
	components.Movement.Get(e).Intent = 0
	SetMove(e, false)
	Attack(w, e)
}

// recoverEnemy recovers and re-arms the attack cooldown.
func recoverEnemy(w donburi.World, e *donburi.Entry) {
	recoverBase(e)
	move := components.Combatant.Get(e).Attack
	Timers(w).Start(e.Entity(), cfg.TimerAttackCooldown, move.CooldownOrDefault(), nil)
}

// fireEnemyKnife throws a hostile knife in the facing direction.
func fireEnemyKnife(w donburi.World, e *donburi.Entry, force float64) {
	if force <= 0 {
		force = cfg.Projectile.EnemyForce
	}
	element := cfg.Neutral
	if move := components.Combatant.Get(e).Attack; move != nil {
		element = move.Element
	}
	dir := dmath.Vec2{X: facingOf(e), Y: 0}
	Fire(w, e, cfg.ProjectileKnife, dir, force, false, 0, element)
}

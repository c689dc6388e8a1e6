package systems

import (
	"math"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func projectilePool(w donburi.World) *components.ProjectilePoolData {
	entry, ok := components.ProjectilePool.First(w)
	if !ok {
		return nil
	}
	return components.ProjectilePool.Get(entry)
}

// projectileMask is the set of tags a projectile can strike.
func projectileMask(friendly bool) []string {
	if friendly {
		return HitMask(components.KindPlayer)
	}
	return HitMask(components.KindEnemy)
}

// Fire lends an idle projectile of the given type to owner and launches it
// along dir. An empty pool drops the request and returns nil.
func Fire(w donburi.World, owner *donburi.Entry, kind string, dir dmath.Vec2, force float64, friendly bool, blast float64, element cfg.Element) *donburi.Entry {
	pool := projectilePool(w)
	if pool == nil || !alive(owner) {
		return nil
	}
	queue := pool.Queues[kind]
	if len(queue) == 0 {
		logger(w).Debug("projectile pool empty", "type", kind)
		return nil
	}
	id := queue[0]
	pool.Queues[kind] = queue[1:]

	pe := w.Entry(id)
	p := components.Projectile.Get(pe)
	p.Owner = owner
	p.Friendly = friendly
	p.Element = element
	p.Blast = blast
	p.Phase = components.ProjectileFlying

	mag := math.Hypot(dir.X, dir.Y)
	if mag == 0 {
		dir, mag = dmath.Vec2{X: facingOf(owner)}, 1
	}
	p.VelX = dir.X / mag * force
	p.VelY = dir.Y / mag * force

	from := components.Object.Get(owner)
	obj := components.Object.Get(pe)
	obj.X = from.CenterX() - obj.W/2
	obj.Y = from.CenterY() - cfg.Projectile.SpawnOffsetY - obj.H/2
	if space := SpaceOf(w); space != nil {
		space.Add(obj.Object)
	}
	obj.Update()
	animator(pe).SetVisible(true)

	Timers(w).Start(id, cfg.TimerLifetime, cfg.Projectile.Lifetime, func() {
		if pe.Valid() && components.Projectile.Get(pe).Phase == components.ProjectileFlying {
			detonate(w, pe)
		}
	})
	logger(w).Debug("fire", "type", kind, "entity", owner.Entity(), "element", element)
	return pe
}

// UpdateProjectiles moves every flying projectile by one fixed step and
// resolves its impacts.
func UpdateProjectiles(w donburi.World, dt float64) {
	components.Projectile.Each(w, func(pe *donburi.Entry) {
		p := components.Projectile.Get(pe)
		if p.Phase != components.ProjectileFlying {
			return
		}
		obj := components.Object.Get(pe)
		obj.X += p.VelX * dt
		obj.Y += p.VelY * dt
		obj.Update()

		checkProjectileCollisions(w, pe, p, obj)
	})
}

func checkProjectileCollisions(w donburi.World, pe *donburi.Entry, p *components.ProjectileData, obj *components.ObjectData) {
	space := SpaceOf(w)
	for _, other := range QueryBox(space, obj.X, obj.Y, obj.W, obj.H, projectileMask(p.Friendly)...) {
		target := entryOf(other)
		if !alive(target) {
			continue
		}
		// blast projectiles strike through their detonation query instead
		if p.Blast <= 0 && ownerCanStrike(p) {
			strike(w, p.Owner, target, strikeDamage(p.Owner), p.Element)
		}
		detonate(w, pe)
		return
	}

	if len(QueryBox(space, obj.X, obj.Y, obj.W, obj.H, tags.ResolvSolid)) > 0 {
		detonate(w, pe)
	}
}

// ownerCanStrike reports whether the weak owner reference still resolves to
// a living combatant.
func ownerCanStrike(p *components.ProjectileData) bool {
	return p.Owner != nil && alive(p.Owner) && p.Owner.HasComponent(components.Combatant)
}

// detonate stops the projectile, strikes every opposing body inside the
// blast radius and schedules the return to the pool.
func detonate(w donburi.World, pe *donburi.Entry) {
	p := components.Projectile.Get(pe)
	if p.Phase != components.ProjectileFlying {
		return
	}
	p.Phase = components.ProjectileDetonating
	p.VelX, p.VelY = 0, 0

	timers := Timers(w)
	timers.Cancel(pe.Entity(), cfg.TimerLifetime)

	obj := components.Object.Get(pe)
	cx, cy := obj.CenterX(), obj.CenterY()
	space := SpaceOf(w)
	if space != nil && obj.Space != nil {
		space.Remove(obj.Object)
	}
	animator(pe).SetVisible(false)

	if p.Blast > 0 && ownerCanStrike(p) {
		for _, other := range QueryCircle(space, cx, cy, p.Blast, projectileMask(p.Friendly)...) {
			if target := entryOf(other); alive(target) {
				strike(w, p.Owner, target, strikeDamage(p.Owner), p.Element)
			}
		}
	}

	timers.Start(pe.Entity(), cfg.TimerDetonate, cfg.Projectile.DetonateTime, func() {
		if pe.Valid() {
			returnToPool(w, pe)
		}
	})
}

// returnToPool deactivates the projectile and queues it for reuse.
func returnToPool(w donburi.World, pe *donburi.Entry) {
	p := components.Projectile.Get(pe)
	p.Phase = components.ProjectilePooled
	p.Owner = nil
	p.VelX, p.VelY = 0, 0

	if pool := projectilePool(w); pool != nil {
		pool.Queues[p.Type] = append(pool.Queues[p.Type], pe.Entity())
	}
}

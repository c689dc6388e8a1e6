package factory

import (
	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateProjectilePool preallocates size idle projectiles of one type.
// Pooled projectiles stay outside the collision space until fired.
func CreateProjectilePool(w donburi.World, kind string, size int, anim func() components.Animator) {
	poolEntry, ok := components.ProjectilePool.First(w)
	if !ok {
		return
	}
	pool := components.ProjectilePool.Get(poolEntry)

	width, height := cfg.Projectile.Width, cfg.Projectile.Height
	for i := 0; i < size; i++ {
		p := archetypes.Projectile.Spawn(w)

		obj := resolv.NewObject(0, 0, width, height, tags.ResolvProjectile)
		obj.SetShape(resolv.NewRectangle(0, 0, width, height))
		obj.Data = p
		components.Object.SetValue(p, components.ObjectData{Object: obj})

		components.Projectile.SetValue(p, components.ProjectileData{
			Type:  kind,
			Phase: components.ProjectilePooled,
		})
		components.Animation.SetValue(p, components.AnimationData{Animator: newAnimator(anim)})

		pool.Queues[kind] = append(pool.Queues[kind], p.Entity())
	}
}

func newAnimator(anim func() components.Animator) components.Animator {
	if anim == nil {
		return components.NopAnimator{}
	}
	if a := anim(); a != nil {
		return a
	}
	return components.NopAnimator{}
}

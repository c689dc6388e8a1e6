package sim

import (
	"sort"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
)

// Marker offsets of the stock attack clip, in seconds from its start.
var (
	LaunchAt  = 0.05
	SpecialAt = 0.08
	HitAt     = 0.12
	FireAt    = 0.12
	RecoverAt = 0.35
)

type marker struct {
	at   float64
	name string
	fire func()
}

// Timeline stands in for an animation player. Each attack clip fires the
// boundary markers at fixed offsets; a stagger clip cuts the running clip.
// The bound combatant recovers from stagger through its interrupt timer.
type Timeline struct {
	c       *Combatant
	clock   float64
	pending []marker
	visible bool
	cannon  bool
	broken  bool

	Clip  string
	Fired []string
}

// NewTimeline is an AnimatorFunc. Projectiles get no timeline.
func NewTimeline(c *Combatant) components.Animator {
	if c == nil {
		return nil
	}
	return &Timeline{c: c, visible: true}
}

func (t *Timeline) PlayAttack(attackClip, _ string) {
	t.clock = 0
	t.Clip = attackClip
	t.pending = t.pending[:0]

	move := t.c.CurrentAttack()
	t.schedule(LaunchAt, "launch", t.c.LaunchSelf)
	if move != nil && move.Special != cfg.SpecialNone {
		t.schedule(SpecialAt, "special", t.c.SpecialAction)
	}
	t.schedule(HitAt, "hit", t.c.Hit)
	if move != nil && t.firesProjectile(move) {
		t.schedule(FireAt, "fire", func() { t.c.FireProjectile(0) })
	}
	t.schedule(RecoverAt, "recover", t.c.Recover)
}

func (t *Timeline) firesProjectile(move *cfg.AttackDefinition) bool {
	if enemy := t.c.Entry(); enemy.HasComponent(components.Enemy) {
		return components.Enemy.Get(enemy).Ranged == move
	}
	return move.ConsumesAmmo
}

func (t *Timeline) schedule(at float64, name string, fire func()) {
	t.pending = append(t.pending, marker{at: at, name: name, fire: fire})
	sort.SliceStable(t.pending, func(i, j int) bool { return t.pending[i].at < t.pending[j].at })
}

func (t *Timeline) PlayStagger() {
	t.Clip = "stagger"
	t.pending = t.pending[:0]
}

func (t *Timeline) BreakFree()         { t.broken = true }
func (t *Timeline) ClearBreakFree()    { t.broken = false }
func (t *Timeline) SetCannon(on bool)  { t.cannon = on }
func (t *Timeline) SetVisible(on bool) { t.visible = on }

// Advance plays the clip forward, firing every marker that is due.
func (t *Timeline) Advance(dt float64) {
	if len(t.pending) == 0 {
		return
	}
	t.clock += dt
	for len(t.pending) > 0 && t.pending[0].at <= t.clock {
		m := t.pending[0]
		t.pending = t.pending[1:]
		t.Fired = append(t.Fired, m.name)
		m.fire()
		// a marker may have restarted or cut the clip
		if t.clock == 0 {
			return
		}
	}
}

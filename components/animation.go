package components

import (
	"github.com/yohamta/donburi"
)

// Animator is the animation boundary of a combatant. The core tells it which
// clips to play; an external player drives the timeline markers back into
// the core.
type Animator interface {
	PlayAttack(attackClip, recoverClip string)
	PlayStagger()
	// BreakFree and ClearBreakFree raise and lower the break-free signal
	// that ends a stagger clip early.
	BreakFree()
	ClearBreakFree()
	SetCannon(on bool)
	SetVisible(visible bool)
}

// NopAnimator ignores every call.
type NopAnimator struct{}

func (NopAnimator) PlayAttack(string, string) {}
func (NopAnimator) PlayStagger()              {}
func (NopAnimator) BreakFree()                {}
func (NopAnimator) ClearBreakFree()           {}
func (NopAnimator) SetCannon(bool)            {}
func (NopAnimator) SetVisible(bool)           {}

// ClipRecorder remembers every call it receives. The sandbox shows its
// current clip and tests assert on its log.
type ClipRecorder struct {
	Calls     []string
	Clip      string
	Recover   string
	BreakFlag bool
	Cannon    bool
	Visible   bool
}

func NewClipRecorder() *ClipRecorder {
	return &ClipRecorder{Visible: true}
}

func (r *ClipRecorder) PlayAttack(attackClip, recoverClip string) {
	r.Calls = append(r.Calls, "attack:"+attackClip)
	r.Clip = attackClip
	r.Recover = recoverClip
}

func (r *ClipRecorder) PlayStagger() {
	r.Calls = append(r.Calls, "stagger")
	r.Clip = "stagger"
}

func (r *ClipRecorder) BreakFree() {
	r.Calls = append(r.Calls, "break-free")
	r.BreakFlag = true
}

func (r *ClipRecorder) ClearBreakFree() {
	r.BreakFlag = false
}

func (r *ClipRecorder) SetCannon(on bool) {
	r.Cannon = on
}

func (r *ClipRecorder) SetVisible(visible bool) {
	r.Visible = visible
}

// AnimationData binds an animator to an entity.
type AnimationData struct {
	Animator Animator
}

var Animation = donburi.NewComponentType[AnimationData]()

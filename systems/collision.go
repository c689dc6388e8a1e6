package systems

import (
	"math"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/solarlune/resolv"
)

// contactSkin keeps resting bodies from sitting exactly on a shared edge.
const contactSkin = 0.001

// resolveHorizontalCollision moves the object by dx, stopping at walls and,
// unless passing through, at other characters.
func resolveHorizontalCollision(mv *components.MovementData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	mask := []string{tags.ResolvSolid}
	if !mv.PassCharacters {
		mask = append(mask, tags.ResolvCharacter)
	}

	check := object.Check(dx, 0, mask...)
	if check == nil {
		object.X += dx
		return
	}

	blocked := false
	for _, other := range check.Objects {
		if !blocksHorizontally(object, other) {
			continue
		}
		if dx > 0 {
			gap := other.X - (object.X + object.W)
			if gap >= -contactSkin && gap < dx {
				dx = math.Max(gap, 0)
				blocked = true
			}
		} else {
			gap := (other.X + other.W) - object.X
			if gap <= contactSkin && gap > dx {
				dx = math.Min(gap, 0)
				blocked = true
			}
		}
	}

	if blocked && !mv.OverrideGravity {
		mv.VelX = 0
	}
	object.X += dx
}

// blocksHorizontally reports whether other shares a vertical span with
// object so that it can stop sideways movement.
func blocksHorizontally(object, other *resolv.Object) bool {
	if other.HasTags(tags.ResolvPlatform) {
		return false
	}
	objectBottom := object.Y + object.H
	return objectBottom > other.Y+contactSkin && object.Y < other.Y+other.H-contactSkin
}

// resolveVerticalCollision moves the object by dy, landing on solids and on
// platforms that are not being dropped through.
func resolveVerticalCollision(mv *components.MovementData, object *resolv.Object, dy float64) {
	mv.OnGround = nil
	if dy == 0 {
		return
	}

	check := object.Check(0, dy, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		dy = handleUpwardCollision(mv, object, check, dy)
	} else {
		dy = handleDownwardCollision(mv, object, check, dy)
	}

	object.Y += dy
}

func handleUpwardCollision(mv *components.MovementData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsHorizontally(object, solid) {
			continue
		}
		ceiling := solid.Y + solid.H
		if ceiling <= object.Y+contactSkin && ceiling > object.Y+dy {
			dy = ceiling - object.Y
			mv.VelY = 0
		}
	}
	return dy
}

func handleDownwardCollision(mv *components.MovementData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	bottom := object.Y + object.H
	for _, other := range check.Objects {
		if !overlapsHorizontally(object, other) || !canLandOn(mv, object, other) {
			continue
		}
		if gap := other.Y - bottom; gap < dy {
			dy = math.Max(gap, 0)
			mv.OnGround = other
		}
	}
	if mv.OnGround != nil {
		mv.VelY = 0
	}
	return dy
}

// canLandOn reports whether a falling object may rest on other.
func canLandOn(mv *components.MovementData, object, other *resolv.Object) bool {
	bottom := object.Y + object.H
	switch {
	case other.HasTags(tags.ResolvSolid):
		return bottom <= other.Y+contactSkin
	case other.HasTags(tags.ResolvPlatform):
		return other != mv.IgnorePlatform &&
			mv.VelY >= 0 &&
			bottom <= other.Y+cfg.Physics.PlatformDropThreshold
	}
	return false
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X < b.X+b.W-contactSkin && a.X+a.W > b.X+contactSkin
}

// groundBelow returns the surface the object is standing on within the
// ground probe distance, or nil. platformsOnly restricts the probe to the
// platform mask.
func groundBelow(mv *components.MovementData, object *resolv.Object, platformsOnly bool) *resolv.Object {
	mask := []string{tags.ResolvSolid, tags.ResolvPlatform}
	if platformsOnly {
		mask = []string{tags.ResolvPlatform}
	}

	reach := cfg.Physics.GroundProbe
	check := object.Check(0, reach, mask...)
	if check == nil {
		return nil
	}

	bottom := object.Y + object.H
	var best *resolv.Object
	bestGap := math.Inf(1)
	for _, other := range check.Objects {
		if !overlapsHorizontally(object, other) {
			continue
		}
		if other.HasTags(tags.ResolvPlatform) && other == mv.IgnorePlatform {
			continue
		}
		gap := other.Y - bottom
		if other.HasTags(tags.ResolvPlatform) && gap < -cfg.Physics.PlatformDropThreshold {
			continue
		}
		if other.HasTags(tags.ResolvSolid) && gap < -contactSkin {
			continue
		}
		if gap <= reach && gap < bestGap {
			best, bestGap = other, gap
		}
	}
	return best
}

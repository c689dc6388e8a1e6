package systems

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"
)

// Spatial queries run a temporary probe body through the space's broad phase
// and then filter the candidates precisely. Results are valid for the
// current tick only.

func probe(space *resolv.Space, x, y, w, h float64, tagMask ...string) []*resolv.Object {
	if space == nil || w <= 0 || h <= 0 {
		return nil
	}
	p := resolv.NewObject(x, y, w, h)
	space.Add(p)
	defer space.Remove(p)

	check := p.Check(0, 0, tagMask...)
	if check == nil {
		return nil
	}
	seen := make(map[*resolv.Object]bool, len(check.Objects))
	out := make([]*resolv.Object, 0, len(check.Objects))
	for _, o := range check.Objects {
		if seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out
}

// QueryBox returns every body overlapping the rectangle that carries any of
// the given tags.
func QueryBox(space *resolv.Space, x, y, w, h float64, tagMask ...string) []*resolv.Object {
	var hits []*resolv.Object
	for _, o := range probe(space, x, y, w, h, tagMask...) {
		if rectsOverlap(x, y, w, h, o.X, o.Y, o.W, o.H) {
			hits = append(hits, o)
		}
	}
	return hits
}

// QueryCircle returns every body whose rectangle intersects the circle.
func QueryCircle(space *resolv.Space, cx, cy, radius float64, tagMask ...string) []*resolv.Object {
	var hits []*resolv.Object
	for _, o := range probe(space, cx-radius, cy-radius, radius*2, radius*2, tagMask...) {
		nx := clampFloat(cx, o.X, o.X+o.W)
		ny := clampFloat(cy, o.Y, o.Y+o.H)
		dx, dy := cx-nx, cy-ny
		if dx*dx+dy*dy <= radius*radius {
			hits = append(hits, o)
		}
	}
	return hits
}

// RayHit is one body crossed by a ray.
type RayHit struct {
	Object   *resolv.Object
	Distance float64
}

// RayCast returns the bodies crossed by the segment from (ox, oy) along
// (dx, dy) for length pixels, nearest first.
func RayCast(space *resolv.Space, ox, oy, dx, dy, length float64, tagMask ...string) []RayHit {
	mag := math.Hypot(dx, dy)
	if mag == 0 || length <= 0 {
		return nil
	}
	dx, dy = dx/mag, dy/mag
	ex, ey := ox+dx*length, oy+dy*length

	minX, maxX := math.Min(ox, ex), math.Max(ox, ex)
	minY, maxY := math.Min(oy, ey), math.Max(oy, ey)
	// keep the probe at least one pixel thick for axis-aligned rays
	candidates := probe(space, minX, minY, math.Max(maxX-minX, 1), math.Max(maxY-minY, 1), tagMask...)

	var hits []RayHit
	for _, o := range candidates {
		if t, ok := slab(ox, oy, dx, dy, o); ok && t <= length {
			hits = append(hits, RayHit{Object: o, Distance: t})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// slab returns the entry distance of a unit ray into an object's rectangle.
func slab(ox, oy, dx, dy float64, o *resolv.Object) (float64, bool) {
	tMin, tMax := 0.0, math.Inf(1)
	axes := [2][4]float64{
		{ox, dx, o.X, o.X + o.W},
		{oy, dy, o.Y, o.Y + o.H},
	}
	for _, a := range axes {
		origin, dir, lo, hi := a[0], a[1], a[2], a[3]
		if dir == 0 {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}
		t1, t2 := (lo-origin)/dir, (hi-origin)/dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// clampFloat constrains a value to the range [min, max]
func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

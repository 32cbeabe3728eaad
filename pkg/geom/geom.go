// pkg/geom/geom.go
package geom

import "math"

// Vec2 is a point or a displacement in screen space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Angle returns the heading of v in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Normalize returns the unit vector of v, or the zero vector if v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Dist returns the distance between a and b.
func Dist(a, b Vec2) float64 { return b.Sub(a).Len() }

// FromAngle builds a vector of the given length pointing along angle.
func FromAngle(angle, length float64) Vec2 {
	return Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

// Rect is an axis-aligned box described by its center and full size.
type Rect struct {
	Center Vec2
	W, H   float64
}

func (r Rect) Left() float64   { return r.Center.X - r.W/2 }
func (r Rect) Right() float64  { return r.Center.X + r.W/2 }
func (r Rect) Top() float64    { return r.Center.Y - r.H/2 }
func (r Rect) Bottom() float64 { return r.Center.Y + r.H/2 }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// CircleOverlapsRect reports whether a circle touches or intersects r.
func CircleOverlapsRect(c Vec2, radius float64, r Rect) bool {
	nx := clamp(c.X, r.Left(), r.Right())
	ny := clamp(c.Y, r.Top(), r.Bottom())
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy <= radius*radius
}

// SweepCircleRect returns the earliest fraction t in [0, 1] of the move from a
// to b at which a circle of the given radius touches r. r is grown by radius on
// every side, so a pass just outside a corner still counts as a touch.
func SweepCircleRect(a, b Vec2, radius float64, r Rect) (float64, bool) {
	start := [2]float64{a.X, a.Y}
	d := [2]float64{b.X - a.X, b.Y - a.Y}
	lo := [2]float64{r.Left() - radius, r.Top() - radius}
	hi := [2]float64{r.Right() + radius, r.Bottom() + radius}

	tmin, tmax := 0.0, 1.0
	for i := range 2 {
		if d[i] == 0 {
			if start[i] < lo[i] || start[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - start[i]) / d[i]
		t2 := (hi[i] - start[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

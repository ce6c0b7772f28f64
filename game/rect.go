package game

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Rect is an axis-aligned rectangle in world coordinates (Y down).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) BottomCenter() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// IntersectionDepth returns the minimum translation vector that separates r
// from other, per axis, and whether the rectangles overlap at all. The sign
// is chosen so that adding the depth to r's position moves r out of other;
// a rectangle resting on top of other gets a negative Y depth.
func (r Rect) IntersectionDepth(other Rect) (cp.Vector, bool) {
	halfWidthA := r.Width / 2
	halfHeightA := r.Height / 2
	halfWidthB := other.Width / 2
	halfHeightB := other.Height / 2

	centerA := r.Center()
	centerB := other.Center()

	distanceX := centerA.X - centerB.X
	distanceY := centerA.Y - centerB.Y
	minDistanceX := halfWidthA + halfWidthB
	minDistanceY := halfHeightA + halfHeightB

	if math.Abs(distanceX) >= minDistanceX || math.Abs(distanceY) >= minDistanceY {
		return cp.Vector{}, false
	}

	depth := cp.Vector{}
	if distanceX > 0 {
		depth.X = minDistanceX - distanceX
	} else {
		depth.X = -minDistanceX - distanceX
	}
	if distanceY > 0 {
		depth.Y = minDistanceY - distanceY
	} else {
		depth.Y = -minDistanceY - distanceY
	}
	return depth, true
}

// Circle is a bounding circle in world coordinates.
type Circle struct {
	Center cp.Vector
	Radius float64
}

// IntersectsCircle reports whether the rectangle and circle overlap, using
// the closest point on the rectangle to the circle's center.
func (r Rect) IntersectsCircle(c Circle) bool {
	closest := cp.Vector{
		X: math.Max(r.Left(), math.Min(c.Center.X, r.Right())),
		Y: math.Max(r.Top(), math.Min(c.Center.Y, r.Bottom())),
	}
	return closest.Sub(c.Center).Length() < c.Radius
}

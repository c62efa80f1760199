// Package curve evaluates piecewise cubic Bezier curves in 3D.
//
// A curve made of N segments is parameterised over [0, N]: the integer part
// of t selects the segment and the fractional part is the position inside it.
// Segment evaluation is delegated to mgl32.CubicBezierCurve3D.
package curve

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrNoSegments = errors.New("curve: at least one segment is required")

// Segment holds the four control points of one cubic Bezier piece.
type Segment [4]mgl32.Vec3

type Cubic struct {
	segments []Segment
}

func NewCubic(segments ...Segment) (*Cubic, error) {
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	owned := make([]Segment, len(segments))
	copy(owned, segments)
	return &Cubic{segments: owned}, nil
}

// Segments returns the number of cubic pieces; it is also the upper bound
// of the curve parameter.
func (c *Cubic) Segments() int {
	return len(c.segments)
}

// Position samples the curve at t, clamped to [0, Segments()].
func (c *Cubic) Position(t float32) mgl32.Vec3 {
	n := float32(len(c.segments))
	if t != t || t <= 0 {
		return c.eval(0, 0)
	}
	if t >= n {
		return c.eval(len(c.segments)-1, 1)
	}
	idx := int(math.Floor(float64(t)))
	return c.eval(idx, t-float32(idx))
}

// IterPositions returns n samples evenly spaced in parameter space, from the
// first control point to the last. n below 2 is raised to 2.
func (c *Cubic) IterPositions(n int) []mgl32.Vec3 {
	if n < 2 {
		n = 2
	}
	points := make([]mgl32.Vec3, n)
	span := float32(len(c.segments))
	for i := 0; i < n; i++ {
		points[i] = c.Position(span * float32(i) / float32(n-1))
	}
	return points
}

func (c *Cubic) eval(segment int, local float32) mgl32.Vec3 {
	s := c.segments[segment]
	return mgl32.CubicBezierCurve3D(local, s[0], s[1], s[2], s[3])
}

// PingPong maps elapsed seconds onto [0, segments] with a smooth back and
// forth motion: (sin(elapsed*speed)+1)/2 scaled to the curve length.
func PingPong(elapsed, speed float32, segments int) float32 {
	s := (math.Sin(float64(elapsed*speed)) + 1) / 2
	return float32(s) * float32(segments)
}

// Package gizmo collects immediate-mode debug lines for a frame and turns
// them into screen-space segments.
package gizmo

import (
	"image/color"

	"GopherAnchor/internal/anchor"
	"GopherAnchor/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

type strip struct {
	points []mgl32.Vec3
	color  color.RGBA
}

// Segment is one projected line piece in viewport pixels.
type Segment struct {
	From  mgl32.Vec2
	To    mgl32.Vec2
	Color color.RGBA
}

// Gizmos records line strips for the current frame. Strips are dropped by
// Clear, so callers re-submit them every frame.
type Gizmos struct {
	strips []strip
}

func New() *Gizmos {
	return &Gizmos{}
}

// LineStrip queues a polyline through points.
func (g *Gizmos) LineStrip(points []mgl32.Vec3, c color.RGBA) {
	if len(points) < 2 {
		return
	}
	owned := make([]mgl32.Vec3, len(points))
	copy(owned, points)
	g.strips = append(g.strips, strip{points: owned, color: c})
}

// Len returns the number of queued strips.
func (g *Gizmos) Len() int {
	return len(g.strips)
}

// Flush projects every queued strip through cam and clears the queue.
// Segments with an endpoint that cannot be projected are dropped.
func (g *Gizmos) Flush(cam camera.Snapshot) []Segment {
	var segments []Segment
	for _, s := range g.strips {
		prev, prevErr := anchor.Project(s.points[0], cam)
		for _, p := range s.points[1:] {
			cur, err := anchor.Project(p, cam)
			if prevErr == nil && err == nil {
				segments = append(segments, Segment{From: prev, To: cur, Color: s.color})
			}
			prev, prevErr = cur, err
		}
	}
	g.Clear()
	return segments
}

func (g *Gizmos) Clear() {
	g.strips = g.strips[:0]
}

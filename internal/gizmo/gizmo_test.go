package gizmo

import (
	"testing"

	"GopherAnchor/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() camera.Snapshot {
	cam := camera.New(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 10}
	cam.LookAt(mgl32.Vec3{0, 0, 0})
	return cam.Snapshot()
}

func TestFlushProjectsStrip(t *testing.T) {
	g := New()
	g.LineStrip([]mgl32.Vec3{{-1, 0, 0}, {0, 0, 0}, {1, 0, 0}}, White)

	segments := g.Flush(testCamera())

	require.Len(t, segments, 2)
	assert.InDelta(t, 400, segments[0].To.X(), 1e-3)
	assert.Equal(t, segments[0].To, segments[1].From)
	assert.Equal(t, White, segments[1].Color)
	assert.Zero(t, g.Len(), "flush clears the queue")
}

func TestFlushDropsSegmentsBehindCamera(t *testing.T) {
	g := New()
	g.LineStrip([]mgl32.Vec3{{0, 0, 0}, {0, 0, 20}, {1, 0, 0}, {2, 0, 0}}, White)

	segments := g.Flush(testCamera())

	require.Len(t, segments, 1)
	assert.Less(t, segments[0].From.X(), segments[0].To.X())
}

func TestLineStripIgnoresDegenerate(t *testing.T) {
	g := New()
	g.LineStrip([]mgl32.Vec3{{0, 0, 0}}, White)
	g.LineStrip(nil, White)

	assert.Zero(t, g.Len())
}

func TestLineStripCopiesPoints(t *testing.T) {
	g := New()
	points := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}}
	g.LineStrip(points, White)
	points[1] = mgl32.Vec3{0, 0, 20}

	assert.Len(t, g.Flush(testCamera()), 1)
}

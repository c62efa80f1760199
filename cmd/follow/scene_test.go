package main

import (
	"image/color"
	"testing"
	"time"

	"GopherAnchor/internal/anchor"
	"GopherAnchor/internal/config"
	"GopherAnchor/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowSceneAnchorsBottomRight(t *testing.T) {
	cfg := config.Default()
	gopher := newEngine(cfg)
	scene, err := setupScene(gopher, cfg)
	require.NoError(t, err)
	require.NoError(t, gopher.Setup())

	for i := 0; i < 20; i++ {
		frame, err := gopher.Step(0.05)
		require.NoError(t, err)
		require.Len(t, frame.Placements, 1)
		require.NoError(t, frame.Placements[0].Err, "the cube never leaves the camera's view")

		screen, err := anchor.Project(scene.Cube.Transform.Position, frame.Camera)
		require.NoError(t, err)

		label := frame.Labels[0]
		assert.True(t, label.Visible)
		assert.Equal(t, float32(100), label.Size.Y())
		assert.Equal(t, color.RGBA{B: 255, A: 255}, label.Background)
		corner := label.Position.Add(label.Size)
		assert.InDelta(t, screen.X(), corner.X(), 1e-3)
		assert.InDelta(t, screen.Y(), corner.Y(), 1e-3)
		assert.NotEmpty(t, frame.Gizmos, "curve gizmo is drawn every frame")
	}
}

func TestFollowSceneTranslationTarget(t *testing.T) {
	cfg := config.Default()
	cfg.Label.Target = "translation"
	cfg.Label.TargetPosition = config.Vec3{0, 3, 0}
	cfg.Label.Horizontal = "center"
	cfg.Label.Vertical = "center"

	gopher := newEngine(cfg)
	_, err := setupScene(gopher, cfg)
	require.NoError(t, err)
	require.NoError(t, gopher.Setup())

	frame, err := gopher.Step(0.016)
	require.NoError(t, err)

	label := frame.Labels[0]
	center := label.Position.Add(label.Size.Mul(0.5))
	assert.InDelta(t, float32(cfg.Window.Width)/2, center.X(), 1e-2)
	assert.InDelta(t, float32(cfg.Window.Height)/2, center.Y(), 1e-2)
}

func TestFollowSceneOrbitingCamera(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.OrbitSpeed = 1
	gopher := newEngine(cfg)
	scene, err := setupScene(gopher, cfg)
	require.NoError(t, err)
	require.NoError(t, gopher.Setup())

	start := gopher.Camera().Position
	_, err = gopher.Step(0.5)
	require.NoError(t, err)

	assert.False(t, gopher.Camera().Position.ApproxEqual(start), "camera orbits")
	assert.Equal(t, scene.Camera.Transform.Position, gopher.Camera().Position)
	want := mgl32.Vec3{0, 3, 0}.Sub(gopher.Camera().Position).Normalize()
	assert.True(t, gopher.Camera().Front.ApproxEqualThreshold(want, 1e-4))
}

func TestFollowSceneDuplicateCameraTag(t *testing.T) {
	cfg := config.Default()
	gopher := newEngine(cfg)
	_, err := setupScene(gopher, cfg)
	require.NoError(t, err)
	_, err = setupScene(gopher, cfg)
	require.NoError(t, err)

	assert.ErrorIs(t, gopher.Setup(), anchor.ErrAmbiguousCamera)
}

func TestEngineRefresh(t *testing.T) {
	assert.Equal(t, time.Second/60, engineRefresh(60))
	assert.Zero(t, engineRefresh(0))
}

func TestFrameReporterDoesNotPanic(t *testing.T) {
	report := frameReporter(0)

	assert.NotPanics(t, func() {
		report(engine.Frame{
			Index:      3,
			Placements: []anchor.Placement{{ElementID: 1, Err: anchor.ErrNotVisible}},
			Labels:     []engine.LabelState{{ID: 1}},
		})
	})
}

func TestShippedSceneMatchesDefaults(t *testing.T) {
	cfg, err := config.Load("scene.yaml")

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

package main

import (
	"fmt"
	"image/color"

	"GopherAnchor/internal/anchor"
	"GopherAnchor/internal/behaviour"
	"GopherAnchor/internal/camera"
	"GopherAnchor/internal/config"
	"GopherAnchor/internal/curve"
	"GopherAnchor/internal/engine"
	"GopherAnchor/internal/logger"
	"GopherAnchor/internal/ui"
	"GopherAnchor/scripts"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// followScene keeps handles to the objects the example spawns.
type followScene struct {
	Camera  *behaviour.GameObject
	Cube    *behaviour.GameObject
	LabelID int
}

func vec(v config.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func newEngine(cfg config.Config) *engine.Gopher {
	projector := anchor.NewProjector(cfg.Camera.Tag,
		anchor.WithHideWhenNotVisible(cfg.Label.HideWhenNotVisible),
		anchor.WithLogger(logger.Log))

	gopher := engine.NewGopher(projector)
	gopher.Width = cfg.Window.Width
	gopher.Height = cfg.Window.Height
	gopher.RefreshRate = engineRefresh(cfg.FPS)
	gopher.MaxFrames = cfg.Frames
	return gopher
}

// setupScene spawns the camera, the cube riding the curve and the label
// anchored to the cube.
func setupScene(gopher *engine.Gopher, cfg config.Config) (*followScene, error) {
	segments := make([]curve.Segment, 0, len(cfg.Curve.Segments))
	for _, s := range cfg.Curve.Segments {
		segments = append(segments, curve.Segment{vec(s[0]), vec(s[1]), vec(s[2]), vec(s[3])})
	}
	bezier, err := curve.NewCubic(segments...)
	if err != nil {
		return nil, fmt.Errorf("build curve: %w", err)
	}

	// The camera
	cam := camera.New(cfg.Window.Width, cfg.Window.Height)
	cam.Name = "MainCamera"
	cam.Position = vec(cfg.Camera.Position)
	cam.Fov = cfg.Camera.Fov
	cam.Near = cfg.Camera.Near
	cam.SetFar(cfg.Camera.Far)

	camObj := behaviour.NewGameObject("Camera")
	camObj.Tag = cfg.Camera.Tag
	camComp := camera.NewComponent(cam)
	camObj.AddComponent(camComp)
	camComp.LookAt(vec(cfg.Camera.LookAt))
	if cfg.Camera.OrbitSpeed > 0 {
		camObj.AddComponent(&scripts.OrbitScript{
			Center: vec(cfg.Camera.LookAt),
			Speed:  cfg.Camera.OrbitSpeed,
		})
	}
	gopher.Scene.RegisterGameObject(camObj)

	// Spawning a cube to experiment on
	cube := behaviour.NewGameObjectAt("Cube", bezier.Position(0))
	cube.AddComponent(&scripts.CurveFollowScript{
		Curve:   bezier,
		Speed:   cfg.Curve.Speed,
		Samples: cfg.Curve.GizmoSamples,
		Gizmos:  gopher.Gizmos,
	})
	gopher.Scene.RegisterGameObject(cube)

	bg := cfg.Label.Background
	label := ui.NewLabel(cfg.Label.Text, ui.Style{
		PositionType: ui.Absolute,
		Width:        cfg.Label.Width,
		Height:       cfg.Label.Height,
		Padding:      cfg.Label.Padding,
		Background:   color.RGBA{R: bg[0], G: bg[1], B: bg[2], A: bg[3]},
	})
	labelID := gopher.Layout.Add(label)

	h, err := anchor.ParseHorizontal(cfg.Label.Horizontal)
	if err != nil {
		return nil, err
	}
	v, err := anchor.ParseVertical(cfg.Label.Vertical)
	if err != nil {
		return nil, err
	}

	target := anchor.EntityTarget(cube.ID)
	if cfg.Label.Target == "translation" {
		target = anchor.TranslationTarget(vec(cfg.Label.TargetPosition))
	}
	gopher.Projector.Add(anchor.Node{
		ElementID:  labelID,
		Target:     target,
		Descriptor: anchor.NewDescriptor(h, v),
	})

	logger.Log.Info("Scene ready",
		zap.String("target", target.String()),
		zap.String("anchor", anchor.NewDescriptor(h, v).String()),
		zap.Int("segments", bezier.Segments()))

	return &followScene{Camera: camObj, Cube: cube, LabelID: labelID}, nil
}

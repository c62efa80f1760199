package engine

import (
	"context"
	"errors"
	"image/color"
	"math"
	"time"

	"GopherAnchor/internal/anchor"
	"GopherAnchor/internal/behaviour"
	"GopherAnchor/internal/camera"
	"GopherAnchor/internal/gizmo"
	"GopherAnchor/internal/logger"
	"GopherAnchor/internal/ui"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var ErrNotSetup = errors.New("engine: Setup must succeed before frames run")

var defaultRefreshRate = time.Second / 60

// LabelState is a copy of a UI element as laid out at the end of a frame.
type LabelState struct {
	ID         int
	Text       string
	Position   mgl32.Vec2
	Size       mgl32.Vec2
	Background color.RGBA
	Visible    bool
}

// Frame is everything a frontend needs to draw one frame of UI overlay.
type Frame struct {
	Index      int
	Delta      float32
	Camera     camera.Snapshot
	Placements []anchor.Placement
	Labels     []LabelState
	Gizmos     []gizmo.Segment
}

// Gopher drives a scene frame by frame: scripts first, then the anchor
// projector against the active camera, then debug gizmos.
type Gopher struct {
	Width       int
	Height      int
	Scene       *behaviour.ComponentManager
	Layout      *ui.Layout
	Projector   *anchor.Projector
	Gizmos      *gizmo.Gizmos
	RefreshRate time.Duration
	MaxFrames   int // 0 runs until the context is cancelled

	camera          *camera.Component
	frameIndex      int
	onFrameCallback func(Frame)
}

func NewGopher(projector *anchor.Projector) *Gopher {
	return &Gopher{
		Width:       1024,
		Height:      768,
		Scene:       behaviour.NewComponentManager(),
		Layout:      ui.NewLayout(),
		Projector:   projector,
		Gizmos:      gizmo.New(),
		RefreshRate: defaultRefreshRate,
	}
}

// SetOnFrameCallback sets a callback that receives every finished frame.
func (gopher *Gopher) SetOnFrameCallback(callback func(Frame)) {
	gopher.onFrameCallback = callback
}

// Setup resolves the active camera once. Missing or duplicated camera tags
// are reported here rather than on every frame.
func (gopher *Gopher) Setup() error {
	comp, err := gopher.Projector.ResolveCamera(gopher.Scene)
	if err != nil {
		logger.Log.Error("Active camera lookup failed",
			zap.String("tag", gopher.Projector.CameraTag()),
			zap.Error(err))
		return err
	}
	gopher.camera = comp
	gopher.camera.Camera.SetViewport(gopher.Width, gopher.Height)
	logger.Log.Info("Active camera resolved",
		zap.String("tag", gopher.Projector.CameraTag()),
		zap.String("object", comp.GetGameObject().Name),
		zap.Int("width", gopher.Width),
		zap.Int("height", gopher.Height))
	return nil
}

// Camera returns the active camera, nil before Setup.
func (gopher *Gopher) Camera() *camera.Camera {
	if gopher.camera == nil {
		return nil
	}
	return gopher.camera.Camera
}

// SetViewport handles a resize of the render target.
func (gopher *Gopher) SetViewport(width, height int) {
	if width == gopher.Width && height == gopher.Height {
		return
	}
	gopher.Width = width
	gopher.Height = height
	if gopher.camera != nil {
		gopher.camera.Camera.SetViewport(width, height)
	}
	logger.Log.Debug("Viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// Step runs exactly one frame with the given delta in seconds.
func (gopher *Gopher) Step(dt float32) (Frame, error) {
	if gopher.camera == nil {
		return Frame{}, ErrNotSetup
	}

	gopher.Scene.UpdateAll(dt)
	// Scripts may have moved the camera object after its own update ran.
	gopher.camera.Sync()

	snapshot := gopher.camera.Camera.Snapshot()
	placements := gopher.Projector.Step(anchor.FrameInput{
		Camera:   snapshot,
		Entities: gopher.Scene,
	}, gopher.Layout)

	frame := Frame{
		Index:      gopher.frameIndex,
		Delta:      dt,
		Camera:     snapshot,
		Placements: placements,
		Labels:     gopher.labelStates(),
		Gizmos:     gopher.Gizmos.Flush(snapshot),
	}
	gopher.frameIndex++

	if gopher.onFrameCallback != nil {
		gopher.onFrameCallback(frame)
	}
	return frame, nil
}

// Run steps frames on a ticker until ctx is done or MaxFrames is reached.
func (gopher *Gopher) Run(ctx context.Context) error {
	if gopher.camera == nil {
		return ErrNotSetup
	}
	refresh := gopher.RefreshRate
	if refresh <= 0 {
		refresh = defaultRefreshRate
	}

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	logger.Log.Info("Frame loop started", zap.Duration("refresh", refresh), zap.Int("max_frames", gopher.MaxFrames))
	lastTime := time.Now()
	for gopher.MaxFrames == 0 || gopher.frameIndex < gopher.MaxFrames {
		select {
		case <-ctx.Done():
			logger.Log.Info("Frame loop stopped", zap.Int("frames", gopher.frameIndex))
			return nil
		case now := <-ticker.C:
			deltaTime := now.Sub(lastTime).Seconds()
			lastTime = now
			if _, err := gopher.Step(float32(deltaTime)); err != nil {
				return err
			}
		}
	}
	logger.Log.Info("Frame limit reached", zap.Int("frames", gopher.frameIndex))
	return nil
}

// Pick returns the nearest active object whose bounding sphere of the given
// radius lies under the screen point, ignoring the camera itself.
func (gopher *Gopher) Pick(screen mgl32.Vec2, radius float32) *behaviour.GameObject {
	if gopher.camera == nil {
		return nil
	}
	ray := gopher.camera.Camera.Snapshot().ScreenToRay(screen)

	var picked *behaviour.GameObject
	closest := float32(math.MaxFloat32)
	for _, obj := range gopher.Scene.GetAllGameObjects() {
		if !obj.Alive() || obj == gopher.camera.GetGameObject() {
			continue
		}
		hit, dist, _ := camera.RayIntersectSphere(ray, obj.Transform.Position, radius)
		if hit && dist < closest {
			picked, closest = obj, dist
		}
	}
	return picked
}

func (gopher *Gopher) labelStates() []LabelState {
	elements := gopher.Layout.Elements()
	states := make([]LabelState, 0, len(elements))
	for _, label := range elements {
		states = append(states, LabelState{
			ID:         label.ID,
			Text:       label.Text,
			Position:   label.Position,
			Size:       label.Size,
			Background: label.Style.Background,
			Visible:    label.Visible,
		})
	}
	return states
}

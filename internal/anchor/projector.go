package anchor

import (
	"errors"
	"fmt"

	"GopherAnchor/internal/behaviour"
	"GopherAnchor/internal/camera"
	"GopherAnchor/internal/ui"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EntityLookup is the part of the scene the projector reads.
type EntityLookup interface {
	FindByID(id uuid.UUID) *behaviour.GameObject
	FindGameObjectsWithTag(tag string) []*behaviour.GameObject
}

// SizeLookup exposes the measured size of UI elements.
type SizeLookup interface {
	Size(id int) (mgl32.Vec2, error)
}

// LayoutWriter is the UI layout the projector writes placements into.
type LayoutWriter interface {
	SizeLookup
	SetPosition(id int, pos mgl32.Vec2) error
	SetVisible(id int, visible bool) error
}

// FrameInput is the immutable scene state for one frame.
type FrameInput struct {
	Camera   camera.Snapshot
	Entities EntityLookup
}

// Placement is the projector's verdict for one node in one frame. When Err
// is non-nil the element keeps its prior position.
type Placement struct {
	ElementID int
	Position  mgl32.Vec2
	Screen    mgl32.Vec2
	Err       error
}

func (p Placement) Visible() bool {
	return p.Err == nil
}

type Option func(*Projector)

// WithHideWhenNotVisible controls whether elements are hidden when their
// target cannot be projected. When false they stay visible at their last
// position.
func WithHideWhenNotVisible(hide bool) Option {
	return func(p *Projector) { p.hideWhenNotVisible = hide }
}

func WithLogger(log *zap.Logger) Option {
	return func(p *Projector) {
		if log != nil {
			p.log = log
		}
	}
}

// Projector positions anchored UI nodes relative to the camera tagged with
// cameraTag.
type Projector struct {
	cameraTag          string
	hideWhenNotVisible bool
	log                *zap.Logger

	nodes []Node
	shown map[int]bool
}

func NewProjector(cameraTag string, opts ...Option) *Projector {
	p := &Projector{
		cameraTag:          cameraTag,
		hideWhenNotVisible: true,
		log:                zap.NewNop(),
		shown:              make(map[int]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Projector) CameraTag() string {
	return p.cameraTag
}

// Add anchors a UI element. Adding a node for an element that is already
// anchored replaces it.
func (p *Projector) Add(node Node) {
	for i := range p.nodes {
		if p.nodes[i].ElementID == node.ElementID {
			p.nodes[i] = node
			return
		}
	}
	p.nodes = append(p.nodes, node)
}

// Remove drops the node of a UI element, normally when the element goes away.
func (p *Projector) Remove(elementID int) {
	for i := range p.nodes {
		if p.nodes[i].ElementID == elementID {
			p.nodes = append(p.nodes[:i], p.nodes[i+1:]...)
			delete(p.shown, elementID)
			return
		}
	}
}

func (p *Projector) Nodes() []Node {
	out := make([]Node, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// ResolveCamera finds the single entity carrying the camera tag and its
// camera. Zero or several tagged entities are configuration errors.
func (p *Projector) ResolveCamera(entities EntityLookup) (*camera.Component, error) {
	tagged := entities.FindGameObjectsWithTag(p.cameraTag)
	switch len(tagged) {
	case 0:
		return nil, fmt.Errorf("%w: tag %q", ErrNoActiveCamera, p.cameraTag)
	case 1:
	default:
		return nil, fmt.Errorf("%w: tag %q on %d entities", ErrAmbiguousCamera, p.cameraTag, len(tagged))
	}

	comp, ok := behaviour.ComponentOf[*camera.Component](tagged[0])
	if !ok || comp.Camera == nil {
		return nil, fmt.Errorf("%w: %q has no camera component", ErrNoActiveCamera, tagged[0].Name)
	}
	return comp, nil
}

// Update computes a placement for every node from this frame's state. It
// does not touch the layout.
func (p *Projector) Update(frame FrameInput, sizes SizeLookup) []Placement {
	placements := make([]Placement, 0, len(p.nodes))
	for _, node := range p.nodes {
		placements = append(placements, p.place(node, frame, sizes))
	}
	return placements
}

func (p *Projector) place(node Node, frame FrameInput, sizes SizeLookup) Placement {
	placement := Placement{ElementID: node.ElementID}

	world, err := p.targetPosition(node.Target, frame.Entities)
	if err != nil {
		placement.Err = err
		return placement
	}

	screen, err := Project(world, frame.Camera)
	if err != nil {
		placement.Err = err
		return placement
	}

	size, err := sizes.Size(node.ElementID)
	if err != nil {
		placement.Err = err
		return placement
	}

	placement.Screen = screen
	placement.Position = Align(screen.Add(node.Offset), size, node.Descriptor)
	return placement
}

func (p *Projector) targetPosition(target Target, entities EntityLookup) (mgl32.Vec3, error) {
	id, isEntity := target.Entity()
	if !isEntity {
		return target.translation, nil
	}
	if entities == nil {
		return mgl32.Vec3{}, ErrTargetMissing
	}
	obj := entities.FindByID(id)
	if !obj.Alive() {
		return mgl32.Vec3{}, ErrTargetMissing
	}
	return obj.Transform.Position, nil
}

// Apply writes placements into the layout. Failed placements leave the
// element where it was and hide it when the hide policy is on. A node whose
// element is gone from the layout is dropped. Errors from the layout are
// recorded on the placement.
func (p *Projector) Apply(placements []Placement, layout LayoutWriter) {
	for i := range placements {
		pl := &placements[i]
		if pl.Err == nil {
			pl.Err = layout.SetPosition(pl.ElementID, pl.Position)
			if pl.Err == nil {
				p.setShown(pl.ElementID, true, layout)
				continue
			}
		}

		switch {
		case errors.Is(pl.Err, ui.ErrUnknownElement):
			p.log.Debug("Anchored element removed, dropping node",
				zap.Int("element", pl.ElementID))
			p.Remove(pl.ElementID)
		case errors.Is(pl.Err, ui.ErrNotAbsolute):
			p.log.Warn("Anchored element is not absolutely positioned",
				zap.Int("element", pl.ElementID))
		default:
			p.log.Debug("Anchor update skipped",
				zap.Int("element", pl.ElementID),
				zap.Error(pl.Err))
			if p.hideWhenNotVisible {
				p.setShown(pl.ElementID, false, layout)
			}
		}
	}
}

// Step runs Update and Apply for one frame and returns the placements.
func (p *Projector) Step(frame FrameInput, layout LayoutWriter) []Placement {
	placements := p.Update(frame, layout)
	p.Apply(placements, layout)
	return placements
}

func (p *Projector) setShown(id int, shown bool, layout LayoutWriter) {
	if err := layout.SetVisible(id, shown); err != nil {
		return
	}
	if prev, ok := p.shown[id]; ok && prev == shown {
		return
	}
	p.shown[id] = shown
	p.log.Info("Anchored element visibility changed",
		zap.Int("element", id),
		zap.Bool("visible", shown))
}

// IsSkip reports whether err is one of the recoverable per-frame outcomes.
func IsSkip(err error) bool {
	return errors.Is(err, ErrTargetMissing) || errors.Is(err, ErrNotVisible)
}

// Package anchor keeps screen-space UI elements attached to points in the
// 3D world.
//
// Every frame the target's world position is pushed through the active
// camera's view-projection matrix, mapped to viewport pixels and offset by
// the element's measured size so that the requested corner or edge of the
// element lands on the projected point.
package anchor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

var (
	ErrNoActiveCamera  = errors.New("anchor: no entity carries the active camera tag")
	ErrAmbiguousCamera = errors.New("anchor: more than one entity carries the active camera tag")
	ErrTargetMissing   = errors.New("anchor: target entity is not alive")
	ErrNotVisible      = errors.New("anchor: target is not in front of the camera")
)

// HorizontalAnchor picks which vertical edge of the element sits on the
// projected point.
type HorizontalAnchor int

const (
	Left HorizontalAnchor = iota
	HCenter
	Right
)

func (h HorizontalAnchor) String() string {
	switch h {
	case Left:
		return "left"
	case HCenter:
		return "center"
	case Right:
		return "right"
	}
	return fmt.Sprintf("HorizontalAnchor(%d)", int(h))
}

// VerticalAnchor picks which horizontal edge of the element sits on the
// projected point.
type VerticalAnchor int

const (
	Top VerticalAnchor = iota
	VCenter
	Bottom
)

func (v VerticalAnchor) String() string {
	switch v {
	case Top:
		return "top"
	case VCenter:
		return "center"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("VerticalAnchor(%d)", int(v))
}

func ParseHorizontal(s string) (HorizontalAnchor, error) {
	switch strings.ToLower(s) {
	case "left":
		return Left, nil
	case "center", "centre", "":
		return HCenter, nil
	case "right":
		return Right, nil
	}
	return HCenter, fmt.Errorf("anchor: unknown horizontal anchor %q", s)
}

func ParseVertical(s string) (VerticalAnchor, error) {
	switch strings.ToLower(s) {
	case "top":
		return Top, nil
	case "center", "centre", "":
		return VCenter, nil
	case "bottom":
		return Bottom, nil
	}
	return VCenter, fmt.Errorf("anchor: unknown vertical anchor %q", s)
}

// Descriptor is the alignment pair of an anchored element. It is fixed when
// the node is created.
type Descriptor struct {
	horizontal HorizontalAnchor
	vertical   VerticalAnchor
}

func NewDescriptor(h HorizontalAnchor, v VerticalAnchor) Descriptor {
	return Descriptor{horizontal: h, vertical: v}
}

func (d Descriptor) Horizontal() HorizontalAnchor { return d.horizontal }
func (d Descriptor) Vertical() VerticalAnchor     { return d.vertical }

func (d Descriptor) String() string {
	return d.vertical.String() + "-" + d.horizontal.String()
}

// Target is what an element follows: a live entity or a fixed world point.
type Target struct {
	entity      uuid.UUID
	translation mgl32.Vec3
	isEntity    bool
}

func EntityTarget(id uuid.UUID) Target {
	return Target{entity: id, isEntity: true}
}

func TranslationTarget(pos mgl32.Vec3) Target {
	return Target{translation: pos}
}

// Entity returns the tracked entity id, if the target is an entity.
func (t Target) Entity() (uuid.UUID, bool) {
	return t.entity, t.isEntity
}

func (t Target) String() string {
	if t.isEntity {
		return "entity:" + t.entity.String()
	}
	return fmt.Sprintf("translation:(%g, %g, %g)", t.translation.X(), t.translation.Y(), t.translation.Z())
}

// Node binds a UI element to a target. Its lifetime follows the element.
type Node struct {
	ElementID  int
	Target     Target
	Descriptor Descriptor
	// Offset is added to the projected point before alignment, in pixels.
	Offset mgl32.Vec2
}

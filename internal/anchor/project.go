package anchor

import (
	"GopherAnchor/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

// minClipW guards the perspective divide. A point whose clip w is at or
// below it sits on or behind the eye plane.
const minClipW = 1e-6

// Project maps a world position to viewport pixels, origin top-left and Y
// down. Points behind the camera, at the eye, or outside the near/far range
// return ErrNotVisible. Points left/right/above/below the viewport are still
// returned so partially visible elements keep tracking.
func Project(world mgl32.Vec3, cam camera.Snapshot) (mgl32.Vec2, error) {
	clip := cam.ViewProjection().Mul4x1(world.Vec4(1))
	w := clip.W()
	if w <= minClipW || w != w {
		return mgl32.Vec2{}, ErrNotVisible
	}

	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return mgl32.Vec2{}, ErrNotVisible
	}

	x := (ndc.X() + 1) / 2 * float32(cam.Width)
	y := (1 - ndc.Y()) / 2 * float32(cam.Height)
	return mgl32.Vec2{x, y}, nil
}

// Align returns the top-left layout position that puts the descriptor's
// corner or edge of an element of the given size on point.
func Align(point, size mgl32.Vec2, d Descriptor) mgl32.Vec2 {
	x := point.X()
	switch d.horizontal {
	case HCenter:
		x -= size.X() / 2
	case Right:
		x -= size.X()
	}

	y := point.Y()
	switch d.vertical {
	case VCenter:
		y -= size.Y() / 2
	case Bottom:
		y -= size.Y()
	}
	return mgl32.Vec2{x, y}
}

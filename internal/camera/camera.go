package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	// HOT DATA - Read every frame to build the view/projection snapshot
	Position   mgl32.Vec3 // Camera position in world space
	Front      mgl32.Vec3 // Forward direction vector
	Up         mgl32.Vec3 // Up direction vector
	Right      mgl32.Vec3 // Right direction vector
	Projection mgl32.Mat4 // Projection matrix
	Pitch      float32    // Pitch angle in degrees
	Yaw        float32    // Yaw angle in degrees

	// COLD DATA - Configuration, changes rarely
	WorldUp     mgl32.Vec3 // World up vector (usually (0,1,0))
	Fov         float32    // Vertical field of view in degrees
	Near        float32    // Near clipping plane
	Far         float32    // Far clipping plane
	AspectRatio float32    // Viewport width / height
	Width       int        // Viewport width in pixels
	Height      int        // Viewport height in pixels

	// Identification
	Name string
}

// Snapshot is the read-only camera state used for one frame of projection.
type Snapshot struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Width      int
	Height     int
}

// ViewProjection returns Projection * View.
func (s Snapshot) ViewProjection() mgl32.Mat4 {
	return s.Projection.Mul4(s.View)
}

func New(width, height int) *Camera {
	camera := Camera{
		Position: mgl32.Vec3{0, 0, 10},
		Front:    mgl32.Vec3{0, 0, -1},
		Up:       mgl32.Vec3{0, 1, 0},
		WorldUp:  mgl32.Vec3{0, 1, 0},
		Pitch:    0.0,
		Yaw:      -90.0,
		Fov:      45.0,
		Near:     0.1,
		Far:      1000.0,
	}
	camera.SetViewport(width, height)
	camera.updateCameraVectors()
	return &camera
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

// Setter methods that automatically update projection
func (c *Camera) SetNear(near float32) {
	c.Near = near
	c.UpdateProjection()
}

func (c *Camera) SetFar(far float32) {
	c.Far = far
	c.UpdateProjection()
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

// SetViewport stores the pixel size of the render target and derives the
// aspect ratio from it. Non-positive sizes are clamped to one pixel.
func (c *Camera) SetViewport(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.Width = width
	c.Height = height
	c.AspectRatio = float32(width) / float32(height)
	c.UpdateProjection()
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.ViewMatrix())
}

func (c *Camera) Snapshot() Snapshot {
	return Snapshot{
		View:       c.ViewMatrix(),
		Projection: c.Projection,
		Width:      c.Width,
		Height:     c.Height,
	}
}

// LookAt turns the camera towards target. Looking at the camera's own
// position leaves the orientation unchanged.
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.Position)
	if direction.Len() < 1e-6 {
		return
	}
	direction = direction.Normalize()
	// Straight up or down has no yaw; keep the current heading.
	if math.Hypot(float64(direction.X()), float64(direction.Z())) > 1e-6 {
		c.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	}
	c.Pitch = mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(direction.Y(), -1, 1)))))
	c.setFront(direction)
}

// OrbitPoint returns the point at angle (radians) on a horizontal circle of
// the given radius around center, lifted by height. Angle 0 lies on +Z.
func OrbitPoint(center mgl32.Vec3, radius, height, angle float32) mgl32.Vec3 {
	return mgl32.Vec3{
		center.X() + radius*float32(math.Sin(float64(angle))),
		center.Y() + height,
		center.Z() + radius*float32(math.Cos(float64(angle))),
	}
}

// Orbit places the camera on OrbitPoint and points it at center.
func (c *Camera) Orbit(center mgl32.Vec3, radius, height, angle float32) {
	c.Position = OrbitPoint(center, radius, height, angle)
	c.LookAt(center)
}

func (c *Camera) updateCameraVectors() {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		float32(math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}
	c.setFront(front.Normalize())
}

// setFront derives Right and Up from a unit front vector. When front is
// parallel to WorldUp the yaw heading stands in for screen up.
func (c *Camera) setFront(front mgl32.Vec3) {
	c.Front = front
	right := front.Cross(c.WorldUp)
	if right.Len() < 1e-4 {
		yawRad := float64(mgl32.DegToRad(c.Yaw))
		heading := mgl32.Vec3{float32(math.Cos(yawRad)), 0, float32(math.Sin(yawRad))}
		if front.Dot(c.WorldUp) > 0 {
			heading = heading.Mul(-1)
		}
		right = front.Cross(heading)
	}
	c.Right = right.Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

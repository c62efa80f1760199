package camera

import (
	"GopherAnchor/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

// Component attaches a Camera to a GameObject. The GameObject's transform
// position drives the camera position; when Focus is set the camera keeps
// looking at it.
type Component struct {
	behaviour.BaseComponent
	Camera *Camera
	Focus  *mgl32.Vec3
}

func NewComponent(cam *Camera) *Component {
	return &Component{Camera: cam}
}

// LookAt fixes the camera on target from now on.
func (c *Component) LookAt(target mgl32.Vec3) {
	c.Focus = &target
	c.Sync()
}

func (c *Component) Awake() {
	if obj := c.GetGameObject(); obj != nil && c.Camera != nil {
		obj.Transform.Position = c.Camera.Position
	}
}

func (c *Component) Update(dt float32) {
	c.Sync()
}

// Sync copies the owning transform onto the camera.
func (c *Component) Sync() {
	obj := c.GetGameObject()
	if obj == nil || c.Camera == nil {
		return
	}
	c.Camera.Position = obj.Transform.Position
	if c.Focus != nil {
		c.Camera.LookAt(*c.Focus)
	}
}

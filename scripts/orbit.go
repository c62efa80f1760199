package scripts

import (
	"math"

	"GopherAnchor/internal/behaviour"
	"GopherAnchor/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitScript swings its GameObject around Center on a horizontal circle.
// Attached to the camera object it keeps the anchored label moving across
// the screen even while the target is still.
type OrbitScript struct {
	behaviour.BaseComponent
	Center mgl32.Vec3
	Radius float32
	Height float32
	Speed  float32 // radians per second
	angle  float32
}

func init() {
	behaviour.RegisterScript("OrbitScript", func() behaviour.Component {
		return &OrbitScript{Radius: 12.0, Height: 3.0, Speed: 0.5}
	})
}

// Start derives radius, height and phase from where the object already is
// so the orbit begins without a jump.
func (o *OrbitScript) Start() {
	obj := o.GetGameObject()
	if obj == nil {
		return
	}
	offset := obj.Transform.Position.Sub(o.Center)
	flat := mgl32.Vec2{offset.X(), offset.Z()}
	if flat.Len() > 1e-6 {
		o.Radius = flat.Len()
		o.angle = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
	}
	o.Height = offset.Y()
}

func (o *OrbitScript) Update(dt float32) {
	obj := o.GetGameObject()
	if obj == nil {
		return
	}
	o.angle += dt * o.Speed

	obj.Transform.Position = camera.OrbitPoint(o.Center, o.Radius, o.Height, o.angle)
}

package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenToRay converts a viewport pixel (origin top-left, Y down) to a world
// space ray leaving the eye. It is the inverse of projecting a world point.
func (s Snapshot) ScreenToRay(screen mgl32.Vec2) Ray {
	ndcX := 2.0*screen.X()/float32(s.Width) - 1.0
	ndcY := 1.0 - 2.0*screen.Y()/float32(s.Height)

	invViewProjection := s.ViewProjection().Inv()
	near := invViewProjection.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := invViewProjection.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
	nearPoint := near.Vec3().Mul(1 / near.W())
	farPoint := far.Vec3().Mul(1 / far.W())

	eye := s.View.Inv().Col(3).Vec3()
	return Ray{
		Origin:    eye,
		Direction: farPoint.Sub(nearPoint).Normalize(),
	}
}

// RayIntersectSphere tests if a ray intersects a sphere
// Returns: (intersected, distance, intersection point)
func RayIntersectSphere(ray Ray, sphereCenter mgl32.Vec3, radius float32) (bool, float32, mgl32.Vec3) {
	oc := ray.Origin.Sub(sphereCenter)

	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return false, 0, mgl32.Vec3{}
	}

	sqrtDisc := float32(math.Sqrt(float64(discriminant)))
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	// Closest intersection in front of the origin
	var t float32
	switch {
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return false, 0, mgl32.Vec3{}
	}

	return true, t, ray.At(t)
}

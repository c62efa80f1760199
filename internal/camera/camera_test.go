package camera

import (
	"math"
	"testing"

	"GopherAnchor/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCamera(t *testing.T) {
	cam := New(800, 600)

	if cam == nil {
		t.Fatal("New returned nil")
	}

	if cam.Width != 800 || cam.Height != 600 {
		t.Errorf("Expected viewport 800x600, got %dx%d", cam.Width, cam.Height)
	}

	if math.Abs(float64(cam.AspectRatio)-800.0/600.0) > 1e-6 {
		t.Errorf("Expected aspect ratio width/height, got %f", cam.AspectRatio)
	}

	if !cam.Front.ApproxEqual(mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Default camera should look down -Z, got %v", cam.Front)
	}
}

func TestCameraSetViewportClamps(t *testing.T) {
	cam := New(0, -5)

	if cam.Width != 1 || cam.Height != 1 {
		t.Errorf("Expected viewport clamped to 1x1, got %dx%d", cam.Width, cam.Height)
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := New(800, 600)

	proj := cam.ProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
	if proj.At(3, 2) != -1.0 {
		t.Error("Perspective projection should copy -z into w")
	}
}

func TestCameraSettersUpdateProjection(t *testing.T) {
	cam := New(800, 600)
	before := cam.Projection

	cam.SetFov(90)

	if cam.Projection == before {
		t.Error("SetFov should rebuild the projection matrix")
	}

	before = cam.Projection
	cam.SetNear(1)
	if cam.Projection == before {
		t.Error("SetNear should rebuild the projection matrix")
	}

	before = cam.Projection
	cam.SetFar(50)
	if cam.Projection == before {
		t.Error("SetFar should rebuild the projection matrix")
	}
}

func TestCameraLookAt(t *testing.T) {
	cases := []struct {
		name     string
		position mgl32.Vec3
		target   mgl32.Vec3
	}{
		{"down -z", mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}},
		{"example scene", mgl32.Vec3{0, 6, 12}, mgl32.Vec3{0, 3, 0}},
		{"from the side", mgl32.Vec3{10, 0, 0}, mgl32.Vec3{0, 0, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cam := New(800, 600)
			cam.Position = tc.position

			cam.LookAt(tc.target)

			want := tc.target.Sub(tc.position).Normalize()
			if !cam.Front.ApproxEqualThreshold(want, 1e-4) {
				t.Errorf("Expected front %v, got %v", want, cam.Front)
			}
			if math.Abs(float64(cam.Front.Dot(cam.Right))) > 1e-4 {
				t.Error("Right should be orthogonal to front")
			}
			if cam.Up.Y() <= 0 {
				t.Errorf("Up should point upwards, got %v", cam.Up)
			}
		})
	}
}

func TestCameraLookAtStraightDownAndUp(t *testing.T) {
	for _, target := range []mgl32.Vec3{{0, 0, 0}, {0, 20, 0}} {
		cam := New(800, 600)
		cam.Position = mgl32.Vec3{0, 10, 0}

		cam.LookAt(target)

		want := target.Sub(cam.Position).Normalize()
		if !cam.Front.ApproxEqualThreshold(want, 1e-5) {
			t.Errorf("Expected front %v, got %v", want, cam.Front)
		}
		if math.Abs(float64(cam.Right.Len())-1) > 1e-4 || math.Abs(float64(cam.Up.Len())-1) > 1e-4 {
			t.Errorf("Basis should stay unit length, right %v up %v", cam.Right, cam.Up)
		}
		if math.Abs(float64(cam.Front.Dot(cam.Right))) > 1e-4 || math.Abs(float64(cam.Front.Dot(cam.Up))) > 1e-4 {
			t.Errorf("Basis should stay orthogonal, right %v up %v", cam.Right, cam.Up)
		}
		if !cam.Right.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-4) {
			t.Errorf("Right should keep the heading's right, got %v", cam.Right)
		}
	}
}

func TestCameraLookAtOwnPosition(t *testing.T) {
	cam := New(800, 600)
	front := cam.Front

	cam.LookAt(cam.Position)

	if cam.Front != front {
		t.Error("Looking at own position should keep orientation")
	}
}

func TestCameraOrbit(t *testing.T) {
	cam := New(800, 600)
	center := mgl32.Vec3{0, 3, 0}

	cam.Orbit(center, 12, 3, 0)

	if !cam.Position.ApproxEqual(mgl32.Vec3{0, 6, 12}) {
		t.Errorf("Expected orbit start (0,6,12), got %v", cam.Position)
	}

	want := center.Sub(cam.Position).Normalize()
	if !cam.Front.ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("Orbiting camera should face the center, got %v", cam.Front)
	}
}

func TestOrbitPoint(t *testing.T) {
	center := mgl32.Vec3{1, 3, -2}

	for _, angle := range []float32{0, 0.7, math.Pi, 4} {
		p := OrbitPoint(center, 5, 2, angle)
		flat := mgl32.Vec2{p.X() - center.X(), p.Z() - center.Z()}
		if math.Abs(float64(flat.Len())-5) > 1e-4 {
			t.Errorf("angle %v: radius %v, want 5", angle, flat.Len())
		}
		if p.Y() != 5 {
			t.Errorf("angle %v: height %v, want 5", angle, p.Y())
		}
	}
}

func TestSnapshotViewProjection(t *testing.T) {
	cam := New(800, 600)

	snap := cam.Snapshot()

	if snap.Width != 800 || snap.Height != 600 {
		t.Errorf("Snapshot viewport mismatch: %dx%d", snap.Width, snap.Height)
	}
	if snap.ViewProjection() != cam.ViewProjection() {
		t.Error("Snapshot view-projection should match the camera's")
	}
}

func TestComponentSync(t *testing.T) {
	cam := New(800, 600)
	cam.Position = mgl32.Vec3{0, 6, 12}
	obj := behaviour.NewGameObject("Camera")
	comp := NewComponent(cam)
	obj.AddComponent(comp)

	if obj.Transform.Position != cam.Position {
		t.Fatal("Awake should copy the camera position onto the transform")
	}

	comp.LookAt(mgl32.Vec3{0, 3, 0})
	obj.Transform.Position = mgl32.Vec3{5, 6, 12}
	comp.Update(0.016)

	if cam.Position != obj.Transform.Position {
		t.Errorf("Camera should follow transform, got %v", cam.Position)
	}
	want := mgl32.Vec3{0, 3, 0}.Sub(cam.Position).Normalize()
	if !cam.Front.ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("Camera should keep looking at focus, got %v", cam.Front)
	}
}

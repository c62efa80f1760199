package scripts

import (
	"GopherAnchor/internal/behaviour"
	"GopherAnchor/internal/curve"
	"GopherAnchor/internal/gizmo"
)

// CurveFollowScript moves its GameObject back and forth along a cubic
// curve and, when Gizmos is set, draws the curve every frame.
type CurveFollowScript struct {
	behaviour.BaseComponent
	Curve   *curve.Cubic
	Speed   float32
	Samples int
	Gizmos  *gizmo.Gizmos
	elapsed float32
}

func init() {
	behaviour.RegisterScript("CurveFollowScript", func() behaviour.Component {
		return &CurveFollowScript{Speed: 1.0, Samples: 50}
	})
}

func (s *CurveFollowScript) Start() {
	s.place()
}

func (s *CurveFollowScript) Update(dt float32) {
	s.elapsed += dt
	if s.Gizmos != nil && s.Curve != nil {
		s.Gizmos.LineStrip(s.Curve.IterPositions(s.Samples), gizmo.White)
	}
	s.place()
}

// Elapsed returns the animation clock in seconds.
func (s *CurveFollowScript) Elapsed() float32 {
	return s.elapsed
}

func (s *CurveFollowScript) place() {
	obj := s.GetGameObject()
	if obj == nil || s.Curve == nil {
		return
	}
	t := curve.PingPong(s.elapsed, s.Speed, s.Curve.Segments())
	obj.Transform.Position = s.Curve.Position(t)
}

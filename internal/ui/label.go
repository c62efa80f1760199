package ui

import (
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// PositionType mirrors CSS-style positioning. Anchored elements must be
// Absolute so their layout position is taken verbatim.
type PositionType int

const (
	Relative PositionType = iota
	Absolute
)

// Style is the layout input of an element. Zero Width/Height mean "size to
// content".
type Style struct {
	PositionType PositionType
	Width        float32
	Height       float32
	Padding      float32
	Background   color.RGBA
}

// Label is a text UI element. Position is the top-left corner in pixels,
// Y growing downward.
type Label struct {
	ID       int
	Text     string
	Style    Style
	Position mgl32.Vec2
	Size     mgl32.Vec2
	Visible  bool

	face font.Face
}

func NewLabel(text string, style Style) *Label {
	return &Label{
		Text:    text,
		Style:   style,
		Visible: true,
		face:    basicfont.Face7x13,
	}
}

// Measure computes the element size from its text and style and stores it.
// Multi-line text uses the widest line and one font line height per line.
func (l *Label) Measure() mgl32.Vec2 {
	lines := strings.Split(l.Text, "\n")

	var widest int
	for _, line := range lines {
		if w := font.MeasureString(l.face, line).Ceil(); w > widest {
			widest = w
		}
	}
	lineHeight := l.face.Metrics().Height.Ceil()

	width := float32(widest) + 2*l.Style.Padding
	height := float32(lineHeight*len(lines)) + 2*l.Style.Padding

	if l.Style.Width > 0 {
		width = l.Style.Width
	}
	if l.Style.Height > 0 {
		height = l.Style.Height
	}

	l.Size = mgl32.Vec2{width, height}
	return l.Size
}

// Rect returns the element bounds as min and max corners.
func (l *Label) Rect() (mgl32.Vec2, mgl32.Vec2) {
	return l.Position, l.Position.Add(l.Size)
}

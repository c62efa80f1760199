package ui

import (
	"errors"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrUnknownElement = errors.New("ui: unknown element")
	ErrNotAbsolute    = errors.New("ui: element is not absolutely positioned")
)

// Layout owns the UI elements of a screen. It is the single writer of
// element position and visibility.
type Layout struct {
	elements map[int]*Label
	nextID   int
}

func NewLayout() *Layout {
	return &Layout{elements: make(map[int]*Label), nextID: 1}
}

// Add registers a label, assigns its ID and measures it.
func (l *Layout) Add(label *Label) int {
	label.ID = l.nextID
	l.nextID++
	l.elements[label.ID] = label
	label.Measure()
	return label.ID
}

func (l *Layout) Remove(id int) {
	delete(l.elements, id)
}

func (l *Layout) Get(id int) (*Label, bool) {
	label, ok := l.elements[id]
	return label, ok
}

// Measure re-measures every element, e.g. after text changes.
func (l *Layout) Measure() {
	for _, label := range l.elements {
		label.Measure()
	}
}

// Size returns the measured size of element id.
func (l *Layout) Size(id int) (mgl32.Vec2, error) {
	label, ok := l.elements[id]
	if !ok {
		return mgl32.Vec2{}, ErrUnknownElement
	}
	return label.Size, nil
}

// SetPosition moves an Absolute element. Relative elements are placed by
// their container and reject explicit positions.
func (l *Layout) SetPosition(id int, pos mgl32.Vec2) error {
	label, ok := l.elements[id]
	if !ok {
		return ErrUnknownElement
	}
	if label.Style.PositionType != Absolute {
		return ErrNotAbsolute
	}
	label.Position = pos
	return nil
}

func (l *Layout) SetVisible(id int, visible bool) error {
	label, ok := l.elements[id]
	if !ok {
		return ErrUnknownElement
	}
	label.Visible = visible
	return nil
}

// Elements returns all elements in creation order.
func (l *Layout) Elements() []*Label {
	out := make([]*Label, 0, len(l.elements))
	for _, label := range l.elements {
		out = append(out, label)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

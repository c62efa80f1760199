package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Component is the base interface for all components
// Components can be attached to game objects
type Component interface {
	// Lifecycle methods
	Awake()            // Called when component is first attached
	Start()            // Called once when the owning object is registered
	Update(dt float32) // Called every frame with the frame delta in seconds
	OnDestroy()        // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods
// User scripts can embed this to only override methods they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()            {}
func (c *BaseComponent) Start()            {}
func (c *BaseComponent) Update(dt float32) {}
func (c *BaseComponent) OnDestroy()        {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// GameObject represents an object in the scene.
// ID is stable for the object's lifetime and is what UI anchors hold on to.
type GameObject struct {
	ID         uuid.UUID
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component
	destroyed  bool
}

// Transform component
type Transform struct {
	BaseComponent
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// Transform methods
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (t *Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// GameObject methods
func NewGameObject(name string) *GameObject {
	obj := &GameObject{
		ID:         uuid.New(),
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform: &Transform{
			Position: mgl32.Vec3{0, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
	}
	obj.Transform.SetGameObject(obj)
	return obj
}

// NewGameObjectAt creates a game object positioned at pos.
func NewGameObjectAt(name string, pos mgl32.Vec3) *GameObject {
	obj := NewGameObject(name)
	obj.Transform.Position = pos
	return obj
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

// ComponentOf returns the first component of obj with concrete type T.
func ComponentOf[T Component](obj *GameObject) (T, bool) {
	var zero T
	if obj == nil {
		return zero, false
	}
	for _, comp := range obj.Components {
		if typed, ok := comp.(T); ok {
			return typed, true
		}
	}
	return zero, false
}

// Alive reports whether the object is active and has not been destroyed.
func (obj *GameObject) Alive() bool {
	return obj != nil && obj.Active && !obj.destroyed
}

func (obj *GameObject) internalUpdate(dt float32) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update(dt)
		}
	}
}

func (obj *GameObject) internalStart() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

func (obj *GameObject) Destroy() {
	if obj.destroyed {
		return
	}
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
	obj.destroyed = true
}

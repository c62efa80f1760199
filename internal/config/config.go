package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"GopherAnchor/internal/anchor"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Vec3 is a config-friendly [x, y, z] triple.
type Vec3 [3]float32

type WindowConfig struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

type CameraConfig struct {
	Tag      string  `json:"tag" yaml:"tag"`
	Position Vec3    `json:"position" yaml:"position"`
	LookAt   Vec3    `json:"look_at" yaml:"look_at"`
	Fov      float32 `json:"fov" yaml:"fov"`
	Near     float32 `json:"near" yaml:"near"`
	Far      float32 `json:"far" yaml:"far"`
	// OrbitSpeed > 0 swings the camera around LookAt, radians per second.
	OrbitSpeed float32 `json:"orbit_speed,omitempty" yaml:"orbit_speed,omitempty"`
}

type CurveConfig struct {
	// Segments lists cubic pieces, four control points each.
	Segments     [][4]Vec3 `json:"segments" yaml:"segments"`
	Speed        float32   `json:"speed" yaml:"speed"`
	GizmoSamples int       `json:"gizmo_samples" yaml:"gizmo_samples"`
}

type LabelConfig struct {
	Text       string   `json:"text" yaml:"text"`
	Width      float32  `json:"width,omitempty" yaml:"width,omitempty"`
	Height     float32  `json:"height,omitempty" yaml:"height,omitempty"`
	Padding    float32  `json:"padding,omitempty" yaml:"padding,omitempty"`
	Background [4]uint8 `json:"background" yaml:"background"`
	Horizontal string   `json:"horizontal" yaml:"horizontal"`
	Vertical   string   `json:"vertical" yaml:"vertical"`
	// Target is "entity" to follow the animated cube or "translation" to
	// pin the label to TargetPosition.
	Target             string `json:"target" yaml:"target"`
	TargetPosition     Vec3   `json:"target_position,omitempty" yaml:"target_position,omitempty"`
	HideWhenNotVisible bool   `json:"hide_when_not_visible" yaml:"hide_when_not_visible"`
}

type Config struct {
	Window   WindowConfig `json:"window" yaml:"window"`
	FPS      int          `json:"fps" yaml:"fps"`
	Frames   int          `json:"frames" yaml:"frames"`
	LogLevel string       `json:"log_level" yaml:"log_level"`
	Camera   CameraConfig `json:"camera" yaml:"camera"`
	Curve    CurveConfig  `json:"curve" yaml:"curve"`
	Label    LabelConfig  `json:"label" yaml:"label"`
}

// Default reproduces the follow example: an orange cube riding a Bezier
// curve and a blue label anchored by its bottom-right corner to it.
func Default() Config {
	return Config{
		Window:   WindowConfig{Width: 1280, Height: 720},
		FPS:      60,
		Frames:   0,
		LogLevel: "info",
		Camera: CameraConfig{
			Tag:      "MainCamera",
			Position: Vec3{0, 6, 12},
			LookAt:   Vec3{0, 3, 0},
			Fov:      45,
			Near:     0.1,
			Far:      1000,
		},
		Curve: CurveConfig{
			Segments: [][4]Vec3{{
				{-6, 2, 0},
				{12, 8, 0},
				{-12, 8, 0},
				{6, 2, 0},
			}},
			Speed:        1,
			GizmoSamples: 50,
		},
		Label: LabelConfig{
			Text:               "Text Anchored in bottom right",
			Height:             100,
			Background:         [4]uint8{0, 0, 255, 255},
			Horizontal:         "right",
			Vertical:           "bottom",
			Target:             "entity",
			HideWhenNotVisible: true,
		},
	}
}

// Load reads path, picking the decoder by extension. A missing file yields
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".json":
		return LoadJSON(f)
	}
	return Config{}, fmt.Errorf("config %s: unsupported extension %q", path, filepath.Ext(path))
}

// LoadYAML decodes over the defaults so partial files are allowed.
func LoadYAML(r io.Reader) (Config, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml config: %w", err)
	}
	return c, c.Validate()
}

// LoadJSON decodes over the defaults so partial files are allowed.
func LoadJSON(r io.Reader) (Config, error) {
	c := Default()
	if err := json.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode json config: %w", err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames must not be negative", ErrInvalidConfig)
	case strings.TrimSpace(c.Camera.Tag) == "":
		return fmt.Errorf("%w: camera.tag is empty", ErrInvalidConfig)
	case c.Camera.Fov <= 0 || c.Camera.Fov >= 180:
		return fmt.Errorf("%w: camera.fov must be in (0, 180), got %g", ErrInvalidConfig, c.Camera.Fov)
	case c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far:
		return fmt.Errorf("%w: camera needs 0 < near < far, got near=%g far=%g", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	case len(c.Curve.Segments) == 0:
		return fmt.Errorf("%w: curve.segments is empty", ErrInvalidConfig)
	}

	if _, err := anchor.ParseHorizontal(c.Label.Horizontal); err != nil {
		return fmt.Errorf("%w: label.horizontal: %v", ErrInvalidConfig, err)
	}
	if _, err := anchor.ParseVertical(c.Label.Vertical); err != nil {
		return fmt.Errorf("%w: label.vertical: %v", ErrInvalidConfig, err)
	}
	switch c.Label.Target {
	case "entity", "translation":
	default:
		return fmt.Errorf("%w: label.target must be entity or translation, got %q", ErrInvalidConfig, c.Label.Target)
	}
	return nil
}

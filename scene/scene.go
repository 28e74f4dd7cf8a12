// Package scene loads declarative window/camera/touch fixtures and spawns them into a world.
package scene

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Target names understood by camera definitions besides window names
const (
	TargetPrimary     = "primary"
	TargetImagePrefix = "image:"
)

// Projection names
const (
	ProjectionOrthographic = "orthographic"
	ProjectionPerspective  = "perspective"
)

var (
	// ErrUnknownFormat is returned for scene files that are neither TOML nor YAML
	ErrUnknownFormat = errors.New("unknown scene format")
	// ErrUnknownWindow is returned when a camera targets a window name not declared in the scene
	ErrUnknownWindow = errors.New("unknown window")
)

// Scene is the decoded fixture
type Scene struct {
	Windows []Window `toml:"windows" yaml:"windows"`
	Cameras []Camera `toml:"cameras" yaml:"cameras"`
	Touches []Touch  `toml:"touches" yaml:"touches"`
}

// Window declares one window entity
// Width and Height are logical pixels, Cursor is window-local logical pixels
type Window struct {
	Name    string    `toml:"name" yaml:"name"`
	Title   string    `toml:"title" yaml:"title"`
	Width   float32   `toml:"width" yaml:"width"`
	Height  float32   `toml:"height" yaml:"height"`
	Scale   float64   `toml:"scale" yaml:"scale"`
	Primary bool      `toml:"primary" yaml:"primary"`
	Cursor  []float32 `toml:"cursor" yaml:"cursor"`
}

// Camera declares one camera entity
// Target is "primary", a window name, or "image:<name>"
type Camera struct {
	Name        string    `toml:"name" yaml:"name"`
	Target      string    `toml:"target" yaml:"target"`
	Projection  string    `toml:"projection" yaml:"projection"`
	Scale       float32   `toml:"scale" yaml:"scale"`
	ShowUI      *bool     `toml:"show_ui" yaml:"show_ui"`
	Translation []float32 `toml:"translation" yaml:"translation"`
	Viewport    *Viewport `toml:"viewport" yaml:"viewport"`
}

// Viewport is a physical-pixel rectangle of the target
type Viewport struct {
	X      float32 `toml:"x" yaml:"x"`
	Y      float32 `toml:"y" yaml:"y"`
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
}

// Touch declares a pressed touch in primary window logical pixels
type Touch struct {
	ID uint64  `toml:"id" yaml:"id"`
	X  float32 `toml:"x" yaml:"x"`
	Y  float32 `toml:"y" yaml:"y"`
}

// Validate checks names, references and vector lengths
func (s *Scene) Validate() error {
	names := make(map[string]struct{}, len(s.Windows))
	for i, w := range s.Windows {
		if w.Name == "" {
			return errors.Errorf("window %d: missing name", i)
		}
		if w.Name == TargetPrimary || strings.HasPrefix(w.Name, TargetImagePrefix) {
			return errors.Errorf("window %q: name is reserved for camera targets", w.Name)
		}
		if _, dup := names[w.Name]; dup {
			return errors.Errorf("window %q: duplicate name", w.Name)
		}
		names[w.Name] = struct{}{}
		if w.Width < 0 || w.Height < 0 || w.Scale < 0 {
			return errors.Errorf("window %q: negative size or scale", w.Name)
		}
		if w.Cursor != nil && len(w.Cursor) != 2 {
			return errors.Errorf("window %q: cursor needs 2 components, got %d", w.Name, len(w.Cursor))
		}
	}

	for i, c := range s.Cameras {
		label := c.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		switch c.Projection {
		case "", ProjectionOrthographic, ProjectionPerspective:
		default:
			return errors.Errorf("camera %s: unknown projection %q", label, c.Projection)
		}
		if c.Translation != nil && len(c.Translation) != 3 {
			return errors.Errorf("camera %s: translation needs 3 components, got %d", label, len(c.Translation))
		}
		switch {
		case c.Target == "" || c.Target == TargetPrimary:
		case strings.HasPrefix(c.Target, TargetImagePrefix):
		default:
			if _, ok := names[c.Target]; !ok {
				return errors.Wrapf(ErrUnknownWindow, "camera %s: target %q", label, c.Target)
			}
		}
	}
	return nil
}

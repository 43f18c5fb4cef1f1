// Package scene builds renderable worlds, either from the built-in demo
// scenes or from JSON scene descriptions.
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"whitted-renderer/internal/world"
)

// ErrUnknownScene is returned when a name is neither a built-in scene nor a
// readable file.
var ErrUnknownScene = errors.New("scene: unknown scene")

// Scene is a world plus the camera it is viewed through.
type Scene struct {
	Name   string
	World  *world.World
	Camera *world.Camera
}

// Resize replaces the camera with one of the given size, keeping its field
// of view and placement. Non-positive sizes leave the camera unchanged.
func (s *Scene) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if width == s.Camera.HSize && height == s.Camera.VSize {
		return nil
	}
	cam := world.NewCamera(width, height, s.Camera.Fov)
	if err := cam.SetTransform(s.Camera.Transform()); err != nil {
		return fmt.Errorf("scene: resize %s: %w", s.Name, err)
	}
	s.Camera = cam
	return nil
}

// Resolve returns the built-in scene called nameOrPath, or loads it as a JSON
// file when it names one.
func Resolve(nameOrPath string) (*Scene, error) {
	if s, err := Builtin(nameOrPath); err == nil {
		return s, nil
	}
	if strings.EqualFold(filepath.Ext(nameOrPath), ".json") {
		return Load(nameOrPath)
	}
	if _, err := os.Stat(nameOrPath); err == nil {
		return Load(nameOrPath)
	}
	return nil, fmt.Errorf("%w: %q (built-ins: %s)", ErrUnknownScene, nameOrPath, strings.Join(Names(), ", "))
}

package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"whitted-renderer/internal/colour"
	"whitted-renderer/internal/geometry"
	"whitted-renderer/internal/lighting"
	"whitted-renderer/internal/material"
	"whitted-renderer/internal/mathutil"
	"whitted-renderer/internal/world"
)

// Camera defaults for descriptions that leave them out.
const (
	DefaultWidth  = 400
	DefaultHeight = 400
	DefaultFOV    = math.Pi / 3
)

// Load reads a JSON scene description. The scene is named after the file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s, err := Parse(name, data)
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from a JSON description. Unknown fields are rejected.
func Parse(name string, data []byte) (*Scene, error) {
	var f sceneFile
	if err := decodeStrict(data, &f); err != nil {
		return nil, err
	}

	cam, err := buildCamera(f.Camera)
	if err != nil {
		return nil, err
	}

	w := world.New()
	if f.Background != nil {
		w.Background = rgb(*f.Background)
	}
	for _, l := range f.Lights {
		intensity := colour.White
		if l.Intensity != nil {
			intensity = rgb(*l.Intensity)
		}
		w.AddLight(lighting.NewPointLight(point(l.Position), intensity))
	}

	for i, oj := range f.Objects {
		o, err := buildObject(oj, f.Presets)
		if err != nil {
			label := oj.Name
			if label == "" {
				label = oj.Shape
			}
			return nil, fmt.Errorf("object %d (%s): %w", i, label, err)
		}
		w.Add(o)
	}

	return &Scene{Name: name, World: w, Camera: cam}, nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func buildCamera(c cameraJSON) (*world.Camera, error) {
	width, height := c.Width, c.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	fov := DefaultFOV
	switch {
	case c.FOV != nil:
		fov = *c.FOV
	case c.FOVDegrees != nil:
		fov = mathutil.Deg2Rad(*c.FOVDegrees)
	}
	if fov <= 0 || fov >= math.Pi {
		return nil, fmt.Errorf("camera: field of view %v out of range (0, pi)", fov)
	}

	from, to, up := mathutil.Point(0, 0, -5), mathutil.Point(0, 0, 0), mathutil.Vector(0, 1, 0)
	if c.From != nil {
		from = point(*c.From)
	}
	if c.To != nil {
		to = point(*c.To)
	}
	if c.Up != nil {
		up = vector(*c.Up)
	}

	cam := world.NewCamera(width, height, fov)
	if err := cam.SetTransform(world.ViewTransform(from, to, up)); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	return cam, nil
}

func buildObject(oj objectJSON, presets map[string]json.RawMessage) (*geometry.Object, error) {
	var o *geometry.Object
	switch oj.Shape {
	case "sphere":
		o = geometry.NewSphere()
	case "plane":
		o = geometry.NewPlane()
	case "glass_sphere":
		o = geometry.NewGlassSphere()
	default:
		return nil, fmt.Errorf("unknown shape %q", oj.Shape)
	}
	o.Name = oj.Name

	if oj.Preset != "" {
		raw, ok := presets[oj.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", oj.Preset)
		}
		if err := applyMaterial(&o.Material, raw); err != nil {
			return nil, fmt.Errorf("preset %s: %w", oj.Preset, err)
		}
	}
	if len(oj.Material) > 0 {
		if err := applyMaterial(&o.Material, oj.Material); err != nil {
			return nil, fmt.Errorf("material: %w", err)
		}
	}

	m, err := buildTransform(oj.Transform)
	if err != nil {
		return nil, err
	}
	if err := o.SetTransform(m); err != nil {
		return nil, err
	}
	return o, nil
}

// applyMaterial overlays the fields set in raw onto m.
func applyMaterial(m *material.Material, raw json.RawMessage) error {
	var mj materialJSON
	if err := decodeStrict(raw, &mj); err != nil {
		return err
	}
	if mj.Colour != nil {
		m.Colour = rgb(*mj.Colour)
	}
	setFloat(&m.Ambient, mj.Ambient)
	setFloat(&m.Diffuse, mj.Diffuse)
	setFloat(&m.Specular, mj.Specular)
	setFloat(&m.Shininess, mj.Shininess)
	setFloat(&m.Reflective, mj.Reflective)
	setFloat(&m.Transparency, mj.Transparency)
	setFloat(&m.RefractiveIndex, mj.RefractiveIndex)

	if m.Reflective < 0 || m.Reflective > 1 {
		return fmt.Errorf("reflective %v outside [0, 1]", m.Reflective)
	}
	if m.Transparency < 0 || m.Transparency > 1 {
		return fmt.Errorf("transparency %v outside [0, 1]", m.Transparency)
	}
	if m.RefractiveIndex <= 0 {
		return fmt.Errorf("refractive index %v must be positive", m.RefractiveIndex)
	}

	if mj.Pattern != nil {
		p, err := buildPattern(*mj.Pattern)
		if err != nil {
			return err
		}
		m.Pattern = p
	}
	return nil
}

func buildPattern(pj patternJSON) (*material.Pattern, error) {
	kind, err := material.ParseKind(pj.Type)
	if err != nil {
		return nil, err
	}
	p := material.NewPattern(kind, rgb(pj.A), rgb(pj.B))
	m, err := buildTransform(pj.Transform)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	if err := p.SetTransform(m); err != nil {
		return nil, err
	}
	return p, nil
}

// buildTransform composes ops in list order: the first op is applied first.
func buildTransform(ops []transformOp) (mathutil.Mat4, error) {
	m := mathutil.Mat4Identity()
	for i, op := range ops {
		step, err := op.matrix()
		if err != nil {
			return m, fmt.Errorf("transform op %d: %w", i, err)
		}
		m = step.Mul(m)
	}
	return m, nil
}

func (op transformOp) matrix() (mathutil.Mat4, error) {
	var m mathutil.Mat4
	n := 0
	if v := op.Translate; v != nil {
		m, n = mathutil.Translation(v[0], v[1], v[2]), n+1
	}
	if v := op.Scale; v != nil {
		m, n = mathutil.Scaling(v[0], v[1], v[2]), n+1
	}
	if v := op.RotateX; v != nil {
		m, n = mathutil.RotX(mathutil.Deg2Rad(*v)), n+1
	}
	if v := op.RotateY; v != nil {
		m, n = mathutil.RotY(mathutil.Deg2Rad(*v)), n+1
	}
	if v := op.RotateZ; v != nil {
		m, n = mathutil.RotZ(mathutil.Deg2Rad(*v)), n+1
	}
	if v := op.RotateEuler; v != nil {
		q := mathutil.EulerToQuat(mathutil.Deg2Rad(v[0]), mathutil.Deg2Rad(v[1]), mathutil.Deg2Rad(v[2]))
		m, n = q.Mat4(), n+1
	}
	if v := op.Shear; v != nil {
		m, n = mathutil.Shear(v[0], v[1], v[2], v[3], v[4], v[5]), n+1
	}
	if n != 1 {
		return m, fmt.Errorf("expected exactly one operation, got %d", n)
	}
	return m, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func rgb(v [3]float64) colour.Colour     { return colour.New(v[0], v[1], v[2]) }
func point(v [3]float64) mathutil.Tuple  { return mathutil.Point(v[0], v[1], v[2]) }
func vector(v [3]float64) mathutil.Tuple { return mathutil.Vector(v[0], v[1], v[2]) }

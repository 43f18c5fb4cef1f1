package scene

import (
	"fmt"
	"math"
	"slices"

	"whitted-renderer/internal/colour"
	"whitted-renderer/internal/geometry"
	"whitted-renderer/internal/lighting"
	"whitted-renderer/internal/material"
	"whitted-renderer/internal/mathutil"
	"whitted-renderer/internal/world"
)

var builtins = map[string]func() *Scene{
	"default":    defaultScene,
	"sphere":     sphereScene,
	"spheres":    spheresScene,
	"planes":     planesScene,
	"patterns":   patternsScene,
	"reflective": reflectiveScene,
}

// Names lists the built-in scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Builtin returns a freshly built copy of the named demo scene.
func Builtin(name string) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return build(), nil
}

// must is for the fixed transforms below, which are known to be invertible.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

func newCamera(w, h int, fov float64, from, to mathutil.Tuple) *world.Camera {
	cam := world.NewCamera(w, h, fov)
	must(cam.SetTransform(world.ViewTransform(from, to, mathutil.Vector(0, 1, 0))))
	return cam
}

// roomCamera is shared by the room demos: wide, slightly above the floor.
func roomCamera() *world.Camera {
	return newCamera(2000, 1000, math.Pi/3, mathutil.Point(0, 1.5, -5), mathutil.Point(0, 1, 0))
}

func keyLight() lighting.Light {
	return lighting.NewPointLight(mathutil.Point(-10, 10, -10), colour.White)
}

func defaultScene() *Scene {
	return &Scene{
		Name:   "default",
		World:  world.Default(),
		Camera: newCamera(400, 400, math.Pi/2, mathutil.Point(0, 0, -5), mathutil.Point(0, 0, 0)),
	}
}

func sphereScene() *Scene {
	s := geometry.NewSphere()
	s.Name = "ball"
	s.Material.Colour = colour.New(1, 0.2, 1)
	s.Material.Ambient = 0.05

	w := world.New()
	w.Add(s)
	w.AddLight(keyLight())
	return &Scene{
		Name:   "sphere",
		World:  w,
		Camera: newCamera(1000, 1000, math.Pi/5, mathutil.Point(0, 0, -5), mathutil.Point(0, 0, 0)),
	}
}

// wallTransform stands a plane (or flattened sphere) upright five units back,
// turned by angle about y.
func wallTransform(angle float64) mathutil.Mat4 {
	return mathutil.Compose(mathutil.Translation(0, 0, 5), mathutil.RotY(angle), mathutil.RotX(math.Pi/2))
}

// trio returns the three spheres shared by the room demos.
func trio() (middle, right, left *geometry.Object) {
	middle = geometry.NewSphere()
	middle.Name = "middle"
	must(middle.SetTransform(mathutil.Translation(-0.5, 1, 0.5)))
	middle.Material.Colour = colour.New(0.1, 1, 0.5)
	middle.Material.Diffuse = 0.7
	middle.Material.Specular = 0.3

	right = geometry.NewSphere()
	right.Name = "right"
	must(right.SetTransform(mathutil.Compose(mathutil.Translation(1.5, 0.5, -0.5), mathutil.Scaling(0.5, 0.5, 0.5))))
	right.Material.Colour = colour.New(0.5, 1, 0.1)
	right.Material.Diffuse = 0.7
	right.Material.Specular = 0.3

	left = geometry.NewSphere()
	left.Name = "left"
	must(left.SetTransform(mathutil.Compose(mathutil.Translation(-1.5, 0.33, -0.75), mathutil.Scaling(0.33, 0.33, 0.33))))
	left.Material.Colour = colour.New(1, 0.8, 0.1)
	left.Material.Diffuse = 0.7
	left.Material.Specular = 0.3
	return middle, right, left
}

// spheresScene builds the room out of flattened spheres.
func spheresScene() *Scene {
	flat := mathutil.Scaling(10, 0.01, 10)

	floor := geometry.NewSphere()
	floor.Name = "floor"
	must(floor.SetTransform(flat))
	floor.Material.Colour = colour.New(1, 0.9, 0.9)
	floor.Material.Specular = 0

	lWall := geometry.NewSphere()
	lWall.Name = "left wall"
	must(lWall.SetTransform(mathutil.Compose(wallTransform(-math.Pi/4), flat)))

	rWall := geometry.NewSphere()
	rWall.Name = "right wall"
	must(rWall.SetTransform(mathutil.Compose(wallTransform(math.Pi/4), flat)))

	middle, right, left := trio()
	w := world.New()
	w.Add(floor, lWall, rWall, middle, right, left)
	w.AddLight(keyLight())
	return &Scene{Name: "spheres", World: w, Camera: roomCamera()}
}

func planesScene() *Scene {
	floor := geometry.NewPlane()
	floor.Name = "floor"
	floor.Material.Colour = colour.New(1, 0.9, 0.9)
	floor.Material.Specular = 0

	lWall := geometry.NewPlane()
	lWall.Name = "left wall"
	must(lWall.SetTransform(wallTransform(-math.Pi / 4)))

	rWall := geometry.NewPlane()
	rWall.Name = "right wall"
	must(rWall.SetTransform(wallTransform(math.Pi / 4)))

	middle, right, left := trio()
	w := world.New()
	w.Add(floor, lWall, rWall, middle, right, left)
	w.AddLight(keyLight())
	return &Scene{Name: "planes", World: w, Camera: roomCamera()}
}

func newPattern(kind material.Kind, a, b colour.Colour, m mathutil.Mat4) *material.Pattern {
	p := material.NewPattern(kind, a, b)
	must(p.SetTransform(m))
	return p
}

// patternedRoom is the planes room with every surface patterned.
func patternedRoom() (floor, lWall, rWall, middle, right, left *geometry.Object) {
	floor = geometry.NewPlane()
	floor.Name = "floor"
	floor.Material.Pattern = material.NewCheckers(colour.White, colour.Black)
	floor.Material.Specular = 0

	lWall = geometry.NewPlane()
	lWall.Name = "left wall"
	must(lWall.SetTransform(wallTransform(-math.Pi / 4)))
	lWall.Material.Pattern = material.NewStripe(colour.Blue, colour.Red)

	rWall = geometry.NewPlane()
	rWall.Name = "right wall"
	must(rWall.SetTransform(wallTransform(math.Pi / 4)))
	rWall.Material.Pattern = material.NewRing(colour.White, colour.Green)

	middle, right, left = trio()
	middle.Material.Pattern = newPattern(material.Stripe, colour.White, colour.Red,
		mathutil.Compose(mathutil.Translation(0.6, 0, 0), mathutil.Scaling(0.5, 0.5, 0.5)))
	right.Material.Pattern = newPattern(material.Stripe, colour.Black, colour.Yellow,
		mathutil.Compose(mathutil.Scaling(0.2, 0.2, 0.2), mathutil.RotZ(math.Pi/2)))
	left.Material.Pattern = newPattern(material.Gradient, colour.Blue, colour.White,
		mathutil.Compose(mathutil.RotZ(math.Pi/4), mathutil.Scaling(2, 2, 2), mathutil.Translation(0.5, 0, 0)))
	return floor, lWall, rWall, middle, right, left
}

func patternsScene() *Scene {
	floor, lWall, rWall, middle, right, left := patternedRoom()
	w := world.New()
	w.Add(floor, lWall, rWall, middle, right, left)
	w.AddLight(keyLight())
	return &Scene{Name: "patterns", World: w, Camera: roomCamera()}
}

// reflectiveScene adds a mirrored floor, a glass ball and a mirror ball to the
// patterned room.
func reflectiveScene() *Scene {
	floor, lWall, rWall, _, right, left := patternedRoom()
	floor.Material.Reflective = 0.5
	lWall.Material.Pattern = newPattern(material.Stripe, colour.Blue, colour.Red, mathutil.RotY(math.Pi/8))

	glass := geometry.NewGlassSphere()
	glass.Name = "glass"
	must(glass.SetTransform(mathutil.Translation(-0.5, 1, 0.5)))
	glass.Material.Ambient = 0.05
	glass.Material.Diffuse = 0.1
	glass.Material.Specular = 1
	glass.Material.Shininess = 300
	glass.Material.Reflective = 0.5
	glass.Material.Transparency = 0.9
	glass.Material.RefractiveIndex = material.IndexVacuum

	mirror := geometry.NewSphere()
	mirror.Name = "mirror"
	must(mirror.SetTransform(mathutil.Compose(mathutil.Translation(1.5, 1.2, -0.75), mathutil.Scaling(0.5, 0.5, 0.5))))
	mirror.Material.Colour = colour.Black
	mirror.Material.Diffuse = 0.7
	mirror.Material.Specular = 0.3
	mirror.Material.Reflective = 1

	w := world.New()
	w.Add(floor, lWall, rWall, glass, right, left, mirror)
	w.AddLight(keyLight())
	return &Scene{Name: "reflective", World: w, Camera: roomCamera()}
}

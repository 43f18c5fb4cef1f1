package main

import (
	"flag"
	"fmt"
	"os"

	"whitted-renderer/internal/geometry"
	"whitted-renderer/internal/scene"
	"whitted-renderer/internal/world"
)

// inspect traces one pixel of a scene and prints every stage of shading.
func main() {
	x := flag.Int("x", -1, "Pixel column (default: centre)")
	y := flag.Int("y", -1, "Pixel row (default: centre)")
	width := flag.Int("width", 0, "Resize the camera before tracing")
	height := flag.Int("height", 0, "Resize the camera before tracing")
	depth := flag.Int("depth", world.MaxDepth, "Bounce limit")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: inspect [flags] <scene name or file.json>")
		os.Exit(1)
	}

	s, err := scene.Resolve(flag.Arg(0))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := s.Resize(*width, *height); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cam := s.Camera
	px, py := *x, *y
	if px < 0 {
		px = cam.HSize / 2
	}
	if py < 0 {
		py = cam.VSize / 2
	}
	if px >= cam.HSize || py >= cam.VSize {
		fmt.Printf("Error: pixel (%d,%d) outside %dx%d image\n", px, py, cam.HSize, cam.VSize)
		os.Exit(1)
	}

	fmt.Printf("Scene: %s, Objects: %d, Lights: %d\n", s.Name, len(s.World.Objects), len(s.World.Lights))
	fmt.Printf("Camera: %dx%d, fov=%.4f rad, pixel size=%.5f\n", cam.HSize, cam.VSize, cam.Fov, cam.PixelSize())

	r := cam.RayForPixel(px, py)
	fmt.Printf("Pixel (%d,%d)\n", px, py)
	fmt.Printf("  Ray: origin=%v direction=%v\n", r.Origin, r.Direction)

	xs := s.World.Intersect(r)
	fmt.Printf("  Intersections: %d\n", len(xs))
	for _, i := range xs {
		fmt.Printf("    t=%-10.5f %s\n", i.T, label(i.Object))
	}

	hit, ok := xs.Hit()
	if !ok {
		fmt.Printf("  No hit; background %v\n", s.World.Background)
		return
	}

	comps := r.PrepareComputations(hit, xs)
	m := comps.Object.Material
	fmt.Printf("  Hit: %s at t=%.5f\n", label(comps.Object), comps.T)
	fmt.Printf("    Point:   %v\n", comps.Point)
	fmt.Printf("    Normal:  %v (inside=%v)\n", comps.NormalV, comps.Inside)
	fmt.Printf("    Eye:     %v\n", comps.EyeV)
	fmt.Printf("    Reflect: %v\n", comps.ReflectV)
	fmt.Printf("    n1=%.3f n2=%.3f\n", comps.N1, comps.N2)
	fmt.Printf("    Material: ambient=%.2f diffuse=%.2f specular=%.2f shininess=%.0f reflective=%.2f transparency=%.2f index=%.3f\n",
		m.Ambient, m.Diffuse, m.Specular, m.Shininess, m.Reflective, m.Transparency, m.RefractiveIndex)
	if m.Pattern != nil {
		fmt.Printf("    Pattern: %v\n", m.Pattern.Kind)
	}
	fmt.Printf("    Surface colour: %v\n", comps.Object.PatternAt(comps.Point))

	for li, l := range s.World.Lights {
		fmt.Printf("    Light[%d] at %v: shadowed=%v\n", li, l.Position, s.World.IsShadowedFrom(l, comps.OverPoint))
	}

	fmt.Printf("  Reflected: %v\n", s.World.ReflectedColour(comps, *depth))
	fmt.Printf("  Refracted: %v\n", s.World.RefractedColour(comps, *depth))
	fmt.Printf("  Final:     %v\n", s.World.ShadeHit(comps, *depth))
}

func label(o *geometry.Object) string {
	if o.Name != "" {
		return fmt.Sprintf("%s %q", o.Kind, o.Name)
	}
	return o.Kind.String()
}

package world

import (
	"fmt"
	"math"

	"whitted-renderer/internal/geometry"
	"whitted-renderer/internal/mathutil"
)

// Camera maps pixels of an hsize×vsize image onto rays. The canvas sits one
// unit in front of the eye; Fov is the angle it subtends across its longer
// side.
type Camera struct {
	HSize int
	VSize int
	Fov   float64

	pixelSize  float64
	halfWidth  float64
	halfHeight float64
	transform  mathutil.Transform
}

// NewCamera returns a camera at the origin looking down -z.
func NewCamera(hsize, vsize int, fov float64) *Camera {
	c := &Camera{HSize: hsize, VSize: vsize, Fov: fov, transform: mathutil.IdentityTransform()}
	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return c
}

// PixelSize is the world-space width of one pixel on the canvas.
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// SetTransform places the camera in the world, typically with ViewTransform.
func (c *Camera) SetTransform(m mathutil.Mat4) error {
	t, err := mathutil.NewTransform(m)
	if err != nil {
		return fmt.Errorf("world: camera transform: %w", err)
	}
	c.transform = t
	return nil
}

// Transform returns the camera's world transform.
func (c *Camera) Transform() mathutil.Mat4 {
	return c.transform.M
}

// RayForPixel returns the ray from the eye through the centre of pixel (px, py).
func (c *Camera) RayForPixel(px, py int) geometry.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inv := c.transform.Inv
	pixel := inv.MulTuple(mathutil.Point(worldX, worldY, -1))
	origin := inv.MulTuple(mathutil.Point(0, 0, 0))
	return geometry.NewRay(origin, pixel.Sub(origin).Normalize())
}

// ViewTransform orients the world relative to an eye at from looking at to,
// with up giving the rough upward direction.
func ViewTransform(from, to, up mathutil.Tuple) mathutil.Mat4 {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := mathutil.Mat4{
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	}
	return orientation.Mul(mathutil.Translation(-from.X, -from.Y, -from.Z))
}

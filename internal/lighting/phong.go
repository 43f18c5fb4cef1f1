package lighting

import (
	"math"

	"whitted-renderer/internal/colour"
	"whitted-renderer/internal/geometry"
	"whitted-renderer/internal/mathutil"
)

// Lighting returns the Phong colour of object at point as seen along eyev.
// Ambient is always applied; diffuse and specular drop out when the point is
// in shadow or the light is behind the surface. The result is unclamped.
func Lighting(object *geometry.Object, light Light, point, eyev, normalv mathutil.Tuple, inShadow bool) colour.Colour {
	m := object.Material
	effective := object.PatternAt(point).Mul(light.Intensity)
	ambient := effective.Scale(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Sub(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		return ambient
	}
	diffuse := effective.Scale(m.Diffuse * lightDotNormal)

	reflectv := lightv.Neg().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}
	specular := light.Intensity.Scale(m.Specular * math.Pow(reflectDotEye, m.Shininess))
	return ambient.Add(diffuse).Add(specular)
}

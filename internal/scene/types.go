package scene

import "encoding/json"

// sceneFile matches the JSON schema of a scene description.
// Angles are in degrees except camera "fov", which is in radians.
type sceneFile struct {
	Camera     cameraJSON                 `json:"camera"`
	Background *[3]float64                `json:"background"`
	Lights     []lightJSON                `json:"lights"`
	Presets    map[string]json.RawMessage `json:"presets"`
	Objects    []objectJSON               `json:"objects"`
}

type cameraJSON struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	FOV        *float64    `json:"fov"`
	FOVDegrees *float64    `json:"fov_degrees"`
	From       *[3]float64 `json:"from"`
	To         *[3]float64 `json:"to"`
	Up         *[3]float64 `json:"up"`
}

type lightJSON struct {
	Position  [3]float64  `json:"position"`
	Intensity *[3]float64 `json:"intensity"`
}

type objectJSON struct {
	Name      string          `json:"name"`
	Shape     string          `json:"shape"`
	Preset    string          `json:"preset"`
	Transform []transformOp   `json:"transform"`
	Material  json.RawMessage `json:"material"`
}

// transformOp holds exactly one operation.
type transformOp struct {
	Translate   *[3]float64 `json:"translate"`
	Scale       *[3]float64 `json:"scale"`
	RotateX     *float64    `json:"rotate_x"`
	RotateY     *float64    `json:"rotate_y"`
	RotateZ     *float64    `json:"rotate_z"`
	RotateEuler *[3]float64 `json:"rotate_euler"`
	Shear       *[6]float64 `json:"shear"`
}

// materialJSON fields are optional; unset fields keep the material defaults
// (or the preset's values when the object names one).
type materialJSON struct {
	Colour          *[3]float64  `json:"colour"`
	Ambient         *float64     `json:"ambient"`
	Diffuse         *float64     `json:"diffuse"`
	Specular        *float64     `json:"specular"`
	Shininess       *float64     `json:"shininess"`
	Reflective      *float64     `json:"reflective"`
	Transparency    *float64     `json:"transparency"`
	RefractiveIndex *float64     `json:"refractive_index"`
	Pattern         *patternJSON `json:"pattern"`
}

type patternJSON struct {
	Type      string        `json:"type"`
	A         [3]float64    `json:"a"`
	B         [3]float64    `json:"b"`
	Transform []transformOp `json:"transform"`
}

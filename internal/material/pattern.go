package material

import (
	"fmt"
	"math"

	"whitted-renderer/internal/colour"
	"whitted-renderer/internal/mathutil"
)

// Kind enumerates the closed set of procedural patterns.
type Kind int

const (
	Stripe Kind = iota
	Gradient
	Ring
	Checkers
)

var kindNames = [...]string{
	Stripe:   "stripe",
	Gradient: "gradient",
	Ring:     "ring",
	Checkers: "checkers",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a pattern name to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("material: unknown pattern %q", name)
}

// Pattern generates a colour from a point in pattern space. Its transform is
// applied on top of the owning object's transform.
type Pattern struct {
	Kind Kind
	A, B colour.Colour

	transform mathutil.Transform
}

func NewPattern(kind Kind, a, b colour.Colour) *Pattern {
	return &Pattern{Kind: kind, A: a, B: b, transform: mathutil.IdentityTransform()}
}

func NewStripe(a, b colour.Colour) *Pattern   { return NewPattern(Stripe, a, b) }
func NewGradient(a, b colour.Colour) *Pattern { return NewPattern(Gradient, a, b) }
func NewRing(a, b colour.Colour) *Pattern     { return NewPattern(Ring, a, b) }
func NewCheckers(a, b colour.Colour) *Pattern { return NewPattern(Checkers, a, b) }

// SetTransform replaces the pattern transform. Singular matrices are rejected.
func (p *Pattern) SetTransform(m mathutil.Mat4) error {
	tr, err := mathutil.NewTransform(m)
	if err != nil {
		return fmt.Errorf("material: pattern transform: %w", err)
	}
	p.transform = tr
	return nil
}

func (p *Pattern) Transform() mathutil.Mat4 {
	return p.transform.M
}

// AtObject evaluates the pattern at a point given in object space.
func (p *Pattern) AtObject(objectPoint mathutil.Tuple) colour.Colour {
	return p.At(p.transform.Inv.MulTuple(objectPoint))
}

// At evaluates the pattern at a point already in pattern space.
func (p *Pattern) At(pt mathutil.Tuple) colour.Colour {
	switch p.Kind {
	case Stripe:
		if even(math.Floor(pt.X)) {
			return p.A
		}
		return p.B
	case Gradient:
		return p.A.Lerp(p.B, pt.X-math.Floor(pt.X))
	case Ring:
		if even(math.Floor(math.Sqrt(pt.X*pt.X + pt.Z*pt.Z))) {
			return p.A
		}
		return p.B
	case Checkers:
		// Nudge so that points lying on a cell face pick a consistent side.
		sum := math.Floor(pt.X+mathutil.Epsilon) +
			math.Floor(pt.Y+mathutil.Epsilon) +
			math.Floor(pt.Z+mathutil.Epsilon)
		if even(sum) {
			return p.A
		}
		return p.B
	}
	return p.A
}

func even(f float64) bool {
	return math.Mod(f, 2) == 0
}

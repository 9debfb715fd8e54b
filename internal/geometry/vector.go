// Package geometry implements the 2D ray-casting core: a vector value type,
// directed line segments with segment-segment intersection, and a ray bundle
// that resolves each ray's visible length against a set of obstacles.
package geometry

import (
	"fmt"
	"math"
)

// Vector2D is a 2D point or direction. It is a plain value type: the pure
// operations (Add, Rotate, ...) return a new vector, while their *Self
// counterparts mutate the receiver in place and return it for chaining.
type Vector2D struct {
	X, Y float64
}

// NewVector2D creates a new Vector2D.
func NewVector2D(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// AddSelf adds other to v in place.
func (v *Vector2D) AddSelf(other Vector2D) *Vector2D {
	v.X += other.X
	v.Y += other.Y
	return v
}

// Subtract returns the component-wise difference of two vectors.
func (v Vector2D) Subtract(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// SubtractSelf subtracts other from v in place.
func (v *Vector2D) SubtractSelf(other Vector2D) *Vector2D {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// Multiply returns the component-wise product of two vectors.
func (v Vector2D) Multiply(other Vector2D) Vector2D {
	return Vector2D{v.X * other.X, v.Y * other.Y}
}

// MultiplySelf multiplies v by other in place.
func (v *Vector2D) MultiplySelf(other Vector2D) *Vector2D {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// Divide returns the component-wise quotient of two vectors.
func (v Vector2D) Divide(other Vector2D) Vector2D {
	return Vector2D{v.X / other.X, v.Y / other.Y}
}

// DivideSelf divides v by other in place.
func (v *Vector2D) DivideSelf(other Vector2D) *Vector2D {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// scalarPair expands a scalar argument list into per-component values. One
// scalar applies to both components, two apply to x and y independently.
// Anything else is a programmer error: it would poison every downstream
// computation with NaN, so it fails immediately instead.
func scalarPair(op string, scalars []float64) (sx, sy float64) {
	switch len(scalars) {
	case 1:
		return scalars[0], scalars[0]
	case 2:
		return scalars[0], scalars[1]
	default:
		panic(fmt.Sprintf("geometry: %s requires one or two scalars, got %d", op, len(scalars)))
	}
}

// AddScalar returns v with the scalars added. A single scalar is added to
// both components, two scalars are added to x and y respectively.
func (v Vector2D) AddScalar(scalars ...float64) Vector2D {
	sx, sy := scalarPair("AddScalar", scalars)
	return Vector2D{v.X + sx, v.Y + sy}
}

// AddScalarSelf adds the scalars to v in place.
func (v *Vector2D) AddScalarSelf(scalars ...float64) *Vector2D {
	sx, sy := scalarPair("AddScalarSelf", scalars)
	v.X += sx
	v.Y += sy
	return v
}

// SubtractScalar returns v with the scalars subtracted.
func (v Vector2D) SubtractScalar(scalars ...float64) Vector2D {
	sx, sy := scalarPair("SubtractScalar", scalars)
	return Vector2D{v.X - sx, v.Y - sy}
}

// SubtractScalarSelf subtracts the scalars from v in place.
func (v *Vector2D) SubtractScalarSelf(scalars ...float64) *Vector2D {
	sx, sy := scalarPair("SubtractScalarSelf", scalars)
	v.X -= sx
	v.Y -= sy
	return v
}

// MultiplyScalar returns v scaled by the scalars.
func (v Vector2D) MultiplyScalar(scalars ...float64) Vector2D {
	sx, sy := scalarPair("MultiplyScalar", scalars)
	return Vector2D{v.X * sx, v.Y * sy}
}

// MultiplyScalarSelf scales v in place.
func (v *Vector2D) MultiplyScalarSelf(scalars ...float64) *Vector2D {
	sx, sy := scalarPair("MultiplyScalarSelf", scalars)
	v.X *= sx
	v.Y *= sy
	return v
}

// DivideScalar returns v divided by the scalars.
func (v Vector2D) DivideScalar(scalars ...float64) Vector2D {
	sx, sy := scalarPair("DivideScalar", scalars)
	return Vector2D{v.X / sx, v.Y / sy}
}

// DivideScalarSelf divides v in place.
func (v *Vector2D) DivideScalarSelf(scalars ...float64) *Vector2D {
	sx, sy := scalarPair("DivideScalarSelf", scalars)
	v.X /= sx
	v.Y /= sy
	return v
}

// Magnitude returns the Euclidean length of the vector.
func (v Vector2D) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Angle returns the direction of the vector in radians, measured from the
// positive x axis.
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Abs returns the vector with both components made non-negative.
func (v Vector2D) Abs() Vector2D {
	return Vector2D{math.Abs(v.X), math.Abs(v.Y)}
}

// AbsSelf makes both components non-negative in place.
func (v *Vector2D) AbsSelf() *Vector2D {
	v.X = math.Abs(v.X)
	v.Y = math.Abs(v.Y)
	return v
}

// Normalize returns the unit vector in v's direction. A zero-magnitude
// vector normalizes to (1, 1): the degenerate component falls back to 1
// rather than dividing by zero. Callers that want the more common
// zero-vector convention must check Magnitude themselves.
func (v Vector2D) Normalize() Vector2D {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector2D{1, 1}
	}
	return Vector2D{v.X / mag, v.Y / mag}
}

// NormalizeSelf normalizes v in place, with the same zero-magnitude
// fallback as Normalize.
func (v *Vector2D) NormalizeSelf() *Vector2D {
	*v = v.Normalize()
	return v
}

// Dot returns the dot product of two vectors.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar 2D cross product v.X*other.Y - v.Y*other.X.
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Distance returns the Euclidean distance between two points.
func (v Vector2D) Distance(other Vector2D) float64 {
	return other.Subtract(v).Magnitude()
}

// Rotate returns v rotated by angleDeg degrees around pivot.
func (v Vector2D) Rotate(pivot Vector2D, angleDeg float64) Vector2D {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx := v.X - pivot.X
	dy := v.Y - pivot.Y
	return Vector2D{
		X: dx*cos - dy*sin + pivot.X,
		Y: dx*sin + dy*cos + pivot.Y,
	}
}

// RotateSelf rotates v in place by angleDeg degrees around pivot.
func (v *Vector2D) RotateSelf(pivot Vector2D, angleDeg float64) *Vector2D {
	*v = v.Rotate(pivot, angleDeg)
	return v
}

// Round returns v with both components rounded to the given number of
// decimal places.
func (v Vector2D) Round(places int) Vector2D {
	f := pow10(places)
	return Vector2D{math.Round(v.X*f) / f, math.Round(v.Y*f) / f}
}

// RoundSelf rounds v in place.
func (v *Vector2D) RoundSelf(places int) *Vector2D {
	*v = v.Round(places)
	return v
}

// Floor returns v with both components floored to the given number of
// decimal places.
func (v Vector2D) Floor(places int) Vector2D {
	f := pow10(places)
	return Vector2D{math.Floor(v.X*f) / f, math.Floor(v.Y*f) / f}
}

// FloorSelf floors v in place.
func (v *Vector2D) FloorSelf(places int) *Vector2D {
	*v = v.Floor(places)
	return v
}

// Ceil returns v with both components raised to the given number of
// decimal places.
func (v Vector2D) Ceil(places int) Vector2D {
	f := pow10(places)
	return Vector2D{math.Ceil(v.X*f) / f, math.Ceil(v.Y*f) / f}
}

// CeilSelf raises v in place.
func (v *Vector2D) CeilSelf(places int) *Vector2D {
	*v = v.Ceil(places)
	return v
}

// Equals reports exact component-wise equality. There is no epsilon;
// callers needing tolerance should Round both operands first.
func (v Vector2D) Equals(other Vector2D) bool {
	return v.X == other.X && v.Y == other.Y
}

func pow10(places int) float64 {
	return math.Pow(10, float64(places))
}

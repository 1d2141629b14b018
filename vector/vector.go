package vector

import (
	"fmt"
	"math"
)

//float32 vector library for the particle core. Package level functions are
//immutable, methods mutate the receiver in place so the per-frame particle
//loops run without allocation.

//Vec32 Default Vector Implementation
type Vec32 [3]float32

//NewVec32 - broadcast constructor
func NewVec32(a float32) *Vec32 {
	return &Vec32{a, a, a}
}

func Abs(a Vec32) Vec32 {
	a[0] = float32(math.Abs(float64(a[0])))
	a[1] = float32(math.Abs(float64(a[1])))
	a[2] = float32(math.Abs(float64(a[2])))
	return a
}

func Dot(a Vec32, b Vec32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (v *Vec32) Dot(b Vec32) float32 {
	return v[0]*b[0] + v[1]*b[1] + v[2]*b[2]
}

//Scale - Scales vector by scalar a
func Scale(v Vec32, a float32) Vec32 {
	return Vec32{v[0] * a, v[1] * a, v[2] * a}
}

func (v *Vec32) Scale(a float32) *Vec32 {
	v[0] *= a
	v[1] *= a
	v[2] *= a
	return v
}

func (v *Vec32) Clear() *Vec32 {
	v[0] = 0
	v[1] = 0
	v[2] = 0
	return v
}

func Add(v Vec32, b Vec32) Vec32 {
	return Vec32{v[0] + b[0], v[1] + b[1], v[2] + b[2]}
}

func Sub(v Vec32, b Vec32) Vec32 {
	return Vec32{v[0] - b[0], v[1] - b[1], v[2] - b[2]}
}

//Add - Mutate
func (v *Vec32) Add(b Vec32) *Vec32 {
	v[0] += b[0]
	v[1] += b[1]
	v[2] += b[2]
	return v
}

//Sub - Mutate
func (v *Vec32) Sub(b Vec32) *Vec32 {
	v[0] -= b[0]
	v[1] -= b[1]
	v[2] -= b[2]
	return v
}

//Cross Product
func Cross(a Vec32, b Vec32) Vec32 {
	return Vec32{a[1]*b[2] - b[1]*a[2],
		a[2]*b[0] - b[2]*a[0],
		a[0]*b[1] - b[0]*a[1]}
}

func Length(a Vec32) float32 {
	return float32(math.Sqrt(float64(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])))
}

func (v *Vec32) Length() float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

//LengthSq - squared magnitude, avoids the sqrt in falloff terms
func LengthSq(a Vec32) float32 {
	return a[0]*a[0] + a[1]*a[1] + a[2]*a[2]
}

func Normalize(a Vec32) Vec32 {
	v := Vec32{}
	l := a.Length()
	if l != 0 {
		v[0] = a[0] / l
		v[1] = a[1] / l
		v[2] = a[2] / l
	}
	return v
}

func (v *Vec32) Distance(a Vec32) float32 {
	return Length(Sub(*v, a))
}

//DistanceXY - planar distance, depth axis ignored
func DistanceXY(a Vec32, b Vec32) float32 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

//Lerp - linear interpolation a -> b at parameter t
func Lerp(a Vec32, b Vec32, t float32) Vec32 {
	return Vec32{a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t}
}

//Lerp32 - scalar linear interpolation
func Lerp32(a float32, b float32, t float32) float32 {
	return a + (b-a)*t
}

//Clamp32 - scalar clamp to [lo,hi]
func Clamp32(a float32, lo float32, hi float32) float32 {
	if a < lo {
		return lo
	}
	if a > hi {
		return hi
	}
	return a
}

func (v *Vec32) equals(a Vec32) bool {
	return v[0] == a[0] && v[1] == a[1] && v[2] == a[2]
}

func VecEquals(v Vec32, a Vec32) bool {
	return v[0] == a[0] && v[1] == a[1] && v[2] == a[2]
}

//Epsilon float comparisons for tests and guards
func isEpsilon(a float32, b float32) bool {
	return math.Abs(float64(b-a)) <= 0.00000019
}

func (a *Vec32) String() string {
	return fmt.Sprintf("[ %f, %f, %f]\n", a[0], a[1], a[2])
}

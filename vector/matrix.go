package vector

import "math"

//Column major 3x3 and 4x4 matrices for shader uniforms. Rotation setters
//overwrite only the affected cells so identity initialized matrices can be
//reused frame to frame.

type Mat3 [9]float32
type Mat4 [16]float32

//Identity3 - 3x3 identity
func Identity3() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

//Identity4 - 4x4 identity
func Identity4() Mat4 {
	return Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

//SetRotationX - rotation about the x axis by angle radians
func (m *Mat3) SetRotationX(angle float32) {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	m[4] = c
	m[5] = s
	m[7] = -s
	m[8] = c
}

//SetRotationY - rotation about the y axis by angle radians
func (m *Mat3) SetRotationY(angle float32) {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	m[0] = c
	m[2] = -s
	m[6] = s
	m[8] = c
}

//MulVec - apply the 3x3 rotation to v
func (m *Mat3) MulVec(v Vec32) Vec32 {
	return Vec32{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

//Translation - accumulates a translation into the affine column
func (m *Mat4) Translation(t *Vec32) {
	m[12] += t[0]
	m[13] += t[1]
	m[14] += t[2]
}

//SetScale - uniform scale on the diagonal
func (m *Mat4) SetScale(s float32) {
	m[0] = s
	m[5] = s
	m[10] = s
}

//ProjectionMatrix - glFrustum style perspective projection
func ProjectionMatrix(l float32, r float32, t float32, b float32, n float32, f float32) Mat4 {
	m := Mat4{}
	m[0] = 2 * n / (r - l)
	m[5] = 2 * n / (t - b)
	m[8] = (r + l) / (r - l)
	m[9] = (t + b) / (t - b)
	m[10] = -(f + n) / (f - n)
	m[11] = -1
	m[14] = -2 * f * n / (f - n)
	return m
}

//AxisAngle - rotates v about the normalized axis by angle (Rodrigues)
func AxisAngle(v Vec32, axis Vec32, angle float32) Vec32 {
	k := Normalize(axis)
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	term1 := Scale(v, c)
	term2 := Scale(Cross(k, v), s)
	term3 := Scale(k, Dot(k, v)*(1-c))
	out := Add(term1, term2)
	return Add(out, term3)
}

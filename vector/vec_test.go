package vector

import (
	"math"
	"testing"
)

//Vector module testing
func TestVecAdd(t *testing.T) {
	var x = Vec32{1.0, 1.0, 1.0}
	var y = Vec32{1, 1, 1}
	var eq = Vec32{2, 2, 2}

	if !VecEquals(*x.Add(y), eq) {
		t.Errorf("Vector addition failed %f", x[0])
	}
}

func TestVecDot(t *testing.T) {
	var x = Vec32{1, 2, 3}
	var y = Vec32{1, 1, 1}
	var eq = float32(6.0)

	if Dot(x, y) != eq || x.Dot(y) != eq {
		t.Errorf("Vector dot failed %f", x[0])
	}
}

func TestVector(t *testing.T) {
	a := Vec32{2, 2, 2}

	if !VecEquals(Scale(a, 2.0), Vec32{4.0, 4.0, 4.0}) {
		t.Error()
	}
	if !VecEquals(Sub(a, Vec32{1, 1, 1}), Vec32{1, 1, 1}) {
		t.Error()
	}
	if !isEpsilon(Length(Normalize(a)), 1.0) {
		t.Errorf("Normalized vector error: length %f", Length(Normalize(a)))
	}
	if !VecEquals(Cross(Vec32{-2, -2, -2}, Vec32{1, 2, 1}), Vec32{2, 0, -2}) {
		r := Cross(Vec32{-2, -2, -2}, Vec32{1, 2, 1})
		t.Errorf("Cross %f,%f,%f", r[0], r[1], r[2])
	}

	if Length(a) != float32(math.Sqrt(12)) {
		t.Errorf("Error length")
	}
	if LengthSq(a) != 12 {
		t.Errorf("Error length squared")
	}

	b := Vec32{5, 2, 2}
	if a.Distance(b) != 3.0 {
		t.Errorf("Error distance %f", a.Distance(b))
	}
	if DistanceXY(Vec32{0, 0, 7}, Vec32{3, 4, -7}) != 5.0 {
		t.Errorf("Planar distance must ignore depth")
	}
}

func TestLerpClamp(t *testing.T) {
	mid := Lerp(Vec32{0, 0, 0}, Vec32{2, 4, 6}, 0.5)
	if !VecEquals(mid, Vec32{1, 2, 3}) {
		t.Errorf("Lerp midpoint %f %f %f", mid[0], mid[1], mid[2])
	}
	if Lerp32(1.0, 3.0, 0.25) != 1.5 {
		t.Errorf("Scalar lerp failed")
	}
	if Clamp32(5.0, 0.2, 3.0) != 3.0 {
		t.Errorf("Clamp upper failed")
	}
	if Clamp32(-5.0, 0.2, 3.0) != 0.2 {
		t.Errorf("Clamp lower failed")
	}
	if Clamp32(1.0, 0.2, 3.0) != 1.0 {
		t.Errorf("Clamp identity failed")
	}
}

func TestMatrix(t *testing.T) {
	rot := Identity3()
	rot.SetRotationY(float32(math.Pi / 2))

	//x axis maps onto -z under a quarter turn about y (column major)
	v := rot.MulVec(Vec32{1, 0, 0})
	if !isEpsilon(v[0], 0) || !isEpsilon(v[1], 0) || math.Abs(float64(v[2])) < 0.99 {
		t.Errorf("RotationY quarter turn wrong: %f %f %f", v[0], v[1], v[2])
	}

	//rotation preserves length
	w := rot.MulVec(Vec32{1, 2, 3})
	if !isEpsilon(w.Length(), Length(Vec32{1, 2, 3})) {
		t.Errorf("Rotation changed vector length: %f", w.Length())
	}

	m := Identity4()
	m.Translation(&Vec32{1, 2, 3})
	m.Translation(&Vec32{1, 0, 0})
	if m[12] != 2 || m[13] != 2 || m[14] != 3 {
		t.Errorf("Translation accumulation wrong: %f %f %f", m[12], m[13], m[14])
	}
}

func TestAxisAngle(t *testing.T) {
	//quarter turn about y, same convention as the Mat3 rotation
	v := AxisAngle(Vec32{1, 0, 0}, Vec32{0, 1, 0}, float32(math.Pi/2))
	if math.Abs(float64(v[2])) < 0.99 || !isEpsilon(v[1], 0) {
		t.Errorf("AxisAngle quarter turn wrong: %f %f %f", v[0], v[1], v[2])
	}
	//rotation about the vector itself is identity
	u := AxisAngle(Vec32{0, 3, 0}, Vec32{0, 1, 0}, 1.234)
	if !isEpsilon(u[1], 3.0) {
		t.Errorf("AxisAngle about own axis moved the vector: %s", u.String())
	}
}

func BenchmarkVecOp(b *testing.B) {
	p := Vec32{1, -1, 0}
	o := Vec32{0, 1, 0}

	for i := 0; i < b.N; i++ {
		r := p.Add(o)
		Cross(*r, p)
		r.Scale(0.99)
		r.Add(o)
	}
}

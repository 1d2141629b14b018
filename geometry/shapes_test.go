package geometry

import (
	"math/rand"
	"testing"

	V "github.com/Vacayy/hand-controlled-3d-particles/vector"
)

//Shape generation is stochastic, so the tests pin a seed and assert the
//distributional contract: exact count, bounding radius, symmetry and the
//population splits. Literal coordinates are never checked.

const testSeed = 295275912632

func testGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewSource(testSeed)))
}

func TestCloudCount(t *testing.T) {
	gen := testGenerator()
	for _, shape := range []ShapeType{Heart, Flower, Saturn, Fireworks, Sphere} {
		for _, count := range []int{1, 100, 5000} {
			cloud := gen.Cloud(shape, count)
			if len(cloud) != count {
				t.Errorf("%s: want %d points, got %d", shape, count, len(cloud))
			}
		}
	}
}

func TestBoundingRadius(t *testing.T) {
	gen := testGenerator()
	for _, shape := range []ShapeType{Heart, Flower, Saturn, Fireworks, Sphere} {
		cloud := gen.Cloud(shape, 5000)
		bound := BoundingRadius(shape) * 1.05
		inside := 0
		for i := range cloud {
			if V.Length(cloud[i]) <= bound {
				inside++
			}
		}
		frac := float32(inside) / float32(len(cloud))
		if frac < 0.99 {
			t.Errorf("%s: only %.3f of points inside bounding radius %f", shape, frac, bound)
		}
	}
}

func TestSphereUniformDensity(t *testing.T) {
	gen := testGenerator()
	cloud := gen.Cloud(Sphere, 20000)

	//uniform volume density puts r^3 uniform, so half the points live
	//inside R * cbrt(0.5) ~ 0.7937 R
	halfVolume := float32(SphereRadius * 0.7937)
	inner := 0
	for i := range cloud {
		if V.Length(cloud[i]) <= halfVolume {
			inner++
		}
	}
	frac := float32(inner) / float32(len(cloud))
	if frac < 0.45 || frac > 0.55 {
		t.Errorf("Sphere density not volumetric: %.3f of points inside half volume radius", frac)
	}
}

func TestHeartProfile(t *testing.T) {
	gen := testGenerator()
	cloud := gen.Cloud(Heart, 10000)

	//mirror symmetry about the y axis
	sumX := float32(0.0)
	minY := float32(0.0)
	maxY := float32(0.0)
	for i := range cloud {
		sumX += cloud[i][0]
		if cloud[i][1] < minY {
			minY = cloud[i][1]
		}
		if cloud[i][1] > maxY {
			maxY = cloud[i][1]
		}
	}
	meanX := sumX / float32(len(cloud))
	if meanX > 0.02 || meanX < -0.02 {
		t.Errorf("Heart not symmetric about y axis: mean x %f", meanX)
	}
	//the bottom tip reaches further than the lobes
	if -minY < maxY {
		t.Errorf("Heart profile upside down: y range [%f, %f]", minY, maxY)
	}
	//thickness jitter stays inside its half width
	for i := range cloud {
		z := cloud[i][2]
		if z > HeartThickness || z < -HeartThickness {
			t.Errorf("Heart z jitter escaped: %f", z)
			break
		}
	}
}

func TestFlowerFlattened(t *testing.T) {
	gen := testGenerator()
	cloud := gen.Cloud(Flower, 10000)

	//z axis is compressed, its spread must sit well below the planar spread
	var sumXY, sumZ float64
	for i := range cloud {
		sumXY += float64(cloud[i][0]*cloud[i][0] + cloud[i][1]*cloud[i][1])
		sumZ += float64(cloud[i][2] * cloud[i][2])
	}
	if sumZ*2 > sumXY {
		t.Errorf("Flower not flattened: z energy %f vs planar %f", sumZ, sumXY)
	}
}

func TestSaturnPopulations(t *testing.T) {
	gen := testGenerator()
	cloud := gen.Cloud(Saturn, 20000)

	//undo the fixed tilt, then split by radius: body inside its sphere,
	//ring inside the annulus
	body := 0
	ring := 0
	for i := range cloud {
		p := V.AxisAngle(cloud[i], saturnTiltAxis, -SaturnTiltAngle)
		r := V.Length(p)
		if r <= SaturnBodyRadius*1.01 {
			body++
		} else if r >= SaturnRingInner*0.95 && r <= SaturnRingOuter*1.05 {
			ring++
		}
	}
	total := float32(len(cloud))
	bodyFrac := float32(body) / total
	ringFrac := float32(ring) / total
	if bodyFrac < 0.55 || bodyFrac > 0.65 {
		t.Errorf("Saturn body fraction %.3f outside split tolerance", bodyFrac)
	}
	if ringFrac < 0.35 || ringFrac > 0.45 {
		t.Errorf("Saturn ring fraction %.3f outside split tolerance", ringFrac)
	}
}

func TestSeedReproducible(t *testing.T) {
	a := testGenerator().Cloud(Heart, 100)
	b := testGenerator().Cloud(Heart, 100)
	for i := range a {
		if !V.VecEquals(a[i], b[i]) {
			t.Errorf("Same seed diverged at point %d", i)
			break
		}
	}
}

func TestParseShape(t *testing.T) {
	for _, shape := range []ShapeType{Heart, Flower, Saturn, Fireworks, Sphere} {
		if ParseShape(shape.String()) != shape {
			t.Errorf("Round trip failed for %s", shape)
		}
	}
	if ParseShape("nonsense") != Sphere {
		t.Errorf("Unknown shape must fall back to sphere")
	}
}

func BenchmarkCloud(b *testing.B) {
	gen := testGenerator()
	for i := 0; i < b.N; i++ {
		gen.Cloud(Saturn, 5000)
	}
}

package geometry

import (
	"math"
	"math/rand"

	V "github.com/Vacayy/hand-controlled-3d-particles/vector"
)

//Procedural target cloud generation. Every shape emits exactly count points,
//one per particle slot. Generation is stochastic but the distribution of the
//points is the contract: bounding radius, interior fill and symmetry hold for
//any seed, exact coordinates do not.

const PI = 3.141592653589

//Shape geometry constants. World units are camera space, the swarm sits
//roughly inside a unit sphere before gesture scaling.
const (
	HeartScale     = 0.065 //parametric heart curve spans ~[-16,16]
	HeartThickness = 0.22  //z jitter half width

	FlowerPetals    = 4
	FlowerAmplitude = 1.15
	FlowerFlatten   = 0.35 //z compression factor

	SaturnBodyRadius = 0.75
	SaturnRingInner  = 1.05
	SaturnRingOuter  = 1.55
	SaturnRingJitter = 0.04
	SaturnBodyRatio  = 0.6  //body vs ring population split
	SaturnTiltAngle  = 0.42 //radians

	SphereRadius = 1.1
)

//saturnTiltAxis - fixed tilt so the rings read as rings
var saturnTiltAxis = V.Vec32{1.0, 0.0, 0.35}

//ShapeType selects a target silhouette
type ShapeType int

const (
	Heart ShapeType = iota
	Flower
	Saturn
	Fireworks
	Sphere
)

var shapeNames = map[ShapeType]string{
	Heart:     "heart",
	Flower:    "flower",
	Saturn:    "saturn",
	Fireworks: "fireworks",
	Sphere:    "sphere",
}

func (s ShapeType) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return "unknown"
}

//ParseShape - name to ShapeType, defaults to Sphere
func ParseShape(name string) ShapeType {
	for k, v := range shapeNames {
		if v == name {
			return k
		}
	}
	return Sphere
}

//Generator produces target clouds from an injected random source so tests
//can pin a seed
type Generator struct {
	rnd *rand.Rand
}

func NewGenerator(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

//Cloud - samples count target points for the given shape
func (g *Generator) Cloud(shape ShapeType, count int) []V.Vec32 {
	points := make([]V.Vec32, count)
	for i := 0; i < count; i++ {
		switch shape {
		case Heart:
			points[i] = g.heartPoint()
		case Flower:
			points[i] = g.flowerPoint()
		case Saturn:
			points[i] = g.saturnPoint()
		default:
			points[i] = g.spherePoint(SphereRadius)
		}
	}
	return points
}

//heartPoint - classic parametric heart curve. The cube root pulls samples
//into the interior so the fill is dense rather than an outline.
func (g *Generator) heartPoint() V.Vec32 {
	t := g.rnd.Float64() * 2 * PI
	fill := math.Cbrt(g.rnd.Float64())

	x := 16 * math.Pow(math.Sin(t), 3)
	y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
	z := (g.rnd.Float64()*2 - 1) * HeartThickness

	return V.Vec32{
		float32(x * fill * HeartScale),
		float32(y * fill * HeartScale),
		float32(z),
	}
}

//flowerPoint - spherical rose r = A sin(k*theta) sin(phi). The signed radius
//is kept, negative r flips through the origin and forms the opposite petals.
func (g *Generator) flowerPoint() V.Vec32 {
	theta := g.rnd.Float64() * 2 * PI
	phi := g.rnd.Float64() * PI
	r := FlowerAmplitude * math.Sin(FlowerPetals*theta) * math.Sin(phi)

	return V.Vec32{
		float32(r * math.Sin(phi) * math.Cos(theta)),
		float32(r * math.Sin(phi) * math.Sin(theta)),
		float32(r * math.Cos(phi) * FlowerFlatten),
	}
}

//saturnPoint - body or ring chosen by a fixed probability split, then the
//whole shape is tilted about a fixed axis
func (g *Generator) saturnPoint() V.Vec32 {
	var p V.Vec32
	if g.rnd.Float64() < SaturnBodyRatio {
		p = g.spherePoint(SaturnBodyRadius)
	} else {
		angle := g.rnd.Float64() * 2 * PI
		radius := SaturnRingInner + g.rnd.Float64()*(SaturnRingOuter-SaturnRingInner)
		p = V.Vec32{
			float32(radius * math.Cos(angle)),
			float32((g.rnd.Float64()*2 - 1) * SaturnRingJitter),
			float32(radius * math.Sin(angle)),
		}
	}
	return V.AxisAngle(p, saturnTiltAxis, SaturnTiltAngle)
}

//spherePoint - uniform volume sphere sample. Cube root of a uniform variable
//gives uniform volumetric density, acos(2u-1) gives uniform solid angle.
func (g *Generator) spherePoint(radius float64) V.Vec32 {
	u := g.rnd.Float64()
	theta := g.rnd.Float64() * 2 * PI
	phi := math.Acos(2*g.rnd.Float64() - 1)
	r := radius * math.Cbrt(u)

	return V.Vec32{
		float32(r * math.Sin(phi) * math.Cos(theta)),
		float32(r * math.Sin(phi) * math.Sin(theta)),
		float32(r * math.Cos(phi)),
	}
}

//BoundingRadius - documented outer radius per shape, used by the renderer
//for camera framing and by the statistical tests
func BoundingRadius(shape ShapeType) float32 {
	switch shape {
	case Heart:
		return float32(17.5 * HeartScale)
	case Flower:
		return FlowerAmplitude
	case Saturn:
		return SaturnRingOuter
	default:
		return SphereRadius
	}
}

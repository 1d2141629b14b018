package utils

import (
	"fmt"
	"unsafe"

	V "github.com/Vacayy/hand-controlled-3d-particles/vector"
)

//Position buffer helpers shared by the renderer and the statistical tests.

//TransferPositionData - streams a Vec32 slice into mapped graphics memory.
//Intended for a mapped OpenGL vertex buffer but works against any pointer
//wide enough for count vectors.
func TransferPositionData(graphicsPtr unsafe.Pointer, posArray []V.Vec32, count int) error {
	if count <= 0 || count > len(posArray) {
		return fmt.Errorf("positional data transfer out of bounds: %d", count)
	}
	if graphicsPtr == nil {
		return fmt.Errorf("no valid pointer to graphics memory location")
	}

	refVec := V.Vec32{}
	streamVecPtr := (*V.Vec32)(graphicsPtr)
	for i := 0; i < count; i++ {
		*streamVecPtr = posArray[i]
		offset := unsafe.Sizeof(refVec) * uintptr(i+1)
		streamVecPtr = (*V.Vec32)(unsafe.Pointer(uintptr(graphicsPtr) + offset))
	}
	return nil
}

//ScalePositions - scales position list points around an origin, in place
func ScalePositions(pos []V.Vec32, origin V.Vec32, scale float32) {
	for i := range pos {
		v := pos[i]
		v.Sub(origin)
		v.Scale(scale)
		v.Add(origin)
		pos[i] = v
	}
}

//Centroid - mean position of the point set
func Centroid(pos []V.Vec32) V.Vec32 {
	c := V.Vec32{}
	if len(pos) == 0 {
		return c
	}
	for i := range pos {
		c.Add(pos[i])
	}
	c.Scale(1 / float32(len(pos)))
	return c
}

//BoundedFraction - fraction of points inside the given radius from origin
func BoundedFraction(pos []V.Vec32, radius float32) float32 {
	if len(pos) == 0 {
		return 0
	}
	inside := 0
	for i := range pos {
		if V.Length(pos[i]) <= radius {
			inside++
		}
	}
	return float32(inside) / float32(len(pos))
}

//MeanDistance - mean pairwise distance between matched slots of two sets
func MeanDistance(a []V.Vec32, b []V.Vec32) float32 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	sum := float32(0.0)
	for i := range a {
		sum += a[i].Distance(b[i])
	}
	return sum / float32(len(a))
}

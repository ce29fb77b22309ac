// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package georegion implements the polygonal Region abstraction the core refinement
// algorithm tests candidate trixels against: Contains, Intersection, and IsEmpty over a
// polygon-with-holes value on the unit sphere.
package georegion

import (
	"math"

	"github.com/golang/geo/s2"
)

// Loop is an open ring of vertices on the unit sphere (the edge from the last vertex
// back to the first is implicit).
type Loop struct {
	Vertices []s2.Point
}

// pointInLoop reports whether p lies inside loop, using a summed-signed-angle (winding
// number) test: the angles p subtends to each consecutive edge sum to approximately 2π
// when p is enclosed and approximately 0 otherwise. This is an approximate test — it can
// mis-classify points extremely close to an edge, which is exactly the failure mode the
// core algorithm's shrink epsilon exists to absorb.
func pointInLoop(loop []s2.Point, p s2.Point) bool {
	if len(loop) < 3 {
		return false
	}
	total := 0.0
	n := len(loop)
	for i := range n {
		a := loop[i]
		b := loop[(i+1)%n]
		total += signedVertexAngle(p, a, b)
	}
	return math.Abs(total) > math.Pi
}

// signedVertexAngle returns the angle at p between the directions to a and b, as seen
// embedded in 3-space, signed by whether a→b winds CCW or CW around p (relative to p's
// own outward direction as the local "up" normal).
func signedVertexAngle(p, a, b s2.Point) float64 {
	va := a.Sub(p.Vector)
	vb := b.Sub(p.Vector)
	cross := va.Cross(vb)
	sinT := cross.Norm()
	cosT := va.Dot(vb)
	angle := math.Atan2(sinT, cosT)
	if cross.Dot(p.Vector) < 0 {
		angle = -angle
	}
	return angle
}

// edgesCross reports whether any edge of loopA crosses any edge of loopB, using the
// same great-circle-plane intersection test clip.go uses, but only to detect crossing
// rather than compute it.
func edgesCross(loopA, loopB []s2.Point) bool {
	na, nb := len(loopA), len(loopB)
	for i := range na {
		a0, a1 := loopA[i], loopA[(i+1)%na]
		for j := range nb {
			b0, b1 := loopB[j], loopB[(j+1)%nb]
			if segmentsCross(a0, a1, b0, b1) {
				return true
			}
		}
	}
	return false
}

// segmentsCross reports whether geodesic segments (a0,a1) and (b0,b1) cross, via the
// standard four-orientation-test used for spherical edge crossing (each segment's plane
// normal used to test which side the other segment's endpoints fall on). Each pair of
// endpoints must lie strictly on opposite sides: an endpoint exactly on the other
// segment's great circle (a touch, or a shared vertex) is not a crossing.
func segmentsCross(a0, a1, b0, b1 s2.Point) bool {
	na := a0.Cross(a1.Vector)
	nb := b0.Cross(b1.Vector)

	d1 := na.Dot(b0.Vector)
	d2 := na.Dot(b1.Vector)
	d3 := nb.Dot(a0.Vector)
	d4 := nb.Dot(a1.Vector)

	return sign(d1)*sign(d2) < 0 && sign(d3)*sign(d4) < 0
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

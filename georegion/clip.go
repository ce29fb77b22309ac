// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package georegion

import (
	"math"

	"github.com/2dChan/htmindex/sphgeo"
	"github.com/golang/geo/s2"
)

// triangleHalfspaces returns the 3 great-circle halfspaces bounding the CCW spherical
// triangle (a, b, c), one per edge, using the same edge-plane construction
// sphgeo.NewConvexFromHull uses under Trusted ordering.
func triangleHalfspaces(a, b, c s2.Point) [3]sphgeo.Halfspace {
	edge := func(u, v s2.Point) sphgeo.Halfspace {
		return sphgeo.NewHalfspace(s2.Point{Vector: u.Cross(v.Vector)}, math.Pi/2)
	}
	return [3]sphgeo.Halfspace{edge(a, b), edge(b, c), edge(c, a)}
}

// clipLoopToTriangle clips loop (an open ring) against the CCW triangle (a, b, c),
// returning the portion of loop's interior that lies inside the triangle via
// Sutherland-Hodgman: successively clipping against each of the triangle's 3 bounding
// great-circle halfspaces.
func clipLoopToTriangle(loop []s2.Point, a, b, c s2.Point) []s2.Point {
	clipped := loop
	for _, h := range triangleHalfspaces(a, b, c) {
		clipped = clipLoopHalfspace(clipped, h)
		if len(clipped) == 0 {
			return nil
		}
	}
	return clipped
}

// clipLoopHalfspace clips an open ring against a single halfspace, keeping the portion
// on the contained side and inserting a boundary-crossing vertex wherever an edge
// transitions in or out.
func clipLoopHalfspace(loop []s2.Point, h sphgeo.Halfspace) []s2.Point {
	n := len(loop)
	if n == 0 {
		return nil
	}
	out := make([]s2.Point, 0, n+1)
	for i := range n {
		cur := loop[i]
		prev := loop[(i-1+n)%n]
		curIn := h.Contains(cur)
		prevIn := h.Contains(prev)
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, greatCircleCrossing(prev, cur, h), cur)
		case !curIn && prevIn:
			out = append(out, greatCircleCrossing(prev, cur, h))
		}
	}
	return out
}

// greatCircleCrossing returns the point where the geodesic edge (prev, cur) crosses the
// boundary great circle of halfspace h (whose boundary, since the triangle's edge
// halfspaces all have radius pi/2, is exactly the great circle through the origin with
// normal h.Direction). The crossing lies on the line where the edge's own great-circle
// plane meets h's plane, i.e. along the cross product of the two plane normals; the sign
// ambiguity (the line meets the sphere at two antipodal points) is resolved by picking
// the one nearer the edge's own midpoint direction.
func greatCircleCrossing(prev, cur s2.Point, h sphgeo.Halfspace) s2.Point {
	edgeNormal := prev.Cross(cur.Vector)
	candidate := edgeNormal.Cross(h.Direction.Vector).Normalize()
	mid := prev.Add(cur.Vector)
	if candidate.Dot(mid) < 0 {
		candidate = candidate.Mul(-1)
	}
	return s2.Point{Vector: candidate}
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package georegion

import "github.com/golang/geo/s2"

// Polygon is a single outer loop with zero or more hole loops, all in (unclosed)
// vertex-list form.
type Polygon struct {
	Outer Loop
	Holes []Loop
}

// Region is a union of Polygons: the host predicate abstraction the core refinement
// algorithm tests candidate trixels against.
type Region struct {
	Polygons []Polygon
}

// NewRegion builds a Region from a set of outer-loop-plus-holes polygons.
func NewRegion(polygons []Polygon) *Region {
	return &Region{Polygons: polygons}
}

// IsEmpty reports whether r has no polygons with a usable outer ring.
func (r *Region) IsEmpty() bool {
	if r == nil {
		return true
	}
	for _, p := range r.Polygons {
		if len(p.Outer.Vertices) >= 3 {
			return false
		}
	}
	return true
}

// pointIn reports whether p lies in polygon poly: inside the outer ring and not inside
// any hole.
func (poly *Polygon) pointIn(p s2.Point) bool {
	if !pointInLoop(poly.Outer.Vertices, p) {
		return false
	}
	for _, hole := range poly.Holes {
		if pointInLoop(hole.Vertices, p) {
			return false
		}
	}
	return true
}

// Contains reports whether r fully contains the spherical triangle (a, b, c): r
// contains the triangle's three vertices and its centroid, and no polygon boundary edge
// of r crosses one of the triangle's edges. The vertex/centroid sample is an
// approximation, not an exact convex-triangle-vs-polygon containment test; the core
// evaluator compensates by shrinking the triangle toward its centroid before calling
// this (§4.E "why shrink").
func (r *Region) Contains(a, b, c s2.Point) bool {
	if r.IsEmpty() {
		return false
	}
	centroid := s2.Point{Vector: a.Add(b.Vector).Add(c.Vector).Normalize()}
	samples := []s2.Point{a, b, c, centroid}

	for _, p := range samples {
		if !r.pointIn(p) {
			return false
		}
	}

	tri := []s2.Point{a, b, c}
	for _, poly := range r.Polygons {
		if edgesCross(poly.Outer.Vertices, tri) {
			return false
		}
		for _, hole := range poly.Holes {
			if edgesCross(hole.Vertices, tri) {
				return false
			}
		}
	}
	return true
}

// pointIn reports whether p lies inside any polygon of r.
func (r *Region) pointIn(p s2.Point) bool {
	for _, poly := range r.Polygons {
		if poly.pointIn(p) {
			return true
		}
	}
	return false
}

// Intersection computes r ∩ triangle(a,b,c), clipping each polygon's outer ring and
// holes against the triangle via Sutherland-Hodgman (clip.go). It returns (nil, false)
// if the result is empty — the core algorithm treats that identically to a null
// intersection (spec §7/§9).
func (r *Region) Intersection(a, b, c s2.Point) (*Region, bool) {
	if r.IsEmpty() {
		return nil, false
	}

	out := make([]Polygon, 0, len(r.Polygons))
	for _, poly := range r.Polygons {
		outer := clipLoopToTriangle(poly.Outer.Vertices, a, b, c)
		if len(outer) < 3 {
			continue
		}
		clippedPoly := Polygon{Outer: Loop{Vertices: outer}}
		for _, hole := range poly.Holes {
			clippedHole := clipLoopToTriangle(hole.Vertices, a, b, c)
			if len(clippedHole) >= 3 {
				clippedPoly.Holes = append(clippedPoly.Holes, Loop{Vertices: clippedHole})
			}
		}
		out = append(out, clippedPoly)
	}

	if len(out) == 0 {
		return nil, false
	}
	return &Region{Polygons: out}, true
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package sphgeo

import (
	"fmt"
	"math"

	"github.com/2dChan/htmindex/htmerr"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"
)

const defaultHullEps = 1e-12

// PointOrdering tells Convex's hull constructor how much to trust the caller's vertex
// order.
type PointOrdering int

const (
	// Trusted treats the input points as an already CCW-ordered, closed convex loop:
	// one Halfspace is derived directly from each consecutive edge, with no hull
	// recomputation.
	Trusted PointOrdering = iota
	// Safe makes no assumption about point order and re-derives the hull from
	// scratch via 3D convex hull construction.
	Safe
)

// Convex is a spherical convex region: the intersection of zero or more Halfspaces.
// A Convex with no halfspaces covers the entire sphere.
type Convex struct {
	Halfspaces []Halfspace
}

// NewConvexFromHalfspace builds a Convex bounded by a single cap.
func NewConvexFromHalfspace(h Halfspace) *Convex {
	return &Convex{Halfspaces: []Halfspace{h}}
}

// NewConvexFromCap builds a single-halfspace Convex centered on center with the given
// angular radius. This is the "enclosing cap" seed mode.
func NewConvexFromCap(center s2.Point, radius s1.Angle) *Convex {
	return NewConvexFromHalfspace(NewHalfspace(center, radius))
}

// NewConvexFromHull builds the spherical convex hull of points. Under Trusted ordering
// it treats points as an already-CCW closed convex loop and derives one edge Halfspace
// per consecutive pair. Under Safe ordering it discards any assumption about order and
// recomputes the hull from scratch via 3D convex-hull construction (quickhull), deriving
// one Halfspace per hull facet.
//
// It fails with htmerr.ErrHullFailure if fewer than 3 usable points are supplied or the
// hull generator cannot produce a non-degenerate result.
func NewConvexFromHull(points []s2.Point, ordering PointOrdering) (*Convex, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("sphgeo.NewConvexFromHull: need >= 3 points, got %d: %w",
			len(points), htmerr.ErrHullFailure)
	}

	if ordering == Trusted {
		return convexFromLoop(points), nil
	}
	return convexFromPointCloud(points)
}

// convexFromLoop derives one Halfspace per edge of an assumed CCW closed convex loop.
func convexFromLoop(points []s2.Point) *Convex {
	n := len(points)
	halfspaces := make([]Halfspace, 0, n)
	for i := range n {
		a := points[i]
		b := points[(i+1)%n]
		normal := a.Cross(b.Vector)
		if normal.Norm() < 1e-15 {
			// a and b coincide or are antipodal: the edge contributes no constraint.
			continue
		}
		halfspaces = append(halfspaces, NewHalfspace(s2.Point{Vector: normal}, math.Pi/2))
	}
	return &Convex{Halfspaces: halfspaces}
}

// convexFromPointCloud recomputes a 3D convex hull over points and derives one exact
// supporting Halfspace per hull facet: for a facet with outward unit normal n touching
// the hull at distance d = n·v from the origin, the facet's supporting halfspace is
// {p : p·n >= d}, which is exactly the Halfspace (n, arccos(d)) representation.
func convexFromPointCloud(points []s2.Point) (*Convex, error) {
	vecs := make([]r3.Vector, len(points))
	for i, p := range points {
		vecs[i] = p.Vector
	}

	qh := new(quickhull.QuickHull)
	hull := qh.ConvexHull(vecs, true, true, defaultHullEps)
	if len(hull.Indices)%3 != 0 || len(hull.Indices) == 0 {
		return nil, fmt.Errorf("sphgeo.NewConvexFromHull: degenerate hull result: %w",
			htmerr.ErrHullFailure)
	}

	halfspaces := make([]Halfspace, 0, len(hull.Indices)/3)
	for i := 0; i < len(hull.Indices); i += 3 {
		a := vecs[hull.Indices[i]]
		b := vecs[hull.Indices[i+1]]
		c := vecs[hull.Indices[i+2]]

		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Norm() < 1e-15 {
			continue
		}
		normal = normal.Normalize()
		d := normal.Dot(a)
		if d > 1 {
			d = 1
		} else if d < -1 {
			d = -1
		}
		halfspaces = append(halfspaces, NewHalfspace(s2.Point{Vector: normal}, s1.Angle(math.Acos(d))))
	}

	if len(halfspaces) == 0 {
		return nil, fmt.Errorf("sphgeo.NewConvexFromHull: no facets produced usable halfspaces: %w",
			htmerr.ErrHullFailure)
	}
	return &Convex{Halfspaces: halfspaces}, nil
}

// Contains reports whether p satisfies every one of c's halfspaces.
func (c *Convex) Contains(p s2.Point) bool {
	for _, h := range c.Halfspaces {
		if !h.Contains(p) {
			return false
		}
	}
	return true
}

// IntersectsTriangle reports whether the spherical triangle (a, b, cc) overlaps c. The
// test is conservative: it returns true unless some single halfspace of c can be shown to
// separate the whole triangle from c, so it may over-report overlap for triangles that
// wrap most of the way around a small cap. That bias is safe for cover-stepping, whose
// job is to over-approximate.
func (c *Convex) IntersectsTriangle(a, b, cc s2.Point) bool {
	if c.Contains(a) || c.Contains(b) || c.Contains(cc) {
		return true
	}
	for _, h := range c.Halfspaces {
		threshold := math.Cos(float64(h.Radius))
		if a.Dot(h.Direction.Vector) < threshold &&
			b.Dot(h.Direction.Vector) < threshold &&
			cc.Dot(h.Direction.Vector) < threshold {
			return false
		}
	}
	return true
}

// Simplify removes Halfspaces that cannot further restrict the region: exact duplicate
// directions collapse to the tightest (smallest) radius among them, and full-sphere
// (no-op) halfspaces are dropped outright. It does not perform a full linear-programming
// redundancy elimination against the combined intersection.
func (c *Convex) Simplify() {
	kept := make([]Halfspace, 0, len(c.Halfspaces))
	for _, h := range c.Halfspaces {
		if h.IsFull() {
			continue
		}
		dup := -1
		for i, k := range kept {
			if k.Direction.ApproxEqual(h.Direction) {
				dup = i
				break
			}
		}
		switch {
		case dup < 0:
			kept = append(kept, h)
		case h.Radius < kept[dup].Radius:
			kept[dup] = h
		}
	}
	c.Halfspaces = kept
}

// IsEmpty reports whether c's constraints are mutually unsatisfiable enough that no
// point on the sphere can lie in every halfspace. It uses a coarse, sufficient-not-exact
// test: two halfspaces whose directions are more than their combined radii apart cannot
// share any point.
func (c *Convex) IsEmpty() bool {
	for i := range c.Halfspaces {
		for j := i + 1; j < len(c.Halfspaces); j++ {
			hi, hj := c.Halfspaces[i], c.Halfspaces[j]
			angleBetween := s1.Angle(math.Acos(clamp(hi.Direction.Dot(hj.Direction.Vector))))
			if angleBetween > hi.Radius+hj.Radius {
				return true
			}
		}
	}
	return false
}

func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

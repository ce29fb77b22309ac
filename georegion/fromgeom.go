// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package georegion

import (
	"fmt"

	"github.com/2dChan/htmindex/htmerr"
	"github.com/golang/geo/s2"
	"github.com/twpayne/go-geom"
)

// FromGeom builds a Region from a go-geom value, preserving each polygon's
// outer-ring/hole structure. Unlike geog.VerticesFromGeometry (which
// flattens everything into one vertex list for hull construction), FromGeom
// keeps holes as holes: the host predicate needs to know which rings
// exclude area, not just where the vertices are.
//
// g's top-level type must be *geom.Polygon or a collection
// (*geom.MultiPolygon, *geom.GeometryCollection) whose leaves are all
// *geom.Polygon. Any other leaf type fails with htmerr.ErrUnsupportedGeometry.
func FromGeom(g geom.T) (*Region, error) {
	var polys []Polygon
	if err := walkGeom(g, &polys); err != nil {
		return nil, err
	}
	return NewRegion(polys), nil
}

func walkGeom(g geom.T, out *[]Polygon) error {
	switch t := g.(type) {
	case *geom.Polygon:
		poly, err := polygonFromGeom(t)
		if err != nil {
			return err
		}
		*out = append(*out, poly)
		return nil
	case *geom.MultiPolygon:
		for i := range t.NumPolygons() {
			if err := walkGeom(t.Polygon(i), out); err != nil {
				return err
			}
		}
		return nil
	case *geom.GeometryCollection:
		for i := range t.NumGeoms() {
			if err := walkGeom(t.Geom(i), out); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("georegion.FromGeom: unsupported geometry leaf type %T: %w", g, htmerr.ErrUnsupportedGeometry)
	}
}

func polygonFromGeom(p *geom.Polygon) (Polygon, error) {
	var poly Polygon
	for i := range p.NumLinearRings() {
		loop, err := loopFromRing(p.LinearRing(i))
		if err != nil {
			return Polygon{}, err
		}
		if i == 0 {
			poly.Outer = loop
			continue
		}
		poly.Holes = append(poly.Holes, loop)
	}
	return poly, nil
}

// loopFromRing converts a ring's coordinates to an open vertex loop, dropping
// the closing coordinate when it duplicates the first. A ring that collapses
// to fewer than 3 distinct vertices cannot bound any area, so the host
// predicate built from it could never be evaluated meaningfully; that is
// reported as htmerr.ErrHostPredicateFailure rather than silently producing
// a degenerate Region.
func loopFromRing(r *geom.LinearRing) (Loop, error) {
	n := r.NumCoords()
	last := n
	if n > 1 && r.Coord(0).Equal(geom.XY, r.Coord(n-1)) {
		last = n - 1
	}
	distinct := 0
	for i := range last {
		seen := false
		for j := range i {
			if r.Coord(i).Equal(geom.XY, r.Coord(j)) {
				seen = true
				break
			}
		}
		if !seen {
			distinct++
		}
	}
	if distinct < 3 {
		return Loop{}, fmt.Errorf("georegion.FromGeom: ring has %d distinct vertices, need at least 3: %w",
			distinct, htmerr.ErrHostPredicateFailure)
	}
	vertices := make([]s2.Point, last)
	for i := range last {
		c := r.Coord(i)
		vertices[i] = s2.PointFromLatLng(s2.LatLngFromDegrees(c.Y(), c.X()))
	}
	return Loop{Vertices: vertices}, nil
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geog adapts a go-geom geometry value into the ordered vertex sequence the
// seed generator's hull construction consumes.
package geog

import (
	"fmt"

	"github.com/2dChan/htmindex/htmerr"
	"github.com/golang/geo/s2"
	"github.com/twpayne/go-geom"
)

// VerticesFromGeometry walks g depth-first and returns every vertex of every polygon it
// finds, in visitation order: outer ring then holes, ring coordinates in ring order.
// Holes are not distinguished from the outer ring in the output — per spec, the vertex
// set alone feeds the orientation-agnostic hull generator.
//
// g's top-level type must be *geom.Polygon or a collection (*geom.MultiPolygon,
// *geom.GeometryCollection) whose leaves are all *geom.Polygon. Any other leaf type
// fails with htmerr.ErrUnsupportedGeometry, including circular-arc primitives, which
// this adapter never supports.
func VerticesFromGeometry(g geom.T) ([]s2.Point, error) {
	var vertices []s2.Point
	if err := walk(g, &vertices); err != nil {
		return nil, err
	}
	return vertices, nil
}

func walk(g geom.T, out *[]s2.Point) error {
	switch t := g.(type) {
	case *geom.Polygon:
		appendPolygonVertices(t, out)
		return nil
	case *geom.MultiPolygon:
		for i := range t.NumPolygons() {
			if err := walk(t.Polygon(i), out); err != nil {
				return err
			}
		}
		return nil
	case *geom.GeometryCollection:
		for i := range t.NumGeoms() {
			if err := walk(t.Geom(i), out); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("geog: unsupported geometry leaf type %T: %w", g, htmerr.ErrUnsupportedGeometry)
	}
}

func appendPolygonVertices(p *geom.Polygon, out *[]s2.Point) {
	for i := range p.NumLinearRings() {
		appendRingVertices(p.LinearRing(i), out)
	}
}

// appendRingVertices appends a ring's vertices, dropping the closing coordinate when it
// duplicates the first (the WKB/GeoJSON convention go-geom preserves).
func appendRingVertices(r *geom.LinearRing, out *[]s2.Point) {
	n := r.NumCoords()
	if n == 0 {
		return
	}
	last := n
	if n > 1 && r.Coord(0).Equal(geom.XY, r.Coord(n-1)) {
		last = n - 1
	}
	for i := range last {
		*out = append(*out, pointFromCoord(r.Coord(i)))
	}
}

// pointFromCoord converts a (longitude, latitude) coordinate pair, in degrees, to a
// Cartesian point on S². go-geom coordinates are [x, y] = [longitude, latitude].
func pointFromCoord(c geom.Coord) s2.Point {
	ll := s2.LatLngFromDegrees(c.Y(), c.X())
	return s2.PointFromLatLng(ll)
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package synthetic generates synthetic WGS84 regions for test fixtures, so
// the htmindex test suite can exercise non-trivial polygons without
// hand-authoring vertex lists.
package synthetic

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/twpayne/go-geom"
)

const (
	maxCenterLatDeg = 60
	maxCenterLngDeg = 170
	maxRadiusDeg    = 5
	minRadiusFrac   = 0.3
)

// RandomPolygon builds a random simple polygon: n vertices placed at random
// angles and radii around a random center point, with the angles sorted so
// the ring never self-intersects. The center is kept clear of the poles and
// the antimeridian so the degree-space construction stays well-behaved.
func RandomPolygon(n int, seed int64, variant int) (*geom.Polygon, error) {
	if n < 3 {
		return nil, fmt.Errorf("synthetic.RandomPolygon: n=%d, need at least 3 vertices", n)
	}

	random := rand.New(rand.NewSource(seed*31 + int64(variant)))

	centerLat := (random.Float64()*2 - 1) * maxCenterLatDeg
	centerLng := (random.Float64()*2 - 1) * maxCenterLngDeg
	lngScale := math.Cos(centerLat * math.Pi / 180)

	angles := make([]float64, n)
	for i := range angles {
		angles[i] = random.Float64() * 2 * math.Pi
	}
	sort.Float64s(angles)

	ring := make([]geom.Coord, n+1)
	for i, theta := range angles {
		radius := maxRadiusDeg * (minRadiusFrac + (1-minRadiusFrac)*random.Float64())
		lat := centerLat + radius*math.Sin(theta)
		lng := centerLng + radius*math.Cos(theta)/lngScale
		ring[i] = geom.Coord{lng, lat}
	}
	ring[n] = ring[0]

	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring}), nil
}

// RandomBox builds an axis-aligned latitude/longitude rectangle of random
// size centered at a random point, clear of the poles and the antimeridian.
func RandomBox(seed int64, variant int) (*geom.Polygon, error) {
	random := rand.New(rand.NewSource(seed*31 + int64(variant)))

	centerLat := (random.Float64()*2 - 1) * maxCenterLatDeg
	centerLng := (random.Float64()*2 - 1) * maxCenterLngDeg
	halfLat := maxRadiusDeg * (minRadiusFrac + (1-minRadiusFrac)*random.Float64())
	halfLng := maxRadiusDeg * (minRadiusFrac + (1-minRadiusFrac)*random.Float64())

	ring := []geom.Coord{
		{centerLng - halfLng, centerLat - halfLat},
		{centerLng + halfLng, centerLat - halfLat},
		{centerLng + halfLng, centerLat + halfLat},
		{centerLng - halfLng, centerLat + halfLat},
		{centerLng - halfLng, centerLat - halfLat},
	}

	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring}), nil
}

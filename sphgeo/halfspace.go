// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package sphgeo provides the spherical-geometry primitives the core refinement algorithm
// is built on: oriented halfspaces (spherical caps), convex regions as halfspace
// intersections, and a stepping trixel cover over a convex region.
package sphgeo

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Halfspace is an oriented spherical cap: every point within angular Radius of Direction.
// A Halfspace with Radius == math.Pi (s1.Angle) covers the entire sphere; one with
// Radius == 0 covers a single point.
type Halfspace struct {
	Direction s2.Point
	Radius    s1.Angle
}

// NewHalfspace builds a Halfspace centered on direction (need not be unit length) with the
// given angular radius.
func NewHalfspace(direction s2.Point, radius s1.Angle) Halfspace {
	return Halfspace{Direction: s2.Point{Vector: direction.Normalize()}, Radius: radius}
}

// Contains reports whether p lies within h's angular radius of its direction.
func (h Halfspace) Contains(p s2.Point) bool {
	return p.Dot(h.Direction.Vector) >= math.Cos(float64(h.Radius))
}

// IsFull reports whether h's cap covers the entire sphere, making it a no-op constraint.
func (h Halfspace) IsFull() bool {
	return h.Radius >= s1.Angle(math.Pi)
}

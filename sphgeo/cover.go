// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package sphgeo

import "github.com/2dChan/htmindex/htm"

// Cover steps a trixel covering of a Convex region outward from the 8 octahedron root
// faces, one level at a time, mirroring the stepping interface of s2.RegionCoverer:
// Step advances the cover one level, Level reports the current depth, and Trixels
// returns the outer markup at that depth.
type Cover struct {
	region  *Convex
	level   int
	trixels []htm.ID
}

// NewCover starts a Cover at level 0, the 8 root trixels.
func NewCover(region *Convex) *Cover {
	return &Cover{region: region, level: 0, trixels: htm.RootIDs()}
}

// Level returns the cover's current depth.
func (c *Cover) Level() int {
	return c.level
}

// Trixels returns the cover's current outer markup: the list of trixel IDs at Level()
// whose triangles may overlap the region.
func (c *Cover) Trixels() []htm.ID {
	return c.trixels
}

// Step subdivides every trixel in the current cover and keeps the children whose
// triangle overlaps the region, advancing the cover one level deeper.
func (c *Cover) Step() {
	next := make([]htm.ID, 0, len(c.trixels)*2)
	for _, id := range c.trixels {
		for k := range 4 {
			child := htm.Child(id, k)
			a, b, cc := htm.Vertices(child)
			if c.region.IntersectsTriangle(a, b, cc) {
				next = append(next, child)
			}
		}
	}
	c.trixels = next
	c.level++
}

// StepTo repeatedly calls Step until the cover reaches level. It is a no-op if the cover
// has already reached or passed level.
func (c *Cover) StepTo(level int) {
	for c.level < level {
		c.Step()
	}
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package htm implements the Hierarchical Triangular Mesh: a recursive subdivision of the
// unit sphere into spherical triangles ("trixels"), each identified by a 64-bit ID that
// encodes its path from one of the 8 octahedron root faces down through a chain of
// quadrant selections.
package htm

import (
	"fmt"
	"math/bits"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// MaxLevel is the deepest level this encoding supports in a 64-bit signed ID.
const MaxLevel = 20

// ID is an HTM trixel identifier. An ID at level L occupies the low 4+2L bits: the
// top 4 bits select one of the 8 octahedron root faces (values 8-15), and each
// subsequent level appends 2 bits selecting one of that trixel's 4 children.
type ID int64

// rootFace holds the three Cartesian vertices of one of the 8 octahedron root trixels,
// ordered CCW as seen from outside the sphere.
type rootFace [3]r3.Vector

var (
	// Octahedron vertices: poles plus four equatorial points 90 degrees apart.
	vNorth = r3.Vector{X: 0, Y: 0, Z: 1}
	vSouth = r3.Vector{X: 0, Y: 0, Z: -1}
	vEq0   = r3.Vector{X: 1, Y: 0, Z: 0}
	vEq1   = r3.Vector{X: 0, Y: 1, Z: 0}
	vEq2   = r3.Vector{X: -1, Y: 0, Z: 0}
	vEq3   = r3.Vector{X: 0, Y: -1, Z: 0}

	// roots[id-8] is the root face for root ID `id`. South faces are IDs 8-11,
	// north faces are IDs 12-15, per SPEC_FULL.md section 5.
	roots = [8]rootFace{
		{vSouth, vEq1, vEq0}, // 8
		{vSouth, vEq2, vEq1}, // 9
		{vSouth, vEq3, vEq2}, // 10
		{vSouth, vEq0, vEq3}, // 11
		{vNorth, vEq0, vEq1}, // 12
		{vNorth, vEq1, vEq2}, // 13
		{vNorth, vEq2, vEq3}, // 14
		{vNorth, vEq3, vEq0}, // 15
	}
)

// RootIDs returns the 8 level-0 octahedron-face IDs, 8 through 15 inclusive.
func RootIDs() []ID {
	ids := make([]ID, 8)
	for i := range ids {
		ids[i] = ID(8 + i)
	}
	return ids
}

// Level returns the subdivision depth of id, derived from its bit length. It returns -1
// for any id that cannot be a well-formed 4+2L-bit encoding, including non-positive
// values and values whose bit length is odd or shorter than the 4-bit root nibble.
func Level(id ID) int {
	if id <= 0 {
		return -1
	}
	bitLen := bits.Len64(uint64(id))
	if bitLen < 4 || (bitLen-4)%2 != 0 {
		return -1
	}
	return (bitLen - 4) / 2
}

// Parent returns id's canonical parent: the ID one level coarser, obtained by
// stripping the low 2 bits (the child-quadrant selector).
func Parent(id ID) ID {
	return id >> 2
}

// Child returns id's k'th child (k in [0,4)), one level deeper than id.
func Child(id ID, k int) ID {
	if k < 0 || k > 3 {
		panic(fmt.Sprintf("htm.Child: k=%d out of range [0,4)", k))
	}
	return id<<2 | ID(k)
}

// Vertices returns the three Cartesian vertices of the trixel identified by id,
// ordered CCW as seen from outside the sphere, by walking id's quadrant path down
// from its root face.
func Vertices(id ID) (a, b, c s2.Point) {
	lvl := Level(id)
	if lvl < 0 {
		panic(fmt.Sprintf("htm.Vertices: invalid id %d", int64(id)))
	}

	bitLen := bits.Len64(uint64(id))
	rootBits := uint64(id) >> uint(bitLen-4)
	face := roots[rootBits-8]
	va, vb, vc := face[0], face[1], face[2]

	// Walk the remaining 2-bit quadrant selectors from the most significant (level 1)
	// down to the least significant (level `lvl`).
	for shift := bitLen - 6; shift >= 0; shift -= 2 {
		quadrant := (uint64(id) >> uint(shift)) & 0x3
		va, vb, vc = subdivide(va, vb, vc, int(quadrant))
	}

	return s2.Point{Vector: va}, s2.Point{Vector: vb}, s2.Point{Vector: vc}
}

// subdivide splits triangle (a,b,c) into its 4 HTM children and returns the vertices
// of child `quadrant`. w0, w1, w2 are the midpoints of edges bc, ca, ab.
func subdivide(a, b, c r3.Vector, quadrant int) (r3.Vector, r3.Vector, r3.Vector) {
	w0 := midpoint(b, c)
	w1 := midpoint(c, a)
	w2 := midpoint(a, b)

	switch quadrant {
	case 0:
		return a, w2, w1
	case 1:
		return b, w0, w2
	case 2:
		return c, w1, w0
	default:
		return w0, w1, w2
	}
}

func midpoint(a, b r3.Vector) r3.Vector {
	return a.Add(b).Normalize()
}

// IsValid reports whether id names a well-formed trixel: its root-face nibble falls
// in [8,15] and its level lies in [0, MaxLevel].
func IsValid(id ID) bool {
	lvl := Level(id)
	if lvl < 0 || lvl > MaxLevel {
		return false
	}
	bitLen := bits.Len64(uint64(id))
	rootBits := uint64(id) >> uint(bitLen-4)
	return rootBits >= 8 && rootBits <= 15
}

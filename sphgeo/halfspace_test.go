// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package sphgeo

import (
	"testing"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

func TestHalfspaceContains(t *testing.T) {
	north := s2.Point{Vector: s2.PointFromLatLng(s2.LatLngFromDegrees(90, 0)).Vector}
	h := NewHalfspace(north, s1.Angle(30*3.14159265358979/180))

	inside := s2.PointFromLatLng(s2.LatLngFromDegrees(80, 0))
	outside := s2.PointFromLatLng(s2.LatLngFromDegrees(0, 0))

	if !h.Contains(inside) {
		t.Errorf("Contains(80N) = false, want true")
	}
	if h.Contains(outside) {
		t.Errorf("Contains(equator) = true, want false")
	}
}

func TestHalfspaceIsFull(t *testing.T) {
	full := NewHalfspace(s2.PointFromLatLng(s2.LatLngFromDegrees(0, 0)), s1.Angle(3.2))
	if !full.IsFull() {
		t.Errorf("IsFull() = false for radius > pi, want true")
	}

	partial := NewHalfspace(s2.PointFromLatLng(s2.LatLngFromDegrees(0, 0)), s1.Angle(1))
	if partial.IsFull() {
		t.Errorf("IsFull() = true for radius 1 rad, want false")
	}
}

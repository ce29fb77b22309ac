// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package sphgeo

import (
	"testing"

	"github.com/2dChan/htmindex/htm"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

func TestCoverStepsDeeper(t *testing.T) {
	center := s2.PointFromLatLng(s2.LatLngFromDegrees(10, 20))
	region := NewConvexFromCap(center, s1.Angle(0.05))

	cover := NewCover(region)
	if cover.Level() != 0 {
		t.Fatalf("NewCover(...).Level() = %d, want 0", cover.Level())
	}
	if len(cover.Trixels()) != 8 {
		t.Fatalf("NewCover(...).Trixels() has %d ids, want 8", len(cover.Trixels()))
	}

	cover.StepTo(4)
	if cover.Level() != 4 {
		t.Fatalf("cover.Level() = %d, want 4", cover.Level())
	}
	for _, id := range cover.Trixels() {
		if htm.Level(id) != 4 {
			t.Errorf("cover trixel %d at level %d, want 4", id, htm.Level(id))
		}
	}
	if len(cover.Trixels()) == 0 {
		t.Errorf("cover.Trixels() is empty after stepping toward a small cap, want at least one containing trixel")
	}
}

func TestCoverFullSphereKeepsAllChildren(t *testing.T) {
	full := &Convex{}
	cover := NewCover(full)
	cover.Step()
	if len(cover.Trixels()) != 32 {
		t.Errorf("full-sphere cover after one step has %d trixels, want 32 (8 roots x 4 children)", len(cover.Trixels()))
	}
}

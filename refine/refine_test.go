// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package refine

import (
	"errors"
	"testing"

	"github.com/2dChan/htmindex/georegion"
	"github.com/2dChan/htmindex/htm"
	"github.com/2dChan/htmindex/htmerr"
	"github.com/golang/geo/s2"
)

func regionFromTrixel(id htm.ID) *georegion.Region {
	a, b, c := htm.Vertices(id)
	return georegion.NewRegion([]georegion.Polygon{{Outer: georegion.Loop{Vertices: []s2.Point{a, b, c}}}})
}

func TestEvaluatorTrivialExactMatch(t *testing.T) {
	region := regionFromTrixel(htm.ID(8))

	ev, err := New(region, []htm.ID{8}, 1, WithEps(1e-10))
	if err != nil {
		t.Fatalf("New error = %v, want nil", err)
	}

	recs, err := Collect(ev)
	if err != nil {
		t.Fatalf("Collect error = %v, want nil", err)
	}
	if len(recs) != 1 {
		t.Fatalf("Collect() = %d records, want 1: %+v", len(recs), recs)
	}
	if recs[0].ID != 8 || recs[0].State != Inner {
		t.Errorf("Collect()[0] = %+v, want {ID:8 State:Inner}", recs[0])
	}
}

func TestEvaluatorShrinkNecessity(t *testing.T) {
	// leaf is a level-1 trixel evaluated with maxLevel equal to its own level, so
	// it cannot be subdivided: the evaluator must classify it in one step.
	leaf := htm.Child(htm.ID(8), 0)
	maxLevel := htm.Level(leaf)
	region := regionFromTrixel(leaf)

	withShrink, err := New(region, []htm.ID{leaf}, maxLevel, WithEps(1e-10))
	if err != nil {
		t.Fatalf("New(eps=1e-10) error = %v", err)
	}
	recs, err := Collect(withShrink)
	if err != nil || len(recs) != 1 || recs[0].State != Inner {
		t.Fatalf("Collect(eps=1e-10) = %+v, err=%v, want single Inner record", recs, err)
	}

	withoutShrink, err := New(region, []htm.ID{leaf}, maxLevel)
	if err != nil {
		t.Fatalf("New(eps=0) error = %v", err)
	}
	recs, err = Collect(withoutShrink)
	if err != nil {
		t.Fatalf("Collect(eps=0) error = %v, want nil", err)
	}
	if len(recs) != 1 || recs[0].State != Partial {
		t.Fatalf("Collect(eps=0) = %+v, want single Partial record (inner test false-negatives on exact coincidence without shrink)", recs)
	}
}

func TestEvaluatorEmptyIntersectionEmitsNothing(t *testing.T) {
	region := regionFromTrixel(htm.ID(8))

	ev, err := New(region, []htm.ID{14}, 1, WithEps(1e-10))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	recs, err := Collect(ev)
	if err != nil {
		t.Fatalf("Collect error = %v, want nil", err)
	}
	if len(recs) != 0 {
		t.Errorf("Collect(disjoint seed) = %+v, want no records", recs)
	}
}

func TestEvaluatorSubdividesDownToNestedRegion(t *testing.T) {
	// region is a small trixel nested three levels under the level-0 seed; the
	// seed's own triangle is far larger than region, so the evaluator must
	// subdivide down the single branch that overlaps it before the nested
	// trixel's own Inner classification is reached.
	level1 := htm.Child(htm.ID(8), 0)
	level2 := htm.Child(level1, 1)
	nested := htm.Child(level2, 2)
	region := regionFromTrixel(nested)

	ev, err := New(region, []htm.ID{8}, 3, WithEps(1e-10), WithDeltaLevel(1))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	recs, err := Collect(ev)
	if err != nil {
		t.Fatalf("Collect error = %v, want nil", err)
	}

	seen := map[htm.ID]bool{}
	foundNested := false
	for _, r := range recs {
		if seen[r.ID] {
			t.Errorf("duplicate record for trixel %d", r.ID)
		}
		seen[r.ID] = true
		if htm.Level(r.ID) > 3 {
			t.Errorf("record %+v exceeds maxLevel 3", r)
		}
		if r.ID == nested {
			foundNested = true
			if r.State != Inner {
				t.Errorf("nested trixel record %+v, want State=Inner", r)
			}
		}
	}
	if !foundNested {
		t.Fatalf("Collect() = %+v, want a record for the nested trixel %d", recs, nested)
	}
}

func TestEvaluatorKeepIntersectionsPopulatesRegion(t *testing.T) {
	region := regionFromTrixel(htm.ID(8))
	boundaryChild := htm.Child(htm.ID(8), 0)

	if _, err := New(region, []htm.ID{boundaryChild}, 0); !errors.Is(err, htmerr.ErrInvalidArgument) {
		t.Fatalf("New(maxLevel=0) error = %v, want wrapping ErrInvalidArgument", err)
	}

	level := htm.Level(boundaryChild)
	ev, err := New(region, []htm.ID{boundaryChild}, level, WithKeepIntersections(true))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	recs, err := Collect(ev)
	if err != nil {
		t.Fatalf("Collect error = %v, want nil", err)
	}
	if len(recs) != 1 || recs[0].State != Partial {
		t.Fatalf("Collect() = %+v, want a single Partial record (no shrink, boundary-touching child, at max depth)", recs)
	}
	if recs[0].Region == nil {
		t.Errorf("Partial record %+v has nil Region despite WithKeepIntersections(true)", recs[0])
	}
}

func TestNewRejectsMaxLevelOutOfRange(t *testing.T) {
	region := regionFromTrixel(htm.ID(8))
	for _, level := range []int{0, -1, 21, 100} {
		if _, err := New(region, []htm.ID{8}, level); !errors.Is(err, htmerr.ErrInvalidArgument) {
			t.Errorf("New(maxLevel=%d) error = %v, want wrapping ErrInvalidArgument", level, err)
		}
	}
}

func TestWithDeltaLevelRejectsOutOfRange(t *testing.T) {
	region := regionFromTrixel(htm.ID(8))
	for _, d := range []int{0, -1, 4} {
		if _, err := New(region, []htm.ID{8}, 5, WithDeltaLevel(d)); !errors.Is(err, htmerr.ErrInvalidArgument) {
			t.Errorf("WithDeltaLevel(%d) error = %v, want wrapping ErrInvalidArgument", d, err)
		}
	}
}

func TestWithEpsRejectsOutOfRange(t *testing.T) {
	region := regionFromTrixel(htm.ID(8))
	for _, eps := range []float64{-0.1, 1, 1.5} {
		if _, err := New(region, []htm.ID{8}, 5, WithEps(eps)); !errors.Is(err, htmerr.ErrInvalidArgument) {
			t.Errorf("WithEps(%v) error = %v, want wrapping ErrInvalidArgument", eps, err)
		}
	}
}

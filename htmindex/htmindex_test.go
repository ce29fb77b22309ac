// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package htmindex

import (
	"errors"
	"testing"

	"github.com/2dChan/htmindex/htm"
	"github.com/2dChan/htmindex/htmerr"
	"github.com/2dChan/htmindex/internal/synthetic"
	"github.com/twpayne/go-geom"
)

// smallSquare returns a small equatorial square polygon, in degrees, safely
// clear of the antimeridian and poles.
func smallSquare() *geom.Polygon {
	ring := []geom.Coord{
		{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0},
	}
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring})
}

func TestGeomToHTMChullReturnsRangesAtLevel20(t *testing.T) {
	ranges, err := GeomToHTMChull(smallSquare(), 5)
	if err != nil {
		t.Fatalf("GeomToHTMChull error = %v, want nil", err)
	}
	if len(ranges) == 0 {
		t.Fatalf("GeomToHTMChull returned no ranges")
	}
	for _, r := range ranges {
		if r.Hi < r.Lo {
			t.Errorf("range %+v has Hi < Lo", r)
		}
		if htm.Level(r.Lo) != normalizeOutputLevel() || htm.Level(r.Hi) != normalizeOutputLevel() {
			t.Errorf("range %+v not extended to level 20", r)
		}
	}
}

func TestGeomToHTMChullRejectsMaxLevelOutOfRange(t *testing.T) {
	for _, lvl := range []int{0, -1, 21} {
		if _, err := GeomToHTMChull(smallSquare(), lvl); !errors.Is(err, htmerr.ErrInvalidArgument) {
			t.Errorf("GeomToHTMChull(maxLevel=%d) error = %v, want wrapping ErrInvalidArgument", lvl, err)
		}
	}
}

func TestGeomToHTMChullRejectsUnsupportedGeometry(t *testing.T) {
	pt := geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{0, 0})
	if _, err := GeomToHTMChull(pt, 5); !errors.Is(err, htmerr.ErrUnsupportedGeometry) {
		t.Errorf("GeomToHTMChull(point) error = %v, want wrapping ErrUnsupportedGeometry", err)
	}
}

func TestHTMIndexCreateProducesRows(t *testing.T) {
	rows, err := HTMIndexCreate(smallSquare(), 6)
	if err != nil {
		t.Fatalf("HTMIndexCreate error = %v, want nil", err)
	}
	if len(rows) == 0 {
		t.Fatalf("HTMIndexCreate returned no rows")
	}

	for _, row := range rows {
		if row.Hi < row.Lo {
			t.Errorf("row %+v has Hi < Lo", row)
		}
		if htm.Level(row.Lo) != normalizeOutputLevel() || htm.Level(row.Hi) != normalizeOutputLevel() {
			t.Errorf("row %+v not extended to output level", row)
		}
	}
}

func normalizeOutputLevel() int {
	return htm.MaxLevel
}

func TestHTMIndexCreateRejectsNegativeEps(t *testing.T) {
	_, err := HTMIndexCreate(smallSquare(), 6, WithEps(-1))
	if !errors.Is(err, htmerr.ErrInvalidArgument) {
		t.Errorf("HTMIndexCreate(eps=-1) error = %v, want wrapping ErrInvalidArgument", err)
	}
}

func TestHTMIndexCreateRejectsMaxLevelOutOfRange(t *testing.T) {
	for _, lvl := range []int{0, -5, 30} {
		if _, err := HTMIndexCreate(smallSquare(), lvl); !errors.Is(err, htmerr.ErrInvalidArgument) {
			t.Errorf("HTMIndexCreate(maxLevel=%d) error = %v, want wrapping ErrInvalidArgument", lvl, err)
		}
	}
}

func TestHTMIndexCreateKeepIntersectionsPopulatesPartialRows(t *testing.T) {
	rows, err := HTMIndexCreate(smallSquare(), 6, WithKeepIntersections(true))
	if err != nil {
		t.Fatalf("HTMIndexCreate error = %v, want nil", err)
	}
	for _, row := range rows {
		if !row.Full && row.GeomInt == nil {
			t.Errorf("partial row %+v has nil GeomInt despite WithKeepIntersections(true)", row)
		}
	}
}

func TestHTMIndexCreateOverSyntheticPolygon(t *testing.T) {
	poly, err := synthetic.RandomPolygon(24, 7, 0)
	if err != nil {
		t.Fatalf("synthetic.RandomPolygon error = %v, want nil", err)
	}

	rows, err := HTMIndexCreate(poly, 8)
	if err != nil {
		t.Fatalf("HTMIndexCreate(synthetic polygon) error = %v, want nil", err)
	}
	if len(rows) == 0 {
		t.Fatalf("HTMIndexCreate(synthetic polygon) returned no rows")
	}
	for _, row := range rows {
		if row.Hi < row.Lo {
			t.Errorf("row %+v has Hi < Lo", row)
		}
	}
}

func TestHTMIndexCreateRejectsDeltaLevelOutOfRange(t *testing.T) {
	for _, delta := range []int{0, 4, -1} {
		if _, err := HTMIndexCreate(smallSquare(), 6, WithDeltaLevel(delta)); !errors.Is(err, htmerr.ErrInvalidArgument) {
			t.Errorf("HTMIndexCreate(delta=%d) error = %v, want wrapping ErrInvalidArgument", delta, err)
		}
	}
}

func TestHTMIndexCreateHonorsDeltaLevelOne(t *testing.T) {
	rows, err := HTMIndexCreate(smallSquare(), 6, WithDeltaLevel(1))
	if err != nil {
		t.Fatalf("HTMIndexCreate(delta=1) error = %v, want nil", err)
	}
	if len(rows) == 0 {
		t.Fatalf("HTMIndexCreate(delta=1) returned no rows")
	}
}

func TestHTMIndexCreateDeterministic(t *testing.T) {
	rows1, err1 := HTMIndexCreate(smallSquare(), 6)
	rows2, err2 := HTMIndexCreate(smallSquare(), 6)
	if err1 != nil || err2 != nil {
		t.Fatalf("HTMIndexCreate errors = %v, %v, want nil", err1, err2)
	}
	if len(rows1) != len(rows2) {
		t.Fatalf("HTMIndexCreate returned different row counts across runs: %d vs %d", len(rows1), len(rows2))
	}
	for i := range rows1 {
		if rows1[i].Lo != rows2[i].Lo || rows1[i].Hi != rows2[i].Hi || rows1[i].Full != rows2[i].Full {
			t.Errorf("row %d differs across runs: %+v vs %+v", i, rows1[i], rows2[i])
		}
	}
}

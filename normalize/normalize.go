// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package normalize extends the refine package's classified trixels to a
// fixed output level and emits the uniform range rows downstream point
// classification consumes.
package normalize

import (
	"github.com/2dChan/htmindex/georegion"
	"github.com/2dChan/htmindex/htm"
	"github.com/2dChan/htmindex/refine"
)

// OutputLevel is the fixed level every emitted range is extended to: deep
// enough that a point's own level-20 HTM ID always falls within exactly one
// emitted row's [Lo, Hi] bound.
const OutputLevel = htm.MaxLevel

// Row is one normalized output record: a contiguous level-20 HTM ID range,
// whether it is fully inside the indexed region, and (optionally) the
// clipped sub-region the range was derived from.
type Row struct {
	Lo, Hi  htm.ID
	Full    bool
	GeomInt *georegion.Region
}

// FromRecord extends a single refine.Record to OutputLevel and builds its Row.
func FromRecord(rec refine.Record) Row {
	rng := htm.Extend(rec.ID, OutputLevel)
	return Row{
		Lo:      rng.Lo,
		Hi:      rng.Hi,
		Full:    rec.State == refine.Inner,
		GeomInt: rec.Region,
	}
}

// Rows extends every record in recs to OutputLevel, preserving order.
func Rows(recs []refine.Record) []Row {
	rows := make([]Row, len(recs))
	for i, rec := range recs {
		rows[i] = FromRecord(rec)
	}
	return rows
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package htm

import (
	"fmt"

	"github.com/2dChan/htmindex/htmerr"
)

// Range is an inclusive pair of HTM IDs at the same level, representing every ID in
// [Lo, Hi] at that level.
type Range struct {
	Lo, Hi ID
}

// Truncate returns id's ancestor at the given coarser level. level must be <= Level(id).
func Truncate(id ID, level int) ID {
	cur := Level(id)
	if level < 0 || level > cur {
		panic(fmt.Sprintf("htm.Truncate: level %d out of range [0,%d]", level, cur))
	}
	return id >> uint(2*(cur-level))
}

// Extend returns the level-`level` range covering every descendant of id. level must be
// >= Level(id).
func Extend(id ID, level int) Range {
	cur := Level(id)
	if level < cur {
		panic(fmt.Sprintf("htm.Extend: level %d below id's own level %d", level, cur))
	}
	shift := uint(2 * (level - cur))
	lo := id << shift
	hi := lo + (ID(1)<<shift - 1)
	return Range{Lo: lo, Hi: hi}
}

// TruncateRange computes the ancestor IDs at `level` (which must be coarser than the
// common level of lo and hi) covering the range [lo, hi], returning them as the
// inclusive integer range [Truncate(lo, level), Truncate(hi, level)].
//
// It fails if lo and hi are not at the same level, if hi < lo, or if level is not
// strictly coarser than that common level.
func TruncateRange(lo, hi ID, level int) (Range, error) {
	loLevel := Level(lo)
	hiLevel := Level(hi)
	if loLevel != hiLevel {
		return Range{}, fmt.Errorf("htm.TruncateRange: lo level %d != hi level %d: %w",
			loLevel, hiLevel, htmerr.ErrInvalidArgument)
	}
	if hi < lo {
		return Range{}, fmt.Errorf("htm.TruncateRange: hi %d < lo %d: %w",
			int64(hi), int64(lo), htmerr.ErrInvalidArgument)
	}
	if level < 0 || level >= loLevel {
		return Range{}, fmt.Errorf("htm.TruncateRange: level %d not in [0,%d): %w",
			level, loLevel, htmerr.ErrInvalidArgument)
	}

	return Range{Lo: Truncate(lo, level), Hi: Truncate(hi, level)}, nil
}

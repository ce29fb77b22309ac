// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package refine implements the adaptive recursive refinement algorithm: given a
// Region and a seed set of candidate trixels, it classifies each trixel as Inner
// (fully contained) or Partial (overlapping but not contained), subdividing
// partials up to a maximum level.
package refine

import (
	"fmt"

	"github.com/2dChan/htmindex/georegion"
	"github.com/2dChan/htmindex/htm"
	"github.com/2dChan/htmindex/htmerr"
	"github.com/golang/geo/s2"
)

// State tags whether a classified trixel is fully inside the region or merely
// overlaps it.
type State int

const (
	// Inner means the trixel's (shrunk) triangle is fully contained by the region.
	Inner State = iota
	// Partial means the trixel overlaps the region without being fully contained,
	// and was not subdivided further (it sits at MaxLevel).
	Partial
)

// Record is one classified trixel yielded by the evaluator.
type Record struct {
	ID     htm.ID
	State  State
	Region *georegion.Region // non-nil only for Partial records when KeepIntersections is set
}

const (
	defaultDeltaLevel = 2
	minLevel          = 1
	maxLevelBound     = htm.MaxLevel
)

// Options holds the evaluator's tunables.
type Options struct {
	MaxLevel          int
	DeltaLevel        int
	Eps               float64
	KeepIntersections bool
}

// Option configures an Evaluator.
type Option func(*Options) error

// WithDeltaLevel sets the number of HTM levels to step per recursion. Valid
// values are 1, 2, or 3; the default is 2.
func WithDeltaLevel(delta int) Option {
	return func(o *Options) error {
		if delta < 1 || delta > 3 {
			return fmt.Errorf("refine.WithDeltaLevel: delta %d must be in [1,3]: %w", delta, htmerr.ErrInvalidArgument)
		}
		o.DeltaLevel = delta
		return nil
	}
}

// WithEps sets the shrink epsilon applied to the inner-containment test. Must
// be in [0, 1); the default is 0 (no shrink, exact triangle).
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps < 0 || eps >= 1 {
			return fmt.Errorf("refine.WithEps: eps %v must be in [0,1): %w", eps, htmerr.ErrInvalidArgument)
		}
		o.Eps = eps
		return nil
	}
}

// WithKeepIntersections controls whether Partial records carry their clipped
// sub-region. The default is false.
func WithKeepIntersections(keep bool) Option {
	return func(o *Options) error {
		o.KeepIntersections = keep
		return nil
	}
}

// Evaluator is a pull-based traversal over a Region, classifying a seed set of
// candidate trixels and their descendants. It holds bounded memory
// proportional to recursion depth: an explicit stack of (region-clip,
// candidate-list) frames, standing in for the nested lazy generators a
// language with first-class coroutines would use here.
type Evaluator struct {
	opts  Options
	stack []*frame
}

type frame struct {
	region *georegion.Region
	ids    []htm.ID
	idx    int
}

// New builds an Evaluator over region, starting from the candidate trixels in
// seed (all assumed to be at the same HTM level), refining up to maxLevel.
// region is borrowed by the returned Evaluator's first frame; every
// recursive frame below it owns its own clipped sub-region.
func New(region *georegion.Region, seed []htm.ID, maxLevel int, setters ...Option) (*Evaluator, error) {
	if maxLevel < minLevel || maxLevel > maxLevelBound {
		return nil, fmt.Errorf("refine.New: maxLevel %d must be in [%d,%d]: %w",
			maxLevel, minLevel, maxLevelBound, htmerr.ErrInvalidArgument)
	}

	opts := Options{MaxLevel: maxLevel, DeltaLevel: defaultDeltaLevel}
	for _, apply := range setters {
		if err := apply(&opts); err != nil {
			return nil, err
		}
	}
	opts.MaxLevel = maxLevel

	ids := make([]htm.ID, len(seed))
	copy(ids, seed)

	return &Evaluator{
		opts:  opts,
		stack: []*frame{{region: region, ids: ids}},
	}, nil
}

// Next advances the traversal and returns the next classified Record. The
// second return value is false once the traversal is exhausted, with a zero
// Record and nil error. A non-nil error aborts the traversal; the Evaluator
// must not be used again after one is returned.
//
// Ordering follows the recursion exactly: for a given candidate, Inner
// precedes any of its descendants, and siblings are visited by ascending HTM
// ID (the order extend already produces).
func (e *Evaluator) Next() (Record, bool, error) {
	for len(e.stack) > 0 {
		top := e.stack[len(e.stack)-1]
		if top.idx >= len(top.ids) {
			e.stack = e.stack[:len(e.stack)-1]
			continue
		}
		t := top.ids[top.idx]
		top.idx++

		a, b, c := htm.Vertices(t)

		sa, sb, sc := a, b, c
		if e.opts.Eps > 0 {
			sa, sb, sc = shrinkTriangle(a, b, c, e.opts.Eps)
		}

		if top.region.Contains(sa, sb, sc) {
			return Record{ID: t, State: Inner}, true, nil
		}

		clipped, ok := top.region.Intersection(a, b, c)
		if !ok {
			continue
		}

		level := htm.Level(t)
		if level >= e.opts.MaxLevel {
			rec := Record{ID: t, State: Partial}
			if e.opts.KeepIntersections {
				rec.Region = clipped
			}
			return rec, true, nil
		}

		childLevel := level + e.opts.DeltaLevel
		if childLevel > e.opts.MaxLevel {
			childLevel = e.opts.MaxLevel
		}
		children := htm.Extend(t, childLevel)

		n := int(children.Hi-children.Lo) + 1
		childIDs := make([]htm.ID, n)
		for i := range childIDs {
			childIDs[i] = children.Lo + htm.ID(i)
		}

		e.stack = append(e.stack, &frame{region: clipped, ids: childIDs})
	}
	return Record{}, false, nil
}

// Collect drains the Evaluator into a slice, returning the first error
// encountered, if any.
func Collect(e *Evaluator) ([]Record, error) {
	var out []Record
	for {
		rec, ok, err := e.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, rec)
	}
}

// shrinkTriangle moves each vertex of (a, b, c) toward their shared centroid
// by factor eps, then re-normalizes to the unit sphere. This is applied only
// to the inner-containment predicate: the host predicate's exact-coincidence
// false negatives are a floating-point artifact, not a geometric one, and
// shrinking the query is cheaper than hardening the predicate itself.
func shrinkTriangle(a, b, c s2.Point, eps float64) (s2.Point, s2.Point, s2.Point) {
	centroid := a.Add(b.Vector).Add(c.Vector).Normalize()
	shrink := func(v s2.Point) s2.Point {
		return s2.Point{Vector: v.Sub(v.Sub(centroid).Mul(eps)).Normalize()}
	}
	return shrink(a), shrink(b), shrink(c)
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package htmindex composes the module's components into the two
// user-facing pipeline operations: GeomToHTMChull (seed cover only) and
// HTMIndexCreate (full adaptive refinement).
package htmindex

import (
	"fmt"

	"github.com/2dChan/htmindex/geog"
	"github.com/2dChan/htmindex/georegion"
	"github.com/2dChan/htmindex/htm"
	"github.com/2dChan/htmindex/htmerr"
	"github.com/2dChan/htmindex/normalize"
	"github.com/2dChan/htmindex/refine"
	"github.com/2dChan/htmindex/seed"
	"github.com/twpayne/go-geom"
)

const (
	defaultEps       = 1e-10
	defaultSeedLevel = 8
	evaluatorDelta   = 2
)

// Options holds HTMIndexCreate's tunables.
type Options struct {
	Eps               float64
	SeedLevel         int
	DeltaLevel        int
	KeepIntersections bool
}

// IndexOption configures an HTMIndexCreate call.
type IndexOption func(*Options) error

// WithEps sets the shrink epsilon forwarded to the evaluator. Must be >= 0;
// the default is 1e-10.
func WithEps(eps float64) IndexOption {
	return func(o *Options) error {
		if eps < 0 {
			return fmt.Errorf("htmindex.WithEps: eps %v must be >= 0: %w", eps, htmerr.ErrInvalidArgument)
		}
		o.Eps = eps
		return nil
	}
}

// WithSeedLevel sets the seed cover's starting level. A value of 0 or above
// 16 is coerced to 10 by the seed generator; the default here is 8.
func WithSeedLevel(level int) IndexOption {
	return func(o *Options) error {
		o.SeedLevel = level
		return nil
	}
}

// WithDeltaLevel sets how many HTM levels the evaluator advances per
// recursion step. Must be in [1,3]; the default is 2.
func WithDeltaLevel(delta int) IndexOption {
	return func(o *Options) error {
		if delta < 1 || delta > 3 {
			return fmt.Errorf("htmindex.WithDeltaLevel: delta %d must be in [1,3]: %w", delta, htmerr.ErrInvalidArgument)
		}
		o.DeltaLevel = delta
		return nil
	}
}

// WithKeepIntersections controls whether Partial rows carry their clipped
// sub-region. The default is false.
func WithKeepIntersections(keep bool) IndexOption {
	return func(o *Options) error {
		o.KeepIntersections = keep
		return nil
	}
}

// GeomToHTMChull adapts g to a vertex list, builds a spherical-hull seed
// cover at maxLevel, and returns the hull cover extended to level 20 — no
// refinement against g's interior is performed. The seed generator coerces a
// maxLevel above 16 to 10, so such calls return a level-10 cover.
func GeomToHTMChull(g geom.T, maxLevel int) ([]htm.Range, error) {
	if maxLevel < 1 || maxLevel > htm.MaxLevel {
		return nil, fmt.Errorf("htmindex.GeomToHTMChull: maxLevel %d must be in [1,%d]: %w",
			maxLevel, htm.MaxLevel, htmerr.ErrInvalidArgument)
	}

	vertices, err := geog.VerticesFromGeometry(g)
	if err != nil {
		return nil, err
	}

	seedIDs, err := seed.Generate(vertices, seed.WithLevel(maxLevel), seed.WithMode(seed.SphericalHull))
	if err != nil {
		return nil, err
	}

	ranges := make([]htm.Range, len(seedIDs))
	for i, id := range seedIDs {
		ranges[i] = htm.Extend(id, normalize.OutputLevel)
	}
	return ranges, nil
}

// HTMIndexCreate adapts g, builds a spherical-hull seed at the resolved
// seed level, runs the adaptive refinement evaluator with the configured
// level step (2 unless WithDeltaLevel sets another) up to maxLevel, and
// normalizes the classified trixels into output rows.
func HTMIndexCreate(g geom.T, maxLevel int, opts ...IndexOption) ([]normalize.Row, error) {
	if maxLevel < 1 || maxLevel > htm.MaxLevel {
		return nil, fmt.Errorf("htmindex.HTMIndexCreate: maxLevel %d must be in [1,%d]: %w",
			maxLevel, htm.MaxLevel, htmerr.ErrInvalidArgument)
	}

	o := Options{Eps: defaultEps, SeedLevel: defaultSeedLevel, DeltaLevel: evaluatorDelta}
	for _, apply := range opts {
		if err := apply(&o); err != nil {
			return nil, err
		}
	}

	vertices, err := geog.VerticesFromGeometry(g)
	if err != nil {
		return nil, err
	}

	region, err := georegion.FromGeom(g)
	if err != nil {
		return nil, err
	}

	seedIDs, err := seed.Generate(vertices, seed.WithLevel(o.SeedLevel), seed.WithMode(seed.SphericalHull))
	if err != nil {
		return nil, err
	}

	ev, err := refine.New(region, seedIDs, maxLevel,
		refine.WithEps(o.Eps),
		refine.WithDeltaLevel(o.DeltaLevel),
		refine.WithKeepIntersections(o.KeepIntersections),
	)
	if err != nil {
		return nil, err
	}

	recs, err := refine.Collect(ev)
	if err != nil {
		return nil, err
	}
	return normalize.Rows(recs), nil
}

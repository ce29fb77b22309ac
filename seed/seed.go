// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package seed builds the shallow initial trixel cover the refinement
// algorithm starts from: a convex bound of the region, stepped out to a
// target seed level via sphgeo.Cover.
package seed

import (
	"fmt"
	"math"

	"github.com/2dChan/htmindex/htm"
	"github.com/2dChan/htmindex/htmerr"
	"github.com/2dChan/htmindex/sphgeo"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Mode selects how the seed generator bounds the region before covering it.
type Mode int

const (
	// SphericalHull runs the module's own spherical-convex-hull generator
	// (quickhull-backed) over the vertex list. This is the preferred mode.
	SphericalHull Mode = iota
	// ExternalHull asks the host geometry library (golang/geo's
	// s2.ConvexHullQuery) for a convex hull and re-derives a Convex from its
	// vertices under the Safe ordering policy.
	ExternalHull
	// EnclosingCap queries the host for a bounding cap and builds a single
	// enlarged-halfspace Convex from it.
	EnclosingCap
	// FullGlobe skips hull construction entirely and returns the eight root
	// trixels, useful for regions that already cover most of the sphere and
	// for exercising the evaluator independent of the hull machinery.
	FullGlobe
)

const (
	defaultLevel = 10
	minLevel     = 1
	maxLevel     = 16

	// envelopeCapFactor preserves an observed upstream convention for
	// converting envelope-angle units to halfspace-angle units; it is not
	// independently re-derived and must be reproduced bit-exactly.
	envelopeCapFactor = 60
)

// Options holds the seed generator's tunables.
type Options struct {
	Level int
	Mode  Mode
}

// Option configures a seed generation call.
type Option func(*Options) error

// WithLevel sets the target seed level. A level of 0 or above 16 is coerced
// to the default (10) at generation time, matching §4.D's stated fallback;
// WithLevel itself never errors.
func WithLevel(level int) Option {
	return func(o *Options) error {
		o.Level = level
		return nil
	}
}

// WithMode selects the seed mode.
func WithMode(mode Mode) Option {
	return func(o *Options) error {
		if mode < SphericalHull || mode > FullGlobe {
			return fmt.Errorf("seed.WithMode: mode %d out of range: %w", mode, htmerr.ErrInvalidArgument)
		}
		o.Mode = mode
		return nil
	}
}

// Generate builds the seed trixel cover for the region whose boundary
// vertices are given by vertices (ignored under FullGlobe mode). It applies
// opts in order, then: builds a Convex per the selected mode, simplifies it,
// and steps a sphgeo.Cover from level 0 out to the resolved seed level.
func Generate(vertices []s2.Point, opts ...Option) ([]htm.ID, error) {
	o := Options{Level: defaultLevel, Mode: SphericalHull}
	for _, apply := range opts {
		if err := apply(&o); err != nil {
			return nil, err
		}
	}

	level := o.Level
	if level <= 0 || level > maxLevel {
		level = defaultLevel
	}

	if o.Mode == FullGlobe {
		return htm.RootIDs(), nil
	}

	convex, err := buildConvex(vertices, o.Mode)
	if err != nil {
		return nil, err
	}
	convex.Simplify()

	cover := sphgeo.NewCover(convex)
	cover.StepTo(level)
	return cover.Trixels(), nil
}

// buildConvex dispatches to the hull construction for the given mode.
// FullGlobe is not a valid input here; it is handled entirely by Generate.
func buildConvex(vertices []s2.Point, mode Mode) (*sphgeo.Convex, error) {
	switch mode {
	case SphericalHull:
		return sphgeo.NewConvexFromHull(vertices, sphgeo.Safe)
	case ExternalHull:
		return externalHullConvex(vertices)
	case EnclosingCap:
		return enclosingCapConvex(vertices), nil
	default:
		return nil, fmt.Errorf("seed.buildConvex: mode %d has no hull construction: %w",
			mode, htmerr.ErrInvalidArgument)
	}
}

// externalHullConvex asks the host library (s2.ConvexHullQuery) for a
// convex loop over vertices, then feeds that loop's own vertex order back
// into the module's Convex constructor under the Safe policy, per §4.D mode
// 2 ("let the constructor reorder as needed").
func externalHullConvex(vertices []s2.Point) (*sphgeo.Convex, error) {
	q := s2.NewConvexHullQuery()
	for _, v := range vertices {
		q.AddPoint(v)
	}
	loop := q.ConvexHull()
	return sphgeo.NewConvexFromHull(loop.Vertices(), sphgeo.Safe)
}

// enclosingCapConvex queries the host for a bounding cap over vertices and
// builds a single-halfspace Convex at 60x the cap's own angular radius.
func enclosingCapConvex(vertices []s2.Point) *sphgeo.Convex {
	q := s2.NewConvexHullQuery()
	for _, v := range vertices {
		q.AddPoint(v)
	}
	bound := q.CapBound()

	// Height and chord-angle are the stable parts of s2.Cap's API across
	// versions; radius is derived from height rather than called directly.
	radius := s1.Angle(math.Acos(1 - bound.Height()))
	return sphgeo.NewConvexFromCap(bound.Center(), envelopeCapFactor*radius)
}

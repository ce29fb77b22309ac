// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package htmerr defines the sentinel errors shared across the module's packages.
// Call sites wrap one of these with fmt.Errorf("...: %w", ...) so that callers can
// classify a failure with errors.Is without depending on its exact message.
package htmerr

import "errors"

var (
	// ErrUnsupportedGeometry is returned when an input geometry value has a type this
	// module does not handle (e.g. a point, or a geometry collection holding a line
	// string).
	ErrUnsupportedGeometry = errors.New("htmerr: unsupported geometry")

	// ErrHullFailure is returned when a convex-hull computation cannot produce a
	// usable region, such as when fewer than 3 distinct, non-antipodal points are
	// supplied to a hull seed.
	ErrHullFailure = errors.New("htmerr: convex hull construction failed")

	// ErrInvalidArgument is returned when a caller-supplied parameter (a level, a
	// threshold, an ID range) is out of its valid domain.
	ErrInvalidArgument = errors.New("htmerr: invalid argument")

	// ErrHostPredicateFailure is returned when a region's containment predicate
	// cannot be built at all: georegion.FromGeom returns it for a polygon ring with
	// fewer than 3 distinct vertices.
	ErrHostPredicateFailure = errors.New("htmerr: host predicate evaluation failed")
)

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cmd

import (
	"fmt"

	"github.com/2dChan/htmindex/geog"
	"github.com/2dChan/htmindex/htm"
	"github.com/2dChan/htmindex/htmerr"
	"github.com/2dChan/htmindex/htmindex"
	"github.com/2dChan/htmindex/seed"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom/encoding/wkt"
	"go.uber.org/zap"
)

var (
	queryVal         string
	maxLevelVal      int
	seedLevelVal     int
	levelSkipVal     int
	epsVal           float64
	seedModeVal      string
	seedOnlyVal      bool
	dumpHullVal      string
	keepIntersectVal bool
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "classify a WKT region's HTM trixel ranges",
	RunE:  runIndex,
}

func init() {
	RootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringVar(&queryVal, "query", "", "WKT region to index (required)")
	indexCmd.Flags().IntVar(&maxLevelVal, "max-level", 12, "maximum HTM level to refine to")
	indexCmd.Flags().IntVar(&seedLevelVal, "seed-level", 8, "seed cover's starting level")
	indexCmd.Flags().IntVar(&levelSkipVal, "level-skip", 2, "levels advanced per recursion step (delta L)")
	indexCmd.Flags().Float64Var(&epsVal, "eps", 1e-10, "shrink epsilon applied to the inner-containment test")
	indexCmd.Flags().StringVar(&seedModeVal, "seed-mode", "spherical-hull",
		"seed mode: spherical-hull, host-hull, enclosing-cap, or full-globe")
	indexCmd.Flags().BoolVar(&seedOnlyVal, "seed-only", false, "emit the seed cover only, with no refinement")
	indexCmd.Flags().BoolVar(&keepIntersectVal, "keep-intersections", false, "keep clipped sub-regions on partial trixels")
	indexCmd.Flags().StringVar(&dumpHullVal, "dump-hull", "", "optional path to write an SVG render of the seed cover's trixels")
}

func runIndex(_ *cobra.Command, _ []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("htmidx: failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if queryVal == "" {
		return fmt.Errorf("htmidx: --query is required: %w", htmerr.ErrInvalidArgument)
	}

	g, err := wkt.Unmarshal(queryVal)
	if err != nil {
		logger.Error("failed to parse WKT query", zap.String("query", queryVal), zap.Error(err))
		return fmt.Errorf("htmidx: %w: %w", htmerr.ErrUnsupportedGeometry, err)
	}

	mode, err := parseSeedMode(seedModeVal)
	if err != nil {
		logger.Error("invalid seed mode", zap.String("seed-mode", seedModeVal), zap.Error(err))
		return err
	}

	var rows []row
	if seedOnlyVal {
		vertices, err := geog.VerticesFromGeometry(g)
		if err != nil {
			logger.Error("adapter rejected geometry", zap.Error(err))
			return err
		}
		ids, err := seed.Generate(vertices, seed.WithLevel(seedLevelVal), seed.WithMode(mode))
		if err != nil {
			logger.Error("seed generation failed", zap.Error(err))
			return err
		}
		rows = make([]row, len(ids))
		for i, id := range ids {
			rng := htm.Extend(id, htm.MaxLevel)
			rows[i] = row{lo: rng.Lo, hi: rng.Hi, full: false}
		}
	} else {
		out, err := htmindex.HTMIndexCreate(g, maxLevelVal,
			htmindex.WithEps(epsVal),
			htmindex.WithSeedLevel(seedLevelVal),
			htmindex.WithDeltaLevel(levelSkipVal),
			htmindex.WithKeepIntersections(keepIntersectVal),
		)
		if err != nil {
			logger.Error("index creation failed", zap.Error(err))
			return err
		}
		rows = make([]row, len(out))
		for i, r := range out {
			rows[i] = row{lo: r.Lo, hi: r.Hi, full: r.Full}
		}
	}

	for _, r := range rows {
		fmt.Printf("%d\t%d\t%t\n", int64(r.lo), int64(r.hi), r.full)
	}

	if dumpHullVal != "" {
		vertices, err := geog.VerticesFromGeometry(g)
		if err != nil {
			return err
		}
		seedIDs, err := seed.Generate(vertices, seed.WithLevel(seedLevelVal), seed.WithMode(mode))
		if err != nil {
			return err
		}
		if err := dumpHullSVG(dumpHullVal, seedIDs); err != nil {
			logger.Error("failed to write hull dump", zap.String("path", dumpHullVal), zap.Error(err))
			return err
		}
	}

	return nil
}

type row struct {
	lo, hi htm.ID
	full   bool
}

func parseSeedMode(s string) (seed.Mode, error) {
	switch s {
	case "spherical-hull":
		return seed.SphericalHull, nil
	case "host-hull":
		return seed.ExternalHull, nil
	case "enclosing-cap":
		return seed.EnclosingCap, nil
	case "full-globe":
		return seed.FullGlobe, nil
	default:
		return 0, fmt.Errorf("htmidx: unknown seed mode %q: %w", s, htmerr.ErrInvalidArgument)
	}
}

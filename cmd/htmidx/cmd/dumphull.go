// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cmd

import (
	"os"

	"github.com/2dChan/htmindex/htm"
	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/s2"
)

const (
	hullWidth  = 1500
	hullHeight = hullWidth / 2

	trixelStyle = "fill:rgb(255,255,255);stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
)

func pointToScreen(p s2.Point) (int, int) {
	xScale := float64(hullWidth)
	proj := s2.NewPlateCarreeProjection(xScale)

	r2p := proj.Project(p)

	x := (r2p.X + xScale) / (2 * xScale)
	y := (-r2p.Y + xScale/2) / xScale

	return int(x * hullWidth), int(y * hullHeight)
}

func abs(a int) int {
	if a > 0 {
		return a
	}
	return -a
}

// dumpHullSVG renders the seed cover's trixels to path as an SVG file, using
// the same plate-carree projection the teacher's Voronoi renderer uses.
// Trixels whose vertices wrap around the antimeridian are skipped rather than
// drawn as spurious full-width polygons.
func dumpHullSVG(path string, ids []htm.ID) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	canvas := svg.New(file)
	canvas.Start(hullWidth, hullHeight)
	canvas.Rect(0, 0, hullWidth, hullHeight, "fill:rgb(255,255,255)")

	for _, id := range ids {
		a, b, c := htm.Vertices(id)
		xs := make([]int, 3)
		ys := make([]int, 3)

		x0, _ := pointToScreen(a)
		draw := true
		for i, v := range [3]s2.Point{a, b, c} {
			xs[i], ys[i] = pointToScreen(v)
			if abs(x0-xs[i]) > hullWidth/2 {
				draw = false
				break
			}
		}

		if draw {
			canvas.Polygon(xs, ys, trixelStyle)
		}
	}

	canvas.End()
	return nil
}

package query

import (
	"github.com/gpulens/gpulens/internal/dataset"
)

// Point is one plottable observation. The metadata fields are display-only
// tooltip passengers and play no part in filtering or sorting.
type Point struct {
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	GPU    interface{} `json:"gpu"`
	Batch  interface{} `json:"batch"`
	AttnTP interface{} `json:"attnTP"`
	FfnTP  interface{} `json:"ffnTP"`
	AttnDP interface{} `json:"attnDP"`
	FfnDP  interface{} `json:"ffnDP"`
}

// Project maps rows to points, preserving row order. A row contributes a
// point only when both throughput columns are numeric; everything else is
// dropped silently.
func Project(rows []dataset.Record) []Point {
	points := make([]Point, 0, len(rows))
	for _, row := range rows {
		x, okX := row.Numeric(ColTPSPerUser)
		y, okY := row.Numeric(ColTPSPerGPU)
		if !okX || !okY {
			continue
		}
		points = append(points, Point{
			X:      x,
			Y:      y,
			GPU:    resolveAlias(row, gpuAliases),
			Batch:  resolveAlias(row, batchAliases),
			AttnTP: resolveAlias(row, attnTPAliases),
			FfnTP:  resolveAlias(row, ffnTPAliases),
			AttnDP: resolveAlias(row, attnDPAliases),
			FfnDP:  resolveAlias(row, ffnDPAliases),
		})
	}
	return points
}

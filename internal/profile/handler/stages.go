package handler

import (
	"fmt"

	"github.com/gpulens/gpulens/internal/dataset"
	"github.com/gpulens/gpulens/internal/query"
)

// stageColumns are the eight per-stage latency headers, in rendering order.
// Spellings must match the exported sheets bit-for-bit.
var stageColumns = []string{
	"MLA",
	"Load KV",
	"Dense MLP",
	"Dispatch time",
	"Shared Expert",
	"Routed expert",
	"Combine time",
	"final linear softmax",
}

// StageSeries is one stacked-bar layer: a stage's latency per configuration.
type StageSeries struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// Breakdown is the stacked-bar dataset for the stage-time profile view.
type Breakdown struct {
	Labels []string      `json:"labels"`
	Stages []StageSeries `json:"stages"`
}

// BuildBreakdown maps each row to one bar labeled by its configuration name,
// with one value per stage column. Non-numeric stage cells render as 0.
func BuildBreakdown(rows []dataset.Record) *Breakdown {
	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, configLabel(row))
	}

	stages := make([]StageSeries, 0, len(stageColumns))
	for _, col := range stageColumns {
		values := make([]float64, 0, len(rows))
		for _, row := range rows {
			v, ok := row.Numeric(col)
			if !ok {
				v = 0
			}
			values = append(values, v)
		}
		stages = append(stages, StageSeries{Label: col, Values: values})
	}

	return &Breakdown{Labels: labels, Stages: stages}
}

// configLabel prefers the free-text Config_Name, falling back to the
// parallelism combination.
func configLabel(row dataset.Record) string {
	if name, ok := row.Text(query.ColConfigName); ok && name != "" {
		return name
	}
	pp, _ := row.Text(query.ColPP)
	ep, _ := row.Text(query.ColFfnEP)
	dp, _ := row.Text(query.ColAttnDP)
	tp, _ := row.Text(query.ColAttnTP)
	return fmt.Sprintf("pp%s-ep%s-dp%s-tp%s", pp, ep, dp, tp)
}

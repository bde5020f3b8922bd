package handler

import (
	"testing"

	"github.com/gpulens/gpulens/internal/dataset"
	"github.com/stretchr/testify/assert"
)

func TestBuildBreakdown(t *testing.T) {
	rows := []dataset.Record{
		{
			"Config_Name": "I4096-pp4",
			"MLA":         1.5, "Load KV": 0.5, "Dense MLP": 2.0, "Dispatch time": 0.2,
			"Shared Expert": 0.8, "Routed expert": 3.1, "Combine time": 0.3, "final linear softmax": 0.4,
		},
		{
			"Config_Name": "I4096-pp8",
			"MLA":         1.2, "Routed expert": 2.9,
		},
	}

	breakdown := BuildBreakdown(rows)

	assert.Equal(t, []string{"I4096-pp4", "I4096-pp8"}, breakdown.Labels)
	assert.Len(t, breakdown.Stages, 8)

	assert.Equal(t, "MLA", breakdown.Stages[0].Label)
	assert.Equal(t, []float64{1.5, 1.2}, breakdown.Stages[0].Values)

	// absent stage cells render as zero so the bars stay stackable
	assert.Equal(t, "Load KV", breakdown.Stages[1].Label)
	assert.Equal(t, []float64{0.5, 0}, breakdown.Stages[1].Values)

	assert.Equal(t, "final linear softmax", breakdown.Stages[7].Label)
	assert.Equal(t, []float64{0.4, 0}, breakdown.Stages[7].Values)
}

func TestBuildBreakdownEmptyInput(t *testing.T) {
	breakdown := BuildBreakdown(nil)

	assert.Empty(t, breakdown.Labels)
	assert.Len(t, breakdown.Stages, 8)
	for _, stage := range breakdown.Stages {
		assert.Empty(t, stage.Values)
	}
}

func TestConfigLabel(t *testing.T) {
	named := dataset.Record{"Config_Name": "I4096-pp4-ep8"}
	assert.Equal(t, "I4096-pp4-ep8", configLabel(named))

	unnamed := dataset.Record{"pp": 4.0, "ffn ep": 8.0, "attn dp": 2.0, "attn tp": 1.0}
	assert.Equal(t, "pp4-ep8-dp2-tp1", configLabel(unnamed))
}

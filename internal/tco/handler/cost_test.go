package handler

import (
	"testing"

	"github.com/gpulens/gpulens/internal/dataset"
	"github.com/stretchr/testify/assert"
)

func TestCostPerMillionTokens(t *testing.T) {
	// 100 tok/s -> 10000 s per million tokens -> 2.778 h at $2/h
	cost := CostPerMillionTokens(100, 2)
	assert.NotNil(t, cost)
	assert.InDelta(t, 5.5556, *cost, 1e-4)

	cost = CostPerMillionTokens(1000, 2)
	assert.NotNil(t, cost)
	assert.InDelta(t, 0.5556, *cost, 1e-4)
}

func TestCostPerMillionTokensUndefined(t *testing.T) {
	assert.Nil(t, CostPerMillionTokens(0, 2.5))
	assert.Nil(t, CostPerMillionTokens(-10, 2.5))
}

func TestCostPerMillionTokensMonotonicity(t *testing.T) {
	slow := CostPerMillionTokens(50, 2.5)
	fast := CostPerMillionTokens(200, 2.5)
	assert.Greater(t, *slow, *fast)

	cheap := CostPerMillionTokens(100, 1.0)
	pricey := CostPerMillionTokens(100, 4.0)
	assert.Less(t, *cheap, *pricey)
}

func TestBestConfig(t *testing.T) {
	rows := []dataset.Record{
		{"GPU": "H20", "Config_Name": "I4096-pp4", "TPS per gpu": 100.0, "TPS per user": 25.0, "Batch": 8.0},
		{"GPU": "H20", "Config_Name": "I4096-pp8", "TPS per gpu": 150.0, "TPS per user": 20.0, "Batch": 16.0},
		{"GPU": "H20", "Config_Name": "I8192-pp4", "TPS per gpu": 300.0},
		{"GPU": "H800", "Config_Name": "I4096-pp4", "TPS per gpu": 500.0},
	}

	best := bestConfig(rows, "H20", "I4096")

	// the I8192 and H800 rows are out of scope despite higher throughput
	assert.NotNil(t, best)
	assert.Equal(t, "I4096-pp8", best.ConfigName)
	assert.Equal(t, 150.0, best.TPSPerGPU)
	assert.Equal(t, 16.0, best.Batch)
}

func TestBestConfigEmptyScenarioMatchesAll(t *testing.T) {
	rows := []dataset.Record{
		{"GPU": "H20", "Config_Name": "I4096-pp4", "TPS per gpu": 100.0},
		{"GPU": "H20", "Config_Name": "I8192-pp4", "TPS per gpu": 300.0},
	}

	best := bestConfig(rows, "H20", "")

	assert.NotNil(t, best)
	assert.Equal(t, "I8192-pp4", best.ConfigName)
}

func TestBestConfigNoMatch(t *testing.T) {
	rows := []dataset.Record{
		{"GPU": "H20", "Config_Name": "I4096-pp4", "TPS per gpu": 100.0},
		{"GPU": "H20", "Config_Name": "I4096-pp8"}, // no throughput cell
	}

	assert.Nil(t, bestConfig(rows, "MI300X", ""))
	assert.Nil(t, bestConfig(rows, "H20", "O2048"))
	assert.Nil(t, bestConfig(nil, "H20", ""))
}

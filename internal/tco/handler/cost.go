package handler

import (
	"strings"

	"github.com/gpulens/gpulens/internal/dataset"
	"github.com/gpulens/gpulens/internal/query"
)

const (
	tokensPerUnit  = 1_000_000.0
	secondsPerHour = 3600.0
)

// CostPerMillionTokens converts a sustained throughput and an hourly rental
// rate into the dollar cost of producing one million tokens. Undefined (nil)
// for zero or negative throughput.
func CostPerMillionTokens(tps float64, hourlyPrice float64) *float64 {
	if tps <= 0 {
		return nil
	}
	timeSeconds := tokensPerUnit / tps
	timeHours := timeSeconds / secondsPerHour
	cost := hourlyPrice * timeHours
	return &cost
}

// BestConfig is the winning row of a best-configuration lookup.
type BestConfig struct {
	ConfigName string      `json:"configName"`
	TPSPerGPU  float64     `json:"tpsPerGpu"`
	TPSPerUser interface{} `json:"tpsPerUser"`
	Batch      interface{} `json:"batch"`
	AttnTP     interface{} `json:"attnTP"`
	FfnTP      interface{} `json:"ffnTP"`
	PP         interface{} `json:"pp"`
}

// bestConfig scans rows for the single configuration of one hardware unit
// maximizing per-GPU throughput. scenario is matched as a substring of the
// free-text Config_Name column (sequence-length scenario tagging, e.g.
// "I4096"); an empty scenario matches everything. Returns nil when no row
// qualifies.
func bestConfig(rows []dataset.Record, gpu string, scenario string) *BestConfig {
	var best *BestConfig
	for _, row := range rows {
		hardware, ok := row.Text(query.ColGPU)
		if !ok || hardware != gpu {
			continue
		}
		configName, _ := row.Text(query.ColConfigName)
		if scenario != "" && !strings.Contains(configName, scenario) {
			continue
		}
		tps, ok := row.Numeric(query.ColTPSPerGPU)
		if !ok {
			continue
		}
		if best != nil && tps <= best.TPSPerGPU {
			continue
		}
		best = &BestConfig{
			ConfigName: configName,
			TPSPerGPU:  tps,
			TPSPerUser: row[query.ColTPSPerUser],
			Batch:      row[query.ColBatch],
			AttnTP:     row[query.ColAttnTP],
			FfnTP:      row[query.ColFfnTP],
			PP:         row[query.ColPP],
		}
	}
	return best
}

package handler

import (
	"context"
	"fmt"
	"sync"

	"github.com/gpulens/gpulens/internal/configs"
	"github.com/gpulens/gpulens/internal/dataset"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Estimator computes cost summaries for a hardware unit from its best
// prefill and decode configurations.
type Estimator interface {
	Estimate(ctx context.Context, request *EstimateRequest) (*EstimateResponse, error)
}

type EstimateRequest struct {
	GPU string `json:"gpu"`
	// Scenario is matched as a substring of Config_Name, e.g. "I4096" for a
	// 4K-input sequence scenario. Empty matches all configurations.
	Scenario string `json:"scenario"`
	// HourlyPrice is the $/GPU-hour rental rate; the configured default
	// applies when omitted.
	HourlyPrice float64 `json:"hourlyPrice"`
	// PriceBook names a saved price book to derive the rate from when
	// HourlyPrice is omitted.
	PriceBook string `json:"priceBook"`
}

type EstimateResponse struct {
	BestPrefill *BestConfig `json:"bestPrefill"`
	BestDecode  *BestConfig `json:"bestDecode"`
	// CostPerMillionTokens is derived from the best decode throughput; null
	// when no decode configuration qualifies.
	CostPerMillionTokens *float64 `json:"costPerMillionTokens"`
}

var (
	estimator Estimator
	once      sync.Once
)

type tcoHandler struct {
	store  *dataset.Store
	config configs.Configs
}

// InitEstimator wires the TCO handler to the shared dataset store.
func InitEstimator(config configs.Configs) Estimator {
	if estimator == nil {
		once.Do(func() {
			estimator = &tcoHandler{
				store:  dataset.Instance(),
				config: config,
			}
		})
	}
	return estimator
}

// GetEstimator returns the initialized handler
func GetEstimator() Estimator {
	if estimator == nil {
		log.Fatal().Msg("TCO handler not initialized")
	}
	return estimator
}

func (h *tcoHandler) Estimate(ctx context.Context, request *EstimateRequest) (*EstimateResponse, error) {
	if request.GPU == "" {
		return nil, fmt.Errorf("gpu is required")
	}

	// Prefill and decode sheets are independent; load both concurrently and
	// wait for both before deriving anything.
	var prefillRows, decodeRows []dataset.Record
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		prefillRows, err = h.store.Rows(groupCtx, h.config.PrefillDataset)
		return err
	})
	group.Go(func() error {
		var err error
		decodeRows, err = h.store.Rows(groupCtx, h.config.DecodeDataset)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load datasets: %w", err)
	}

	price := request.HourlyPrice
	if price <= 0 {
		price = h.config.DefaultGpuHourlyPrice
	}

	response := &EstimateResponse{
		BestPrefill: bestConfig(prefillRows, request.GPU, request.Scenario),
		BestDecode:  bestConfig(decodeRows, request.GPU, request.Scenario),
	}
	if response.BestDecode != nil {
		response.CostPerMillionTokens = CostPerMillionTokens(response.BestDecode.TPSPerGPU, price)
	}

	log.Debug().Str("gpu", request.GPU).Str("scenario", request.Scenario).Msg("Computed TCO estimate")
	return response, nil
}

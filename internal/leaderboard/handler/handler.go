package handler

import (
	"context"
	"fmt"
	"sync"

	"github.com/gpulens/gpulens/internal/configs"
	"github.com/gpulens/gpulens/internal/dataset"
	"github.com/rs/zerolog/log"
)

// Ranker computes best-config leaderboards over a benchmark dataset.
type Ranker interface {
	Rank(ctx context.Context, request *RankRequest) (*RankResponse, error)
}

// RankRequest is the explicit option set for one leaderboard computation.
type RankRequest struct {
	// Mode selects the dataset: "prefill" or "decode" (default).
	Mode          string  `json:"mode"`
	Model         string  `json:"model"`
	MinTPSPerUser float64 `json:"minTpsPerUser"`
	// Prices maps vendor bucket -> $/GPU-hour. Empty means raw-throughput
	// scoring unless PriceBook names a saved book.
	Prices map[string]float64 `json:"prices"`
	// PriceBook names a saved price book to use when Prices is empty.
	PriceBook string `json:"priceBook"`
	// DefaultHourly overrides the configured fallback $/GPU-hour rate for
	// hardware without a vendor price. Zero keeps the configured default.
	DefaultHourly float64 `json:"defaultHourly"`
}

type RankResponse struct {
	Entries []Entry `json:"entries"`
	// Stale marks a response computed for a superseded request generation;
	// the caller should discard it.
	Stale bool `json:"stale,omitempty"`
}

var (
	ranker Ranker
	once   sync.Once
)

type rankHandler struct {
	store  *dataset.Store
	config configs.Configs
	gen    dataset.Generation
}

// InitRanker wires the leaderboard handler to the shared dataset store.
func InitRanker(config configs.Configs) Ranker {
	if ranker == nil {
		once.Do(func() {
			ranker = &rankHandler{
				store:  dataset.Instance(),
				config: config,
			}
		})
	}
	return ranker
}

// GetRanker returns the initialized handler
func GetRanker() Ranker {
	if ranker == nil {
		log.Fatal().Msg("Leaderboard handler not initialized")
	}
	return ranker
}

func (h *rankHandler) Rank(ctx context.Context, request *RankRequest) (*RankResponse, error) {
	path, err := h.datasetPath(request.Mode)
	if err != nil {
		return nil, err
	}

	gen := h.gen.Begin()
	rows, err := h.store.Rows(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}
	if !h.gen.Latest(gen) {
		return &RankResponse{Stale: true}, nil
	}

	entries := Rank(rows, rankOptions(request, h.config))
	log.Debug().Int("entries", len(entries)).Str("model", request.Model).Msg("Computed leaderboard")
	return &RankResponse{Entries: entries}, nil
}

func (h *rankHandler) datasetPath(mode string) (string, error) {
	switch mode {
	case "prefill":
		return h.config.PrefillDataset, nil
	case "", "decode":
		return h.config.DecodeDataset, nil
	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
}

func rankOptions(request *RankRequest, config configs.Configs) RankOptions {
	defaultPrice := request.DefaultHourly
	if defaultPrice <= 0 {
		defaultPrice = config.DefaultGpuHourlyPrice
	}
	return RankOptions{
		Model:        request.Model,
		MinSecondary: request.MinTPSPerUser,
		Prices:       priceBook(request.Prices),
		DefaultPrice: defaultPrice,
	}
}

func priceBook(prices map[string]float64) PriceBook {
	if len(prices) == 0 {
		return nil
	}
	book := make(PriceBook, len(prices))
	for vendor, price := range prices {
		book[Vendor(vendor)] = price
	}
	return book
}

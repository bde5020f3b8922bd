package handler

import (
	"context"
	"fmt"
	"sync"

	"github.com/gpulens/gpulens/internal/configs"
	"github.com/gpulens/gpulens/internal/dataset"
	"github.com/gpulens/gpulens/internal/query"
	"github.com/rs/zerolog/log"
)

// SeriesBuilder turns a constraint set into chart-ready series.
type SeriesBuilder interface {
	BuildSeries(ctx context.Context, request *SeriesRequest) (*SeriesResponse, error)
}

// SeriesRequest carries everything one chart recomputation needs; nothing is
// read from ambient state.
type SeriesRequest struct {
	// Mode selects the dataset: "prefill" (default) or "decode".
	Mode string `json:"mode"`
	// Filters maps sheet headers to accepted values; empty values pass all.
	Filters query.Constraints `json:"filters"`
	// CategoryColumn splits points into one colored series per value. Empty
	// selects the combined single-series view sorted by x.
	CategoryColumn string `json:"categoryColumn"`
}

type SeriesResponse struct {
	Series []query.Series `json:"series"`
	// Stale marks a response computed for a superseded request generation
	Stale bool `json:"stale,omitempty"`
}

var (
	builder SeriesBuilder
	once    sync.Once
)

type seriesHandler struct {
	store  *dataset.Store
	config configs.Configs
	gen    dataset.Generation
}

// InitSeriesBuilder wires the charts handler to the shared dataset store.
func InitSeriesBuilder(config configs.Configs) SeriesBuilder {
	if builder == nil {
		once.Do(func() {
			builder = &seriesHandler{
				store:  dataset.Instance(),
				config: config,
			}
		})
	}
	return builder
}

// GetSeriesBuilder returns the initialized handler
func GetSeriesBuilder() SeriesBuilder {
	if builder == nil {
		log.Fatal().Msg("Charts handler not initialized")
	}
	return builder
}

func (h *seriesHandler) BuildSeries(ctx context.Context, request *SeriesRequest) (*SeriesResponse, error) {
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
		return &SeriesResponse{Stale: true}, nil
	}

	var series []query.Series
	if request.CategoryColumn == "" {
		combined := query.BuildCombinedSeries(rows, request.Filters, "all")
		if len(combined.Points) > 0 {
			series = append(series, combined)
		}
	} else {
		series = query.BuildSeries(rows, request.Filters, request.CategoryColumn)
	}

	log.Debug().Int("series", len(series)).Str("category", request.CategoryColumn).Msg("Built chart series")
	return &SeriesResponse{Series: series}, nil
}

func (h *seriesHandler) datasetPath(mode string) (string, error) {
	switch mode {
	case "", "prefill":
		return h.config.PrefillDataset, nil
	case "decode":
		return h.config.DecodeDataset, nil
	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
}

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

// Profiler builds stage-time breakdowns for the profile view.
type Profiler interface {
	Stages(ctx context.Context, request *StagesRequest) (*StagesResponse, error)
}

type StagesRequest struct {
	// Mode selects the dataset: "prefill" or "decode".
	Mode   string `json:"mode"`
	Model  string `json:"model"`
	GPU    string `json:"gpu"`
	GPUNum string `json:"gpuNum"`
}

type StagesResponse struct {
	Breakdown *Breakdown `json:"breakdown"`
	// Empty flags the valid no-data state so the caller can message the user
	Empty bool `json:"empty,omitempty"`
}

var (
	profiler Profiler
	once     sync.Once
)

type profileHandler struct {
	store  *dataset.Store
	config configs.Configs
}

// InitProfiler wires the profile handler to the shared dataset store.
func InitProfiler(config configs.Configs) Profiler {
	if profiler == nil {
		once.Do(func() {
			profiler = &profileHandler{
				store:  dataset.Instance(),
				config: config,
			}
		})
	}
	return profiler
}

// GetProfiler returns the initialized handler
func GetProfiler() Profiler {
	if profiler == nil {
		log.Fatal().Msg("Profile handler not initialized")
	}
	return profiler
}

func (h *profileHandler) Stages(ctx context.Context, request *StagesRequest) (*StagesResponse, error) {
	path, err := h.datasetPath(request.Mode)
	if err != nil {
		return nil, err
	}
	rows, err := h.store.Rows(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}

	filtered := query.Filter(rows, query.Constraints{
		query.ColModel:  request.Model,
		query.ColGPU:    request.GPU,
		query.ColGPUNum: request.GPUNum,
	})
	if len(filtered) == 0 {
		return &StagesResponse{Empty: true}, nil
	}

	return &StagesResponse{Breakdown: BuildBreakdown(filtered)}, nil
}

func (h *profileHandler) datasetPath(mode string) (string, error) {
	switch mode {
	case "prefill":
		return h.config.PrefillDataset, nil
	case "decode":
		return h.config.DecodeDataset, nil
	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
}

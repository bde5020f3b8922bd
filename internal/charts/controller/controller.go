package controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gpulens/gpulens/internal/charts/handler"
	"github.com/rs/zerolog/log"
)

type Charts interface {
	Series(ctx *gin.Context)
}

var (
	charts Charts
	once   sync.Once
)

type ChartsController struct {
	builder handler.SeriesBuilder
}

func NewController() Charts {
	if charts == nil {
		once.Do(func() {
			charts = &ChartsController{
				builder: handler.GetSeriesBuilder(),
			}
		})
	}
	return charts
}

func (c *ChartsController) Series(ctx *gin.Context) {
	var request handler.SeriesRequest
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := c.builder.BuildSeries(ctx.Request.Context(), &request)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build chart series")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if response.Stale {
		ctx.JSON(http.StatusConflict, gin.H{"error": "superseded by a newer request"})
		return
	}

	// An empty series list is a valid "no data" state, not an error
	ctx.JSON(http.StatusOK, response)
}

package controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	leaderboardhandler "github.com/gpulens/gpulens/internal/leaderboard/handler"
	pricebookhandler "github.com/gpulens/gpulens/internal/pricebook/handler"
	"github.com/gpulens/gpulens/internal/tco/handler"
	"github.com/rs/zerolog/log"
)

type TCO interface {
	Estimate(ctx *gin.Context)
}

var (
	tco  TCO
	once sync.Once
)

type TCOController struct {
	estimator handler.Estimator
}

func NewController() TCO {
	if tco == nil {
		once.Do(func() {
			tco = &TCOController{
				estimator: handler.GetEstimator(),
			}
		})
	}
	return tco
}

func (c *TCOController) Estimate(ctx *gin.Context) {
	var request handler.EstimateRequest
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.GPU == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "gpu is required"})
		return
	}

	if request.PriceBook != "" && request.HourlyPrice <= 0 {
		manager := pricebookhandler.GetManager()
		if manager == nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "price book persistence is not configured"})
			return
		}
		rates, bookDefault, err := manager.Rates(request.PriceBook)
		if err != nil {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "price book not found"})
			return
		}
		book := make(leaderboardhandler.PriceBook, len(rates))
		for vendor, rate := range rates {
			book[leaderboardhandler.Vendor(vendor)] = rate
		}
		// Unlisted hardware takes the book's own fallback rate; a zero
		// result falls through to the configured default
		request.HourlyPrice = book.HourlyPrice(request.GPU, bookDefault)
	}

	response, err := c.estimator.Estimate(ctx.Request.Context(), &request)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute TCO estimate")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

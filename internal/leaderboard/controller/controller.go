package controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gpulens/gpulens/internal/configs"
	"github.com/gpulens/gpulens/internal/leaderboard/handler"
	pricebookhandler "github.com/gpulens/gpulens/internal/pricebook/handler"
	"github.com/rs/zerolog/log"
)

type Leaderboard interface {
	Rank(ctx *gin.Context)
}

var (
	leaderboard Leaderboard
	once        sync.Once
)

type LeaderboardController struct {
	ranker handler.Ranker
	topN   int
}

func NewController(config configs.Configs) Leaderboard {
	if leaderboard == nil {
		once.Do(func() {
			leaderboard = &LeaderboardController{
				ranker: handler.GetRanker(),
				topN:   config.LeaderboardTopN,
			}
		})
	}
	return leaderboard
}

func (c *LeaderboardController) Rank(ctx *gin.Context) {
	var request handler.RankRequest
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.PriceBook != "" && len(request.Prices) == 0 {
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
		request.Prices = rates
		if request.DefaultHourly <= 0 {
			request.DefaultHourly = bookDefault
		}
	}

	response, err := c.ranker.Rank(ctx.Request.Context(), &request)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute leaderboard")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if response.Stale {
		ctx.JSON(http.StatusConflict, gin.H{"error": "superseded by a newer request"})
		return
	}

	// Truncation is display-only; the full list is always computed
	if len(response.Entries) > c.topN {
		response.Entries = response.Entries[:c.topN]
	}
	ctx.JSON(http.StatusOK, response)
}

package router

import (
	"sync"

	"github.com/gpulens/gpulens/internal/configs"
	"github.com/gpulens/gpulens/internal/leaderboard/controller"
	"github.com/gpulens/gpulens/internal/leaderboard/handler"
	"github.com/gpulens/gpulens/pkg/httpframework"
)

var (
	initLeaderboardRouterOnce sync.Once
)

// Init expects http framework to be initialized before calling this function
func Init(config configs.Configs) {
	initLeaderboardRouterOnce.Do(func() {
		handler.InitRanker(config)
		leaderboardAPI := httpframework.Instance().Group("/api/v1/gpulens/leaderboard")
		{
			leaderboardAPI.POST("/rank", controller.NewController(config).Rank)
		}
	})
}

package router

import (
	"sync"

	"github.com/gpulens/gpulens/internal/configs"
	"github.com/gpulens/gpulens/internal/tco/controller"
	"github.com/gpulens/gpulens/internal/tco/handler"
	"github.com/gpulens/gpulens/pkg/httpframework"
)

var (
	initTCORouterOnce sync.Once
)

// Init expects http framework to be initialized before calling this function
func Init(config configs.Configs) {
	initTCORouterOnce.Do(func() {
		handler.InitEstimator(config)
		tcoAPI := httpframework.Instance().Group("/api/v1/gpulens/tco")
		{
			tcoAPI.POST("/estimate", controller.NewController().Estimate)
		}
	})
}

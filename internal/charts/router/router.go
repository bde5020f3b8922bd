package router

import (
	"sync"

	"github.com/gpulens/gpulens/internal/charts/controller"
	"github.com/gpulens/gpulens/internal/charts/handler"
	"github.com/gpulens/gpulens/internal/configs"
	"github.com/gpulens/gpulens/pkg/httpframework"
)

var (
	initChartsRouterOnce sync.Once
)

// Init expects http framework to be initialized before calling this function
func Init(config configs.Configs) {
	initChartsRouterOnce.Do(func() {
		handler.InitSeriesBuilder(config)
		chartsAPI := httpframework.Instance().Group("/api/v1/gpulens/charts")
		{
			chartsAPI.POST("/series", controller.NewController().Series)
		}
	})
}

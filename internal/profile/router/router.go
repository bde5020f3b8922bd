package router

import (
	"sync"

	"github.com/gpulens/gpulens/internal/configs"
	"github.com/gpulens/gpulens/internal/profile/controller"
	"github.com/gpulens/gpulens/internal/profile/handler"
	"github.com/gpulens/gpulens/pkg/httpframework"
)

var (
	initProfileRouterOnce sync.Once
)

// Init expects http framework to be initialized before calling this function
func Init(config configs.Configs) {
	initProfileRouterOnce.Do(func() {
		handler.InitProfiler(config)
		profileAPI := httpframework.Instance().Group("/api/v1/gpulens/profile")
		{
			profileAPI.POST("/stages", controller.NewController().Stages)
		}
	})
}

package router

import (
	"sync"

	authmiddleware "github.com/gpulens/gpulens/internal/auth/middleware"
	"github.com/gpulens/gpulens/internal/pricebook/controller"
	"github.com/gpulens/gpulens/internal/pricebook/handler"
	"github.com/gpulens/gpulens/pkg/httpframework"
)

var (
	initPriceBookRouterOnce sync.Once
)

// Init expects http framework and SQL connectors to be initialized before
// calling this function
func Init() {
	initPriceBookRouterOnce.Do(func() {
		handler.InitManager()
		priceBookAPI := httpframework.Instance().Group("/api/v1/gpulens/pricebooks")
		{
			priceBookAPI.GET("", controller.NewController().List)
			priceBookAPI.GET("/:name", controller.NewController().Get)
			// Mutations require a logged-in dashboard user
			priceBookAPI.POST("", authmiddleware.RequireAuth(), controller.NewController().Save)
			priceBookAPI.DELETE("/:name", authmiddleware.RequireAuth(), controller.NewController().Delete)
		}
	})
}

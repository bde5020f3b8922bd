package router

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gpulens/gpulens/internal/auth/controller"
	"github.com/gpulens/gpulens/internal/auth/middleware"
	"github.com/gpulens/gpulens/pkg/httpframework"
)

var (
	initAuthRouterOnce sync.Once
)

// Init expects http framework to be initialized before calling this function
func Init() {
	initAuthRouterOnce.Do(func() {
		api := httpframework.Instance().Group("/")
		{
			api.POST("/register", controller.NewController().Register)
			api.POST("/login", controller.NewController().Login)
			api.GET("/users", middleware.RequireAuth(), controller.NewController().GetAllUsers)
			api.PUT("/update-user", middleware.RequireAuth(), controller.NewController().UpdateUserAccessAndRole)
			api.GET("/health", Health)
		}
	})
}

func Health(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Application is up!!!"})
}

package main

import (
	"strconv"

	"github.com/gin-contrib/cors"

	"github.com/gpulens/gpulens/internal/configs"

	authhandler "github.com/gpulens/gpulens/internal/auth/handler"
	authRouter "github.com/gpulens/gpulens/internal/auth/router"
	chartsRouter "github.com/gpulens/gpulens/internal/charts/router"
	"github.com/gpulens/gpulens/internal/dataset"
	leaderboardRouter "github.com/gpulens/gpulens/internal/leaderboard/router"
	pricebookRouter "github.com/gpulens/gpulens/internal/pricebook/router"
	profileRouter "github.com/gpulens/gpulens/internal/profile/router"
	tcoRouter "github.com/gpulens/gpulens/internal/tco/router"

	"github.com/gpulens/gpulens/pkg/httpframework"
	"github.com/gpulens/gpulens/pkg/infra"
	"github.com/gpulens/gpulens/pkg/logger"
	"github.com/gpulens/gpulens/pkg/metric"
	"github.com/rs/zerolog/log"
)

type AppConfig struct {
	Configs configs.Configs
}

func (cfg *AppConfig) GetStaticConfig() interface{} {
	return &cfg.Configs
}

var (
	appConfig AppConfig
)

func main() {
	configs.InitConfig(&appConfig)

	// Initialize logger first (needed for logging)
	logger.Init(appConfig.Configs)

	metric.Init(appConfig.Configs)

	// Benchmark dataset store backs every read path
	dataset.Init(appConfig.Configs)

	// MySQL is optional; without it the dashboard runs read-only
	// (no saved price books, no accounts)
	if appConfig.Configs.MysqlEnabled {
		infra.InitDBConnectors()
		authhandler.InitAuthenticator(appConfig.Configs)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	httpframework.Init(cors.New(corsConfig))

	authRouter.Init()
	chartsRouter.Init(appConfig.Configs)
	leaderboardRouter.Init(appConfig.Configs)
	tcoRouter.Init(appConfig.Configs)
	profileRouter.Init(appConfig.Configs)
	// Pricebook routes are always registered; without MySQL they answer 503
	pricebookRouter.Init()

	// Use default port if not set (for local testing)
	port := appConfig.Configs.AppPort
	if port == 0 {
		port = 8082
		log.Warn().Int("port", port).Msg("App port not set, defaulting to 8082")
	}
	httpframework.Instance().Run(":" + strconv.Itoa(port))
}

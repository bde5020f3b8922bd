package controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gpulens/gpulens/internal/profile/handler"
	"github.com/rs/zerolog/log"
)

type Profile interface {
	Stages(ctx *gin.Context)
}

var (
	profile Profile
	once    sync.Once
)

type ProfileController struct {
	profiler handler.Profiler
}

func NewController() Profile {
	if profile == nil {
		once.Do(func() {
			profile = &ProfileController{
				profiler: handler.GetProfiler(),
			}
		})
	}
	return profile
}

func (c *ProfileController) Stages(ctx *gin.Context) {
	var request handler.StagesRequest
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := c.profiler.Stages(ctx.Request.Context(), &request)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build stage breakdown")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

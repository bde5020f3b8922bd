package controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gpulens/gpulens/internal/auth/handler"
	"github.com/gpulens/gpulens/internal/auth/middleware"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	GetAllUsers(ctx *gin.Context)
	UpdateUserAccessAndRole(ctx *gin.Context)
}

var (
	auth Auth
	once sync.Once
)

type AuthController struct{}

func NewController() Auth {
	if auth == nil {
		once.Do(func() {
			auth = &AuthController{}
		})
	}
	return auth
}

func (a *AuthController) Register(ctx *gin.Context) {
	authenticator := handler.GetAuthenticator()
	if authenticator == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "auth is not configured"})
		return
	}
	var request handler.User
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := authenticator.Register(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "User Registered Successfully"})
}

func (a *AuthController) Login(ctx *gin.Context) {
	authenticator := handler.GetAuthenticator()
	if authenticator == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "auth is not configured"})
		return
	}
	var request handler.Login
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := authenticator.Login(&request)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, token)
}

func (a *AuthController) GetAllUsers(ctx *gin.Context) {
	authenticator := handler.GetAuthenticator()
	if authenticator == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "auth is not configured"})
		return
	}
	users, err := authenticator.Users()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, users)
}

func (a *AuthController) UpdateUserAccessAndRole(ctx *gin.Context) {
	authenticator := handler.GetAuthenticator()
	if authenticator == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "auth is not configured"})
		return
	}
	if ctx.GetString(middleware.ContextRole) != "admin" {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return
	}
	var request handler.UpdateUserAccess
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := authenticator.UpdateUserAccessAndRole(request.Email, request.IsActive, request.Role); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "User info updated successfully"})
}

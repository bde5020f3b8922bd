package controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	authmiddleware "github.com/gpulens/gpulens/internal/auth/middleware"
	"github.com/gpulens/gpulens/internal/pricebook/handler"
	"github.com/rs/zerolog/log"
)

type PriceBooks interface {
	List(ctx *gin.Context)
	Get(ctx *gin.Context)
	Save(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

var (
	priceBooks PriceBooks
	once       sync.Once
)

type PriceBookController struct{}

func NewController() PriceBooks {
	if priceBooks == nil {
		once.Do(func() {
			priceBooks = &PriceBookController{}
		})
	}
	return priceBooks
}

func manager(ctx *gin.Context) handler.Manager {
	m := handler.GetManager()
	if m == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "price book persistence is not configured"})
	}
	return m
}

func (c *PriceBookController) List(ctx *gin.Context) {
	m := manager(ctx)
	if m == nil {
		return
	}
	books, err := m.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list price books")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, books)
}

func (c *PriceBookController) Get(ctx *gin.Context) {
	m := manager(ctx)
	if m == nil {
		return
	}
	name := ctx.Param("name")
	book, err := m.Get(name)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "price book not found"})
		return
	}
	ctx.JSON(http.StatusOK, book)
}

func (c *PriceBookController) Save(ctx *gin.Context) {
	m := manager(ctx)
	if m == nil {
		return
	}
	var request handler.Book
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createdBy := ctx.GetString(authmiddleware.ContextEmail)
	if err := m.Save(&request, createdBy); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Price book saved successfully"})
}

func (c *PriceBookController) Delete(ctx *gin.Context) {
	m := manager(ctx)
	if m == nil {
		return
	}
	name := ctx.Param("name")
	if err := m.Delete(name); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Price book deleted successfully"})
}

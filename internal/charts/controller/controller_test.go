package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gpulens/gpulens/internal/charts/handler"
	"github.com/gpulens/gpulens/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSeriesBuilder is a mock for handler.SeriesBuilder
type MockSeriesBuilder struct {
	mock.Mock
}

func (m *MockSeriesBuilder) BuildSeries(ctx context.Context, request *handler.SeriesRequest) (*handler.SeriesResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*handler.SeriesResponse), args.Error(1)
}

func setupTestRouter(controller Charts) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/gpulens/charts/series", controller.Series)
	return router
}

func postSeries(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/gpulens/charts/series", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChartsController_Series(t *testing.T) {
	series := []query.Series{
		{Label: "Batch=4", Points: []query.Point{{X: 10, Y: 50}}},
	}

	mockBuilder := new(MockSeriesBuilder)
	mockBuilder.On("BuildSeries", mock.Anything, mock.AnythingOfType("*handler.SeriesRequest")).
		Return(&handler.SeriesResponse{Series: series}, nil)

	controller := &ChartsController{builder: mockBuilder}
	router := setupTestRouter(controller)

	w := postSeries(router, `{"mode":"decode","filters":{"GPU":"H20"},"categoryColumn":"Batch"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var response handler.SeriesResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Series, 1)
	assert.Equal(t, "Batch=4", response.Series[0].Label)
	mockBuilder.AssertExpectations(t)
}

func TestChartsController_SeriesEmptyIsOK(t *testing.T) {
	mockBuilder := new(MockSeriesBuilder)
	mockBuilder.On("BuildSeries", mock.Anything, mock.Anything).
		Return(&handler.SeriesResponse{}, nil)

	controller := &ChartsController{builder: mockBuilder}
	router := setupTestRouter(controller)

	w := postSeries(router, `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChartsController_SeriesStale(t *testing.T) {
	mockBuilder := new(MockSeriesBuilder)
	mockBuilder.On("BuildSeries", mock.Anything, mock.Anything).
		Return(&handler.SeriesResponse{Stale: true}, nil)

	controller := &ChartsController{builder: mockBuilder}
	router := setupTestRouter(controller)

	w := postSeries(router, `{}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestChartsController_SeriesHandlerError(t *testing.T) {
	mockBuilder := new(MockSeriesBuilder)
	mockBuilder.On("BuildSeries", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	controller := &ChartsController{builder: mockBuilder}
	router := setupTestRouter(controller)

	w := postSeries(router, `{"mode":"warmup"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestChartsController_SeriesBadRequest(t *testing.T) {
	controller := &ChartsController{builder: new(MockSeriesBuilder)}
	router := setupTestRouter(controller)

	w := postSeries(router, `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

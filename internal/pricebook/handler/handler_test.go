package handler

import (
	"testing"

	"github.com/gpulens/gpulens/internal/repositories/sql/pricebook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock for pricebook.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll() ([]pricebook.PriceBook, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricebook.PriceBook), args.Error(1)
}

func (m *MockRepository) GetByName(name string) (*pricebook.PriceBook, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricebook.PriceBook), args.Error(1)
}

func (m *MockRepository) Create(book *pricebook.PriceBook) (uint, error) {
	args := m.Called(book)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockRepository) Update(book *pricebook.PriceBook) error {
	args := m.Called(book)
	return args.Error(0)
}

func (m *MockRepository) Delete(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func TestRates(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByName", "cloud-list").Return(&pricebook.PriceBook{
		Name:          "cloud-list",
		NvidiaHourly:  3.0,
		HuaweiHourly:  2.0,
		AmdHourly:     1.5,
		DefaultHourly: 2.1,
	}, nil)

	h := &bookHandler{books: repo}
	rates, fallback, err := h.Rates("cloud-list")

	assert.NoError(t, err)
	assert.Equal(t, map[string]float64{"nvidia": 3.0, "huawei": 2.0, "amd": 1.5}, rates)
	// the book's own fallback rate travels with its vendor rates
	assert.Equal(t, 2.1, fallback)
	repo.AssertExpectations(t)
}

func TestRatesUnknownBook(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByName", "missing").Return(nil, assert.AnError)

	h := &bookHandler{books: repo}
	rates, fallback, err := h.Rates("missing")

	assert.Error(t, err)
	assert.Nil(t, rates)
	assert.Zero(t, fallback)
}

func TestSaveRequiresName(t *testing.T) {
	h := &bookHandler{books: new(MockRepository)}
	assert.Error(t, h.Save(&Book{}, "dev@example.com"))
}

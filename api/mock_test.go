package api

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/Domenick1991/routeplanner/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockSearchUseCase is a mock implementation of search.SearchUseCase
type MockSearchUseCase struct {
	mock.Mock
}

func (m *MockSearchUseCase) Airports(ctx context.Context) []domain.Airport {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport)
}

func (m *MockSearchUseCase) DirectFlights(ctx context.Context, from, to string) ([]domain.Flight, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockSearchUseCase) MultiCity(ctx context.Context, from string, destinations []string, criterion domain.Criterion) (*domain.MultiCityResult, error) {
	args := m.Called(ctx, from, destinations, criterion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MultiCityResult), args.Error(1)
}

func (m *MockSearchUseCase) Cheapest(ctx context.Context, from string) (*domain.CheapestResult, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheapestResult), args.Error(1)
}

func newTestContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Domenick1991/routeplanner/internal/domain"
	"github.com/Domenick1991/routeplanner/internal/engine"
	"github.com/Domenick1991/routeplanner/internal/graph"
	"github.com/Domenick1991/routeplanner/internal/service/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	jfk = domain.Airport{Code: "JFK", City: "New York", Country: "USA"}
	ord = domain.Airport{Code: "ORD", City: "Chicago", Country: "USA"}
	lax = domain.Airport{Code: "LAX", City: "Los Angeles", Country: "USA"}
)

func sampleResult() *domain.MultiCityResult {
	return &domain.MultiCityResult{
		From:      "JFK",
		Criterion: domain.CriterionPrice,
		Routes: []domain.Route{{
			Airports:    []string{"JFK", "ORD", "LAX"},
			TotalMetric: 240,
			Criterion:   domain.CriterionPrice,
			Legs: []domain.Leg{
				{From: jfk, To: ord, BestIndex: 0, Flights: []domain.Flight{
					{FlightNumber: "UA150", Price: 150, DepartureTime: domain.NewTimeOfDay(7, 0, 0), ArrivalTime: domain.NewTimeOfDay(9, 30, 0), DurationMinutes: 150},
				}},
				{From: ord, To: lax, BestIndex: 1, Flights: []domain.Flight{
					{FlightNumber: "AA300", Price: 120, DurationMinutes: 250},
					{FlightNumber: "UA900", Price: 90, DurationMinutes: 260},
				}},
			},
		}},
	}
}

func TestFlightHandler_multiCity(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)
	c, w := newTestContext("/api/flights/multicity?from=jfk&destinations=LAX,ORD")

	mockService.On("MultiCity", c.Request.Context(), "jfk", []string{"LAX", "ORD"}, domain.CriterionPrice).Return(sampleResult(), nil)

	handler.multiCity(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body multiCityView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "JFK", body.From)
	assert.Equal(t, "price", body.OptimizeBy)
	require.Len(t, body.Routes, 1)
	route := body.Routes[0]
	assert.Equal(t, []string{"JFK", "ORD", "LAX"}, route.Airports)
	assert.Equal(t, int64(240), route.TotalMetric)
	require.Len(t, route.Legs, 2)
	assert.Equal(t, "Chicago", route.Legs[0].ToCity)
	assert.Equal(t, 1, route.Legs[1].BestFlightIndex)
	assert.False(t, route.Legs[1].Flights[0].Best)
	assert.True(t, route.Legs[1].Flights[1].Best)
	assert.Equal(t, int64(240), route.CheapestTotalPrice)
	assert.False(t, route.Legs[1].Flights[0].Cheapest)
	assert.True(t, route.Legs[1].Flights[1].Cheapest)
	assert.Contains(t, w.Body.String(), `"cheapestTotalPrice":240`)
	assert.Contains(t, w.Body.String(), `"cheapest":true`)

	assert.Contains(t, w.Body.String(), `"departureTime":"07:00:00"`)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_multiCity_RepeatedDestinations(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)
	c, w := newTestContext("/api/flights/multicity?from=JFK&destinations=LAX&destinations=ORD,&optimizeBy=Duration")

	empty := &domain.MultiCityResult{From: "JFK", Criterion: domain.CriterionDuration, Routes: []domain.Route{}}
	mockService.On("MultiCity", c.Request.Context(), "JFK", []string{"LAX", "ORD", ""}, domain.CriterionDuration).Return(empty, nil)

	handler.multiCity(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"from":"JFK","optimizeBy":"duration","routes":[]}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestFlightHandler_multiCity_InvalidCriterion(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)
	c, w := newTestContext("/api/flights/multicity?from=JFK&destinations=LAX&optimizeBy=comfort")

	handler.multiCity(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "MultiCity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightHandler_multiCity_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{engine.ErrNoDestinations, http.StatusBadRequest},
		{engine.ErrTooManyDestinations, http.StatusBadRequest},
		{engine.ErrDuplicateDestination, http.StatusBadRequest},
		{fmt.Errorf("%w: XXX", graph.ErrUnknownAirport), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			mockService := &MockSearchUseCase{}
			handler := NewFlightHandler(mockService)
			c, w := newTestContext("/api/flights/multicity?from=JFK&destinations=XXX")

			mockService.On("MultiCity", c.Request.Context(), "JFK", []string{"XXX"}, domain.CriterionPrice).Return(nil, tt.err)

			handler.multiCity(c)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.err.Error()), w.Body.String())
		})
	}
}

func TestFlightHandler_search(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)
	c, w := newTestContext("/api/flights/search?from=jfk&to=lax")

	flights := []domain.Flight{{FlightNumber: "AA100", Origin: "JFK", Destination: "LAX", Price: 200, DurationMinutes: 330}}
	mockService.On("DirectFlights", c.Request.Context(), "JFK", "LAX").Return(flights, nil)

	handler.search(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body directFlightsView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "JFK", body.From)
	assert.Equal(t, "LAX", body.To)
	assert.Equal(t, flights, body.Flights)
	assert.Empty(t, body.Message)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_search_NoFlights(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)
	c, w := newTestContext("/api/flights/search?from=LAX&to=JFK")

	mockService.On("DirectFlights", c.Request.Context(), "LAX", "JFK").Return(nil, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"from":"LAX","to":"JFK","flights":[],"message":"No direct flights found"}`, w.Body.String())
}

func TestFlightHandler_search_MissingDestination(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)
	c, w := newTestContext("/api/flights/search?from=LAX")

	mockService.On("DirectFlights", c.Request.Context(), "LAX", "").Return(nil, search.ErrMissingDestination)

	handler.search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlightHandler_multiCity_CheapestTotalPriceUnderDuration(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)
	c, w := newTestContext("/api/flights/multicity?from=JFK&destinations=LAX&optimizeBy=duration")

	result := &domain.MultiCityResult{From: "JFK", Criterion: domain.CriterionDuration, Routes: []domain.Route{{
		Airports:    []string{"JFK", "LAX"},
		TotalMetric: 330,
		Criterion:   domain.CriterionDuration,
		Legs: []domain.Leg{{From: jfk, To: lax, BestIndex: 0, Flights: []domain.Flight{
			{FlightNumber: "AA100", Price: 200, DurationMinutes: 330},
			{FlightNumber: "AA101", Price: 180, DurationMinutes: 345},
		}}},
	}}}
	mockService.On("MultiCity", c.Request.Context(), "JFK", []string{"LAX"}, domain.CriterionDuration).Return(result, nil)

	handler.multiCity(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body multiCityView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Routes, 1)
	assert.Equal(t, int64(330), body.Routes[0].TotalMetric)
	assert.Equal(t, int64(200), body.Routes[0].CheapestTotalPrice)
	assert.True(t, body.Routes[0].Legs[0].Flights[0].Cheapest)
}

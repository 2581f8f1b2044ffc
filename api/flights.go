package api

import (
	"net/http"
	"strings"

	"github.com/Domenick1991/routeplanner/internal/domain"
	"github.com/Domenick1991/routeplanner/internal/service/search"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service search.SearchUseCase
}

func NewFlightHandler(service search.SearchUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/multicity", h.multiCity)
	router.GET("/search", h.search)
}

func (h *FlightHandler) multiCity(c *gin.Context) {
	criterion, err := domain.ParseCriterion(c.Query("optimizeBy"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.MultiCity(c.Request.Context(), c.Query("from"), destinationsParam(c), criterion)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMultiCityView(result))
}

func (h *FlightHandler) search(c *gin.Context) {
	from := strings.ToUpper(strings.TrimSpace(c.Query("from")))
	to := strings.ToUpper(strings.TrimSpace(c.Query("to")))

	flights, err := h.service.DirectFlights(c.Request.Context(), from, to)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := directFlightsView{From: from, To: to, Flights: flights}
	if resp.Flights == nil {
		resp.Flights = []domain.Flight{}
	}
	if len(flights) == 0 {
		resp.Message = "No direct flights found"
	}
	c.JSON(http.StatusOK, resp)
}

// destinationsParam accepts both destinations=A,B and repeated destinations=A&destinations=B.
func destinationsParam(c *gin.Context) []string {
	var out []string
	for _, v := range c.QueryArray("destinations") {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}

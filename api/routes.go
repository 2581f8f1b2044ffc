package api

import (
	"net/http"

	"github.com/Domenick1991/routeplanner/internal/service/search"
	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	service search.SearchUseCase
}

func NewRouteHandler(service search.SearchUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup) {
	router.GET("/cheapest", h.cheapest)
}

func (h *RouteHandler) cheapest(c *gin.Context) {
	result, err := h.service.Cheapest(c.Request.Context(), c.Query("from"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

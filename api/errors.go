package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/Domenick1991/routeplanner/internal/engine"
	"github.com/Domenick1991/routeplanner/internal/graph"
	"github.com/Domenick1991/routeplanner/internal/service/search"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case engine.IsValidation(err), errors.Is(err, search.ErrMissingDestination):
		return http.StatusBadRequest
	case errors.Is(err, graph.ErrUnknownAirport):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wren/database"
	"wren/graph"
	"wren/models"
)

// Shared collaborators for all handler files, installed from main.
var (
	engine *graph.Engine
	log    *zap.SugaredLogger = zap.NewNop().Sugar()
)

// SetEngine installs the social graph engine and logger the handlers use.
func SetEngine(e *graph.Engine, logger *zap.Logger) {
	engine = e
	log = logger.Sugar()
}

// respondError maps engine errors to an HTTP status and a {message} body.
// Raw store errors never reach the client.
func respondError(c *gin.Context, err error) {
	var validation *models.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"message": validation.Error()})
	case errors.Is(err, graph.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"message": "You cannot follow yourself."})
	case errors.Is(err, graph.ErrAlreadyRegistered):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username or email already registered."})
	case errors.Is(err, graph.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found."})
	case errors.Is(err, database.ErrUnavailable):
		log.Errorw("store unavailable", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong."})
	default:
		log.Errorw("unexpected error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong."})
	}
}

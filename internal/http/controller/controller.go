package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog/internal/catalog"
	"github.com/iyhunko/product-catalog/internal/config"
)

// Controller handles general HTTP requests.
type Controller struct {
	store  *catalog.Store
	config *config.Config
}

// New creates a new Controller with the given configuration and store.
func New(config *config.Config, store *catalog.Store) *Controller {
	return &Controller{
		config: config,
		store:  store,
	}
}

// Ping handles the HTTP GET request for health check endpoint.
func (con *Controller) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "pong",
		"products": con.store.Len(),
		"debug":    con.config.DebugMode,
	})
}

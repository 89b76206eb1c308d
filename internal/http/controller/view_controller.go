package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog/internal/catalog"
)

// ViewController handles the search and sort filters of the product list.
type ViewController struct {
	view *catalog.SearchView
}

// NewViewController creates a new ViewController.
func NewViewController(view *catalog.SearchView) *ViewController {
	return &ViewController{view: view}
}

// SearchRequest represents the body of a search term update.
type SearchRequest struct {
	Term string `json:"term"`
}

// SortRequest represents the body of a sort mode update.
type SortRequest struct {
	Mode string `json:"mode"`
}

// ViewResponse represents the current view filters.
type ViewResponse struct {
	SearchTerm          string `json:"search_term"`
	DebouncedSearchTerm string `json:"debounced_search_term"`
	SortMode            string `json:"sort_mode"`
}

// GetView handles the HTTP GET request for the view filters.
func (vc *ViewController) GetView(c *gin.Context) {
	vc.render(c)
}

// SetSearchTerm handles the HTTP PUT request updating the search term.
// The visible list follows once the term stops changing.
func (vc *ViewController) SetSearchTerm(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	vc.view.SetSearchTerm(req.Term)
	vc.render(c)
}

// SetSortMode handles the HTTP PUT request updating the sort mode.
// Unknown modes are accepted and keep insertion order.
func (vc *ViewController) SetSortMode(c *gin.Context) {
	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	vc.view.SetSortMode(catalog.ParseSortMode(req.Mode))
	vc.render(c)
}

func (vc *ViewController) render(c *gin.Context) {
	s := vc.view.Snapshot()
	c.JSON(http.StatusOK, ViewResponse{
		SearchTerm:          s.SearchTerm,
		DebouncedSearchTerm: s.DebouncedSearchTerm,
		SortMode:            string(s.SortMode),
	})
}

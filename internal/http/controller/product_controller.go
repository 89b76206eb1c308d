package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog/internal/catalog"
	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/iyhunko/product-catalog/internal/pagination"
)

// ProductController handles HTTP requests for product and draft operations.
type ProductController struct {
	store *catalog.Store
	view  *catalog.SearchView
}

// NewProductController creates a new ProductController over the given store
// and the view filters used for the visible list.
func NewProductController(store *catalog.Store, view *catalog.SearchView) *ProductController {
	return &ProductController{
		store: store,
		view:  view,
	}
}

// ListProductsRequest represents the query parameters for listing visible products.
type ListProductsRequest struct {
	Limit int32  `form:"limit"`
	Token string `form:"token"`
}

// ListProductsResponse represents the response body for listing products.
type ListProductsResponse struct {
	Products      []ProductResponse `json:"products"`
	NextPageToken string            `json:"next_page_token,omitempty"`
}

// VisibleProductsResponse is one page of the filtered and sorted list.
type VisibleProductsResponse struct {
	ListProductsResponse
	SearchTerm string `json:"search_term"`
	SortMode   string `json:"sort_mode"`
}

// SubmitResponse represents the product written by a successful submit.
type SubmitResponse struct {
	Product ProductResponse `json:"product"`
	Updated bool            `json:"updated"`
}

// ListProducts handles the HTTP GET request for the full product list in insertion order.
func (pc *ProductController) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, ListProductsResponse{
		Products: toProductResponses(pc.store.Products()),
	})
}

// ListVisibleProducts handles the HTTP GET request for the derived view, with pagination.
func (pc *ProductController) ListVisibleProducts(c *gin.Context) {
	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := pagination.NewQuery()
	if err := query.ApplyPagination(req.Limit, req.Token); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := pc.view.Snapshot()
	visible := pc.store.Visible(filters.DebouncedSearchTerm, filters.SortMode)
	page, next := pagination.Page(visible, *query, func(p model.Product) int64 { return p.ID })

	c.JSON(http.StatusOK, VisibleProductsResponse{
		ListProductsResponse: ListProductsResponse{
			Products:      toProductResponses(page),
			NextPageToken: next,
		},
		SearchTerm: filters.DebouncedSearchTerm,
		SortMode:   string(filters.SortMode),
	})
}

// CreateProduct handles the HTTP POST request submitting a filled-in form.
// When an edit is in progress the form overwrites the product being edited.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := pc.store.SubmitDraft(c.Request.Context(), req.toDraft(pc.store.Draft().ID))
	if err != nil {
		writeSubmitError(c, err)
		return
	}
	writeSubmission(c, sub)
}

// SubmitDraft handles the HTTP POST request submitting the stored draft.
func (pc *ProductController) SubmitDraft(c *gin.Context) {
	sub, err := pc.store.Submit(c.Request.Context())
	if err != nil {
		writeSubmitError(c, err)
		return
	}
	writeSubmission(c, sub)
}

// DeleteProduct handles the HTTP DELETE request for deleting a product by ID.
// Deleting an unknown ID is not an error.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	deleted := pc.store.DeleteOne(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// DeleteAllProducts handles the HTTP DELETE request emptying the catalog.
func (pc *ProductController) DeleteAllProducts(c *gin.Context) {
	pc.store.DeleteAll(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "all products deleted"})
}

// StartEdit handles the HTTP POST request loading a product into the draft.
func (pc *ProductController) StartEdit(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	idx, found := pc.store.IndexOf(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	form, err := pc.store.StartEdit(idx)
	if err != nil {
		// the product went away between the lookup and the edit
		if errors.Is(err, catalog.ErrIndexOutOfRange) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start edit"})
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(form, idx, true))
}

// GetDraft handles the HTTP GET request for the draft form.
func (pc *ProductController) GetDraft(c *gin.Context) {
	idx, editing := pc.store.EditingIndex()
	c.JSON(http.StatusOK, toDraftResponse(pc.store.Draft(), idx, editing))
}

// UpdateDraft handles the HTTP PUT request storing user edits in the draft.
// Nothing is validated until submit.
func (pc *ProductController) UpdateDraft(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pc.store.UpdateDraft(req.toDraft(pc.store.Draft().ID))
	pc.GetDraft(c)
}

// CancelEdit handles the HTTP DELETE request discarding the draft and any edit.
func (pc *ProductController) CancelEdit(c *gin.Context) {
	pc.store.CancelEdit()
	pc.GetDraft(c)
}

func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return 0, false
	}
	return id, true
}

func writeSubmission(c *gin.Context, sub catalog.Submission) {
	status := http.StatusCreated
	if sub.Updated {
		status = http.StatusOK
	}
	c.JSON(status, SubmitResponse{
		Product: toProductResponse(sub.Product),
		Updated: sub.Updated,
	})
}

func writeSubmitError(c *gin.Context, err error) {
	if catalog.IsValidationError(err) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	slog.Error("Failed to submit draft", slog.Any("err", err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit product"})
}

package controller

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iyhunko/product-catalog/internal/model"
)

// FormValue is a form field that keeps whatever the user typed. It accepts a
// JSON string or a JSON number; numbers are kept in their literal spelling so
// "1." and "1e3" reach validation unchanged.
type FormValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("form value must be a string or a number: %w", err)
		}
		*v = FormValue(n.String())
		return nil
	}
}

// DraftRequest represents the add/edit form as submitted by the page.
type DraftRequest struct {
	Name  FormValue `json:"name"`
	Price FormValue `json:"price"`
	Stock FormValue `json:"stock"`
}

func (r DraftRequest) toDraft(id *int64) model.DraftForm {
	return model.DraftForm{
		ID:    id,
		Name:  string(r.Name),
		Price: string(r.Price),
		Stock: string(r.Stock),
	}
}

// DraftResponse represents the draft form and the edit in progress, if any.
type DraftResponse struct {
	ID           *int64 `json:"id"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	Stock        string `json:"stock"`
	EditingIndex *int   `json:"editing_index"`
}

func toDraftResponse(d model.DraftForm, editingIndex int, editing bool) DraftResponse {
	resp := DraftResponse{
		ID:    d.ID,
		Name:  d.Name,
		Price: d.Price,
		Stock: d.Stock,
	}
	if editing {
		resp.EditingIndex = &editingIndex
	}
	return resp
}

// ProductResponse represents the response body for a product.
type ProductResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock float64 `json:"stock"`
}

func toProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}
}

func toProductResponses(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

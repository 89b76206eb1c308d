package model

import "strconv"

// Product represents a catalog product.
type Product struct {
	ID    int64
	Name  string
	Price float64
	Stock float64
}

// DraftForm is the not-yet-validated staging record behind the add/edit form.
// Numeric fields are kept as raw text so partially typed values survive.
type DraftForm struct {
	ID    *int64
	Name  string
	Price string
	Stock string
}

// IsEmpty reports whether the draft is in its cleared state.
func (d DraftForm) IsEmpty() bool {
	return d.ID == nil && d.Name == "" && d.Price == "" && d.Stock == ""
}

// ToDraft copies the product into a draft, rendering numbers as text.
func (p Product) ToDraft() DraftForm {
	id := p.ID
	return DraftForm{
		ID:    &id,
		Name:  p.Name,
		Price: strconv.FormatFloat(p.Price, 'f', -1, 64),
		Stock: strconv.FormatFloat(p.Stock, 'f', -1, 64),
	}
}

package catalog

import "github.com/iyhunko/product-catalog/internal/model"

// DemoProducts returns the demo seed list shown on first load.
func DemoProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Odol", Price: 10000, Stock: 20},
		{ID: 2, Name: "Sabun", Price: 2000, Stock: 20},
		{ID: 3, Name: "Sikat Gigi", Price: 5000, Stock: 20},
		{ID: 4, Name: "Pensil", Price: 4000, Stock: 20},
	}
}

package dto

import "order-up/internal/domain/models"

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MenuItemRequest carries the mutable fields of a menu item. Pointers
// distinguish "absent" from "set to zero" so partial updates merge instead of
// blanking fields. There is deliberately no id field: the path parameter is
// the only way to address an item, which keeps a payload from reassigning ids.
type MenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
}

// ApplyTo copies the fields present in the request onto item.
func (r MenuItemRequest) ApplyTo(item *models.MenuItem) {
	if r.Name != nil {
		item.Name = *r.Name
	}
	if r.Description != nil {
		item.Description = *r.Description
	}
	if r.Price != nil {
		item.Price = *r.Price
	}
	if r.Category != nil {
		item.Category = *r.Category
	}
}

// OrderRequest is accepted as-is: items, total and user are computed and
// vouched for by the client.
type OrderRequest struct {
	Items []models.OrderItem `json:"items"`
	Total float64            `json:"total"`
	User  string             `json:"user"`
	Date  string             `json:"date"`
}

type RemovedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

package entity

import "github.com/google/uuid"

// Plan is a subscription plan offered by the product. Only the id and name are
// needed to populate the plan filter option set; the price drives display order.
type Plan struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

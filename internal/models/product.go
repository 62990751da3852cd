package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ImportQuantity int       `json:"importQuantity"`
	Price          float64   `json:"price"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProductWithStock is the listing view of a product with the derived
// figures attached. Stock is never persisted on the product row.
type ProductWithStock struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ImportQuantity int       `json:"importQuantity"`
	Price          float64   `json:"price"`
	SoldQuantity   int       `json:"soldQuantity"`
	Stock          int       `json:"stock"`
}

type CreateProductRequest struct {
	Name           string  `json:"name" validate:"required"`
	ImportQuantity int     `json:"importQuantity" validate:"gte=0"`
	Price          float64 `json:"price" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	ImportQuantity *int     `json:"importQuantity,omitempty" validate:"omitempty,gte=0"`
	Price          *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

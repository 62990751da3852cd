package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "Paid"
	PaymentStatusDue  PaymentStatus = "Due"
)

// Sale is immutable once created. TotalPrice is captured at creation
// time from the product's price; later price edits never change it.
type Sale struct {
	ID            uuid.UUID     `json:"id"`
	ProductID     uuid.UUID     `json:"product"`
	CustomerID    uuid.UUID     `json:"customer"`
	Quantity      int           `json:"quantity"`
	TotalPrice    float64       `json:"totalPrice"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	SaleDate      time.Time     `json:"saleDate"`
}

type SaleProductRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

type SaleCustomerRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// SaleWithRefs is the joined listing view with the referenced product
// and customer expanded. A dangling reference surfaces as an empty
// sub-object, it does not fail the listing.
type SaleWithRefs struct {
	ID            uuid.UUID       `json:"id"`
	Product       SaleProductRef  `json:"product"`
	Customer      SaleCustomerRef `json:"customer"`
	Quantity      int             `json:"quantity"`
	TotalPrice    float64         `json:"totalPrice"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	SaleDate      time.Time       `json:"saleDate"`
}

type CreateSaleRequest struct {
	Product       uuid.UUID     `json:"product" validate:"required"`
	Customer      uuid.UUID     `json:"customer" validate:"required"`
	Quantity      int           `json:"quantity" validate:"required,gt=0"`
	PaymentStatus PaymentStatus `json:"paymentStatus" validate:"required,oneof=Paid Due"`
}

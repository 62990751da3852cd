// Package stock computes the derived inventory and financial figures
// from the raw product and sale collections. Everything here is a pure
// function of its inputs: no persistence, no clock other than the one
// passed in, and no errors. A sale referencing a product that is not
// in the given product set simply contributes nothing to any product's
// figures.
package stock

import (
	"time"

	"github.com/google/uuid"

	"shopledger/internal/models"
)

// SoldQuantities sums sale quantities per product. Products with no
// sales are absent from the map; absence means zero.
func SoldQuantities(sales []*models.Sale) map[uuid.UUID]int {
	sold := make(map[uuid.UUID]int, len(sales))

	for _, sale := range sales {
		sold[sale.ProductID] += sale.Quantity
	}

	return sold
}

// StockFor derives the remaining stock of a product. The result may be
// negative; a negative value signals a prior data inconsistency and is
// reported as-is rather than clamped.
func StockFor(product *models.Product, sold map[uuid.UUID]int) int {
	return product.ImportQuantity - sold[product.ID]
}

// TotalStockValue sums current stock times unit price over all
// products. A fully sold-out product contributes zero, not its
// original import value.
func TotalStockValue(products []*models.Product, sales []*models.Sale) float64 {
	sold := SoldQuantities(sales)

	var total float64
	for _, product := range products {
		total += float64(StockFor(product, sold)) * product.Price
	}

	return total
}

// TodaySales sums totalPrice over sales whose saleDate falls within
// the local calendar day of now, midnight to midnight. A sale exactly
// at the next midnight is excluded.
func TodaySales(sales []*models.Sale, now time.Time) float64 {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	var total float64
	for _, sale := range sales {
		if !sale.SaleDate.Before(start) && sale.SaleDate.Before(end) {
			total += sale.TotalPrice
		}
	}

	return total
}

// TotalDue sums totalPrice over sales whose payment has not been
// collected yet.
func TotalDue(sales []*models.Sale) float64 {
	var total float64
	for _, sale := range sales {
		if sale.PaymentStatus == models.PaymentStatusDue {
			total += sale.TotalPrice
		}
	}

	return total
}

// Enrich attaches soldQuantity and derived stock to every product,
// producing the listing view. The stored products are not mutated.
func Enrich(products []*models.Product, sales []*models.Sale) []models.ProductWithStock {
	sold := SoldQuantities(sales)

	enriched := make([]models.ProductWithStock, 0, len(products))
	for _, product := range products {
		enriched = append(enriched, models.ProductWithStock{
			ID:             product.ID,
			Name:           product.Name,
			ImportQuantity: product.ImportQuantity,
			Price:          product.Price,
			SoldQuantity:   sold[product.ID],
			Stock:          StockFor(product, sold),
		})
	}

	return enriched
}

package repository

import (
	"context"
	"database/sql"

	"shopledger/internal/models"
	"shopledger/internal/utils"

	"github.com/google/uuid"
)

type SaleRepository interface {
	CreateSale(ctx context.Context, sale *models.Sale) error
	ListSalesByProduct(ctx context.Context, productID uuid.UUID) ([]*models.Sale, error)
	ListAllSales(ctx context.Context) ([]*models.Sale, error)
	ListSales(ctx context.Context) ([]*models.SaleWithRefs, error)
}

type saleRepository struct {
	DB *sql.DB
}

func NewSaleRepo(db *sql.DB) SaleRepository {
	return &saleRepository{DB: db}
}

func (r *saleRepository) CreateSale(ctx context.Context, sale *models.Sale) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO sales (product_id, customer_id, quantity, total_price, payment_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, sale_date`

	return r.DB.QueryRowContext(dbCtx, query, sale.ProductID, sale.CustomerID, sale.Quantity, sale.TotalPrice, sale.PaymentStatus).Scan(&sale.ID, &sale.SaleDate)
}

// ListSalesByProduct is the full re-scan the stock gate runs on every
// sale creation; no sold counter is cached anywhere.
func (r *saleRepository) ListSalesByProduct(ctx context.Context, productID uuid.UUID) ([]*models.Sale, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, product_id, customer_id, quantity, total_price, payment_status, sale_date
		FROM sales
		WHERE product_id = $1
	`

	rows, err := r.DB.QueryContext(dbCtx, query, productID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanSales(rows)
}

func (r *saleRepository) ListAllSales(ctx context.Context) ([]*models.Sale, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, product_id, customer_id, quantity, total_price, payment_status, sale_date
		FROM sales
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanSales(rows)
}

// ListSales returns the joined listing view, newest first. LEFT JOINs
// keep sales whose product or customer has been deleted; the missing
// side comes back as an empty sub-object.
func (r *saleRepository) ListSales(ctx context.Context) ([]*models.SaleWithRefs, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT s.id, s.quantity, s.total_price, s.payment_status, s.sale_date,
		       s.product_id, COALESCE(p.name, ''), COALESCE(p.price, 0),
		       s.customer_id, COALESCE(c.name, ''), COALESCE(c.phone, '')
		FROM sales s
		LEFT JOIN products p ON s.product_id = p.id
		LEFT JOIN customers c ON s.customer_id = c.id
		ORDER BY s.sale_date DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var sales []*models.SaleWithRefs

	for rows.Next() {
		sale := &models.SaleWithRefs{}

		err := rows.Scan(&sale.ID, &sale.Quantity, &sale.TotalPrice, &sale.PaymentStatus, &sale.SaleDate,
			&sale.Product.ID, &sale.Product.Name, &sale.Product.Price,
			&sale.Customer.ID, &sale.Customer.Name, &sale.Customer.Phone)
		if err != nil {
			return nil, err
		}

		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}

func scanSales(rows *sql.Rows) ([]*models.Sale, error) {
	var sales []*models.Sale

	for rows.Next() {
		sale := &models.Sale{}

		err := rows.Scan(&sale.ID, &sale.ProductID, &sale.CustomerID, &sale.Quantity, &sale.TotalPrice, &sale.PaymentStatus, &sale.SaleDate)
		if err != nil {
			return nil, err
		}

		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}

package service

import (
	"context"
	"database/sql"
	"errors"

	apperrors "shopledger/internal/errors"
	"shopledger/internal/models"
	repository "shopledger/internal/repositories"
	"shopledger/internal/stock"
)

type SaleService interface {
	CreateSale(ctx context.Context, req *models.CreateSaleRequest) (*models.Sale, error)
	ListSales(ctx context.Context) ([]*models.SaleWithRefs, error)
}

type saleService struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
}

func NewSaleService(repo repository.SaleRepository, productRepo repository.ProductRepository) SaleService {
	return &saleService{repo: repo, productRepo: productRepo}
}

// CreateSale gates the creation of a sale: the referenced product must
// exist and its derived stock must cover the requested quantity. The
// stock check re-scans the product's existing sales on every call and
// is not serialized against concurrent creations; two simultaneous
// requests can both pass the gate and drive derived stock negative.
func (s *saleService) CreateSale(ctx context.Context, req *models.CreateSaleRequest) (*models.Sale, error) {

	product, err := s.productRepo.GetProductByID(ctx, req.Product)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, apperrors.BadRequestError("Failed to create sale").WithError(err)
	}

	salesOfProduct, err := s.repo.ListSalesByProduct(ctx, product.ID)
	if err != nil {
		return nil, apperrors.BadRequestError("Failed to create sale").WithError(err)
	}

	currentStock := stock.StockFor(product, stock.SoldQuantities(salesOfProduct))

	if req.Quantity > currentStock {
		return nil, apperrors.InsufficientStockError(currentStock)
	}

	// price captured at sale time; later product price edits never
	// change this sale's total
	sale := &models.Sale{
		ProductID:     product.ID,
		CustomerID:    req.Customer,
		Quantity:      req.Quantity,
		TotalPrice:    product.Price * float64(req.Quantity),
		PaymentStatus: req.PaymentStatus,
	}

	err = s.repo.CreateSale(ctx, sale)
	if err != nil {
		return nil, apperrors.BadRequestError("Failed to create sale").WithError(err)
	}

	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context) ([]*models.SaleWithRefs, error) {

	sales, err := s.repo.ListSales(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to fetch sales").WithError(err)
	}

	return sales, nil
}

package service

import (
	"context"
	"time"

	apperrors "shopledger/internal/errors"
	"shopledger/internal/models"
	repository "shopledger/internal/repositories"
	"shopledger/internal/stock"
)

type DashboardService interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	now         func() time.Time
}

func NewDashboardService(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) DashboardService {
	return &dashboardService{productRepo: productRepo, saleRepo: saleRepo, now: time.Now}
}

// Summary recomputes all three figures from the full collections on
// every call. A store failure is returned to the caller; masking it
// with zeros is left to whatever renders the summary.
func (s *dashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to compute dashboard summary").WithError(err)
	}

	sales, err := s.saleRepo.ListAllSales(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to compute dashboard summary").WithError(err)
	}

	return &models.DashboardSummary{
		TotalStockValue: stock.TotalStockValue(products, sales),
		TodaySales:      stock.TodaySales(sales, s.now()),
		TotalDue:        stock.TotalDue(sales),
	}, nil
}

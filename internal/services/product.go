package service

import (
	"context"
	"database/sql"
	"errors"

	apperrors "shopledger/internal/errors"
	"shopledger/internal/models"
	repository "shopledger/internal/repositories"
	"shopledger/internal/stock"

	"github.com/google/uuid"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProductsWithStock(ctx context.Context) ([]models.ProductWithStock, error)
}

type productService struct {
	repo     repository.ProductRepository
	saleRepo repository.SaleRepository
}

func NewProductService(repo repository.ProductRepository, saleRepo repository.SaleRepository) ProductService {
	return &productService{repo: repo, saleRepo: saleRepo}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		Name:           req.Name,
		ImportQuantity: req.ImportQuantity,
		Price:          req.Price,
	}

	err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, apperrors.BadRequestError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, apperrors.BadRequestError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, apperrors.BadRequestError("Failed to update product").WithError(err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.ImportQuantity != nil {
		product.ImportQuantity = *req.ImportQuantity
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	err = s.repo.UpdateProduct(ctx, product)
	if err != nil {
		return nil, apperrors.BadRequestError("Failed to update product").WithError(err)
	}

	return product, nil
}

// DeleteProduct removes the product even when sales still reference
// it; those sales keep a dangling reference.
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {

	err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFoundError("Product not found").WithError(err)
		}

		return apperrors.BadRequestError("Failed to delete product").WithError(err)
	}

	return nil
}

// ListProductsWithStock re-reads both full collections and derives
// soldQuantity and stock per product; nothing is cached between calls.
func (s *productService) ListProductsWithStock(ctx context.Context) ([]models.ProductWithStock, error) {

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, apperrors.BadRequestError("Failed to fetch products").WithError(err)
	}

	sales, err := s.saleRepo.ListAllSales(ctx)
	if err != nil {
		return nil, apperrors.BadRequestError("Failed to fetch products").WithError(err)
	}

	return stock.Enrich(products, sales), nil
}

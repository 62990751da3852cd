package service

import (
	"context"
	"database/sql"
	"errors"

	apperrors "shopledger/internal/errors"
	"shopledger/internal/models"
	repository "shopledger/internal/repositories"

	"github.com/google/uuid"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, req *models.UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {

	customer := &models.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}

	err := s.repo.CreateCustomer(ctx, customer)
	if err != nil {
		// the duplicate-phone conflict comes through typed from the store
		if _, ok := apperrors.IsAppError(err); ok {
			return nil, err
		}

		return nil, apperrors.BadRequestError("Failed to create customer").WithError(err)
	}

	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req *models.UpdateCustomerRequest) (*models.Customer, error) {

	customer, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("Customer not found").WithError(err)
		}

		return nil, apperrors.BadRequestError("Failed to update customer").WithError(err)
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}

	err = s.repo.UpdateCustomer(ctx, customer)
	if err != nil {
		if _, ok := apperrors.IsAppError(err); ok {
			return nil, err
		}

		return nil, apperrors.BadRequestError("Failed to update customer").WithError(err)
	}

	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {

	err := s.repo.DeleteCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFoundError("Customer not found").WithError(err)
		}

		return apperrors.BadRequestError("Failed to delete customer").WithError(err)
	}

	return nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {

	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to fetch customers").WithError(err)
	}

	return customers, nil
}

package handlers

import (
	"log/slog"
	"net/http"

	"shopledger/internal/api/middleware"
	apperrors "shopledger/internal/errors"
	"shopledger/internal/models"
	service "shopledger/internal/services"
	"shopledger/internal/utils"
	"shopledger/internal/utils/response"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customerService service.CustomerService
	validator       *validator.Validate
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, validator: validator.New()}
}

func (h *CustomerHandler) ListCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		customers, err := h.customerService.ListCustomers(r.Context())

		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch customers", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, customers)

	}
}

func (h *CustomerHandler) CreateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCustomerRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, apperrors.ValidationError(err.Error()))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, apperrors.ValidationError("Name and phone are required"))
			return
		}

		customer, err := h.customerService.CreateCustomer(r.Context(), &req)

		if err != nil {
			logger.Error("Error during customer creation", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Customer created", slog.String("customerId", customer.ID.String()))
		response.Success(w, http.StatusCreated, customer)

	}
}

func (h *CustomerHandler) UpdateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := uuid.Parse(r.PathValue("id"))

		if err != nil {
			response.Error(w, apperrors.ValidationError("Invalid customer id"))
			return
		}

		var req models.UpdateCustomerRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, apperrors.ValidationError(err.Error()))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, apperrors.ValidationError(err.Error()))
			return
		}

		customer, err := h.customerService.UpdateCustomer(r.Context(), id, &req)

		if err != nil {
			logger.Error("Error during customer update", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, customer)

	}
}

func (h *CustomerHandler) DeleteCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := uuid.Parse(r.PathValue("id"))

		if err != nil {
			response.Error(w, apperrors.ValidationError("Invalid customer id"))
			return
		}

		if err := h.customerService.DeleteCustomer(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, struct{}{})

	}
}

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
)

type SaleHandler struct {
	saleService service.SaleService
	validator   *validator.Validate
}

func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService, validator: validator.New()}
}

// ListSales responds with the joined view, newest first.
func (h *SaleHandler) ListSales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sales, err := h.saleService.ListSales(r.Context())

		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch sales", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sales)

	}
}

func (h *SaleHandler) CreateSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateSaleRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, apperrors.ValidationError(err.Error()))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, apperrors.ValidationError("Missing required fields"))
			return
		}

		sale, err := h.saleService.CreateSale(r.Context(), &req)

		if err != nil {
			logger.Error("Error during sale creation", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Sale created",
			slog.String("saleId", sale.ID.String()),
			slog.String("productId", sale.ProductID.String()),
			slog.Int("quantity", sale.Quantity),
		)
		response.Success(w, http.StatusCreated, sale)

	}
}

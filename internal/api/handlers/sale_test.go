package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopledger/internal/api/handlers"
	appErrors "shopledger/internal/errors"
	"shopledger/internal/models"
	"shopledger/internal/services/mocks"
	"shopledger/internal/testutils"
	"shopledger/internal/utils/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSaleHandler() (*handlers.SaleHandler, *mocks.SaleService) {
	mockSaleService := new(mocks.SaleService)

	return handlers.NewSaleHandler(mockSaleService), mockSaleService
}

func TestCreateSaleHandler(t *testing.T) {
	productID := uuid.New()
	customerID := uuid.New()

	t.Run("Success - Sale Created", func(t *testing.T) {
		// Arrange
		saleHandler, mockSaleService := newSaleHandler()

		reqBody := models.CreateSaleRequest{
			Product:       productID,
			Customer:      customerID,
			Quantity:      3,
			PaymentStatus: models.PaymentStatusPaid,
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/sales", bytes.NewReader(reqBodyBytes), nil)

		expectedSale := &models.Sale{
			ID:            uuid.New(),
			ProductID:     productID,
			CustomerID:    customerID,
			Quantity:      3,
			TotalPrice:    300,
			PaymentStatus: models.PaymentStatusPaid,
		}
		mockSaleService.On("CreateSale", mock.Anything, &reqBody).Return(expectedSale, nil).Once()

		// Act
		saleHandler.CreateSale().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp response.APIResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		mockSaleService.AssertExpectations(t)
	})

	t.Run("Missing Fields - 400", func(t *testing.T) {
		// Arrange
		saleHandler, mockSaleService := newSaleHandler()

		body := []byte(`{"product":"` + productID.String() + `","quantity":3}`)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/sales", bytes.NewReader(body), nil)

		// Act
		saleHandler.CreateSale().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Missing required fields")
		mockSaleService.AssertNotCalled(t, "CreateSale", mock.Anything, mock.Anything)
	})

	t.Run("Zero Quantity - 400", func(t *testing.T) {
		// Arrange
		saleHandler, mockSaleService := newSaleHandler()

		reqBody := models.CreateSaleRequest{
			Product:       productID,
			Customer:      customerID,
			Quantity:      0,
			PaymentStatus: models.PaymentStatusDue,
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/sales", bytes.NewReader(reqBodyBytes), nil)

		// Act
		saleHandler.CreateSale().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Missing required fields")
		mockSaleService.AssertNotCalled(t, "CreateSale", mock.Anything, mock.Anything)
	})

	t.Run("Product Not Found - 404", func(t *testing.T) {
		// Arrange
		saleHandler, mockSaleService := newSaleHandler()

		reqBody := models.CreateSaleRequest{
			Product:       productID,
			Customer:      customerID,
			Quantity:      3,
			PaymentStatus: models.PaymentStatusPaid,
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/sales", bytes.NewReader(reqBodyBytes), nil)

		mockSaleService.On("CreateSale", mock.Anything, &reqBody).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		// Act
		saleHandler.CreateSale().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Product not found")
		mockSaleService.AssertExpectations(t)
	})

	t.Run("Insufficient Stock - 400 With Remaining Quantity", func(t *testing.T) {
		// Arrange
		saleHandler, mockSaleService := newSaleHandler()

		reqBody := models.CreateSaleRequest{
			Product:       productID,
			Customer:      customerID,
			Quantity:      8,
			PaymentStatus: models.PaymentStatusPaid,
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/sales", bytes.NewReader(reqBodyBytes), nil)

		mockSaleService.On("CreateSale", mock.Anything, &reqBody).Return(nil, appErrors.InsufficientStockError(7)).Once()

		// Act
		saleHandler.CreateSale().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Not enough stock. Only 7 items available.")
		mockSaleService.AssertExpectations(t)
	})
}

func TestListSalesHandler(t *testing.T) {
	t.Run("Success - 200 With Joined View", func(t *testing.T) {
		// Arrange
		saleHandler, mockSaleService := newSaleHandler()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodGet, "/sales", nil, nil)

		sales := []*models.SaleWithRefs{
			{ID: uuid.New(), Product: models.SaleProductRef{Name: "Rice", Price: 100}, Customer: models.SaleCustomerRef{Name: "Karim", Phone: "01711111111"}, Quantity: 2, TotalPrice: 200},
		}
		mockSaleService.On("ListSales", mock.Anything).Return(sales, nil).Once()

		// Act
		saleHandler.ListSales().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Rice")
		assert.Contains(t, rr.Body.String(), "01711111111")
		mockSaleService.AssertExpectations(t)
	})

	t.Run("Store Error - 500", func(t *testing.T) {
		// Arrange
		saleHandler, mockSaleService := newSaleHandler()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodGet, "/sales", nil, nil)

		mockSaleService.On("ListSales", mock.Anything).Return(nil, appErrors.DatabaseError("Failed to fetch sales")).Once()

		// Act
		saleHandler.ListSales().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockSaleService.AssertExpectations(t)
	})
}

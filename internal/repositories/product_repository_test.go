package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopledger/internal/models"
	repository "shopledger/internal/repositories"
)

func TestNewProductRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	assert.NotNil(t, repo, "NewProductRepo should return a non-nil repository")
}

func TestProductRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	ctx := t.Context()

	t.Run("CreateProduct", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`INSERT INTO products (name, import_quantity, price)`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			product := &models.Product{
				Name:           "Rice",
				ImportQuantity: 100,
				Price:          55.5,
			}
			now := time.Now()
			newID := uuid.New()

			mock.ExpectQuery(expectedSQL).
				WithArgs(product.Name, product.ImportQuantity, product.Price).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
					AddRow(newID, now, now))

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.NoError(t, err, "CreateProduct should not return an error on success")
			assert.Equal(t, newID, product.ID, "Product ID should be populated from the insert")
			assert.WithinDuration(t, now, product.CreatedAt, time.Second)
			assert.WithinDuration(t, now, product.UpdatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			product := &models.Product{Name: "Salt", ImportQuantity: 10, Price: 5}
			dbError := errors.New("database insertion error")

			mock.ExpectQuery(expectedSQL).
				WithArgs(product.Name, product.ImportQuantity, product.Price).
				WillReturnError(dbError)

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError, "Returned error should be the database error")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetProductByID", func(t *testing.T) {
		productID := uuid.New()
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`
		SELECT id, name, import_quantity, price, created_at, updated_at
		FROM products
		WHERE id = $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			expectedProduct := &models.Product{
				ID:             productID,
				Name:           "Rice",
				ImportQuantity: 100,
				Price:          55.5,
				CreatedAt:      now.Add(-time.Hour),
				UpdatedAt:      now,
			}

			rows := sqlmock.NewRows([]string{"id", "name", "import_quantity", "price", "created_at", "updated_at"}).
				AddRow(expectedProduct.ID, expectedProduct.Name, expectedProduct.ImportQuantity, expectedProduct.Price, expectedProduct.CreatedAt, expectedProduct.UpdatedAt)

			mock.ExpectQuery(expectedSQL).
				WithArgs(productID).
				WillReturnRows(rows)

			// Act
			product, err := repo.GetProductByID(ctx, productID)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, expectedProduct, product, "Returned product should match the stored row")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(productID).
				WillReturnError(sql.ErrNoRows)

			// Act
			product, err := repo.GetProductByID(ctx, productID)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows, "Returned error should be sql.ErrNoRows")
			assert.Nil(t, product)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateProduct", func(t *testing.T) {
		productID := uuid.New()
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`
		UPDATE products SET name = $1, import_quantity = $2, price = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			productToUpdate := &models.Product{
				ID:             productID,
				Name:           "Rice (Premium)",
				ImportQuantity: 120,
				Price:          60,
			}

			mock.ExpectQuery(expectedSQL).
				WithArgs(productToUpdate.Name, productToUpdate.ImportQuantity, productToUpdate.Price, productToUpdate.ID).
				WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

			// Act
			err := repo.UpdateProduct(ctx, productToUpdate)

			// Assert
			require.NoError(t, err)
			assert.WithinDuration(t, now, productToUpdate.UpdatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			productToUpdate := &models.Product{ID: uuid.New(), Name: "Ghost", ImportQuantity: 1, Price: 1}

			mock.ExpectQuery(expectedSQL).
				WithArgs(productToUpdate.Name, productToUpdate.ImportQuantity, productToUpdate.Price, productToUpdate.ID).
				WillReturnError(sql.ErrNoRows)

			// Act
			err := repo.UpdateProduct(ctx, productToUpdate)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("DeleteProduct", func(t *testing.T) {
		productID := uuid.New()

		expectedSQL := regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).
				WithArgs(productID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.DeleteProduct(ctx, productID)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).
				WithArgs(productID).
				WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			err := repo.DeleteProduct(ctx, productID)

			// Assert
			require.Error(t, err, "deleting a missing product should surface an error")
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ListProducts", func(t *testing.T) {
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`
		SELECT id, name, import_quantity, price, created_at, updated_at
		FROM products
		ORDER BY created_at DESC`)

		productCols := []string{"id", "name", "import_quantity", "price", "created_at", "updated_at"}

		t.Run("Success_MultipleItems", func(t *testing.T) {
			// Arrange
			expectedProducts := []*models.Product{
				{ID: uuid.New(), Name: "Rice", ImportQuantity: 100, Price: 55.5, CreatedAt: now, UpdatedAt: now},
				{ID: uuid.New(), Name: "Oil", ImportQuantity: 40, Price: 180, CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)},
			}

			rows := sqlmock.NewRows(productCols)
			for _, p := range expectedProducts {
				rows.AddRow(p.ID, p.Name, p.ImportQuantity, p.Price, p.CreatedAt, p.UpdatedAt)
			}

			mock.ExpectQuery(expectedSQL).WillReturnRows(rows)

			// Act
			products, err := repo.ListProducts(ctx)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, expectedProducts, products)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success_NoItems", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).WillReturnRows(sqlmock.NewRows(productCols))

			// Act
			products, err := repo.ListProducts(ctx)

			// Assert
			require.NoError(t, err)
			assert.Empty(t, products)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("QueryError", func(t *testing.T) {
			// Arrange
			dbError := errors.New("list query failed")
			mock.ExpectQuery(expectedSQL).WillReturnError(dbError)

			// Act
			products, err := repo.ListProducts(ctx)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			assert.Nil(t, products)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("RowsError", func(t *testing.T) {
			// Arrange
			rowsError := errors.New("rows iteration error")
			rows := sqlmock.NewRows(productCols).
				AddRow(uuid.New(), "Rice", 1, 1.0, now, now).
				CloseError(rowsError)
			mock.ExpectQuery(expectedSQL).WillReturnRows(rows)

			// Act
			products, err := repo.ListProducts(ctx)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, rowsError)
			assert.Nil(t, products)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"shopledger/internal/config"

	"github.com/lib/pq"
)

// Repository is the explicitly constructed record-store handle: opened
// once at process start, injected into the services, closed at
// shutdown. Nothing in this codebase reaches for a global connection.
type Repository struct {
	DB *sql.DB

	Product  ProductRepository
	Customer CustomerRepository
	Sale     SaleRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := sql.Open("postgres", cfg.Database.GetDSN())

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:       db,
		Product:  NewProductRepo(db),
		Customer: NewCustomerRepo(db),
		Sale:     NewSaleRepo(db),
	}, nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}

// unique_violation
const pqUniqueViolation = pq.ErrorCode("23505")

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

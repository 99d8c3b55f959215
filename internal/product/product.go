// Package product is the travel-product listing the rest of the service
// exists to protect. Plain persistence mapping, no business rules.
package product

import (
	"context"
	"errors"
	"time"
)

// Product is a purchasable travel listing. Dates are ISO calendar dates.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int
	Location    string
	StartDate   string
	EndDate     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var ErrNotFound = errors.New("product: not found")

type Repository interface {
	Create(ctx context.Context, p *Product) error
	List(ctx context.Context) ([]Product, error)
	ByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}

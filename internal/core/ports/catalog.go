package ports

import (
	"context"

	"github.com/snowonice/venue-api/internal/core/domain"
)

// ProductRepository persists the product/ticket catalog in the record store.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// CustomerRepository persists registered customers in the record store.
type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

// CreateProductInput carries the fields needed to add a catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    domain.ProductCategory
}

// UpdateProductInput carries optional field updates; nil means unchanged.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Category    *domain.ProductCategory
}

// CreateCustomerInput carries the fields needed to register a customer.
type CreateCustomerInput struct {
	Name  string
	Email string
	Phone string
}

// UpdateCustomerInput carries optional field updates; nil means unchanged.
type UpdateCustomerInput struct {
	Name  *string
	Email *string
	Phone *string
}

// CatalogService manages products and the customer register.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, in UpdateCustomerInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/snowonice/venue-api/internal/core/domain"
	"github.com/snowonice/venue-api/internal/core/ports"
)

// CatalogService manages the product/ticket catalog and the customer
// register against the remote record store.
type CatalogService struct {
	products  ports.ProductRepository
	customers ports.CustomerRepository
	log       zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, customers ports.CustomerRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, customers: customers, log: log}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *CatalogService) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	p := &domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Str("product", p.Name).Str("category", string(p.Category)).Msg("product created")
	return p, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Category != nil {
		p.Category = *in.Category
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

func (s *CatalogService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

func (s *CatalogService) CreateCustomer(ctx context.Context, in ports.CreateCustomerInput) (*domain.Customer, error) {
	now := time.Now().UTC()
	c := &domain.Customer{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Tickets:          0,
		RegistrationDate: now.Format("02/01/2006"),
		CreatedAt:        now,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info().Str("customer", c.Name).Msg("customer registered")
	return c, nil
}

func (s *CatalogService) UpdateCustomer(ctx context.Context, id string, in ports.UpdateCustomerInput) (*domain.Customer, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}

	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCustomer(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}

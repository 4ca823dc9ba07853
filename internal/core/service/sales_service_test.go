package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/snowonice/venue-api/internal/core/domain"
	"github.com/snowonice/venue-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type stubCustomerRepo struct {
	customers map[string]*domain.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (r *stubCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrCustomerRecordNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrCustomerRecordNotFound
	}
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrCustomerRecordNotFound
	}
	delete(r.customers, id)
	return nil
}

type stubSaleRepo struct {
	sales []domain.Sale
	items map[string][]domain.SaleItem
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{items: make(map[string][]domain.SaleItem)}
}

func (r *stubSaleRepo) List(_ context.Context) ([]domain.Sale, error) {
	return append([]domain.Sale(nil), r.sales...), nil
}

func (r *stubSaleRepo) Create(_ context.Context, sale *domain.Sale, items []domain.SaleItem) error {
	r.sales = append(r.sales, *sale)
	r.items[sale.ID] = append([]domain.SaleItem(nil), items...)
	return nil
}

func (r *stubSaleRepo) ItemsBySale(_ context.Context, saleID string) ([]domain.SaleItem, error) {
	return append([]domain.SaleItem(nil), r.items[saleID]...), nil
}

type stubTicketSaleRepo struct {
	sales []domain.TicketSale
}

func (r *stubTicketSaleRepo) List(_ context.Context) ([]domain.TicketSale, error) {
	return append([]domain.TicketSale(nil), r.sales...), nil
}

func (r *stubTicketSaleRepo) Create(_ context.Context, ts *domain.TicketSale) error {
	r.sales = append(r.sales, *ts)
	return nil
}

func (r *stubTicketSaleRepo) Delete(_ context.Context, id string) error {
	for i, ts := range r.sales {
		if ts.ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			return nil
		}
	}
	return domain.ErrTicketSaleNotFound
}

func newSalesFixture() (*SalesService, *stubProductRepo, *stubCustomerRepo, *stubSaleRepo, *stubTicketSaleRepo) {
	products := newStubProductRepo()
	customers := newStubCustomerRepo()
	sales := newStubSaleRepo()
	tickets := &stubTicketSaleRepo{}
	svc := NewSalesService(sales, tickets, products, customers, zerolog.Nop())
	return svc, products, customers, sales, tickets
}

func TestSalesService_CreateSale(t *testing.T) {
	svc, products, customers, _, _ := newSalesFixture()
	ctx := context.Background()

	products.products["p1"] = &domain.Product{ID: "p1", Name: "Chocolate quente", Price: 12.5, Stock: 10, Category: domain.CategoryProduto}
	products.products["p2"] = &domain.Product{ID: "p2", Name: "Ingresso pista", Price: 40, Stock: 50, Category: domain.CategoryIngresso}
	customers.customers["c1"] = &domain.Customer{ID: "c1", Name: "João", Tickets: 1}

	detail, err := svc.CreateSale(ctx, ports.CreateSaleInput{
		CustomerID: "c1",
		Items: []ports.CartItemInput{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("create sale failed: %v", err)
	}

	if detail.Sale.Total != 2*12.5+3*40 {
		t.Fatalf("unexpected total: %v", detail.Sale.Total)
	}
	if len(detail.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(detail.Items))
	}

	// Stock decremented per line.
	if products.products["p1"].Stock != 8 || products.products["p2"].Stock != 47 {
		t.Fatalf("stock not decremented: %d / %d", products.products["p1"].Stock, products.products["p2"].Stock)
	}

	// Ticket items credited to the customer, last purchase stamped.
	c := customers.customers["c1"]
	if c.Tickets != 4 {
		t.Fatalf("expected 4 tickets, got %d", c.Tickets)
	}
	if c.LastPurchase == nil {
		t.Fatalf("last purchase not stamped")
	}
}

func TestSalesService_CreateSale_Validation(t *testing.T) {
	svc, products, _, _, _ := newSalesFixture()
	ctx := context.Background()

	if _, err := svc.CreateSale(ctx, ports.CreateSaleInput{}); !errors.Is(err, domain.ErrEmptySale) {
		t.Fatalf("empty cart: expected ErrEmptySale, got %v", err)
	}

	if _, err := svc.CreateSale(ctx, ports.CreateSaleInput{Items: []ports.CartItemInput{{ProductID: "ghost", Quantity: 1}}}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("unknown product: expected ErrProductNotFound, got %v", err)
	}

	products.products["p1"] = &domain.Product{ID: "p1", Name: "Luvas", Price: 15, Stock: 1, Category: domain.CategoryProduto}
	if _, err := svc.CreateSale(ctx, ports.CreateSaleInput{Items: []ports.CartItemInput{{ProductID: "p1", Quantity: 2}}}); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if products.products["p1"].Stock != 1 {
		t.Fatalf("rejected sale must not touch stock")
	}
}

func TestSalesService_CreateTicketSale(t *testing.T) {
	svc, _, customers, _, tickets := newSalesFixture()
	ctx := context.Background()

	customers.customers["c9"] = &domain.Customer{ID: "c9", Name: "Lúcia", Tickets: 2}

	ts, err := svc.CreateTicketSale(ctx, ports.CreateTicketSaleInput{
		Customer:   "c9",
		Event:      "Noite no Gelo",
		EventDate:  "20/07/2025",
		Tickets:    3,
		TicketType: "vip",
		Total:      150,
	})
	if err != nil {
		t.Fatalf("create ticket sale failed: %v", err)
	}
	if len(tickets.sales) != 1 {
		t.Fatalf("ticket sale not persisted")
	}
	if customers.customers["c9"].Tickets != 5 {
		t.Fatalf("expected 5 tickets, got %d", customers.customers["c9"].Tickets)
	}

	if err := svc.DeleteTicketSale(ctx, ts.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteTicketSale(ctx, ts.ID); !errors.Is(err, domain.ErrTicketSaleNotFound) {
		t.Fatalf("second delete: expected ErrTicketSaleNotFound, got %v", err)
	}
}

func TestSalesService_Summary(t *testing.T) {
	svc, products, customers, _, _ := newSalesFixture()
	ctx := context.Background()

	products.products["p1"] = &domain.Product{ID: "p1", Name: "Cachecol", Price: 25, Stock: 5, Category: domain.CategoryProduto}
	products.products["p2"] = &domain.Product{ID: "p2", Name: "Ingresso", Price: 40, Stock: 100, Category: domain.CategoryIngresso}
	customers.customers["c1"] = &domain.Customer{ID: "c1", Name: "Rui", CreatedAt: time.Now()}

	if _, err := svc.CreateSale(ctx, ports.CreateSaleInput{Items: []ports.CartItemInput{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 2},
	}}); err != nil {
		t.Fatalf("create sale failed: %v", err)
	}
	if _, err := svc.CreateTicketSale(ctx, ports.CreateTicketSaleInput{Event: "Gala", Tickets: 4, Total: 200}); err != nil {
		t.Fatalf("create ticket sale failed: %v", err)
	}

	sum, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if sum.SalesCount != 1 || sum.TicketSalesCount != 1 {
		t.Fatalf("unexpected counts: %+v", sum)
	}
	if sum.SalesRevenue != 105 || sum.TicketRevenue != 200 || sum.TotalRevenue != 305 {
		t.Fatalf("unexpected revenue: %+v", sum)
	}
	if sum.ProductItemsSold != 1 || sum.TicketItemsSold != 2 || sum.TicketsSold != 4 {
		t.Fatalf("unexpected item counts: %+v", sum)
	}
	if sum.RegisteredClients != 1 {
		t.Fatalf("unexpected client count: %+v", sum)
	}
}

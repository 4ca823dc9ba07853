package ports

import (
	"context"

	"github.com/snowonice/venue-api/internal/core/domain"
)

// SaleRepository persists sales and their line items in the record store.
type SaleRepository interface {
	List(ctx context.Context) ([]domain.Sale, error)
	Create(ctx context.Context, sale *domain.Sale, items []domain.SaleItem) error
	ItemsBySale(ctx context.Context, saleID string) ([]domain.SaleItem, error)
}

// TicketSaleRepository persists event ticket sales in the record store.
type TicketSaleRepository interface {
	List(ctx context.Context) ([]domain.TicketSale, error)
	Create(ctx context.Context, ts *domain.TicketSale) error
	Delete(ctx context.Context, id string) error
}

// CartItemInput is one line of a new sale.
type CartItemInput struct {
	ProductID string
	Quantity  int
}

// CreateSaleInput carries a new point-of-sale transaction. CustomerID is
// optional; when set, ticket items increment that customer's ticket count
// and stamp their last purchase.
type CreateSaleInput struct {
	CustomerID string
	Items      []CartItemInput
}

// SaleDetail is a sale joined with its line items.
type SaleDetail struct {
	Sale  domain.Sale       `json:"sale"`
	Items []domain.SaleItem `json:"items"`
}

// CreateTicketSaleInput carries a new event ticket purchase.
type CreateTicketSaleInput struct {
	Customer   string
	Event      string
	EventDate  string
	Tickets    int
	TicketType string
	Total      float64
}

// SalesSummary aggregates revenue figures for the dashboard and reports.
type SalesSummary struct {
	SalesCount        int     `json:"sales_count"`
	SalesRevenue      float64 `json:"sales_revenue"`
	TicketSalesCount  int     `json:"ticket_sales_count"`
	TicketRevenue     float64 `json:"ticket_revenue"`
	TicketsSold       int     `json:"tickets_sold"`
	ProductItemsSold  int     `json:"product_items_sold"`
	TicketItemsSold   int     `json:"ticket_items_sold"`
	TotalRevenue      float64 `json:"total_revenue"`
	RegisteredClients int     `json:"registered_clients"`
}

// SalesService records transactions and computes the read-side aggregates
// the dashboard and reports render.
type SalesService interface {
	CreateSale(ctx context.Context, in CreateSaleInput) (*SaleDetail, error)
	ListSales(ctx context.Context) ([]SaleDetail, error)

	CreateTicketSale(ctx context.Context, in CreateTicketSaleInput) (*domain.TicketSale, error)
	ListTicketSales(ctx context.Context) ([]domain.TicketSale, error)
	DeleteTicketSale(ctx context.Context, id string) error

	Summary(ctx context.Context) (*SalesSummary, error)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/snowonice/venue-api/internal/core/domain"
	"github.com/snowonice/venue-api/internal/core/ports"
)

const saleDateLayout = "02/01/2006"

// SalesService records point-of-sale and event ticket transactions and
// computes the aggregates the dashboard and reports render.
type SalesService struct {
	sales       ports.SaleRepository
	ticketSales ports.TicketSaleRepository
	products    ports.ProductRepository
	customers   ports.CustomerRepository
	log         zerolog.Logger
}

func NewSalesService(
	sales ports.SaleRepository,
	ticketSales ports.TicketSaleRepository,
	products ports.ProductRepository,
	customers ports.CustomerRepository,
	log zerolog.Logger,
) *SalesService {
	return &SalesService{
		sales:       sales,
		ticketSales: ticketSales,
		products:    products,
		customers:   customers,
		log:         log,
	}
}

// CreateSale validates the cart against live stock, persists the sale with
// its items, then applies the side effects: stock decrements plus, when the
// sale is tied to a registered customer, the ticket-count increment and
// last-purchase stamp. Side-effect failures after the sale is persisted are
// logged, not fatal.
func (s *SalesService) CreateSale(ctx context.Context, in ports.CreateSaleInput) (*ports.SaleDetail, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptySale
	}

	now := time.Now().UTC()
	saleID := uuid.NewString()

	var total float64
	items := make([]domain.SaleItem, 0, len(in.Items))
	sold := make([]*domain.Product, 0, len(in.Items))
	for _, line := range in.Items {
		p, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if p.Stock < line.Quantity {
			return nil, domain.ErrInsufficientStock
		}

		items = append(items, domain.SaleItem{
			ID:          uuid.NewString(),
			SaleID:      saleID,
			ProductID:   p.ID,
			ProductName: p.Name,
			Price:       p.Price,
			Quantity:    line.Quantity,
			Category:    p.Category,
		})
		total += p.Price * float64(line.Quantity)
		p.Stock -= line.Quantity
		sold = append(sold, p)
	}

	sale := &domain.Sale{
		ID:        saleID,
		Customer:  in.CustomerID,
		Total:     total,
		Date:      now.Format(saleDateLayout),
		CreatedAt: now,
	}

	if err := s.sales.Create(ctx, sale, items); err != nil {
		return nil, err
	}

	for _, p := range sold {
		if err := s.products.Update(ctx, p); err != nil {
			s.log.Warn().Err(err).Str("product_id", p.ID).Msg("stock decrement failed")
		}
	}

	if in.CustomerID != "" {
		s.creditCustomer(ctx, in.CustomerID, ticketQuantity(items), now)
	}

	s.log.Info().Str("sale_id", saleID).Float64("total", total).Int("items", len(items)).Msg("sale recorded")
	return &ports.SaleDetail{Sale: *sale, Items: items}, nil
}

func (s *SalesService) ListSales(ctx context.Context) ([]ports.SaleDetail, error) {
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.SaleDetail, 0, len(sales))
	for _, sale := range sales {
		items, err := s.sales.ItemsBySale(ctx, sale.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, ports.SaleDetail{Sale: sale, Items: items})
	}
	return details, nil
}

func (s *SalesService) CreateTicketSale(ctx context.Context, in ports.CreateTicketSaleInput) (*domain.TicketSale, error) {
	now := time.Now().UTC()
	ts := &domain.TicketSale{
		ID:         uuid.NewString(),
		Customer:   in.Customer,
		Event:      in.Event,
		EventDate:  in.EventDate,
		Tickets:    in.Tickets,
		TicketType: in.TicketType,
		Total:      in.Total,
		Date:       now.Format(saleDateLayout),
		CreatedAt:  now,
	}

	if err := s.ticketSales.Create(ctx, ts); err != nil {
		return nil, err
	}

	if in.Customer != "" {
		s.creditCustomer(ctx, in.Customer, in.Tickets, now)
	}

	s.log.Info().Str("event", in.Event).Int("tickets", in.Tickets).Msg("ticket sale recorded")
	return ts, nil
}

func (s *SalesService) ListTicketSales(ctx context.Context) ([]domain.TicketSale, error) {
	return s.ticketSales.List(ctx)
}

func (s *SalesService) DeleteTicketSale(ctx context.Context, id string) error {
	return s.ticketSales.Delete(ctx, id)
}

func (s *SalesService) Summary(ctx context.Context) (*ports.SalesSummary, error) {
	sales, err := s.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	ticketSales, err := s.ticketSales.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &ports.SalesSummary{
		SalesCount:        len(sales),
		TicketSalesCount:  len(ticketSales),
		RegisteredClients: len(customers),
	}
	for _, d := range sales {
		summary.SalesRevenue += d.Sale.Total
		for _, item := range d.Items {
			if item.Category == domain.CategoryIngresso {
				summary.TicketItemsSold += item.Quantity
			} else {
				summary.ProductItemsSold += item.Quantity
			}
		}
	}
	for _, ts := range ticketSales {
		summary.TicketRevenue += ts.Total
		summary.TicketsSold += ts.Tickets
	}
	summary.TotalRevenue = summary.SalesRevenue + summary.TicketRevenue
	return summary, nil
}

// creditCustomer adds sold tickets to the customer's running count and
// stamps the last purchase. Best-effort: the transaction is already
// persisted, so failures here are logged and swallowed.
func (s *SalesService) creditCustomer(ctx context.Context, customerID string, tickets int, now time.Time) {
	c, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		s.log.Warn().Err(err).Str("customer_id", customerID).Msg("customer credit lookup failed")
		return
	}
	c.Tickets += tickets
	t := now
	c.LastPurchase = &t
	if err := s.customers.Update(ctx, c); err != nil {
		s.log.Warn().Err(err).Str("customer_id", customerID).Msg("customer credit update failed")
	}
}

func ticketQuantity(items []domain.SaleItem) int {
	var n int
	for _, item := range items {
		if item.Category == domain.CategoryIngresso {
			n += item.Quantity
		}
	}
	return n
}

package domain

import (
	"errors"
	"time"
)

var (
	ErrSaleNotFound       = errors.New("sale not found")
	ErrEmptySale          = errors.New("sale must contain at least one item")
	ErrTicketSaleNotFound = errors.New("ticket sale not found")
)

// Sale is a completed point-of-sale transaction.
type Sale struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Customer  string    `json:"customer" bson:"customer"`
	Total     float64   `json:"total" bson:"total"`
	Date      string    `json:"date" bson:"date"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// SaleItem is one line of a sale, denormalized with the product name and
// price at time of sale.
type SaleItem struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	SaleID      string          `json:"sale_id" bson:"sale_id"`
	ProductID   string          `json:"product_id" bson:"product_id"`
	ProductName string          `json:"product_name" bson:"product_name"`
	Price       float64         `json:"price" bson:"price"`
	Quantity    int             `json:"quantity" bson:"quantity"`
	Category    ProductCategory `json:"category" bson:"category"`
}

// TicketSale is a ticket purchase for a scheduled event.
type TicketSale struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Customer   string    `json:"customer" bson:"customer"`
	Event      string    `json:"event" bson:"event"`
	EventDate  string    `json:"event_date" bson:"event_date"`
	Tickets    int       `json:"tickets" bson:"tickets"`
	TicketType string    `json:"ticket_type" bson:"ticket_type"`
	Total      float64   `json:"total" bson:"total"`
	Date       string    `json:"date" bson:"date"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

package domain

import (
	"errors"
	"time"
)

// ProductCategory distinguishes retail goods from entry tickets.
type ProductCategory string

const (
	CategoryProduto  ProductCategory = "produto"
	CategoryIngresso ProductCategory = "ingresso"
)

var (
	ErrProductNotFound        = errors.New("product not found")
	ErrCustomerRecordNotFound = errors.New("customer record not found")
	ErrInsufficientStock      = errors.New("insufficient stock")
)

// Product is a sellable item: a retail product or a ticket type.
type Product struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	Name        string          `json:"name" bson:"name"`
	Description string          `json:"description" bson:"description"`
	Price       float64         `json:"price" bson:"price"`
	Stock       int             `json:"stock" bson:"stock"`
	Category    ProductCategory `json:"category" bson:"category"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
}

// Customer is a registered venue customer.
type Customer struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	Name             string     `json:"name" bson:"name"`
	Email            string     `json:"email" bson:"email"`
	Phone            string     `json:"phone" bson:"phone"`
	Tickets          int        `json:"tickets" bson:"tickets"`
	LastPurchase     *time.Time `json:"last_purchase,omitempty" bson:"last_purchase,omitempty"`
	RegistrationDate string     `json:"registration_date" bson:"registration_date"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
}

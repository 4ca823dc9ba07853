package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/snowonice/venue-api/internal/core/domain"
)

const ticketSalesCollection = "ticket_sales"

// TicketSaleRepository persists event ticket purchases.
type TicketSaleRepository struct {
	collection *mongo.Collection
}

func NewTicketSaleRepository(db *mongo.Database) *TicketSaleRepository {
	return &TicketSaleRepository{collection: db.Collection(ticketSalesCollection)}
}

func (r *TicketSaleRepository) List(ctx context.Context) ([]domain.TicketSale, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list ticket sales: %w: %v", domain.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	var ticketSales []domain.TicketSale
	if err := cursor.All(ctx, &ticketSales); err != nil {
		return nil, fmt.Errorf("decode ticket sales: %w: %v", domain.ErrPersistence, err)
	}
	return ticketSales, nil
}

func (r *TicketSaleRepository) Create(ctx context.Context, ticketSale *domain.TicketSale) error {
	if _, err := r.collection.InsertOne(ctx, ticketSale); err != nil {
		return fmt.Errorf("insert ticket sale: %w: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (r *TicketSaleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete ticket sale %s: %w: %v", id, domain.ErrPersistence, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrTicketSaleNotFound
	}
	return nil
}

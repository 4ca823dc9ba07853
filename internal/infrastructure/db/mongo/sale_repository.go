package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/snowonice/venue-api/internal/core/domain"
)

const (
	salesCollection     = "sales"
	saleItemsCollection = "sale_items"
)

// SaleRepository persists completed transactions. A sale and its line items
// land in separate collections, joined by sale_id.
type SaleRepository struct {
	sales *mongo.Collection
	items *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{
		sales: db.Collection(salesCollection),
		items: db.Collection(saleItemsCollection),
	}
}

func (r *SaleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.sales.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w: %v", domain.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	var sales []domain.Sale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("decode sales: %w: %v", domain.ErrPersistence, err)
	}
	return sales, nil
}

func (r *SaleRepository) Create(ctx context.Context, sale *domain.Sale, items []domain.SaleItem) error {
	if _, err := r.sales.InsertOne(ctx, sale); err != nil {
		return fmt.Errorf("insert sale: %w: %v", domain.ErrPersistence, err)
	}

	docs := make([]interface{}, 0, len(items))
	for i := range items {
		docs = append(docs, items[i])
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := r.items.InsertMany(ctx, docs); err != nil {
		// Remove the header so a failed item write leaves no partial sale.
		_, _ = r.sales.DeleteOne(ctx, bson.M{"_id": sale.ID})
		return fmt.Errorf("insert sale items: %w: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (r *SaleRepository) ItemsBySale(ctx context.Context, saleID string) ([]domain.SaleItem, error) {
	cursor, err := r.items.Find(ctx, bson.M{"sale_id": saleID})
	if err != nil {
		return nil, fmt.Errorf("find sale items %s: %w: %v", saleID, domain.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	var items []domain.SaleItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode sale items: %w: %v", domain.ErrPersistence, err)
	}
	return items, nil
}

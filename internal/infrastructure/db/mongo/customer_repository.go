package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/snowonice/venue-api/internal/core/domain"
)

const customersCollection = "customers"

// CustomerRepository persists the customer register in the customers
// collection.
type CustomerRepository struct {
	collection *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{collection: db.Collection(customersCollection)}
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w: %v", domain.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	var customers []domain.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("decode customers: %w: %v", domain.ErrPersistence, err)
	}
	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerRecordNotFound
		}
		return nil, fmt.Errorf("find customer %s: %w: %v", id, domain.ErrPersistence, err)
	}
	return &customer, nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if _, err := r.collection.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("insert customer: %w: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": customer.ID}, customer)
	if err != nil {
		return fmt.Errorf("update customer %s: %w: %v", customer.ID, domain.ErrPersistence, err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrCustomerRecordNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete customer %s: %w: %v", id, domain.ErrPersistence, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrCustomerRecordNotFound
	}
	return nil
}

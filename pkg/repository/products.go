package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/oiladmin/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductStore is CRUD over catalog documents keyed by product name.
type ProductStore struct {
	collection *mongo.Collection
}

func NewProductStore(repo *MongoRepository) *ProductStore {
	return &ProductStore{
		collection: repo.database.Collection(productsCollection),
	}
}

func (s *ProductStore) List(ctx context.Context) ([]*models.Product, error) {
	cursor, err := s.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (s *ProductStore) Get(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	err := s.collection.FindOne(ctx, bson.M{"_id": name}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

// Upsert writes the whole product document under its name, replacing any
// existing entry with the same name.
func (s *ProductStore) Upsert(ctx context.Context, product *models.Product) error {
	product.PruneTypes()
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": product.Name}, product, opts)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

func (s *ProductStore) Delete(ctx context.Context, name string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

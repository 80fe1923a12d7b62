package repository

import (
	"context"
	"errors"
	"time"

	"github.com/example/oiladmin/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. Sidecar lists (brands, categories, images, slider) live
// on a single document in the settings collection.
const (
	ordersCollection   = "orders"
	productsCollection = "products"
	contactCollection  = "contact_forms"
	settingsCollection = "settings"

	// settingsDocID is the one settings document every screen shares.
	settingsDocID = "others"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("document not found")

// ErrDuplicate is returned when adding a list entry that already exists.
var ErrDuplicate = errors.New("entry already exists")

// ErrIndexRange is returned for list operations given an out-of-range position.
var ErrIndexRange = errors.New("index out of range")

type MongoRepository struct {
	client   *mongo.Client
	database *mongo.Database
	config   *config.MongoDBConfig
}

func NewMongoRepository(cfg *config.MongoDBConfig) (*MongoRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	return &MongoRepository{
		client:   client,
		database: client.Database(cfg.Database),
		config:   cfg,
	}, nil
}

func (m *MongoRepository) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *MongoRepository) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

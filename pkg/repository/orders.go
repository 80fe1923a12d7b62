package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/example/oiladmin/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultOrderLimit = 50

// OrderStore reads and mutates order documents. Orders are created by the
// checkout flow; the admin API never inserts them.
type OrderStore struct {
	collection *mongo.Collection
	nowFunc    func() time.Time
}

func NewOrderStore(repo *MongoRepository) *OrderStore {
	return &OrderStore{
		collection: repo.database.Collection(ordersCollection),
		nowFunc:    time.Now,
	}
}

// ListOrdersOptions bound the order list query. Status filters at the store
// level when concrete; Search filters the fetched page afterwards, so a term
// matching records outside the limit-bounded window will miss them.
type ListOrdersOptions struct {
	Status string
	Search string
	Limit  int64
}

func (s *OrderStore) List(ctx context.Context, opts ListOrdersOptions) ([]*models.Order, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultOrderLimit
	}

	filter := bson.M{}
	if opts.Status != "" && opts.Status != "all" {
		// Stored statuses are lowercase but the filter accepts any case.
		filter["status"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(opts.Status) + "$",
			Options: "i",
		}
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	if opts.Search != "" {
		matched := orders[:0]
		for _, o := range orders {
			if o.MatchesSearch(opts.Search) {
				matched = append(matched, o)
			}
		}
		orders = matched
	}

	return orders, nil
}

func (s *OrderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &order, nil
}

// Delete removes an order permanently. Existence is checked first so a
// missing id surfaces as ErrNotFound; the delete itself is unconditional,
// completed orders included.
func (s *OrderStore) Delete(ctx context.Context, id string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus writes only the status field plus a refreshed updatedAt. Callers
// validate the value before this point.
func (s *OrderStore) SetStatus(ctx context.Context, id, status string) error {
	return s.setField(ctx, id, "status", status)
}

// SetPaymentStatus is the independent write for the payment axis.
func (s *OrderStore) SetPaymentStatus(ctx context.Context, id, paymentStatus string) error {
	return s.setField(ctx, id, "paymentStatus", paymentStatus)
}

func (s *OrderStore) setField(ctx context.Context, id, field, value string) error {
	update := bson.M{"$set": bson.M{
		field:       value,
		"updatedAt": s.nowFunc().UTC(),
	}}
	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update order %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Statistics tallies order counts per status and the summed revenue.
func (s *OrderStore) Statistics(ctx context.Context) (*models.OrderStatistics, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate orders: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status  string  `bson:"_id"`
		Count   int64   `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode order stats: %w", err)
	}

	stats := &models.OrderStatistics{}
	for _, row := range rows {
		stats.TotalOrders += row.Count
		stats.TotalRevenue += row.Revenue
		switch row.Status {
		case models.OrderStatusPending:
			stats.PendingOrders = row.Count
		case models.OrderStatusProcessing:
			stats.ProcessingOrders = row.Count
		case models.OrderStatusCompleted:
			stats.CompletedOrders = row.Count
		case models.OrderStatusCancelled:
			stats.CancelledOrders = row.Count
		}
	}
	return stats, nil
}

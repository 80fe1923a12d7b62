package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/oiladmin/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContactStore reads and mutates contact form submissions.
type ContactStore struct {
	collection *mongo.Collection
	nowFunc    func() time.Time
}

func NewContactStore(repo *MongoRepository) *ContactStore {
	return &ContactStore{
		collection: repo.database.Collection(contactCollection),
		nowFunc:    time.Now,
	}
}

func (s *ContactStore) List(ctx context.Context, status string) ([]*models.ContactForm, error) {
	filter := bson.M{}
	if status != "" && status != "all" {
		filter["status"] = status
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find contact forms: %w", err)
	}
	defer cursor.Close(ctx)

	var forms []*models.ContactForm
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, fmt.Errorf("decode contact forms: %w", err)
	}
	return forms, nil
}

func (s *ContactStore) Get(ctx context.Context, id string) (*models.ContactForm, error) {
	var form models.ContactForm
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find contact form: %w", err)
	}
	return &form, nil
}

// ContactUpdate carries the fields the details sheet can change in one save.
// Nil string pointers leave the stored value untouched.
type ContactUpdate struct {
	Status       string
	ContactedVia *string
	AdminNotes   *string
	AssignedTo   *string
}

// Update writes the status plus any provided detail fields. Moving into the
// contacted status also flips the contacted flag and stamps contactedAt.
func (s *ContactStore) Update(ctx context.Context, id string, upd ContactUpdate) error {
	now := s.nowFunc().UTC()
	set := bson.M{
		"status":    upd.Status,
		"updatedAt": now,
	}
	if upd.Status == models.ContactStatusContacted {
		set["contacted"] = true
		set["contactedAt"] = now
	}
	if upd.ContactedVia != nil {
		set["contactedVia"] = *upd.ContactedVia
	}
	if upd.AdminNotes != nil {
		set["adminNotes"] = *upd.AdminNotes
	}
	if upd.AssignedTo != nil {
		set["assignedTo"] = *upd.AssignedTo
	}

	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update contact form: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Archive is the one-click shortcut on the list screen.
func (s *ContactStore) Archive(ctx context.Context, id string) error {
	return s.Update(ctx, id, ContactUpdate{Status: models.ContactStatusArchived})
}

func (s *ContactStore) Delete(ctx context.Context, id string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete contact form: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Statistics tallies submissions per status.
func (s *ContactStore) Statistics(ctx context.Context) (*models.ContactFormStatistics, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate contact forms: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode contact stats: %w", err)
	}

	stats := &models.ContactFormStatistics{}
	for _, row := range rows {
		stats.TotalMessages += row.Count
		switch row.Status {
		case models.ContactStatusNew:
			stats.NewMessages = row.Count
		case models.ContactStatusContacted:
			stats.ContactedMessages = row.Count
		case models.ContactStatusArchived:
			stats.ArchivedMessages = row.Count
		}
	}
	return stats, nil
}

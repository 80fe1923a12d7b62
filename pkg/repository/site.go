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

const (
	settingsCacheKey = "site:settings"
	settingsCacheTTL = 10 * time.Minute
)

// SiteStore maintains the single settings document: brand and category
// sidecar lists, the media library, and the homepage slider. Reads go
// through Redis when a cache is configured; every write rewrites the
// affected list wholesale (last write wins) and invalidates the cache.
type SiteStore struct {
	collection *mongo.Collection
	cache      *RedisRepository
}

// NewSiteStore builds the store. cache may be nil to go straight to Mongo.
func NewSiteStore(repo *MongoRepository, cache *RedisRepository) *SiteStore {
	return &SiteStore{
		collection: repo.database.Collection(settingsCollection),
		cache:      cache,
	}
}

func (s *SiteStore) Get(ctx context.Context) (*models.SiteSettings, error) {
	if s.cache != nil {
		var cached models.SiteSettings
		if err := s.cache.GetJSON(ctx, settingsCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	var settings models.SiteSettings
	err := s.collection.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// A fresh database has no settings document yet. Every list
			// starts empty and the first write upserts the document.
			return &models.SiteSettings{ID: settingsDocID}, nil
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, settingsCacheKey, &settings, settingsCacheTTL)
	}
	return &settings, nil
}

func (s *SiteStore) setList(ctx context.Context, field string, list []string) error {
	opts := options.Update().SetUpsert(true)
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": settingsDocID},
		bson.M{"$set": bson.M{field: list}},
		opts,
	)
	if err != nil {
		return fmt.Errorf("update settings %s: %w", field, err)
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, settingsCacheKey)
	}
	return nil
}

// AddBrand appends a brand name, rejecting duplicates. A name deleted
// earlier can always be re-added.
func (s *SiteStore) AddBrand(ctx context.Context, name string) ([]string, error) {
	return s.addListEntry(ctx, "brands", name)
}

func (s *SiteStore) RemoveBrand(ctx context.Context, name string) ([]string, error) {
	return s.removeListEntry(ctx, "brands", name)
}

func (s *SiteStore) AddCategory(ctx context.Context, name string) ([]string, error) {
	return s.addListEntry(ctx, "category", name)
}

func (s *SiteStore) RemoveCategory(ctx context.Context, name string) ([]string, error) {
	return s.removeListEntry(ctx, "category", name)
}

func (s *SiteStore) addListEntry(ctx context.Context, field, name string) ([]string, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	list := s.listFor(settings, field)
	if models.Contains(list, name) {
		return nil, ErrDuplicate
	}
	updated := append(append([]string{}, list...), name)
	if err := s.setList(ctx, field, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *SiteStore) removeListEntry(ctx context.Context, field, name string) ([]string, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	updated, found := models.Remove(s.listFor(settings, field), name)
	if !found {
		return nil, ErrNotFound
	}
	if err := s.setList(ctx, field, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *SiteStore) listFor(settings *models.SiteSettings, field string) []string {
	switch field {
	case "brands":
		return settings.Brands
	case "category":
		return settings.Categories
	case "images":
		return settings.Images
	default:
		return settings.HomepageSlider
	}
}

// AppendImages adds the uploaded URLs to the media library in one write.
func (s *SiteStore) AppendImages(ctx context.Context, urls []string) ([]string, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	updated := append(append([]string{}, settings.Images...), urls...)
	if err := s.setList(ctx, "images", updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveImages drops the entries at the given indices in one write.
func (s *SiteStore) RemoveImages(ctx context.Context, indices []int) ([]string, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	updated := models.RemoveIndices(settings.Images, indices)
	if err := s.setList(ctx, "images", updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// AddToSlider appends a URL to the homepage slider, rejecting one already
// present.
func (s *SiteStore) AddToSlider(ctx context.Context, url string) ([]string, error) {
	return s.addListEntry(ctx, "homepageSlider", url)
}

// RemoveFromSlider drops the entry at index.
func (s *SiteStore) RemoveFromSlider(ctx context.Context, index int) ([]string, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(settings.HomepageSlider) {
		return nil, ErrNotFound
	}
	updated := models.RemoveIndices(settings.HomepageSlider, []int{index})
	if err := s.setList(ctx, "homepageSlider", updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// ReorderSlider moves the entry at from to position to and persists the
// whole ordered list. Concurrent reorders are last write wins.
func (s *SiteStore) ReorderSlider(ctx context.Context, from, to int) ([]string, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if from < 0 || from >= len(settings.HomepageSlider) || to < 0 || to >= len(settings.HomepageSlider) {
		return nil, ErrIndexRange
	}
	updated := models.MoveIndex(settings.HomepageSlider, from, to)
	if err := s.setList(ctx, "homepageSlider", updated); err != nil {
		return nil, err
	}
	return updated, nil
}

package data

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Entry is implemented by the pointer types of every ordered content
// section (projects, skills, experiences, education, hobbies).
type Entry interface {
	meta() *Meta
	Validate() error
}

// ContentStore is the CRUD store shared by the ordered content sections.
// P is always *T, e.g. ContentStore[Project, *Project].
type ContentStore[T any, P interface {
	*T
	Entry
}] struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewContentStore returns a store for one content collection.
func NewContentStore[T any, P interface {
	*T
	Entry
}](coll *mongo.Collection) *ContentStore[T, P] {
	return &ContentStore[T, P]{coll: coll, now: time.Now}
}

// List returns every entry sorted by display order.
func (s *ContentStore[T, P]) List(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "created_at", Value: 1},
	})

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns one entry.
func (s *ContentStore[T, P]) Get(ctx context.Context, id bson.ObjectID) (*T, error) {
	var item T
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, mapErr(err)
	}
	return &item, nil
}

// Create validates and inserts item, filling in its id and timestamps.
func (s *ContentStore[T, P]) Create(ctx context.Context, item *T) error {
	p := P(item)
	if err := p.Validate(); err != nil {
		return err
	}

	m := p.meta()
	now := s.now()
	m.ID = bson.ObjectID{}
	m.CreatedAt = now
	m.UpdatedAt = now

	result, err := s.coll.InsertOne(ctx, item)
	if err != nil {
		return mapErr(err)
	}
	m.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// Update validates item and replaces the stored entry, keeping its
// creation time.
func (s *ContentStore[T, P]) Update(ctx context.Context, id bson.ObjectID, item *T) error {
	p := P(item)
	if err := p.Validate(); err != nil {
		return err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	m := p.meta()
	m.ID = id
	m.CreatedAt = P(existing).meta().CreatedAt
	m.UpdatedAt = s.now()

	result, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, item)
	if err != nil {
		return mapErr(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an entry and returns it, so callers can clean up any
// uploaded files it referenced.
func (s *ContentStore[T, P]) Delete(ctx context.Context, id bson.ObjectID) (*T, error) {
	var item T
	if err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, mapErr(err)
	}
	return &item, nil
}

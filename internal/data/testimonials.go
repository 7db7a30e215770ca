package data

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// TestimonialsStore provides testimonial database operations.
type TestimonialsStore struct {
	coll *mongo.Collection
}

func NewTestimonialsStore(coll *mongo.Collection) *TestimonialsStore {
	return &TestimonialsStore{coll: coll}
}

// SaveTestimonial inserts a submission as pending.
func (s *TestimonialsStore) SaveTestimonial(ctx context.Context, t *Testimonial) (*Testimonial, error) {
	saved := *t
	saved.ID = bson.ObjectID{}
	saved.Approved = false
	saved.CreatedAt = time.Now()

	result, err := s.coll.InsertOne(ctx, &saved)
	if err != nil {
		return nil, err
	}
	saved.ID = result.InsertedID.(bson.ObjectID)
	return &saved, nil
}

// ListApproved returns the testimonials shown on the public site.
func (s *TestimonialsStore) ListApproved(ctx context.Context, limit int64) ([]*Testimonial, error) {
	return s.find(ctx, bson.M{"approved": true}, limit)
}

// ListAll returns every testimonial, pending ones included.
func (s *TestimonialsStore) ListAll(ctx context.Context, limit int64) ([]*Testimonial, error) {
	return s.find(ctx, bson.M{}, limit)
}

// SetApproval approves or hides a testimonial and returns the updated
// document.
func (s *TestimonialsStore) SetApproval(ctx context.Context, id bson.ObjectID, approved bool) (*Testimonial, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var t Testimonial
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"approved": approved}}, opts).Decode(&t)
	if err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

// DeleteTestimonial removes a testimonial.
func (s *TestimonialsStore) DeleteTestimonial(ctx context.Context, id bson.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TestimonialsStore) find(ctx context.Context, filter bson.M, limit int64) ([]*Testimonial, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []*Testimonial{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

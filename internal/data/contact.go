package data

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const contactInfoID = "contact"

// ContactInfoStore keeps the singleton contact info document.
type ContactInfoStore struct {
	coll *mongo.Collection
}

func NewContactInfoStore(coll *mongo.Collection) *ContactInfoStore {
	return &ContactInfoStore{coll: coll}
}

// Get returns the contact info, or ErrNotFound before it was first saved.
func (s *ContactInfoStore) Get(ctx context.Context) (*ContactInfo, error) {
	var info ContactInfo
	if err := s.coll.FindOne(ctx, bson.M{"_id": contactInfoID}).Decode(&info); err != nil {
		return nil, mapErr(err)
	}
	return &info, nil
}

// Upsert validates and stores info, replacing any previous version.
func (s *ContactInfoStore) Upsert(ctx context.Context, info *ContactInfo) (*ContactInfo, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	saved := *info
	saved.ID = contactInfoID
	saved.UpdatedAt = time.Now()

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": contactInfoID}, &saved, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

package data

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Languages a resume can be uploaded in.
var ResumeLanguages = map[string]bool{"en": true, "fr": true}

type ResumesStore struct {
	coll *mongo.Collection
}

func NewResumesStore(coll *mongo.Collection) *ResumesStore {
	return &ResumesStore{coll: coll}
}

// Create records an uploaded resume. New resumes start inactive.
func (s *ResumesStore) Create(ctx context.Context, r *Resume) (*Resume, error) {
	saved := *r
	saved.ID = bson.ObjectID{}
	saved.Active = false
	saved.CreatedAt = time.Now()

	result, err := s.coll.InsertOne(ctx, &saved)
	if err != nil {
		return nil, err
	}
	saved.ID = result.InsertedID.(bson.ObjectID)
	return &saved, nil
}

// List returns every resume, newest first.
func (s *ResumesStore) List(ctx context.Context) ([]*Resume, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []*Resume{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Active returns the active resume for a language.
func (s *ResumesStore) Active(ctx context.Context, language string) (*Resume, error) {
	var r Resume
	err := s.coll.FindOne(ctx, bson.M{"language": language, "active": true}).Decode(&r)
	if err != nil {
		return nil, mapErr(err)
	}
	return &r, nil
}

// Activate makes id the active resume of its language and deactivates the
// others.
func (s *ResumesStore) Activate(ctx context.Context, id bson.ObjectID) (*Resume, error) {
	var target Resume
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&target); err != nil {
		return nil, mapErr(err)
	}

	_, err := s.coll.UpdateMany(ctx,
		bson.M{"language": target.Language, "_id": bson.M{"$ne": id}},
		bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		return nil, err
	}
	if _, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"active": true}}); err != nil {
		return nil, err
	}
	target.Active = true
	return &target, nil
}

// Delete removes a resume record and returns it so its file can be deleted.
func (s *ResumesStore) Delete(ctx context.Context, id bson.ObjectID) (*Resume, error) {
	var r Resume
	if err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		return nil, mapErr(err)
	}
	return &r, nil
}

package data

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MessagesStore provides contact message database operations.
type MessagesStore struct {
	coll *mongo.Collection
}

// NewMessagesStore returns a MessagesStore using given collection.
func NewMessagesStore(coll *mongo.Collection) *MessagesStore {
	return &MessagesStore{coll: coll}
}

// SaveMessage inserts a message built by NewMessage and returns it with its
// id and creation time set.
func (m *MessagesStore) SaveMessage(ctx context.Context, msg *Message) (*Message, error) {
	saved := *msg
	saved.ID = bson.ObjectID{}
	saved.Read = false
	saved.CreatedAt = time.Now()

	result, err := m.coll.InsertOne(ctx, &saved)
	if err != nil {
		return nil, err
	}
	saved.ID = result.InsertedID.(bson.ObjectID)
	return &saved, nil
}

// ListMessages returns the newest messages first. With unreadOnly the limit
// applies to unread messages only.
func (m *MessagesStore) ListMessages(ctx context.Context, limit int64, unreadOnly bool) ([]*Message, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	filter := bson.M{}
	if unreadOnly {
		filter["read"] = false
	}
	cursor, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []*Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// CountUnread returns how many messages have not been marked read.
func (m *MessagesStore) CountUnread(ctx context.Context) (int64, error) {
	return m.coll.CountDocuments(ctx, bson.M{"read": false})
}

// MarkRead sets the read flag of a message.
func (m *MessagesStore) MarkRead(ctx context.Context, id bson.ObjectID, read bool) error {
	result, err := m.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": read}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMessage removes a message.
func (m *MessagesStore) DeleteMessage(ctx context.Context, id bson.ObjectID) error {
	result, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Package data provides DB models and stores.
package data

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/PaulBabatuyi/portfolio/internal/normalize"
)

// UsersStore performs user DB operations.
type UsersStore struct {
	coll *mongo.Collection
}

// NewUsersStore returns a UsersStore using the provided collection.
func NewUsersStore(coll *mongo.Collection) *UsersStore {
	return &UsersStore{coll: coll}
}

// CreateUser inserts a new user document with an already hashed password.
func (u *UsersStore) CreateUser(ctx context.Context, email, hashedPassword, role string) (*User, error) {
	now := time.Now()
	user := &User{
		Email:     normalize.Email(email),
		Password:  hashedPassword,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := u.coll.InsertOne(ctx, user)
	if err != nil {
		return nil, mapErr(err)
	}
	user.ID = result.InsertedID.(bson.ObjectID)
	return user, nil
}

// EnsureAdmin creates the admin account or resets its password and role.
// It reports whether a new document was inserted.
func (u *UsersStore) EnsureAdmin(ctx context.Context, email, hashedPassword, role string) (bool, error) {
	now := time.Now()
	filter := bson.M{"email": normalize.Email(email)}
	update := bson.M{
		"$set": bson.M{
			"password":   hashedPassword,
			"role":       role,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	result, err := u.coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return false, mapErr(err)
	}
	return result.UpsertedCount > 0, nil
}

// GetUserByEmail finds a user by email.
func (u *UsersStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := u.coll.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&user)
	if err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

// GetUserByID finds a user by ObjectID.
func (u *UsersStore) GetUserByID(ctx context.Context, id bson.ObjectID) (*User, error) {
	var user User
	if err := u.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

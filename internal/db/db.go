// Package db manages the MongoDB connection and collections.
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Collection names.
const (
	Users        = "users"
	Messages     = "messages"
	Testimonials = "testimonials"
	Projects     = "projects"
	Skills       = "skills"
	Experiences  = "experiences"
	Education    = "education"
	Hobbies      = "hobbies"
	Resumes      = "resumes"
	ContactInfo  = "contact_info"
)

// ContentCollections are the ordered portfolio sections edited from the
// admin dashboard.
var ContentCollections = []string{Projects, Skills, Experiences, Education, Hobbies}

// Client wraps mongo.Client and exposes collections.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB, pings it and returns a Client bound to database.
func New(ctx context.Context, mongoURI, database string) (*Client, error) {
	opts := options.Client().
		ApplyURI(mongoURI).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Collection returns the named collection.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Ping checks the connection, used by the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// Drop removes the whole database. Only used by integration tests.
func (c *Client) Drop(ctx context.Context) error {
	return c.db.Drop(ctx)
}

// CreateIndexes creates the indexes the stores query by.
func (c *Client) CreateIndexes(ctx context.Context) error {
	_, err := c.Collection(Users).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}

	_, err = c.Collection(Messages).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create messages index: %w", err)
	}

	_, err = c.Collection(Testimonials).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "approved", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create testimonials index: %w", err)
	}

	for _, name := range ContentCollections {
		_, err = c.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "order", Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("failed to create %s index: %w", name, err)
		}
	}

	_, err = c.Collection(Resumes).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "active", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create resumes index: %w", err)
	}
	return nil
}

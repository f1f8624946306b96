package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/observability"
)

// MongoStore persists layouts in a MongoDB collection, one document per
// layout keyed by its name.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at the given URI and uses the
// "layouts" collection of the named database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	coll := client.Database(database).Collection("layouts")
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := coll.Indexes().CreateOne(ctx, idx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create layout index: %w", err)
	}

	return &MongoStore{client: client, coll: coll}, nil
}

// Get retrieves a layout by name.
func (s *MongoStore) Get(ctx context.Context, name string) (*layout.Layout, error) {
	var l layout.Layout
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		observability.Store().OnMiss("mongo", name)
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	observability.Store().OnHit("mongo", name)
	return &l, nil
}

// Set stores a layout under its name.
func (s *MongoStore) Set(ctx context.Context, l *layout.Layout) error {
	if !ValidName(l.Name) {
		return ErrInvalidName
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"name": l.Name}, l, opts); err != nil {
		return err
	}
	observability.Store().OnSet("mongo", l.Name)
	return nil
}

// Delete removes a layout by name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all stored layout names in sorted order.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"name": 1}).
		SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var doc struct {
			Name string `bson:"name"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		names = append(names, doc.Name)
	}
	return names, cur.Err()
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)

package store

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore implements Store on top of a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Disconnect closes the underlying client connection.
func (s *MongoStore) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func (s *MongoStore) Query(ctx context.Context, collection string, filter Filter, limit int64, dest any) error {
	opts := options.Find().SetLimit(limit)

	cursor, err := s.db.Collection(collection).Find(ctx, filter.bson(), opts)
	if err != nil {
		return fmt.Errorf("query %s: %w", collection, err)
	}

	if err := cursor.All(ctx, dest); err != nil {
		return fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) FindByID(ctx context.Context, collection, id string, dest any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(dest)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find %s by id: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, filter.bson())
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

func (s *MongoStore) Available() bool {
	return true
}

// bson compiles the filter to a MongoDB filter document. Contains entries
// become anchored-nowhere case-insensitive regexes with the needle quoted,
// so user input never acts as a pattern.
func (f Filter) bson() bson.M {
	out := bson.M{}
	for field, value := range f.Equal {
		out[field] = value
	}
	for field, needle := range f.Contains {
		out[field] = bson.M{"$regex": regexp.QuoteMeta(needle), "$options": "i"}
	}
	return out
}

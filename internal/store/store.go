// Package store wraps the generic collection operations the seeder is built
// on: sequential ID allocation, insert/find/update-many helpers, soft
// deletes, and schema-validated collection creation.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, singular as in the eduhub_db layout.
const (
	UsersCollection       = "user"
	CoursesCollection     = "course"
	LessonsCollection     = "lesson"
	AssignmentsCollection = "assignment"
	SubmissionsCollection = "submission"
	EnrollmentsCollection = "enrollment"
)

// Collections lists every collection in creation order.
var Collections = []string{
	UsersCollection,
	CoursesCollection,
	EnrollmentsCollection,
	LessonsCollection,
	AssignmentsCollection,
	SubmissionsCollection,
}

type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// NextID returns the next available sequential ID for a collection: the
// highest value of idField plus one, or 1 when the collection is empty.
func (s *Store) NextID(ctx context.Context, collection, idField string) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: idField, Value: -1}})

	var last bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to fetch last %s id: %w", collection, err)
	}

	return asInt(last[idField]) + 1, nil
}

// CreateDocument inserts a single document and returns the inserted _id as
// a hex string.
func (s *Store) CreateDocument(ctx context.Context, collection string, document interface{}) (string, error) {
	result, err := s.db.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return "", fmt.Errorf("failed to insert document into %q: %w", collection, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", result.InsertedID), nil
}

// CreateDocuments inserts multiple documents at once and returns the
// inserted _ids as hex strings.
func (s *Store) CreateDocuments(ctx context.Context, collection string, documents []interface{}) ([]string, error) {
	result, err := s.db.Collection(collection).InsertMany(ctx, documents)
	if err != nil {
		return nil, fmt.Errorf("failed to insert documents into %q: %w", collection, err)
	}

	ids := make([]string, 0, len(result.InsertedIDs))
	for _, id := range result.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			ids = append(ids, oid.Hex())
		} else {
			ids = append(ids, fmt.Sprintf("%v", id))
		}
	}
	return ids, nil
}

// ReadDocuments returns all documents matching the filter.
func (s *Store) ReadDocuments(ctx context.Context, collection string, filter interface{}) ([]bson.M, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents from %q: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var documents []bson.M
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, fmt.Errorf("failed to decode documents from %q: %w", collection, err)
	}
	return documents, nil
}

// UpdateDocuments applies the update to every document matching the filter
// and returns the number of documents modified.
func (s *Store) UpdateDocuments(ctx context.Context, collection string, filter, update interface{}) (int64, error) {
	result, err := s.db.Collection(collection).UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to update documents in %q: %w", collection, err)
	}
	return result.ModifiedCount, nil
}

// SoftDelete marks matching documents inactive instead of removing them.
func (s *Store) SoftDelete(ctx context.Context, collection string, filter interface{}) (int64, error) {
	return s.UpdateDocuments(ctx, collection, filter, softDeleteUpdate(time.Now()))
}

func softDeleteUpdate(now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"isActive":  false,
		"updatedAt": now,
	}}
}

// CreateCollectionWithSchema creates a collection with a strict $jsonSchema
// validator. An already existing collection is not an error, so the seeder
// can be re-run against a provisioned database.
func (s *Store) CreateCollectionWithSchema(ctx context.Context, collection string, schema bson.M) error {
	opts := options.CreateCollection().
		SetValidator(bson.M{"$jsonSchema": schema}).
		SetValidationLevel("strict")

	err := s.db.CreateCollection(ctx, collection, opts)
	if err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceExists" {
			return nil
		}
		return fmt.Errorf("failed to create collection %q: %w", collection, err)
	}
	return nil
}

// asInt normalizes the numeric types the driver may decode an ID into.
func asInt(value interface{}) int {
	switch n := value.(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

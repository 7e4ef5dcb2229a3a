package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Index model construction is separated from creation so the key shapes can
// be verified without a running server.

func identityIndexModels() map[string][]mongo.IndexModel {
	unique := options.Index().SetUnique(true)

	return map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique},
		},
		EnrollmentsCollection: {
			{Keys: bson.D{{Key: "enrollmentId", Value: 1}}, Options: unique},
			// One enrollment per student per course.
			{Keys: bson.D{{Key: "courseId", Value: 1}, {Key: "studentId", Value: 1}}, Options: unique},
		},
		LessonsCollection: {
			{Keys: bson.D{{Key: "lessonId", Value: 1}}, Options: unique},
		},
		AssignmentsCollection: {
			{Keys: bson.D{{Key: "assignmentId", Value: 1}}, Options: unique},
		},
		SubmissionsCollection: {
			{Keys: bson.D{{Key: "submissionId", Value: 1}}, Options: unique},
		},
	}
}

func queryIndexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CoursesCollection: {
			{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "category", Value: 1}}},
		},
		AssignmentsCollection: {
			{Keys: bson.D{{Key: "dueDate", Value: 1}}},
		},
		EnrollmentsCollection: {
			{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "courseId", Value: 1}}},
		},
	}
}

// EnsureIdentityIndexes creates the unique indexes that protect the
// per-collection sequential IDs, plus the compound index that prevents a
// student from enrolling in the same course twice.
func (s *Store) EnsureIdentityIndexes(ctx context.Context) error {
	return s.createIndexes(ctx, identityIndexModels())
}

// EnsureQueryIndexes creates the indexes backing the lookup patterns the
// demo exercises: email lookups, title/category search, due-date windows,
// and student-course enrollment scans.
func (s *Store) EnsureQueryIndexes(ctx context.Context) error {
	return s.createIndexes(ctx, queryIndexModels())
}

func (s *Store) createIndexes(ctx context.Context, byCollection map[string][]mongo.IndexModel) error {
	for collection, models := range byCollection {
		if _, err := s.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %q: %w", collection, err)
		}
	}
	return nil
}

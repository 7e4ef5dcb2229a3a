package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  int
	}{
		{"int32", int32(7), 7},
		{"int64", int64(42), 42},
		{"float64", float64(16), 16},
		{"int", 3, 3},
		{"string falls back to zero", "16", 0},
		{"nil falls back to zero", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, asInt(tt.value))
		})
	}
}

func TestSoftDeleteUpdate(t *testing.T) {
	now := time.Date(2023, time.September, 20, 12, 0, 0, 0, time.UTC)
	update := softDeleteUpdate(now)

	assert.Equal(t, bson.M{"$set": bson.M{
		"isActive":  false,
		"updatedAt": now,
	}}, update)
}

func TestIdentityIndexModels(t *testing.T) {
	byCollection := identityIndexModels()

	idKeys := map[string]string{
		UsersCollection:       "userId",
		LessonsCollection:     "lessonId",
		AssignmentsCollection: "assignmentId",
		SubmissionsCollection: "submissionId",
	}
	for collection, key := range idKeys {
		models := byCollection[collection]
		require.Len(t, models, 1, collection)
		assert.Equal(t, bson.D{{Key: key, Value: 1}}, models[0].Keys)
		require.NotNil(t, models[0].Options.Unique, collection)
		assert.True(t, *models[0].Options.Unique, collection)
	}

	enrollment := byCollection[EnrollmentsCollection]
	require.Len(t, enrollment, 2)
	assert.Equal(t, bson.D{{Key: "enrollmentId", Value: 1}}, enrollment[0].Keys)
	assert.Equal(t, bson.D{{Key: "courseId", Value: 1}, {Key: "studentId", Value: 1}}, enrollment[1].Keys,
		"one enrollment per student per course")
	for i, model := range enrollment {
		require.NotNil(t, model.Options.Unique, "enrollment index %d", i)
		assert.True(t, *model.Options.Unique, "enrollment index %d", i)
	}
}

func TestQueryIndexModels(t *testing.T) {
	byCollection := queryIndexModels()

	email := byCollection[UsersCollection]
	require.Len(t, email, 1)
	assert.Equal(t, bson.D{{Key: "email", Value: 1}}, email[0].Keys)
	require.NotNil(t, email[0].Options.Unique)
	assert.True(t, *email[0].Options.Unique)

	title := byCollection[CoursesCollection]
	require.Len(t, title, 1)
	assert.Equal(t, bson.D{{Key: "title", Value: "text"}, {Key: "category", Value: 1}}, title[0].Keys)

	due := byCollection[AssignmentsCollection]
	require.Len(t, due, 1)
	assert.Equal(t, bson.D{{Key: "dueDate", Value: 1}}, due[0].Keys)

	scan := byCollection[EnrollmentsCollection]
	require.Len(t, scan, 1)
	assert.Equal(t, bson.D{{Key: "studentId", Value: 1}, {Key: "courseId", Value: 1}}, scan[0].Keys)
	assert.Nil(t, scan[0].Options, "enrollment scan index is not unique")
}

func TestCollectionsOrder(t *testing.T) {
	assert.Equal(t, []string{
		UsersCollection,
		CoursesCollection,
		EnrollmentsCollection,
		LessonsCollection,
		AssignmentsCollection,
		SubmissionsCollection,
	}, Collections)
}

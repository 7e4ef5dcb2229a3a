// Package seed holds the fixed eduhub sample dataset and inserts it into
// the database.
package seed

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/store"
)

// DefaultPassword is the development credential every seeded user receives,
// stored bcrypt-hashed.
const DefaultPassword = "eduhub-dev-password"

// Populate inserts the full sample dataset and returns the number of
// documents inserted per collection.
func Populate(ctx context.Context, st *store.Store) (map[string]int, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := Users()
	for i := range users {
		users[i].Password = string(hashed)
	}

	datasets := []struct {
		collection string
		documents  []interface{}
	}{
		{store.UsersCollection, toDocuments(users)},
		{store.CoursesCollection, toDocuments(Courses())},
		{store.EnrollmentsCollection, toDocuments(Enrollments())},
		{store.LessonsCollection, toDocuments(Lessons())},
		{store.AssignmentsCollection, toDocuments(Assignments())},
		{store.SubmissionsCollection, toDocuments(Submissions())},
	}

	counts := make(map[string]int, len(datasets))
	for _, dataset := range datasets {
		ids, err := st.CreateDocuments(ctx, dataset.collection, dataset.documents)
		if err != nil {
			return counts, fmt.Errorf("failed to seed %q: %w", dataset.collection, err)
		}
		counts[dataset.collection] = len(ids)
	}
	return counts, nil
}

func toDocuments[T any](items []T) []interface{} {
	documents := make([]interface{}, len(items))
	for i, item := range items {
		documents[i] = item
	}
	return documents
}

// at builds the dataset timestamps; the sample data is pinned to UTC.
func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// Package queries implements the find-based reads demonstrated against the
// seeded dataset.
package queries

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/models"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/store"
)

type Queries struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Queries {
	return &Queries{db: db}
}

// ActiveStudents returns every user with the student role that has not been
// soft-deleted.
func (q *Queries) ActiveStudents(ctx context.Context) ([]models.User, error) {
	return q.findUsers(ctx, ActiveStudentsFilter())
}

// CoursesByInstructor returns the courses taught by the given instructor.
func (q *Queries) CoursesByInstructor(ctx context.Context, instructorID int) ([]models.Course, error) {
	return q.findCourses(ctx, CoursesByInstructorFilter(instructorID))
}

// CoursesByCategory returns all courses in a category.
func (q *Queries) CoursesByCategory(ctx context.Context, category string) ([]models.Course, error) {
	return q.findCourses(ctx, CoursesByCategoryFilter(category))
}

// EnrollmentsByCourse returns the enrollments for a course, i.e. the
// students taking it.
func (q *Queries) EnrollmentsByCourse(ctx context.Context, courseID int) ([]models.Enrollment, error) {
	cursor, err := q.db.Collection(store.EnrollmentsCollection).Find(ctx, EnrollmentsByCourseFilter(courseID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enrollments: %w", err)
	}
	defer cursor.Close(ctx)

	var enrollments []models.Enrollment
	if err := cursor.All(ctx, &enrollments); err != nil {
		return nil, fmt.Errorf("error decoding enrollments: %w", err)
	}
	return enrollments, nil
}

// SearchCoursesByTitle performs a case-insensitive partial match on course
// titles.
func (q *Queries) SearchCoursesByTitle(ctx context.Context, term string) ([]models.Course, error) {
	return q.findCourses(ctx, TitleSearchFilter(term))
}

// CoursesInPriceRange returns courses priced within [min, max].
func (q *Queries) CoursesInPriceRange(ctx context.Context, min, max float64) ([]models.Course, error) {
	return q.findCourses(ctx, PriceRangeFilter(min, max))
}

// UsersJoinedSince returns users who joined on or after the given time.
func (q *Queries) UsersJoinedSince(ctx context.Context, since time.Time) ([]models.User, error) {
	return q.findUsers(ctx, JoinedSinceFilter(since))
}

// CoursesWithAnyTag returns courses that carry at least one of the tags.
func (q *Queries) CoursesWithAnyTag(ctx context.Context, tags []string) ([]models.Course, error) {
	return q.findCourses(ctx, TaggedAnyFilter(tags))
}

// AssignmentsDueBetween returns assignments whose due date falls within the
// window.
func (q *Queries) AssignmentsDueBetween(ctx context.Context, from, to time.Time) ([]models.Assignment, error) {
	cursor, err := q.db.Collection(store.AssignmentsCollection).Find(ctx, DueBetweenFilter(from, to))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("error decoding assignments: %w", err)
	}
	return assignments, nil
}

func (q *Queries) findUsers(ctx context.Context, filter bson.M) ([]models.User, error) {
	cursor, err := q.db.Collection(store.UsersCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}
	return users, nil
}

func (q *Queries) findCourses(ctx context.Context, filter bson.M) ([]models.Course, error) {
	cursor, err := q.db.Collection(store.CoursesCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("error decoding courses: %w", err)
	}
	return courses, nil
}

// Package reports runs the aggregation pipelines that derive statistics
// from the seeded data: enrollment counts, category ratings, and per-student
// grade averages.
package reports

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/store"
)

type CourseEnrollments struct {
	CourseID         int `bson:"_id"`
	TotalEnrollments int `bson:"totalEnrollments"`
}

type CategoryRating struct {
	Category      string  `bson:"_id"`
	AverageRating float64 `bson:"averageRating"`
}

type StudentAverage struct {
	StudentID    int     `bson:"_id"`
	AverageGrade float64 `bson:"averageGrade"`
}

type Reports struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Reports {
	return &Reports{db: db}
}

// EnrollmentsPerCourse counts enrollments grouped by course.
func (r *Reports) EnrollmentsPerCourse(ctx context.Context) ([]CourseEnrollments, error) {
	cursor, err := r.db.Collection(store.EnrollmentsCollection).Aggregate(ctx, EnrollmentsPerCoursePipeline())
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate enrollments per course: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []CourseEnrollments
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("error decoding enrollment statistics: %w", err)
	}
	return stats, nil
}

// AverageRatingByCategory averages review rates grouped by course category,
// highest first.
func (r *Reports) AverageRatingByCategory(ctx context.Context) ([]CategoryRating, error) {
	cursor, err := r.db.Collection(store.CoursesCollection).Aggregate(ctx, AverageRatingByCategoryPipeline())
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings by category: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []CategoryRating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, fmt.Errorf("error decoding category ratings: %w", err)
	}
	return ratings, nil
}

// AverageGradePerStudent joins enrollments with their submissions and
// averages the grades per student, highest first.
func (r *Reports) AverageGradePerStudent(ctx context.Context) ([]StudentAverage, error) {
	cursor, err := r.db.Collection(store.EnrollmentsCollection).Aggregate(ctx, AverageGradePerStudentPipeline())
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate grades per student: %w", err)
	}
	defer cursor.Close(ctx)

	var averages []StudentAverage
	if err := cursor.All(ctx, &averages); err != nil {
		return nil, fmt.Errorf("error decoding student averages: %w", err)
	}
	return averages, nil
}

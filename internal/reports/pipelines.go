package reports

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/store"
)

// EnrollmentsPerCoursePipeline groups enrollments by course and counts them.
func EnrollmentsPerCoursePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$courseId"},
				{Key: "totalEnrollments", Value: bson.D{{Key: "$sum", Value: 1}}},
			}},
		},
	}
}

// AverageRatingByCategoryPipeline averages course review rates per category
// and sorts by rating descending.
func AverageRatingByCategoryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$category"},
				{Key: "averageRating", Value: bson.D{{Key: "$avg", Value: "$reviewRate"}}},
			}},
		},
		{
			{Key: "$sort", Value: bson.D{{Key: "averageRating", Value: -1}}},
		},
	}
}

// AverageGradePerStudentPipeline joins each enrollment with its submissions,
// flattens the join, and averages grades per student, best first.
func AverageGradePerStudentPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{
			{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: store.SubmissionsCollection},
				{Key: "localField", Value: "enrollmentId"},
				{Key: "foreignField", Value: "enrollmentId"},
				{Key: "as", Value: "submissions"},
			}},
		},
		{
			{Key: "$unwind", Value: "$submissions"},
		},
		{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$studentId"},
				{Key: "averageGrade", Value: bson.D{{Key: "$avg", Value: "$submissions.grade"}}},
			}},
		},
		{
			{Key: "$sort", Value: bson.D{{Key: "averageGrade", Value: -1}}},
		},
	}
}

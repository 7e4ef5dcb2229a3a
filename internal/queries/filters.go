package queries

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/models"
)

// Filter constructors are separated from execution so the query shapes can
// be verified without a running server.

func ActiveStudentsFilter() bson.M {
	return bson.M{"role": models.RoleStudent, "isActive": true}
}

func CoursesByInstructorFilter(instructorID int) bson.M {
	return bson.M{"instructorId": instructorID}
}

func CoursesByCategoryFilter(category string) bson.M {
	return bson.M{"category": category}
}

func EnrollmentsByCourseFilter(courseID int) bson.M {
	return bson.M{"courseId": courseID}
}

// TitleSearchFilter matches course titles containing the term,
// case-insensitively.
func TitleSearchFilter(term string) bson.M {
	return bson.M{"title": bson.M{"$regex": term, "$options": "i"}}
}

// PriceRangeFilter matches courses priced between min and max, inclusive.
func PriceRangeFilter(min, max float64) bson.M {
	return bson.M{"price": bson.M{"$gte": min, "$lte": max}}
}

func JoinedSinceFilter(since time.Time) bson.M {
	return bson.M{"joinedAt": bson.M{"$gte": since}}
}

// TaggedAnyFilter matches courses carrying at least one of the tags.
func TaggedAnyFilter(tags []string) bson.M {
	return bson.M{"tags": bson.M{"$in": tags}}
}

func DueBetweenFilter(from, to time.Time) bson.M {
	return bson.M{"dueDate": bson.M{"$gte": from, "$lte": to}}
}

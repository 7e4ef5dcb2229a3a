package queries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/models"
)

func TestActiveStudentsFilter(t *testing.T) {
	filter := ActiveStudentsFilter()
	assert.Equal(t, bson.M{"role": models.RoleStudent, "isActive": true}, filter)
}

func TestCoursesByInstructorFilter(t *testing.T) {
	assert.Equal(t, bson.M{"instructorId": 17}, CoursesByInstructorFilter(17))
}

func TestCoursesByCategoryFilter(t *testing.T) {
	assert.Equal(t, bson.M{"category": "Programming"}, CoursesByCategoryFilter("Programming"))
}

func TestEnrollmentsByCourseFilter(t *testing.T) {
	assert.Equal(t, bson.M{"courseId": 5}, EnrollmentsByCourseFilter(5))
}

func TestTitleSearchFilterIsCaseInsensitive(t *testing.T) {
	filter := TitleSearchFilter("aWs")
	title, ok := filter["title"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, "aWs", title["$regex"])
	assert.Equal(t, "i", title["$options"])
}

func TestPriceRangeFilterIsInclusive(t *testing.T) {
	filter := PriceRangeFilter(50, 200)
	assert.Equal(t, bson.M{"price": bson.M{"$gte": 50.0, "$lte": 200.0}}, filter)
}

func TestJoinedSinceFilter(t *testing.T) {
	since := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, bson.M{"joinedAt": bson.M{"$gte": since}}, JoinedSinceFilter(since))
}

func TestTaggedAnyFilter(t *testing.T) {
	tags := []string{"python", "programming"}
	assert.Equal(t, bson.M{"tags": bson.M{"$in": tags}}, TaggedAnyFilter(tags))
}

func TestDueBetweenFilter(t *testing.T) {
	from := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	assert.Equal(t, bson.M{"dueDate": bson.M{"$gte": from, "$lte": to}}, DueBetweenFilter(from, to))
}

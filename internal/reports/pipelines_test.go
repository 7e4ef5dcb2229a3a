package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/store"
)

func stageKey(t *testing.T, stage bson.D) string {
	t.Helper()
	require.Len(t, stage, 1)
	return stage[0].Key
}

func stageBody(t *testing.T, stage bson.D) bson.D {
	t.Helper()
	body, ok := stage[0].Value.(bson.D)
	require.True(t, ok, "stage %s body is not a document", stage[0].Key)
	return body
}

func TestEnrollmentsPerCoursePipeline(t *testing.T) {
	pipeline := EnrollmentsPerCoursePipeline()
	require.Len(t, pipeline, 1)
	require.Equal(t, "$group", stageKey(t, pipeline[0]))

	group := stageBody(t, pipeline[0])
	assert.Equal(t, "$courseId", group.Map()["_id"])
	assert.Equal(t, bson.D{{Key: "$sum", Value: 1}}, group.Map()["totalEnrollments"])
}

func TestAverageRatingByCategoryPipeline(t *testing.T) {
	pipeline := AverageRatingByCategoryPipeline()
	require.Len(t, pipeline, 2)
	require.Equal(t, "$group", stageKey(t, pipeline[0]))
	require.Equal(t, "$sort", stageKey(t, pipeline[1]))

	group := stageBody(t, pipeline[0])
	assert.Equal(t, "$category", group.Map()["_id"])
	assert.Equal(t, bson.D{{Key: "$avg", Value: "$reviewRate"}}, group.Map()["averageRating"])

	sort := stageBody(t, pipeline[1])
	assert.Equal(t, -1, sort.Map()["averageRating"])
}

func TestAverageGradePerStudentPipeline(t *testing.T) {
	pipeline := AverageGradePerStudentPipeline()
	require.Len(t, pipeline, 4)
	require.Equal(t, "$lookup", stageKey(t, pipeline[0]))
	require.Equal(t, "$unwind", stageKey(t, pipeline[1]))
	require.Equal(t, "$group", stageKey(t, pipeline[2]))
	require.Equal(t, "$sort", stageKey(t, pipeline[3]))

	lookup := stageBody(t, pipeline[0]).Map()
	assert.Equal(t, store.SubmissionsCollection, lookup["from"])
	assert.Equal(t, "enrollmentId", lookup["localField"])
	assert.Equal(t, "enrollmentId", lookup["foreignField"])
	assert.Equal(t, "submissions", lookup["as"])

	assert.Equal(t, "$submissions", pipeline[1][0].Value)

	group := stageBody(t, pipeline[2]).Map()
	assert.Equal(t, "$studentId", group["_id"])
	assert.Equal(t, bson.D{{Key: "$avg", Value: "$submissions.grade"}}, group["averageGrade"])

	sort := stageBody(t, pipeline[3]).Map()
	assert.Equal(t, -1, sort["averageGrade"])
}

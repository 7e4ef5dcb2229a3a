package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/models"
)

func TestUsersDataset(t *testing.T) {
	users := Users()
	require.Len(t, users, 32)

	ids := make(map[int]bool, len(users))
	emails := make(map[string]bool, len(users))
	instructors := 0
	for _, u := range users {
		assert.False(t, ids[u.UserID], "duplicate userId %d", u.UserID)
		ids[u.UserID] = true
		assert.False(t, emails[u.Email], "duplicate email %s", u.Email)
		emails[u.Email] = true

		assert.True(t, u.IsActive)
		assert.NotNil(t, u.Profile)
		assert.NotEmpty(t, u.Profile.Skills)
		if u.Role == models.RoleInstructor {
			instructors++
		} else {
			assert.Equal(t, models.RoleStudent, u.Role)
		}
	}
	assert.Equal(t, 4, instructors)
}

func TestCoursesDataset(t *testing.T) {
	courses := Courses()
	require.Len(t, courses, 16)

	instructorIDs := make(map[int]bool)
	for _, u := range Users() {
		if u.Role == models.RoleInstructor {
			instructorIDs[u.UserID] = true
		}
	}

	ids := make(map[int]bool, len(courses))
	for _, c := range courses {
		assert.False(t, ids[c.CourseID], "duplicate courseId %d", c.CourseID)
		ids[c.CourseID] = true

		assert.True(t, instructorIDs[c.InstructorID],
			"course %d taught by non-instructor %d", c.CourseID, c.InstructorID)
		assert.Contains(t, []models.DifficultyLevel{
			models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced,
		}, c.DifficultyLevel)
		assert.Greater(t, c.Price, 0.0)
		assert.NotEmpty(t, c.Tags)
		assert.True(t, c.IsPublished)
		assert.True(t, c.IsActive)
	}
}

func TestLessonsDataset(t *testing.T) {
	lessons := Lessons()
	require.Len(t, lessons, 40)

	courseIDs := make(map[int]bool)
	for _, c := range Courses() {
		courseIDs[c.CourseID] = true
	}

	ids := make(map[int]bool, len(lessons))
	for _, l := range lessons {
		assert.False(t, ids[l.LessonID], "duplicate lessonId %d", l.LessonID)
		ids[l.LessonID] = true

		assert.True(t, courseIDs[l.CourseID], "lesson %d references unknown course %d", l.LessonID, l.CourseID)
		assert.Equal(t, l.LessonID, l.AssignmentID, "lesson %d pairs with assignment of the same ID", l.LessonID)
		assert.Equal(t, l.CreatedAt, l.UpdatedAt)
	}
}

func TestAssignmentsDataset(t *testing.T) {
	assignments := Assignments()
	require.Len(t, assignments, 15)

	lessonIDs := make(map[int]bool)
	for _, l := range Lessons() {
		lessonIDs[l.LessonID] = true
	}

	ids := make(map[int]bool, len(assignments))
	for _, a := range assignments {
		assert.False(t, ids[a.AssignmentID], "duplicate assignmentId %d", a.AssignmentID)
		ids[a.AssignmentID] = true

		assert.True(t, lessonIDs[a.LessonID], "assignment %d references unknown lesson %d", a.AssignmentID, a.LessonID)
		assert.True(t, a.DueDate.After(a.CreatedAt), "assignment %d due before creation", a.AssignmentID)
	}
}

func TestSubmissionsDataset(t *testing.T) {
	submissions := Submissions()
	require.Len(t, submissions, 20)

	enrollmentIDs := make(map[int]bool)
	for _, e := range Enrollments() {
		enrollmentIDs[e.EnrollmentID] = true
	}
	assignmentIDs := make(map[int]bool)
	for _, a := range Assignments() {
		assignmentIDs[a.AssignmentID] = true
	}

	ids := make(map[int]bool, len(submissions))
	for _, s := range submissions {
		assert.False(t, ids[s.SubmissionID], "duplicate submissionId %d", s.SubmissionID)
		ids[s.SubmissionID] = true

		assert.True(t, enrollmentIDs[s.EnrollmentID], "submission %d references unknown enrollment %d", s.SubmissionID, s.EnrollmentID)
		assert.True(t, assignmentIDs[s.AssignmentID], "submission %d references unknown assignment %d", s.SubmissionID, s.AssignmentID)
		assert.GreaterOrEqual(t, s.Grade, 0)
		assert.LessOrEqual(t, s.Grade, 100)
		assert.NotEmpty(t, s.Feedback)
	}
}

func TestEnrollmentsDataset(t *testing.T) {
	enrollments := Enrollments()
	require.Len(t, enrollments, 32)

	courseIDs := make(map[int]bool)
	for _, c := range Courses() {
		courseIDs[c.CourseID] = true
	}
	studentIDs := make(map[int]bool)
	for _, u := range Users() {
		if u.Role == models.RoleStudent {
			studentIDs[u.UserID] = true
		}
	}

	ids := make(map[int]bool, len(enrollments))
	pairs := make(map[[2]int]bool, len(enrollments))
	for _, e := range enrollments {
		assert.False(t, ids[e.EnrollmentID], "duplicate enrollmentId %d", e.EnrollmentID)
		ids[e.EnrollmentID] = true

		pair := [2]int{e.CourseID, e.StudentID}
		assert.False(t, pairs[pair], "student %d enrolled twice in course %d", e.StudentID, e.CourseID)
		pairs[pair] = true

		assert.True(t, courseIDs[e.CourseID], "enrollment %d references unknown course %d", e.EnrollmentID, e.CourseID)
		assert.True(t, studentIDs[e.StudentID], "enrollment %d references non-student %d", e.EnrollmentID, e.StudentID)
		assert.GreaterOrEqual(t, e.TrackProgress, 0)
		assert.LessOrEqual(t, e.TrackProgress, 100)
		assert.Len(t, e.Attendance, 2)

		switch e.CompletionStatus {
		case models.StatusCompleted:
			require.NotNil(t, e.CompletionDate, "completed enrollment %d missing completion date", e.EnrollmentID)
			assert.Equal(t, 100, e.TrackProgress)
		case models.StatusNotStarted:
			assert.Zero(t, e.TrackProgress)
			assert.Nil(t, e.CompletionDate)
		case models.StatusInProgress:
			assert.Nil(t, e.CompletionDate)
		default:
			t.Errorf("enrollment %d has unknown status %q", e.EnrollmentID, e.CompletionStatus)
		}
	}
}

func TestDatasetTimestampsAreUTC(t *testing.T) {
	got := at(2023, time.January, 15, 10, 30)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, "2023-01-15T10:30:00Z", got.Format(time.RFC3339))
}

// Package demo performs the single-shot create, update, and soft-delete
// operations run against the seeded dataset.
package demo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/models"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/store"
)

type Demo struct {
	store *store.Store
}

func New(st *store.Store) *Demo {
	return &Demo{store: st}
}

// CreateStudent registers a new student with a freshly allocated userId and
// a bcrypt-hashed password.
func (d *Demo) CreateStudent(ctx context.Context, firstName, lastName, email, password string) (models.User, error) {
	userID, err := d.store.NextID(ctx, store.UsersCollection, "userId")
	if err != nil {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		UserID:    userID,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  string(hashed),
		Role:      models.RoleStudent,
		JoinedAt:  time.Now(),
		IsActive:  true,
		UpdatedAt: time.Now(),
	}
	if _, err := d.store.CreateDocument(ctx, store.UsersCollection, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CreateCourse inserts a new course with the next courseId.
func (d *Demo) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	courseID, err := d.store.NextID(ctx, store.CoursesCollection, "courseId")
	if err != nil {
		return models.Course{}, err
	}

	course.CourseID = courseID
	course.CreatedAt = time.Now()
	if _, err := d.store.CreateDocument(ctx, store.CoursesCollection, course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// EnrollStudent creates a fresh enrollment for a student in a course with an
// initial attendance entry for the course's first lesson. The unique
// courseId+studentId index rejects duplicate enrollments.
func (d *Demo) EnrollStudent(ctx context.Context, courseID, studentID, firstLessonID int) (models.Enrollment, error) {
	enrollmentID, err := d.store.NextID(ctx, store.EnrollmentsCollection, "enrollmentId")
	if err != nil {
		return models.Enrollment{}, err
	}

	enrollment := models.Enrollment{
		EnrollmentID:     enrollmentID,
		CourseID:         courseID,
		StudentID:        studentID,
		IsActive:         true,
		CompletionStatus: models.StatusNotStarted,
		TrackProgress:    0,
		Attendance: []models.Attendance{
			{LessonID: firstLessonID, HasFinished: false, AttendedAt: time.Now()},
		},
		CompletionDate: nil,
		CreatedAt:      time.Now(),
	}
	if _, err := d.store.CreateDocument(ctx, store.EnrollmentsCollection, enrollment); err != nil {
		return models.Enrollment{}, err
	}
	return enrollment, nil
}

// AddLesson attaches a new lesson to an existing course.
func (d *Demo) AddLesson(ctx context.Context, lesson models.Lesson) (models.Lesson, error) {
	lessonID, err := d.store.NextID(ctx, store.LessonsCollection, "lessonId")
	if err != nil {
		return models.Lesson{}, err
	}

	lesson.LessonID = lessonID
	lesson.IsActive = true
	lesson.CreatedAt = time.Now()
	if _, err := d.store.CreateDocument(ctx, store.LessonsCollection, lesson); err != nil {
		return models.Lesson{}, err
	}
	return lesson, nil
}

// UpdateUserProfile replaces the nested profile fields of a user.
func (d *Demo) UpdateUserProfile(ctx context.Context, userID int, profile models.Profile) (int64, error) {
	return d.store.UpdateDocuments(ctx, store.UsersCollection,
		bson.M{"userId": userID}, profileUpdate(profile, time.Now()))
}

// PublishCourse marks a course as published.
func (d *Demo) PublishCourse(ctx context.Context, courseID int) (int64, error) {
	return d.store.UpdateDocuments(ctx, store.CoursesCollection,
		bson.M{"courseId": courseID},
		bson.M{"$set": bson.M{"isPublished": true, "updatedAt": time.Now()}})
}

// GradeSubmission sets a new grade on a submission.
func (d *Demo) GradeSubmission(ctx context.Context, submissionID, grade int) (int64, error) {
	return d.store.UpdateDocuments(ctx, store.SubmissionsCollection,
		bson.M{"submissionId": submissionID},
		bson.M{"$set": bson.M{"grade": grade, "updatedAt": time.Now()}})
}

// AddCourseTags adds tags to a course without duplicating existing ones.
func (d *Demo) AddCourseTags(ctx context.Context, courseID int, tags []string) (int64, error) {
	return d.store.UpdateDocuments(ctx, store.CoursesCollection,
		bson.M{"courseId": courseID}, addTagsUpdate(tags, time.Now()))
}

// DeactivateUser soft-deletes a user.
func (d *Demo) DeactivateUser(ctx context.Context, userID int) (int64, error) {
	return d.store.SoftDelete(ctx, store.UsersCollection, bson.M{"userId": userID})
}

// RemoveEnrollment soft-deletes an enrollment.
func (d *Demo) RemoveEnrollment(ctx context.Context, enrollmentID int) (int64, error) {
	return d.store.SoftDelete(ctx, store.EnrollmentsCollection, bson.M{"enrollmentId": enrollmentID})
}

// RemoveLesson soft-deletes a lesson.
func (d *Demo) RemoveLesson(ctx context.Context, lessonID int) (int64, error) {
	return d.store.SoftDelete(ctx, store.LessonsCollection, bson.M{"lessonId": lessonID})
}

func profileUpdate(profile models.Profile, now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"profile.bio":    profile.Bio,
		"profile.avatar": profile.Avatar,
		"profile.skills": profile.Skills,
		"updatedAt":      now,
	}}
}

func addTagsUpdate(tags []string, now time.Time) bson.M {
	return bson.M{
		"$addToSet": bson.M{"tags": bson.M{"$each": tags}},
		"$set":      bson.M{"updatedAt": now},
	}
}

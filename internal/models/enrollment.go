package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CompletionStatus string

const (
	StatusNotStarted CompletionStatus = "not_started"
	StatusInProgress CompletionStatus = "in_progress"
	StatusCompleted  CompletionStatus = "completed"
)

type Attendance struct {
	LessonID    int       `json:"lessonId" bson:"lessonId"`
	HasFinished bool      `json:"hasFinished" bson:"hasFinished"`
	AttendedAt  time.Time `json:"attendedAt" bson:"attendedAt"`
}

type Enrollment struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EnrollmentID     int                `json:"enrollmentId" bson:"enrollmentId"`
	CourseID         int                `json:"courseId" bson:"courseId"`
	StudentID        int                `json:"studentId" bson:"studentId"`
	IsActive         bool               `json:"isActive" bson:"isActive"`
	CompletionStatus CompletionStatus   `json:"completionStatus" bson:"completionStatus"`
	TrackProgress    int                `json:"trackProgress" bson:"trackProgress"` // percent
	Attendance       []Attendance       `json:"attendance" bson:"attendance"`
	CompletionDate   *time.Time         `json:"completionDate" bson:"completionDate"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Lesson struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	LessonID     int                `json:"lessonId" bson:"lessonId"`
	CourseID     int                `json:"courseId" bson:"courseId"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	AssignmentID int                `json:"assignmentId" bson:"assignmentId"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assignment struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AssignmentID int                `json:"assignmentId" bson:"assignmentId"`
	LessonID     int                `json:"lessonId" bson:"lessonId"`
	CourseID     int                `json:"courseId" bson:"courseId"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	DueDate      time.Time          `json:"dueDate" bson:"dueDate"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Submission struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SubmissionID int                `json:"submissionId" bson:"submissionId"`
	EnrollmentID int                `json:"enrollmentId" bson:"enrollmentId"`
	AssignmentID int                `json:"assignmentId" bson:"assignmentId"`
	SubmittedAt  time.Time          `json:"submittedAt" bson:"submittedAt"`
	Feedback     string             `json:"feedback" bson:"feedback"`
	Grade        int                `json:"grade" bson:"grade"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DifficultyLevel string

const (
	LevelBeginner DifficultyLevel = "beginner"
	// The dataset spells intermediate this way; the schema validator
	// enforces the same spelling, so keep it.
	LevelIntermediate DifficultyLevel = "intermidiate"
	LevelAdvanced     DifficultyLevel = "advanced"
)

type Course struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CourseID        int                `json:"courseId" bson:"courseId"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	InstructorID    int                `json:"instructorId" bson:"instructorId"`
	Category        string             `json:"category" bson:"category"`
	DifficultyLevel DifficultyLevel    `json:"difficultyLevel" bson:"difficultyLevel"`
	Duration        int                `json:"duration" bson:"duration"` // hours
	Price           float64            `json:"price" bson:"price"`
	Tags            []string           `json:"tags" bson:"tags"`
	IsPublished     bool               `json:"isPublished" bson:"isPublished"`
	IsActive        bool               `json:"isActive" bson:"isActive"`
	ReviewRate      float64            `json:"reviewRate" bson:"reviewRate"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

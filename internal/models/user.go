package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
)

type Profile struct {
	Bio    string   `json:"bio" bson:"bio"`
	Avatar string   `json:"avatar" bson:"avatar"`
	Skills []string `json:"skills" bson:"skills"`
}

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    int                `json:"userId" bson:"userId"`
	Email     string             `json:"email" bson:"email"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	Password  string             `json:"-" bson:"password,omitempty"`
	Role      UserRole           `json:"role" bson:"role"`
	JoinedAt  time.Time          `json:"joinedAt" bson:"joinedAt"`
	Profile   *Profile           `json:"profile,omitempty" bson:"profile,omitempty"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt,omitempty"`
}

package models

import (
	"time"
)

// User represents an account of the task manager.
type User struct {
	ID             string    `bson:"_id" json:"id"`
	Email          string    `bson:"email" json:"email"`
	FullName       string    `bson:"full_name" json:"full_name,omitempty"`
	HashedPassword string    `bson:"hashed_password" json:"-"`
	IsVerified     bool      `bson:"is_verified" json:"is_verified"`
	VerifyToken    string    `bson:"verify_token,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

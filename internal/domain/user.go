// Package domain
package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

type User struct {
	ID                 int64     `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	Password           string    `json:"-"`
	DateOfRegistration time.Time `json:"date_of_registration"`
}

type RegisterRequest struct {
	Username           string     `json:"username" validate:"required,min=3,max=64"`
	Email              string     `json:"email" validate:"omitempty,email"`
	Password           string     `json:"password" validate:"required,min=8"`
	DateOfRegistration *time.Time `json:"date_of_registration" validate:"omitempty"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, userID int64) (*User, error)
}

package domain

import (
	"context"
	"errors"
	"time"
)

// ErrPostNotFound covers both a missing row and a row owned by someone
// else, so responses never reveal whether another user's post exists.
var ErrPostNotFound = errors.New("post not found")

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	DateAdded time.Time `json:"date_added"`
	UserID    int64     `json:"id_user"`
}

type PostSaveRequest struct {
	Title     string     `json:"title" validate:"required,max=255"`
	Text      string     `json:"text" validate:"required"`
	DateAdded *time.Time `json:"date_added" validate:"omitempty"`
}

type PostRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*Post, error)
	Create(ctx context.Context, post *Post) error
	GetOwned(ctx context.Context, postID, ownerID int64) (*Post, error)
	UpdateOwned(ctx context.Context, post *Post, ownerID int64) error
	DeleteOwned(ctx context.Context, postID, ownerID int64) error
}

type PostService interface {
	List(ctx context.Context, ownerID int64) ([]*Post, error)
	Create(ctx context.Context, req PostSaveRequest, ownerID int64) (*Post, error)
	Get(ctx context.Context, postID, ownerID int64) (*Post, error)
	Update(ctx context.Context, req PostSaveRequest, postID, ownerID int64) error
	Delete(ctx context.Context, postID, ownerID int64) error
}

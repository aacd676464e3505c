// Package post
package post

import (
	"context"
	"time"

	"inkwell/internal/domain"
)

type Service struct {
	repo domain.PostRepository
}

func NewService(repo domain.PostRepository) domain.PostService {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]*domain.Post, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create stamps the owner from the authenticated identity; any owner
// the client sends is ignored.
func (s *Service) Create(ctx context.Context, req domain.PostSaveRequest, ownerID int64) (*domain.Post, error) {
	addedAt := time.Now().UTC()
	if req.DateAdded != nil {
		addedAt = req.DateAdded.UTC()
	}

	post := &domain.Post{
		Title:     req.Title,
		Text:      req.Text,
		DateAdded: addedAt,
		UserID:    ownerID,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *Service) Get(ctx context.Context, postID, ownerID int64) (*domain.Post, error) {
	return s.repo.GetOwned(ctx, postID, ownerID)
}

func (s *Service) Update(ctx context.Context, req domain.PostSaveRequest, postID, ownerID int64) error {
	post, err := s.repo.GetOwned(ctx, postID, ownerID)
	if err != nil {
		return err
	}

	post.Title = req.Title
	post.Text = req.Text

	return s.repo.UpdateOwned(ctx, post, ownerID)
}

func (s *Service) Delete(ctx context.Context, postID, ownerID int64) error {
	return s.repo.DeleteOwned(ctx, postID, ownerID)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inkwell/internal/domain"
)

type PostRepository struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) domain.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Post, error) {
	query := `
		SELECT id, title, text, date_added, id_user
		FROM posts
		WHERE id_user = $1
		ORDER BY date_added ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []*domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Text,
			&p.DateAdded,
			&p.UserID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (title, text, date_added, id_user)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		post.Title,
		post.Text,
		post.DateAdded,
		post.UserID,
	).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetOwned filters on both id and owner, so a foreign post misses the
// same way an absent one does.
func (r *PostRepository) GetOwned(ctx context.Context, postID, ownerID int64) (*domain.Post, error) {
	query := `
		SELECT id, title, text, date_added, id_user
		FROM posts
		WHERE id = $1 AND id_user = $2
	`

	row := r.db.QueryRow(ctx, query, postID, ownerID)

	var p domain.Post
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Text,
		&p.DateAdded,
		&p.UserID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *PostRepository) UpdateOwned(ctx context.Context, post *domain.Post, ownerID int64) error {
	query := `
		UPDATE posts
		SET title = $1, text = $2
		WHERE id = $3 AND id_user = $4
	`

	ct, err := r.db.Exec(ctx, query,
		post.Title,
		post.Text,
		post.ID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return domain.ErrPostNotFound
	}

	return nil
}

func (r *PostRepository) DeleteOwned(ctx context.Context, postID, ownerID int64) error {
	query := `DELETE FROM posts WHERE id = $1 AND id_user = $2`

	ct, err := r.db.Exec(ctx, query, postID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return domain.ErrPostNotFound
	}

	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bloghub/internal/models"
)

type BlogRepositoryImpl struct {
	db *sqlx.DB
}

type CreateBlogRequest struct {
	AuthorID    string `json:"author_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
	ImageURL    string `json:"image_url"`
}

type UpdateBlogRequest struct {
	BlogID      string `json:"blog_id"`
	AuthorID    string `json:"author_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
	ImageURL    string `json:"image_url"`
}

func NewBlogRepository(db *sqlx.DB) *BlogRepositoryImpl {
	return &BlogRepositoryImpl{db: db}
}

func (r *BlogRepositoryImpl) Create(ctx context.Context, blog *models.Blog) error {
	if blog.BlogID == "" {
		blog.BlogID = uuid.New().String()
	}

	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	query := `
        INSERT INTO blogs
        (blog_id, author_id, title, content, description, tag, image_url, created_at, updated_at)
        VALUES
        (:blog_id, :author_id, :title, :content, :description, :tag, :image_url, :created_at, :updated_at)
    `

	_, err := r.db.NamedExecContext(ctx, query, blog)
	if err != nil {
		return fmt.Errorf("ошибка при создании блога: %w", err)
	}

	return nil
}

func (r *BlogRepositoryImpl) GetByID(ctx context.Context, blogID string) (*models.Blog, error) {
	query := `
        SELECT b.blog_id, b.author_id, b.title, b.content, b.description, b.tag,
               b.image_url, b.created_at, b.updated_at,
               u.name AS author_name, u.email AS author_email
        FROM blogs b
        JOIN users u ON u.user_id = b.author_id
        WHERE b.blog_id = $1
    `

	var blog models.Blog
	err := r.db.GetContext(ctx, &blog, query, blogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("ошибка при получении блога: %w", err)
	}

	return &blog, nil
}

// GetPage returns a feed window in insertion order, blog_id breaking ties so
// pages stay stable under concurrent inserts.
func (r *BlogRepositoryImpl) GetPage(ctx context.Context, limit, offset int) ([]models.Blog, error) {
	query := `
        SELECT b.blog_id, b.author_id, b.title, b.content, b.description, b.tag,
               b.image_url, b.created_at, b.updated_at,
               u.name AS author_name
        FROM blogs b
        JOIN users u ON u.user_id = b.author_id
        ORDER BY b.created_at, b.blog_id
        LIMIT $1 OFFSET $2
    `

	blogs := []models.Blog{}
	err := r.db.SelectContext(ctx, &blogs, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты блогов: %w", err)
	}

	return blogs, nil
}

func (r *BlogRepositoryImpl) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM blogs`

	var count int
	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте блогов: %w", err)
	}

	return count, nil
}

func (r *BlogRepositoryImpl) Update(ctx context.Context, blog *models.Blog) error {
	query := `
		UPDATE blogs SET
			title = :title,
			content = :content,
			description = :description,
			tag = :tag,
			image_url = :image_url,
			updated_at = :updated_at
		WHERE blog_id = :blog_id AND author_id = :author_id
	`

	blog.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, blog)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении блога: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrBlogNotFound
	}

	return nil
}

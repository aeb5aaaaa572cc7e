package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"bloghub/internal/models"
)

var (
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrDuplicateEmail     = errors.New("email уже существует")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrBlogNotFound       = errors.New("блог не найден")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, blogID string) (*models.Blog, error)
	GetPage(ctx context.Context, limit, offset int) ([]models.Blog, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, blog *models.Blog) error
}

type StatsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountBlogs(ctx context.Context) (int, error)
}

type Repository struct {
	User  UserRepository
	Blog  BlogRepository
	Stats StatsRepository
}

func NewRepository(db *sqlx.DB, bcryptCost int) *Repository {
	return &Repository{
		User:  NewUserRepository(db, bcryptCost),
		Blog:  NewBlogRepository(db),
		Stats: NewStatsRepository(db),
	}
}

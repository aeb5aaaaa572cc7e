package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Blog struct {
	BlogID      string    `json:"id" db:"blog_id"`
	AuthorID    string    `json:"authorId" db:"author_id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	Description string    `json:"description" db:"description"`
	Tag         string    `json:"tag" db:"tag"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// joined from users, filled by feed/detail reads only
	AuthorName  string `json:"authorName,omitempty" db:"author_name"`
	AuthorEmail string `json:"authorEmail,omitempty" db:"author_email"`
}

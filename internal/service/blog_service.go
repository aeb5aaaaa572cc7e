package service

import (
	"context"
	"errors"

	"bloghub/internal/models"
	"bloghub/internal/repository"
)

var ErrNotOwner = errors.New("нет прав на изменение этого блога")

type BlogService interface {
	CreateBlog(ctx context.Context, req repository.CreateBlogRequest) (*models.Blog, error)
	UpdateBlog(ctx context.Context, req repository.UpdateBlogRequest) error
	GetFeed(ctx context.Context, limit, offset int) ([]models.Blog, int, error)
	GetBlog(ctx context.Context, blogID, viewerID string) (*models.Blog, bool, error)
}

type blogService struct {
	blogRepo repository.BlogRepository
}

func NewBlogService(blogRepo repository.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) CreateBlog(ctx context.Context, req repository.CreateBlogRequest) (*models.Blog, error) {
	blog := &models.Blog{
		AuthorID:    req.AuthorID,
		Title:       req.Title,
		Content:     req.Content,
		Description: req.Description,
		Tag:         req.Tag,
		ImageURL:    req.ImageURL,
	}

	err := s.blogRepo.Create(ctx, blog)
	if err != nil {
		return nil, err
	}

	return blog, nil
}

// UpdateBlog checks ownership before touching any field: only the account that
// created the blog may change it.
func (s *blogService) UpdateBlog(ctx context.Context, req repository.UpdateBlogRequest) error {
	blog, err := s.blogRepo.GetByID(ctx, req.BlogID)
	if err != nil {
		return err
	}

	if blog.AuthorID != req.AuthorID {
		return ErrNotOwner
	}

	blog.Title = req.Title
	blog.Content = req.Content
	blog.Description = req.Description
	blog.Tag = req.Tag
	blog.ImageURL = req.ImageURL

	return s.blogRepo.Update(ctx, blog)
}

func (s *blogService) GetFeed(ctx context.Context, limit, offset int) ([]models.Blog, int, error) {
	blogs, err := s.blogRepo.GetPage(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.blogRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (s *blogService) GetBlog(ctx context.Context, blogID, viewerID string) (*models.Blog, bool, error) {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, false, err
	}

	isUser := viewerID != "" && viewerID == blog.AuthorID

	return blog, isUser, nil
}

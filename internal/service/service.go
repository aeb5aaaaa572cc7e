package service

import (
	"bloghub/internal/config"
	"bloghub/internal/repository"
)

type Service struct {
	Auth  AuthService
	Blog  BlogService
	Stats StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Auth:  NewAuthService(rep.User, cfg),
		Blog:  NewBlogService(rep.Blog),
		Stats: NewStatsService(rep.Stats),
	}
}

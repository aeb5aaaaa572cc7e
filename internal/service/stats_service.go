package service

import (
	"context"

	"bloghub/internal/repository"
)

type Stats struct {
	Users int `json:"users"`
	Blogs int `json:"blogs"`
}

type StatsService interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context) (*Stats, error) {
	users, err := s.statsRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	blogs, err := s.statsRepo.CountBlogs(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{Users: users, Blogs: blogs}, nil
}

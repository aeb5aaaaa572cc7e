package handlers

import (
	"github.com/go-playground/validator/v10"

	"bloghub/internal/config"
	"bloghub/internal/database"
	"bloghub/internal/service"
)

type Handlers struct {
	AuthService  service.AuthService
	BlogService  service.BlogService
	StatsService service.StatsService
	DB           *database.DB
	Cfg          *config.Config
	Validate     *validator.Validate
}

func NewHandlers(services *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:  services.Auth,
		BlogService:  services.Blog,
		StatsService: services.Stats,
		DB:           db,
		Cfg:          config,
		Validate:     validator.New(),
	}
}

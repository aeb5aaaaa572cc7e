package app

import (
	"log"

	"bloghub/internal/config"
	"bloghub/internal/database"
	"bloghub/internal/repository"
	"bloghub/internal/service"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB, cfg.BcryptCost)

	services := service.NewService(repo, cfg)

	return db, repo, services
}

package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"bloghub/cmd/app"
	"bloghub/internal/config"
	handlers "bloghub/internal/handler"
	"bloghub/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	requireAuth := middleware.RequireAuth(cfg)
	optionalAuth := middleware.OptionalAuth(cfg)

	// setting up routes
	router := mux.NewRouter()
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/stats", handler.StatsHandler).Methods(http.MethodGet)

	user := router.PathPrefix("/user").Subrouter()
	user.HandleFunc("/signup", handler.Signup).Methods(http.MethodPost)
	user.HandleFunc("/signin", handler.Signin).Methods(http.MethodPost)
	user.Handle("/me", requireAuth(http.HandlerFunc(handler.Me))).Methods(http.MethodGet)

	blog := router.PathPrefix("/blog").Subrouter()
	blog.HandleFunc("/bulk", handler.GetBulk).Methods(http.MethodGet)
	blog.Handle("/add-blog", requireAuth(http.HandlerFunc(handler.AddBlog))).Methods(http.MethodPost)
	blog.Handle("/edit-blog", requireAuth(http.HandlerFunc(handler.EditBlog))).Methods(http.MethodPut)
	blog.Handle("/{id}", optionalAuth(http.HandlerFunc(handler.GetBlog))).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

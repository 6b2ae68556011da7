package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/Jer-romano/messagely/internal/config"
	"github.com/Jer-romano/messagely/internal/database"
	postgresrepo "github.com/Jer-romano/messagely/internal/repository/postgres"
	"github.com/Jer-romano/messagely/internal/service"
	"github.com/Jer-romano/messagely/internal/transport/http/handlers"
	"github.com/Jer-romano/messagely/internal/transport/http/middleware"
	"github.com/Jer-romano/messagely/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	if err := database.Migrate(context.Background(), pool); err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	msgRepo := postgresrepo.NewMessageRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.BcryptCost)
	userService := service.NewUserService(userRepo, msgRepo)
	msgService := service.NewMessageService(msgRepo, userRepo)

	// WebSocket hub
	hub := ws.NewHub()
	go hub.Run()
	msgService.SetNotifier(ws.NewHubNotifier(hub))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	msgHandler := handlers.NewMessageHandler(msgService)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret))

	// Protected - Users
	mux.Handle("GET /users", auth(http.HandlerFunc(userHandler.List)))
	mux.Handle("GET /users/{username}", auth(http.HandlerFunc(userHandler.Get)))
	mux.Handle("GET /users/{username}/from", auth(http.HandlerFunc(userHandler.MessagesFrom)))
	mux.Handle("GET /users/{username}/to", auth(http.HandlerFunc(userHandler.MessagesTo)))

	// Protected - Messages
	mux.Handle("POST /messages", auth(http.HandlerFunc(msgHandler.Send)))
	mux.Handle("GET /messages/{id}", auth(http.HandlerFunc(msgHandler.Get)))
	mux.Handle("POST /messages/{id}/read", auth(http.HandlerFunc(msgHandler.MarkRead)))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}

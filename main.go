package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/jswierk/flashcards-api/config"
	"github.com/jswierk/flashcards-api/handlers"
	"github.com/jswierk/flashcards-api/repository"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	// Initialize database connection
	config.Connect()

	store := repository.NewGormStore(config.Database)
	api := handlers.NewAPI(store)
	mux := handlers.NewRouter(api)

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Env.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	serverAddr := "0.0.0.0:" + config.Env.Port
	log.Printf("main: listening on %s", serverAddr)

	http.ListenAndServe(serverAddr, corsHandler)
}

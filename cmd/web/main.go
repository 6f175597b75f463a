package main

import (
	"log"
	"net/http"
	"os"
	predictions "temporal-prediction-dashboard"
	"temporal-prediction-dashboard/web"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on environment variables")
	}

	// Create Temporal client. The UI still serves without one; workflow
	// operations just degrade to demo responses.
	var temporalClient client.Client
	if os.Getenv("TEMPORAL_HOST") == "" {
		log.Printf("Warning: TEMPORAL_HOST not set")
		log.Printf("The UI will work but workflow operations will be limited")
	} else {
		c, err := client.Dial(predictions.GetClientOptions())
		if err != nil {
			log.Printf("Warning: Unable to create Temporal client: %v", err)
			log.Printf("The UI will work but workflow operations will be limited")
		} else {
			defer c.Close()
			log.Printf("Successfully connected to Temporal server")
			temporalClient = c
		}
	}

	handlers := web.NewHandlers(temporalClient)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Mount("/api", handlers.Routes())

	// Serve static files
	staticDir := "web/static"
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		// If running from different directory, try relative path
		staticDir = "../../web/static"
	}
	r.Handle("/*", http.FileServer(http.Dir(staticDir)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting web server on port %s", port)
	log.Printf("Open http://localhost:%s in your browser", port)

	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalln("Server failed to start:", err)
	}
}

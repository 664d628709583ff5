package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"ddate_server/config"
	"ddate_server/routes"
	"ddate_server/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The in-memory store is canonical; DynamoDB, when configured, is the
	// durable medium loaded once at startup and written behind commits.
	var persister services.Persister
	var dynamo *services.DynamoService
	if cfg.ProfilesTable != "" {
		log.Println("Initializing DynamoDB client...")
		client := services.InitializeDynamoDBClient(cfg.AWSRegion)
		dynamo = &services.DynamoService{Client: client, Table: cfg.ProfilesTable}
		persister = dynamo
		log.Println("DynamoDB client initialized.")
	}

	store := services.NewProfileStore(persister)
	if dynamo != nil {
		profiles, err := dynamo.ScanProfiles(context.Background())
		if err != nil {
			log.Fatalf("Failed to load profiles from DynamoDB: %v", err)
		}
		store.LoadAll(profiles)
		log.Printf("Loaded %d profiles from table %s", len(profiles), cfg.ProfilesTable)
	}

	// Initialize Services
	accountService := services.NewAccountService(store)
	swipeService := &services.SwipeService{Store: store}
	matchService := &services.MatchService{Store: store}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to DDate")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, accountService)
	routes.RegisterSwipeRoutes(r, swipeService)
	routes.RegisterMatchRoutes(r, matchService)
	if cfg.S3Bucket != "" {
		routes.RegisterS3Routes(r, services.NewS3Service(cfg.AWSRegion, cfg.S3Bucket))
	}

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-User-Principal"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}

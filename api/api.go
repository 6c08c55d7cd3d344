package main

import (
	"log"
	"os"

	"tilttracker/api/cache"
	"tilttracker/api/modules"
	"tilttracker/api/routes"
	"tilttracker/pkg/config"
	"tilttracker/pkg/database"
	"tilttracker/pkg/redis"
	"tilttracker/riot"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.NewConnection()
	if err != nil {
		log.Fatalf("Couldn't connect to the database: %v", err)
	}

	memCache := cache.NewMemCache()
	defer memCache.Close()

	// Create a module with all necessary handlers.
	module := modules.NewModule(&modules.ModuleDependencies{
		DB:             db,
		MemCache:       memCache,
		Redis:          redis.GetClient(),
		AccountFetcher: riot.CreateFetcher(riot.DefaultRoutingRegion),
	})

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.PlayerHandler,
	)

	// Start the server.
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Couldn't start the server: %v", err)
	}
}

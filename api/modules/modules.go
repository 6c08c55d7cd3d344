package modules

import (
	"tilttracker/api/cache"
	"tilttracker/api/handlers"
	"tilttracker/pkg/redis"
	"tilttracker/riot"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module containing the necessary handlers.
type Module struct {
	Router        *gin.Engine
	PlayerHandler *handlers.PlayerHandler
}

// ModuleDependencies is the shared dependency list of every handler.
type ModuleDependencies struct {
	DB             *gorm.DB
	MemCache       *cache.MemCache
	Redis          *redis.RedisClient
	AccountFetcher *riot.Fetcher
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	playerHandler := initializePlayerHandler(deps)

	// Return the module with all handlers.
	return &Module{
		Router:        router,
		PlayerHandler: playerHandler,
	}
}

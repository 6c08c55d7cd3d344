package modules

import (
	"tilttracker/api/handlers"
	playerservice "tilttracker/api/services/player"
)

func initializePlayerHandler(deps *ModuleDependencies) *handlers.PlayerHandler {
	// Initialize the player service and handler.
	playerDeps := &playerservice.PlayerServiceDeps{
		DB:       deps.DB,
		MemCache: deps.MemCache,
		Redis:    deps.Redis,
		Accounts: deps.AccountFetcher,
	}

	playerService := playerservice.NewPlayerService(playerDeps)

	playerHandlerDeps := &handlers.PlayerHandlerDependencies{
		PlayerService: playerService,
	}

	return handlers.NewPlayerHandler(playerHandlerDeps)
}

package routes

import (
	"tilttracker/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		}
	}
}

// Register the player handler.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	r.api.GET("/leaderboard", handler.GetLeaderboard)

	players := r.api.Group("/players")
	{
		players.POST("", handler.RegisterPlayer)
		players.GET("/:puuid", handler.GetPlayer)
		players.GET("/:puuid/matches", handler.GetPlayerMatches)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

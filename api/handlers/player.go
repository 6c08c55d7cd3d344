package handlers

import (
	"errors"
	"net/http"

	"tilttracker/api/filters"
	playerservice "tilttracker/api/services/player"
	"tilttracker/pkg/messages"

	"github.com/gin-gonic/gin"
)

// Player handler.
type PlayerHandler struct {
	playerService *playerservice.PlayerService
}

type PlayerHandlerDependencies struct {
	PlayerService *playerservice.PlayerService
}

// Create a new instance of the player handler.
func NewPlayerHandler(deps *PlayerHandlerDependencies) *PlayerHandler {
	return &PlayerHandler{
		playerService: deps.PlayerService,
	}
}

// Body of the registration request.
type registerPlayerBody struct {
	DiscordId string `json:"discordId" binding:"required"`
	GameName  string `json:"gameName" binding:"required"`
	TagLine   string `json:"tagLine" binding:"required"`
	Region    string `json:"region" binding:"required"`
}

// Handler for getting the leaderboard.
func (h *PlayerHandler) GetLeaderboard(c *gin.Context) {
	var qp filters.LeaderboardQueryParams

	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	qp.Normalize()

	result, err := h.playerService.GetLeaderboard(c.Request.Context(), qp.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Handler for getting a single player profile.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	puuid := c.Param("puuid")

	result, err := h.playerService.GetProfile(c.Request.Context(), puuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": messages.CouldNotFindPlayer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Handler for getting the recent scored matches of a player.
func (h *PlayerHandler) GetPlayerMatches(c *gin.Context) {
	puuid := c.Param("puuid")

	var qp filters.PlayerMatchHistoryQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	qp.Normalize()

	result, err := h.playerService.GetMatches(c.Request.Context(), puuid, qp.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": messages.CouldNotFindPlayer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Handler for registering a new tracked player.
func (h *PlayerHandler) RegisterPlayer(c *gin.Context) {
	var body registerPlayerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.playerService.RegisterPlayer(
		c.Request.Context(), body.DiscordId, body.GameName, body.TagLine, body.Region)
	if err != nil {
		if errors.Is(err, playerservice.ErrAlreadyRegistered) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result})
}

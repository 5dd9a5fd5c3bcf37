// Package v1 exposes the REST surface. Handlers stay thin: bind,
// delegate to an orchestrator, translate the result.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/storyforge/storyforge-api/internal/errors"
	characterorch "github.com/storyforge/storyforge-api/internal/orchestrators/character"
	diceorch "github.com/storyforge/storyforge-api/internal/orchestrators/dice"
	"github.com/storyforge/storyforge-api/internal/orchestrators/proposal"
	sessionorch "github.com/storyforge/storyforge-api/internal/orchestrators/session"
	worldorch "github.com/storyforge/storyforge-api/internal/orchestrators/world"
)

// Config holds the orchestrators the handler delegates to
type Config struct {
	WorldService     worldorch.Service
	CharacterService characterorch.Service
	SessionService   sessionorch.Service
	DiceService      diceorch.Service
	ProposalService  proposal.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.WorldService == nil {
		vb.RequiredField("WorldService")
	}
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.SessionService == nil {
		vb.RequiredField("SessionService")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.ProposalService == nil {
		vb.RequiredField("ProposalService")
	}

	return vb.Build()
}

// Handler serves the v1 API
type Handler struct {
	worlds     worldorch.Service
	characters characterorch.Service
	sessions   sessionorch.Service
	dice       diceorch.Service
	proposals  proposal.Service
}

// NewHandler creates a new v1 handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		worlds:     cfg.WorldService,
		characters: cfg.CharacterService,
		sessions:   cfg.SessionService,
		dice:       cfg.DiceService,
		proposals:  cfg.ProposalService,
	}, nil
}

// RegisterRoutes mounts the v1 API under the given router
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")

	worlds := api.Group("/worlds")
	{
		worlds.POST("", h.createWorld)
		worlds.GET("", h.listWorlds)
		worlds.GET("/:worldId", h.getWorld)
		worlds.PUT("/:worldId", h.updateWorld)
		worlds.DELETE("/:worldId", h.deleteWorld)
		worlds.POST("/:worldId/ingest", h.ingestContent)
		worlds.POST("/:worldId/main-quest", h.generateMainQuest)
		worlds.GET("/:worldId/main-quest", h.getMainQuest)
		worlds.GET("/:worldId/characters", h.listCharacters)
		worlds.GET("/:worldId/sessions", h.listSessions)
	}

	characters := api.Group("/characters")
	{
		characters.POST("", h.createCharacter)
		characters.POST("/generate", h.generateSheet)
		characters.GET("/:characterId", h.getCharacter)
		characters.PUT("/:characterId", h.updateCharacter)
		characters.DELETE("/:characterId", h.deleteCharacter)
		characters.POST("/:characterId/memories", h.addMemory)
		characters.POST("/:characterId/damage", h.applyDamage)
		characters.POST("/:characterId/heal", h.heal)
	}

	sessions := api.Group("/sessions")
	{
		sessions.POST("", h.createSession)
		sessions.GET("/:sessionId", h.getSession)
		sessions.PATCH("/:sessionId/status", h.updateSessionStatus)
		sessions.DELETE("/:sessionId", h.deleteSession)

		sessions.GET("/:sessionId/round", h.getPendingRound)
		sessions.POST("/:sessionId/actions", h.addPendingAction)
		sessions.POST("/:sessionId/checks", h.addPendingCheck)
		sessions.DELETE("/:sessionId/pending-actions", h.clearPendingActions)
		sessions.DELETE("/:sessionId/pending-checks", h.clearPendingChecks)
		sessions.POST("/:sessionId/turns", h.completeTurn)

		sessions.POST("/:sessionId/proposals", h.proposeActions)
		sessions.GET("/:sessionId/narration", h.generateNarration)
		sessions.GET("/:sessionId/scene-suggestions", h.suggestScenes)

		sessions.POST("/:sessionId/timeline", h.addTimelineEvent)
		sessions.POST("/:sessionId/adventure-log", h.addAdventureLog)
	}

	api.POST("/rolls", h.roll)
}

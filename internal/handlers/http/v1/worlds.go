package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storyforge/storyforge-api/internal/entities"
	worldorch "github.com/storyforge/storyforge-api/internal/orchestrators/world"
)

type createWorldRequest struct {
	Name          string `json:"name" binding:"required"`
	SourceType    string `json:"sourceType"`
	SourceContent string `json:"sourceContent"`
	Background    string `json:"background"`
}

func (h *Handler) createWorld(c *gin.Context) {
	var req createWorldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.worlds.CreateWorld(c.Request.Context(), &worldorch.CreateWorldInput{
		Name:          req.Name,
		SourceType:    entities.WorldSourceType(req.SourceType),
		SourceContent: req.SourceContent,
		Background:    req.Background,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.World)
}

func (h *Handler) getWorld(c *gin.Context) {
	output, err := h.worlds.GetWorld(c.Request.Context(), &worldorch.GetWorldInput{
		WorldID: c.Param("worldId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.World)
}

func (h *Handler) listWorlds(c *gin.Context) {
	output, err := h.worlds.ListWorlds(c.Request.Context(), &worldorch.ListWorldsInput{})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"worlds": output.Worlds})
}

func (h *Handler) updateWorld(c *gin.Context) {
	var w entities.World
	if err := c.ShouldBindJSON(&w); err != nil {
		bindError(c, err)
		return
	}
	w.ID = c.Param("worldId")

	output, err := h.worlds.UpdateWorld(c.Request.Context(), &worldorch.UpdateWorldInput{World: &w})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.World)
}

func (h *Handler) deleteWorld(c *gin.Context) {
	output, err := h.worlds.DeleteWorld(c.Request.Context(), &worldorch.DeleteWorldInput{
		WorldID: c.Param("worldId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"charactersDeleted": output.CharactersDeleted,
		"sessionsDeleted":   output.SessionsDeleted,
	})
}

type ingestContentRequest struct {
	Content string `json:"content"`
}

func (h *Handler) ingestContent(c *gin.Context) {
	var req ingestContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.worlds.IngestContent(c.Request.Context(), &worldorch.IngestContentInput{
		WorldID: c.Param("worldId"),
		Content: req.Content,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"world":      output.World,
		"structured": output.Structured,
	})
}

func (h *Handler) generateMainQuest(c *gin.Context) {
	output, err := h.worlds.GenerateMainQuest(c.Request.Context(), &worldorch.GenerateMainQuestInput{
		WorldID: c.Param("worldId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.Quest)
}

func (h *Handler) getMainQuest(c *gin.Context) {
	output, err := h.worlds.GetMainQuest(c.Request.Context(), &worldorch.GetMainQuestInput{
		WorldID: c.Param("worldId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Quest)
}

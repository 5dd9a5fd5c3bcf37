package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storyforge/storyforge-api/internal/entities"
	characterorch "github.com/storyforge/storyforge-api/internal/orchestrators/character"
)

type createCharacterRequest struct {
	WorldID    string              `json:"worldId" binding:"required"`
	Name       string              `json:"name" binding:"required"`
	Race       string              `json:"race"`
	Class      string              `json:"class"`
	Alignment  string              `json:"alignment"`
	Level      int                 `json:"level"`
	Backstory  string              `json:"backstory"`
	Attributes entities.Attributes `json:"attributes"`
	Skills     entities.Skills     `json:"skills"`
	Background entities.Background `json:"background"`
}

func (h *Handler) createCharacter(c *gin.Context) {
	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.characters.CreateCharacter(c.Request.Context(), &characterorch.CreateCharacterInput{
		WorldID:    req.WorldID,
		Name:       req.Name,
		Race:       req.Race,
		Class:      req.Class,
		Alignment:  entities.Alignment(req.Alignment),
		Level:      req.Level,
		Backstory:  req.Backstory,
		Attributes: req.Attributes,
		Skills:     req.Skills,
		Background: req.Background,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.Character)
}

type generateSheetRequest struct {
	WorldID string `json:"worldId" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Concept string `json:"concept" binding:"required"`
}

func (h *Handler) generateSheet(c *gin.Context) {
	var req generateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.characters.GenerateSheet(c.Request.Context(), &characterorch.GenerateSheetInput{
		WorldID: req.WorldID,
		Name:    req.Name,
		Concept: req.Concept,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"character":  output.Character,
		"structured": output.Structured,
	})
}

func (h *Handler) getCharacter(c *gin.Context) {
	output, err := h.characters.GetCharacter(c.Request.Context(), &characterorch.GetCharacterInput{
		CharacterID: c.Param("characterId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Character)
}

func (h *Handler) listCharacters(c *gin.Context) {
	output, err := h.characters.ListCharacters(c.Request.Context(), &characterorch.ListCharactersInput{
		WorldID: c.Param("worldId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"characters": output.Characters})
}

func (h *Handler) updateCharacter(c *gin.Context) {
	var char entities.Character
	if err := c.ShouldBindJSON(&char); err != nil {
		bindError(c, err)
		return
	}
	char.ID = c.Param("characterId")

	output, err := h.characters.UpdateCharacter(c.Request.Context(), &characterorch.UpdateCharacterInput{
		Character: &char,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Character)
}

func (h *Handler) deleteCharacter(c *gin.Context) {
	if _, err := h.characters.DeleteCharacter(c.Request.Context(), &characterorch.DeleteCharacterInput{
		CharacterID: c.Param("characterId"),
	}); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type addMemoryRequest struct {
	Content           string   `json:"content" binding:"required"`
	Importance        int      `json:"importance"`
	RelatedCharacters []string `json:"relatedCharacters"`
	RelatedLocations  []string `json:"relatedLocations"`
}

func (h *Handler) addMemory(c *gin.Context) {
	var req addMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.characters.AddMemory(c.Request.Context(), &characterorch.AddMemoryInput{
		CharacterID:       c.Param("characterId"),
		Content:           req.Content,
		Importance:        req.Importance,
		RelatedCharacters: req.RelatedCharacters,
		RelatedLocations:  req.RelatedLocations,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.Memory)
}

type hitPointsRequest struct {
	Amount int `json:"amount" binding:"required"`
}

func (h *Handler) applyDamage(c *gin.Context) {
	var req hitPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.characters.ApplyDamage(c.Request.Context(), &characterorch.ApplyDamageInput{
		CharacterID: c.Param("characterId"),
		Amount:      req.Amount,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"character":     output.Character,
		"incapacitated": output.Incapacitated,
	})
}

func (h *Handler) heal(c *gin.Context) {
	var req hitPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.characters.Heal(c.Request.Context(), &characterorch.HealInput{
		CharacterID: c.Param("characterId"),
		Amount:      req.Amount,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"character": output.Character,
		"revived":   output.Revived,
	})
}

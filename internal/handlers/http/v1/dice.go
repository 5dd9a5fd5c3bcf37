package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storyforge/storyforge-api/internal/entities"
	diceorch "github.com/storyforge/storyforge-api/internal/orchestrators/dice"
	"github.com/storyforge/storyforge-api/internal/pkg/dice"
)

type rollRequest struct {
	Kind     string `json:"kind" binding:"required"`
	Count    int    `json:"count"`
	Modifier int    `json:"modifier"`

	// Difficulty turns a plain roll into a resolved check
	Difficulty *int `json:"difficulty"`

	// CharacterID with CheckType derives the modifier from the sheet
	// instead of taking it from the request
	CharacterID string `json:"characterId"`
	CheckType   string `json:"checkType"`
	SkillName   string `json:"skillName"`
}

func (h *Handler) roll(c *gin.Context) {
	var req rollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	ctx := c.Request.Context()

	switch {
	case req.CharacterID != "":
		difficulty := 0
		if req.Difficulty != nil {
			difficulty = *req.Difficulty
		}
		output, err := h.dice.RollCheck(ctx, &diceorch.RollCheckInput{
			CharacterID: req.CharacterID,
			CheckType:   entities.CheckType(req.CheckType),
			SkillName:   req.SkillName,
			Difficulty:  difficulty,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"roll":            output.Roll,
			"modifier":        output.Modifier,
			"difficulty":      output.Difficulty,
			"success":         output.Success,
			"criticalSuccess": output.CriticalSuccess,
			"criticalFailure": output.CriticalFailure,
		})

	case req.Difficulty != nil:
		output, err := h.dice.ResolveCheck(ctx, &diceorch.ResolveCheckInput{
			Kind:       dice.Kind(req.Kind),
			Count:      count,
			Modifier:   req.Modifier,
			Difficulty: *req.Difficulty,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"roll":            output.Roll,
			"difficulty":      output.Difficulty,
			"success":         output.Success,
			"criticalSuccess": output.CriticalSuccess,
			"criticalFailure": output.CriticalFailure,
		})

	default:
		output, err := h.dice.Roll(ctx, &diceorch.RollInput{
			Kind:     dice.Kind(req.Kind),
			Count:    count,
			Modifier: req.Modifier,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"roll": output.Roll})
	}
}

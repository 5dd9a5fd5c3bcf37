package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/errors"
	"github.com/storyforge/storyforge-api/internal/orchestrators/proposal"
	sessionorch "github.com/storyforge/storyforge-api/internal/orchestrators/session"
)

type createSessionRequest struct {
	WorldID      string   `json:"worldId" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	CharacterIDs []string `json:"characterIds"`
}

func (h *Handler) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.sessions.CreateSession(c.Request.Context(), &sessionorch.CreateSessionInput{
		WorldID:      req.WorldID,
		Name:         req.Name,
		CharacterIDs: req.CharacterIDs,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.Session)
}

func (h *Handler) getSession(c *gin.Context) {
	output, err := h.sessions.GetSession(c.Request.Context(), &sessionorch.GetSessionInput{
		SessionID: c.Param("sessionId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Session)
}

func (h *Handler) listSessions(c *gin.Context) {
	output, err := h.sessions.ListSessions(c.Request.Context(), &sessionorch.ListSessionsInput{
		WorldID: c.Param("worldId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": output.Sessions})
}

type updateSessionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateSessionStatus(c *gin.Context) {
	var req updateSessionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.sessions.UpdateStatus(c.Request.Context(), &sessionorch.UpdateStatusInput{
		SessionID: c.Param("sessionId"),
		Status:    entities.SessionStatus(req.Status),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Session)
}

func (h *Handler) deleteSession(c *gin.Context) {
	if _, err := h.sessions.DeleteSession(c.Request.Context(), &sessionorch.DeleteSessionInput{
		SessionID: c.Param("sessionId"),
	}); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getPendingRound(c *gin.Context) {
	output, err := h.sessions.GetPendingRound(c.Request.Context(), &sessionorch.GetPendingRoundInput{
		SessionID: c.Param("sessionId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"actions":    output.Actions,
		"checks":     output.Checks,
		"results":    output.Results,
		"generation": output.Generation,
	})
}

type addPendingActionRequest struct {
	CharacterID    string `json:"characterId" binding:"required"`
	ProposedAction string `json:"proposedAction" binding:"required"`
	AIReasoning    string `json:"aiReasoning"`
	Generation     uint64 `json:"generation"`
}

func (h *Handler) addPendingAction(c *gin.Context) {
	var req addPendingActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.sessions.AddPendingAction(c.Request.Context(), &sessionorch.AddPendingActionInput{
		SessionID:      c.Param("sessionId"),
		CharacterID:    req.CharacterID,
		ProposedAction: req.ProposedAction,
		AIReasoning:    req.AIReasoning,
		Generation:     req.Generation,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.Action)
}

type addPendingCheckRequest struct {
	ActionID     string   `json:"actionId" binding:"required"`
	CheckType    string   `json:"checkType" binding:"required"`
	SkillName    string   `json:"skillName"`
	Difficulty   int      `json:"difficulty" binding:"required"`
	Narration    string   `json:"narration"`
	WorldChanges []string `json:"worldChanges"`
}

func (h *Handler) addPendingCheck(c *gin.Context) {
	var req addPendingCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.sessions.AddPendingCheck(c.Request.Context(), &sessionorch.AddPendingCheckInput{
		SessionID:    c.Param("sessionId"),
		ActionID:     req.ActionID,
		CheckType:    entities.CheckType(req.CheckType),
		SkillName:    req.SkillName,
		Difficulty:   req.Difficulty,
		Narration:    req.Narration,
		WorldChanges: req.WorldChanges,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"check":  output.Check,
		"result": output.Result,
	})
}

func (h *Handler) clearPendingActions(c *gin.Context) {
	output, err := h.sessions.ClearPendingActions(c.Request.Context(), &sessionorch.ClearPendingActionsInput{
		SessionID: c.Param("sessionId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cleared": output.Cleared})
}

func (h *Handler) clearPendingChecks(c *gin.Context) {
	output, err := h.sessions.ClearPendingChecks(c.Request.Context(), &sessionorch.ClearPendingChecksInput{
		SessionID: c.Param("sessionId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cleared": output.Cleared})
}

type completeTurnRequest struct {
	WorldState string `json:"worldState"`
}

func (h *Handler) completeTurn(c *gin.Context) {
	var req completeTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.sessions.CompleteTurn(c.Request.Context(), &sessionorch.CompleteTurnInput{
		SessionID:  c.Param("sessionId"),
		WorldState: req.WorldState,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.Turn)
}

type proposeActionsRequest struct {
	SceneContext string `json:"sceneContext"`
}

func (h *Handler) proposeActions(c *gin.Context) {
	var req proposeActionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.proposals.ProposeActions(c.Request.Context(), &proposal.ProposeActionsInput{
		SessionID:    c.Param("sessionId"),
		SceneContext: req.SceneContext,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"actions":   output.Actions,
		"fallbacks": output.Fallbacks,
	})
}

func (h *Handler) generateNarration(c *gin.Context) {
	turnNumber := 0
	if raw := c.Query("turn"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(c, errors.InvalidArgumentf("invalid turn number %q", raw))
			return
		}
		turnNumber = n
	}

	output, err := h.proposals.GenerateNarration(c.Request.Context(), &proposal.GenerateNarrationInput{
		SessionID:  c.Param("sessionId"),
		TurnNumber: turnNumber,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"narration": output.Narration})
}

func (h *Handler) suggestScenes(c *gin.Context) {
	output, err := h.proposals.SuggestScenes(c.Request.Context(), &proposal.SuggestScenesInput{
		SessionID: c.Param("sessionId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": output.Suggestions})
}

type addTimelineEventRequest struct {
	Event        string `json:"event" binding:"required"`
	Significance string `json:"significance" binding:"required"`
}

func (h *Handler) addTimelineEvent(c *gin.Context) {
	var req addTimelineEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.sessions.AddTimelineEvent(c.Request.Context(), &sessionorch.AddTimelineEventInput{
		SessionID:    c.Param("sessionId"),
		Event:        req.Event,
		Significance: entities.TimelineSignificance(req.Significance),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.Event)
}

type addAdventureLogRequest struct {
	CharacterID string `json:"characterId" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Emotion     string `json:"emotion"`
}

func (h *Handler) addAdventureLog(c *gin.Context) {
	var req addAdventureLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.sessions.AddAdventureLog(c.Request.Context(), &sessionorch.AddAdventureLogInput{
		SessionID:   c.Param("sessionId"),
		CharacterID: req.CharacterID,
		Content:     req.Content,
		Emotion:     req.Emotion,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.Log)
}

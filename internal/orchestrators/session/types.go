package session

import (
	"github.com/storyforge/storyforge-api/internal/entities"
)

// CreateSessionInput defines the input for creating a session
type CreateSessionInput struct {
	WorldID      string
	Name         string
	CharacterIDs []string
}

// CreateSessionOutput defines the output for creating a session
type CreateSessionOutput struct {
	Session *entities.Session
}

// GetSessionInput defines the input for getting a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the output for getting a session
type GetSessionOutput struct {
	Session *entities.Session
}

// ListSessionsInput defines the input for listing a world's sessions
type ListSessionsInput struct {
	WorldID string
}

// ListSessionsOutput defines the output for listing a world's sessions
type ListSessionsOutput struct {
	Sessions []*entities.Session
}

// UpdateStatusInput defines the input for changing a session's status
type UpdateStatusInput struct {
	SessionID string
	Status    entities.SessionStatus
}

// UpdateStatusOutput defines the output for changing a session's status
type UpdateStatusOutput struct {
	Session *entities.Session
}

// DeleteSessionInput defines the input for deleting a session
type DeleteSessionInput struct {
	SessionID string
}

// DeleteSessionOutput defines the output for deleting a session
type DeleteSessionOutput struct{}

// AddPendingActionInput defines the input for queueing an action for
// the current round. Generation, when nonzero, must match the round's
// current generation; stale submissions are rejected with Aborted.
type AddPendingActionInput struct {
	SessionID      string
	CharacterID    string
	ProposedAction string
	AIReasoning    string
	Generation     uint64
}

// AddPendingActionOutput defines the output for queueing an action
type AddPendingActionOutput struct {
	Action *entities.TurnAction
}

// AddPendingCheckInput defines the input for attaching a dice check to
// a pending action. The roll happens here; the result is held with the
// round until the turn completes.
type AddPendingCheckInput struct {
	SessionID  string
	ActionID   string
	CheckType  entities.CheckType
	SkillName  string
	Difficulty int

	// Narration is the game master's description of the outcome
	Narration string

	// WorldChanges lists world-state consequences of this outcome
	WorldChanges []string
}

// AddPendingCheckOutput defines the output for attaching a check
type AddPendingCheckOutput struct {
	Check  *entities.TurnCheck
	Result *entities.TurnResult
}

// ClearPendingActionsInput defines the input for clearing the action queue
type ClearPendingActionsInput struct {
	SessionID string
}

// ClearPendingActionsOutput defines the output for clearing the action queue
type ClearPendingActionsOutput struct {
	Cleared int
}

// ClearPendingChecksInput defines the input for clearing the check queue
type ClearPendingChecksInput struct {
	SessionID string
}

// ClearPendingChecksOutput defines the output for clearing the check queue
type ClearPendingChecksOutput struct {
	Cleared int
}

// GetPendingRoundInput defines the input for inspecting the current round
type GetPendingRoundInput struct {
	SessionID string
}

// GetPendingRoundOutput is a snapshot of the in-flight round.
// Generation identifies the round; queue it back on submissions to
// detect staleness.
type GetPendingRoundOutput struct {
	Actions    []entities.TurnAction
	Checks     []entities.TurnCheck
	Results    []entities.TurnResult
	Generation uint64
}

// CompleteTurnInput defines the input for finalizing the current round
type CompleteTurnInput struct {
	SessionID string

	// WorldState is a free-form snapshot of the world after this turn
	WorldState string
}

// CompleteTurnOutput defines the output for finalizing a round
type CompleteTurnOutput struct {
	Turn    *entities.Turn
	Session *entities.Session
}

// AddTimelineEventInput defines the input for recording a timeline event
type AddTimelineEventInput struct {
	SessionID    string
	Event        string
	Significance entities.TimelineSignificance
}

// AddTimelineEventOutput defines the output for recording a timeline event
type AddTimelineEventOutput struct {
	Event *entities.TimelineEvent
}

// AddAdventureLogInput defines the input for recording an adventure log
type AddAdventureLogInput struct {
	SessionID   string
	CharacterID string
	Content     string
	Emotion     string
}

// AddAdventureLogOutput defines the output for recording an adventure log
type AddAdventureLogOutput struct {
	Log *entities.AdventureLog
}

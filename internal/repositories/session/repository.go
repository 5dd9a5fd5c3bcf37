// Package session defines the interface for session persistence
package session

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/storyforge/storyforge-api/internal/repositories/session Repository

import (
	"context"

	"github.com/storyforge/storyforge-api/internal/entities"
)

// Repository defines the interface for session persistence. Turn
// history is append-only: finalized turns are never rewritten.
type Repository interface {
	// Create stores a new session and indexes it under its world
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	// Returns errors.NotFound if the session doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing session's mutable fields. Turns are
	// not written through Update; use AppendTurn.
	// Returns errors.NotFound if the session doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a session and its world index entry
	// Returns errors.NotFound if the session doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByWorld returns all sessions owned by a world
	ListByWorld(ctx context.Context, input ListByWorldInput) (*ListByWorldOutput, error)

	// AppendTurn atomically appends a finalized turn and advances
	// CurrentTurn to the turn's number. Concurrent appends retry on
	// conflict; the turn number is validated against the stored
	// session inside the transaction.
	// Returns errors.FailedPrecondition if the turn number is not
	// CurrentTurn+1
	AppendTurn(ctx context.Context, input AppendTurnInput) (*AppendTurnOutput, error)

	// AppendTimelineEvent appends one event to the session timeline
	AppendTimelineEvent(ctx context.Context, input AppendTimelineEventInput) (*AppendTimelineEventOutput, error)

	// AppendAdventureLog appends one adventure log entry
	AppendAdventureLog(ctx context.Context, input AppendAdventureLogInput) (*AppendAdventureLogOutput, error)
}

// CreateInput defines the input for creating a session
type CreateInput struct {
	Session *entities.Session
}

// CreateOutput defines the output for creating a session
type CreateOutput struct {
	Session *entities.Session
}

// GetInput defines the input for getting a session
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session *entities.Session
}

// UpdateInput defines the input for updating a session
type UpdateInput struct {
	Session *entities.Session
}

// UpdateOutput defines the output for updating a session
type UpdateOutput struct {
	Session *entities.Session
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a session
type DeleteOutput struct{}

// ListByWorldInput defines the input for listing a world's sessions
type ListByWorldInput struct {
	WorldID string
}

// ListByWorldOutput defines the output for listing a world's sessions
type ListByWorldOutput struct {
	Sessions []*entities.Session
}

// AppendTurnInput defines the input for appending a finalized turn
type AppendTurnInput struct {
	SessionID string
	Turn      *entities.Turn
}

// AppendTurnOutput defines the output for appending a turn
type AppendTurnOutput struct {
	Session *entities.Session
}

// AppendTimelineEventInput defines the input for appending a timeline event
type AppendTimelineEventInput struct {
	SessionID string
	Event     *entities.TimelineEvent
}

// AppendTimelineEventOutput defines the output for appending a timeline event
type AppendTimelineEventOutput struct {
	Session *entities.Session
}

// AppendAdventureLogInput defines the input for appending an adventure log
type AppendAdventureLogInput struct {
	SessionID string
	Log       *entities.AdventureLog
}

// AppendAdventureLogOutput defines the output for appending an adventure log
type AppendAdventureLogOutput struct {
	Session *entities.Session
}

// Package world defines the interface for world persistence
package world

//go:generate mockgen -destination=mock/mock_repository.go -package=worldmock github.com/storyforge/storyforge-api/internal/repositories/world Repository

import (
	"context"

	"github.com/storyforge/storyforge-api/internal/entities"
)

// Repository defines the interface for world persistence. Deleting a
// world removes everything it owns: characters, sessions, main quest.
type Repository interface {
	// Create stores a new world
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a world by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the world doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing world
	// Returns errors.NotFound if the world doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a world and cascades to its characters, sessions,
	// and main quest
	// Returns errors.NotFound if the world doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns all stored worlds
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// SaveMainQuest stores or replaces the world's hidden main quest
	// Returns errors.NotFound if the world doesn't exist
	SaveMainQuest(ctx context.Context, input SaveMainQuestInput) (*SaveMainQuestOutput, error)

	// GetMainQuestByWorld retrieves the world's main quest
	// Returns errors.NotFound if the world has no quest
	GetMainQuestByWorld(ctx context.Context, input GetMainQuestByWorldInput) (*GetMainQuestByWorldOutput, error)
}

// CreateInput defines the input for creating a world
type CreateInput struct {
	World *entities.World
}

// CreateOutput defines the output for creating a world
type CreateOutput struct {
	World *entities.World
}

// GetInput defines the input for getting a world
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a world
type GetOutput struct {
	World *entities.World
}

// UpdateInput defines the input for updating a world
type UpdateInput struct {
	World *entities.World
}

// UpdateOutput defines the output for updating a world
type UpdateOutput struct {
	World *entities.World
}

// DeleteInput defines the input for deleting a world
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a world
type DeleteOutput struct {
	// CharactersDeleted and SessionsDeleted count the cascaded removals
	CharactersDeleted int
	SessionsDeleted   int
}

// ListInput defines the input for listing worlds
type ListInput struct{}

// ListOutput defines the output for listing worlds
type ListOutput struct {
	Worlds []*entities.World
}

// SaveMainQuestInput defines the input for saving a main quest
type SaveMainQuestInput struct {
	Quest *entities.MainQuest
}

// SaveMainQuestOutput defines the output for saving a main quest
type SaveMainQuestOutput struct {
	Quest *entities.MainQuest
}

// GetMainQuestByWorldInput defines the input for fetching a world's quest
type GetMainQuestByWorldInput struct {
	WorldID string
}

// GetMainQuestByWorldOutput defines the output for fetching a world's quest
type GetMainQuestByWorldOutput struct {
	Quest *entities.MainQuest
}

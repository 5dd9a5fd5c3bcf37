package world

import (
	"github.com/storyforge/storyforge-api/internal/entities"
)

// CreateWorldInput defines the input for creating a world
type CreateWorldInput struct {
	Name       string
	SourceType entities.WorldSourceType

	// SourceContent is the raw material (novel text, pasted notes)
	// that IngestContent later structures
	SourceContent string
	Background    string
}

// CreateWorldOutput defines the output for creating a world
type CreateWorldOutput struct {
	World *entities.World
}

// GetWorldInput defines the input for getting a world
type GetWorldInput struct {
	WorldID string
}

// GetWorldOutput defines the output for getting a world
type GetWorldOutput struct {
	World *entities.World
}

// ListWorldsInput defines the input for listing worlds
type ListWorldsInput struct{}

// ListWorldsOutput defines the output for listing worlds
type ListWorldsOutput struct {
	Worlds []*entities.World
}

// UpdateWorldInput defines the input for updating a world
type UpdateWorldInput struct {
	World *entities.World
}

// UpdateWorldOutput defines the output for updating a world
type UpdateWorldOutput struct {
	World *entities.World
}

// DeleteWorldInput defines the input for deleting a world
type DeleteWorldInput struct {
	WorldID string
}

// DeleteWorldOutput defines the output for deleting a world
type DeleteWorldOutput struct {
	CharactersDeleted int
	SessionsDeleted   int
}

// IngestContentInput defines the input for structuring a world's raw
// source material into background, locations, factions, history, and
// conflicts
type IngestContentInput struct {
	WorldID string

	// Content overrides the world's stored SourceContent when set
	Content string
}

// IngestContentOutput defines the output for content ingestion
type IngestContentOutput struct {
	World *entities.World

	// Structured reports whether the model produced a structured
	// extraction; false means the raw-background fallback was used
	Structured bool
}

// GenerateMainQuestInput defines the input for generating a world's
// hidden main quest
type GenerateMainQuestInput struct {
	WorldID string
}

// GenerateMainQuestOutput defines the output for main quest generation
type GenerateMainQuestOutput struct {
	Quest *entities.MainQuest
}

// GetMainQuestInput defines the input for fetching a world's main quest
type GetMainQuestInput struct {
	WorldID string
}

// GetMainQuestOutput defines the output for fetching a main quest
type GetMainQuestOutput struct {
	Quest *entities.MainQuest
}

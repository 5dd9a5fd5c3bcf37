// Package world implements the world orchestrator: lifecycle, source
// material ingestion, and hidden main quest generation.
package world

//go:generate mockgen -destination=mock/mock_service.go -package=worldorchestratormock github.com/storyforge/storyforge-api/internal/orchestrators/world Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/errors"
	"github.com/storyforge/storyforge-api/internal/llm"
	"github.com/storyforge/storyforge-api/internal/pkg/clock"
	"github.com/storyforge/storyforge-api/internal/pkg/idgen"
	"github.com/storyforge/storyforge-api/internal/pkg/jsonrepair"
	worldrepo "github.com/storyforge/storyforge-api/internal/repositories/world"
)

const (
	// Faction influence is graded 1 to 10; model output outside the
	// band is clamped, not rejected
	minInfluence = 1
	maxInfluence = 10

	// fallbackQuestTitle names the quest when the model gives nothing usable
	fallbackQuestTitle = "An Unwritten Fate"

	ingestSystemPrompt = `You are a worldbuilding assistant for a tabletop RPG. Extract a structured world from the source material.
Respond with a JSON object only:
{"background": "...", "locations": [{"name": "...", "description": ""}], "factions": [{"name": "...", "description": "...", "influence": 5}], "history": [{"name": "...", "description": "...", "era": "..."}], "conflicts": [{"name": "...", "description": "...", "status": "brewing"}]}
Conflict status is one of: dormant, brewing, active, resolved.`

	questSystemPrompt = `You are the game master of a tabletop RPG. Design a hidden main quest for this world. The players never see it; it only steers your narration.
Respond with a JSON object only:
{"title": "...", "description": "...", "stages": [{"objective": "...", "hints": ["..."]}], "potentialEvents": ["..."], "worldDirection": "where the world drifts if the players do nothing"}`
)

// Service defines the interface for world operations
type Service interface {
	CreateWorld(ctx context.Context, input *CreateWorldInput) (*CreateWorldOutput, error)
	GetWorld(ctx context.Context, input *GetWorldInput) (*GetWorldOutput, error)
	ListWorlds(ctx context.Context, input *ListWorldsInput) (*ListWorldsOutput, error)
	UpdateWorld(ctx context.Context, input *UpdateWorldInput) (*UpdateWorldOutput, error)
	DeleteWorld(ctx context.Context, input *DeleteWorldInput) (*DeleteWorldOutput, error)

	// IngestContent structures the world's raw source material
	IngestContent(ctx context.Context, input *IngestContentInput) (*IngestContentOutput, error)

	// GenerateMainQuest creates and stores the world's hidden storyline
	GenerateMainQuest(ctx context.Context, input *GenerateMainQuestInput) (*GenerateMainQuestOutput, error)
	GetMainQuest(ctx context.Context, input *GetMainQuestInput) (*GetMainQuestOutput, error)
}

// Config holds the dependencies for the world orchestrator
type Config struct {
	WorldRepo   worldrepo.Repository
	Provider    llm.Provider
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.WorldRepo == nil {
		vb.RequiredField("WorldRepo")
	}
	if c.Provider == nil {
		vb.RequiredField("Provider")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	worldRepo worldrepo.Repository
	provider  llm.Provider
	idGen     idgen.Generator
	clock     clock.Clock
}

// NewOrchestrator creates a new world orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		worldRepo: cfg.WorldRepo,
		provider:  cfg.Provider,
		idGen:     cfg.IDGenerator,
		clock:     c,
	}, nil
}

func (o *orchestrator) CreateWorld(ctx context.Context, input *CreateWorldInput) (*CreateWorldOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("world name is required")
	}

	sourceType := input.SourceType
	if sourceType == "" {
		sourceType = entities.WorldSourceManual
	}

	now := o.clock.Now()
	w := &entities.World{
		ID:            o.idGen.Generate(),
		Name:          input.Name,
		SourceType:    sourceType,
		SourceContent: input.SourceContent,
		Background:    input.Background,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	createOutput, err := o.worldRepo.Create(ctx, worldrepo.CreateInput{World: w})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create world")
	}

	slog.Info("World created", "world_id", w.ID, "name", w.Name, "source_type", w.SourceType)

	return &CreateWorldOutput{World: createOutput.World}, nil
}

func (o *orchestrator) GetWorld(ctx context.Context, input *GetWorldInput) (*GetWorldOutput, error) {
	getOutput, err := o.worldRepo.Get(ctx, worldrepo.GetInput{ID: input.WorldID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get world")
	}

	return &GetWorldOutput{World: getOutput.World}, nil
}

func (o *orchestrator) ListWorlds(ctx context.Context, _ *ListWorldsInput) (*ListWorldsOutput, error) {
	listOutput, err := o.worldRepo.List(ctx, worldrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list worlds")
	}

	return &ListWorldsOutput{Worlds: listOutput.Worlds}, nil
}

func (o *orchestrator) UpdateWorld(ctx context.Context, input *UpdateWorldInput) (*UpdateWorldOutput, error) {
	if input.World == nil {
		return nil, errors.InvalidArgument("world is required")
	}

	input.World.UpdatedAt = o.clock.Now()

	updateOutput, err := o.worldRepo.Update(ctx, worldrepo.UpdateInput{World: input.World})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update world")
	}

	return &UpdateWorldOutput{World: updateOutput.World}, nil
}

func (o *orchestrator) DeleteWorld(ctx context.Context, input *DeleteWorldInput) (*DeleteWorldOutput, error) {
	deleteOutput, err := o.worldRepo.Delete(ctx, worldrepo.DeleteInput{ID: input.WorldID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete world")
	}

	slog.Info("World deleted",
		"world_id", input.WorldID,
		"characters_deleted", deleteOutput.CharactersDeleted,
		"sessions_deleted", deleteOutput.SessionsDeleted,
	)

	return &DeleteWorldOutput{
		CharactersDeleted: deleteOutput.CharactersDeleted,
		SessionsDeleted:   deleteOutput.SessionsDeleted,
	}, nil
}

// ingestExtraction mirrors the JSON shape the ingest prompt asks for
type ingestExtraction struct {
	Background string `json:"background"`
	Locations  []struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Tags        []string `json:"tags"`
	} `json:"locations"`
	Factions []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Influence   int    `json:"influence"`
	} `json:"factions"`
	History []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Era         string `json:"era"`
		Impact      string `json:"impact"`
	} `json:"history"`
	Conflicts []struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Factions    []string `json:"factions"`
		Status      string   `json:"status"`
	} `json:"conflicts"`
}

func clampInfluence(v int) int {
	if v < minInfluence {
		return minInfluence
	}
	if v > maxInfluence {
		return maxInfluence
	}
	return v
}

// IngestContent asks the model to structure the world's raw source
// material. When no structured extraction can be recovered, the raw
// content becomes the background and the lists stay empty.
func (o *orchestrator) IngestContent(ctx context.Context, input *IngestContentInput) (*IngestContentOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument("world ID is required")
	}

	getOutput, err := o.worldRepo.Get(ctx, worldrepo.GetInput{ID: input.WorldID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get world")
	}
	w := getOutput.World

	content := input.Content
	if content == "" {
		content = w.SourceContent
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.FailedPrecondition("world has no source content to ingest")
	}
	w.SourceContent = content

	extraction, ok := o.extract(ctx, content)
	if ok {
		w.Background = extraction.Background
		w.Locations = nil
		for _, l := range extraction.Locations {
			w.Locations = append(w.Locations, entities.Location{
				ID:          o.idGen.Generate(),
				Name:        l.Name,
				Description: l.Description,
				Tags:        l.Tags,
			})
		}
		w.Factions = nil
		for _, f := range extraction.Factions {
			w.Factions = append(w.Factions, entities.Faction{
				ID:          o.idGen.Generate(),
				Name:        f.Name,
				Description: f.Description,
				Influence:   clampInfluence(f.Influence),
			})
		}
		w.History = nil
		for _, h := range extraction.History {
			w.History = append(w.History, entities.HistoricalEvent{
				ID:          o.idGen.Generate(),
				Name:        h.Name,
				Description: h.Description,
				Era:         h.Era,
				Impact:      h.Impact,
			})
		}
		w.Conflicts = nil
		for _, c := range extraction.Conflicts {
			status := entities.ConflictStatus(c.Status)
			if !status.Valid() {
				status = entities.ConflictDormant
			}
			w.Conflicts = append(w.Conflicts, entities.Conflict{
				ID:          o.idGen.Generate(),
				Name:        c.Name,
				Description: c.Description,
				Factions:    c.Factions,
				Status:      status,
			})
		}
	} else {
		// Raw-background fallback: the material is still playable,
		// just unstructured
		w.Background = content
		w.Locations = nil
		w.Factions = nil
		w.History = nil
		w.Conflicts = nil
	}

	w.UpdatedAt = o.clock.Now()

	updateOutput, err := o.worldRepo.Update(ctx, worldrepo.UpdateInput{World: w})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save ingested world")
	}

	slog.Info("World content ingested",
		"world_id", w.ID,
		"structured", ok,
		"locations", len(w.Locations),
		"factions", len(w.Factions),
	)

	return &IngestContentOutput{World: updateOutput.World, Structured: ok}, nil
}

func (o *orchestrator) extract(ctx context.Context, content string) (*ingestExtraction, bool) {
	if !o.provider.IsConfigured() {
		return nil, false
	}

	resp, err := o.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: ingestSystemPrompt},
			{Role: llm.RoleUser, Content: content},
		},
	})
	if err != nil {
		slog.Warn("World extraction failed, using raw background", "error", err.Error())
		return nil, false
	}

	outcome := jsonrepair.Recover(resp.Text)
	if outcome.Kind != jsonrepair.OutcomeStructured {
		return nil, false
	}

	var extraction ingestExtraction
	if err := outcome.Decode(&extraction); err != nil {
		return nil, false
	}
	if strings.TrimSpace(extraction.Background) == "" {
		return nil, false
	}

	return &extraction, true
}

// questExtraction mirrors the JSON shape the quest prompt asks for
type questExtraction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Stages      []struct {
		Objective string   `json:"objective"`
		Hints     []string `json:"hints"`
	} `json:"stages"`
	PotentialEvents []string `json:"potentialEvents"`
	WorldDirection  string   `json:"worldDirection"`
}

// GenerateMainQuest creates the world's hidden storyline and stores it
func (o *orchestrator) GenerateMainQuest(ctx context.Context, input *GenerateMainQuestInput) (*GenerateMainQuestOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument("world ID is required")
	}

	getOutput, err := o.worldRepo.Get(ctx, worldrepo.GetInput{ID: input.WorldID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get world")
	}
	w := getOutput.World

	quest := &entities.MainQuest{
		ID:      o.idGen.Generate(),
		WorldID: w.ID,
		Title:   fallbackQuestTitle,
	}

	if o.provider.IsConfigured() {
		resp, err := o.provider.Complete(ctx, llm.CompletionRequest{
			Messages: []llm.Message{
				{Role: llm.RoleSystem, Content: questSystemPrompt},
				{Role: llm.RoleUser, Content: buildQuestPrompt(w)},
			},
		})
		if err != nil {
			slog.Warn("Main quest generation failed, storing fallback",
				"world_id", w.ID,
				"error", err.Error(),
			)
		} else {
			structured := false
			if outcome := jsonrepair.Recover(resp.Text); outcome.Kind == jsonrepair.OutcomeStructured {
				var extraction questExtraction
				if err := outcome.Decode(&extraction); err == nil && strings.TrimSpace(extraction.Title) != "" {
					structured = true
					quest.Title = extraction.Title
					quest.Description = extraction.Description
					quest.PotentialEvents = extraction.PotentialEvents
					quest.WorldDirection = extraction.WorldDirection
					for i, stage := range extraction.Stages {
						quest.Stages = append(quest.Stages, entities.QuestStage{
							ID:        o.idGen.Generate(),
							Order:     i + 1,
							Objective: stage.Objective,
							Hints:     stage.Hints,
						})
					}
				}
			}
			// A prose answer still has narrative value: keep it as the
			// description under the fallback title
			if !structured {
				quest.Description = strings.TrimSpace(resp.Text)
			}
		}
	}

	saveOutput, err := o.worldRepo.SaveMainQuest(ctx, worldrepo.SaveMainQuestInput{Quest: quest})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save main quest")
	}

	slog.Info("Main quest generated",
		"world_id", w.ID,
		"title", quest.Title,
		"stages", len(quest.Stages),
	)

	return &GenerateMainQuestOutput{Quest: saveOutput.Quest}, nil
}

func (o *orchestrator) GetMainQuest(ctx context.Context, input *GetMainQuestInput) (*GetMainQuestOutput, error) {
	getOutput, err := o.worldRepo.GetMainQuestByWorld(ctx, worldrepo.GetMainQuestByWorldInput{
		WorldID: input.WorldID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get main quest")
	}

	return &GetMainQuestOutput{Quest: getOutput.Quest}, nil
}

func buildQuestPrompt(w *entities.World) string {
	var b strings.Builder
	b.WriteString("World: " + w.Name + "\n" + w.Background + "\n")

	if len(w.Factions) > 0 {
		b.WriteString("\nFactions:\n")
		for _, f := range w.Factions {
			b.WriteString("- " + f.Name + ": " + f.Description + "\n")
		}
	}
	if len(w.Conflicts) > 0 {
		b.WriteString("\nConflicts:\n")
		for _, c := range w.Conflicts {
			b.WriteString("- " + c.Name + " (" + string(c.Status) + "): " + c.Description + "\n")
		}
	}

	return b.String()
}

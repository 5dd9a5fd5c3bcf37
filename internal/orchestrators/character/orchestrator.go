// Package character implements the character orchestrator: lifecycle,
// memories, hit point bookkeeping, and LLM-assisted sheet generation.
package character

//go:generate mockgen -destination=mock/mock_service.go -package=characterorchestratormock github.com/storyforge/storyforge-api/internal/orchestrators/character Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/errors"
	"github.com/storyforge/storyforge-api/internal/llm"
	"github.com/storyforge/storyforge-api/internal/pkg/clock"
	"github.com/storyforge/storyforge-api/internal/pkg/dice"
	"github.com/storyforge/storyforge-api/internal/pkg/idgen"
	"github.com/storyforge/storyforge-api/internal/pkg/jsonrepair"
	characterrepo "github.com/storyforge/storyforge-api/internal/repositories/character"
	worldrepo "github.com/storyforge/storyforge-api/internal/repositories/world"
)

const (
	// Ability scores live in 3-18, skill modifiers in -5..+10,
	// memory importance in 1-10. Out-of-band values are clamped.
	minAttribute  = 3
	maxAttribute  = 18
	minSkill      = -5
	maxSkill      = 10
	minImportance = 1
	maxImportance = 10
	minLevel      = 1
	maxLevel      = 20

	baseHP = 10

	sheetSystemPrompt = `You are a character builder for a tabletop RPG. Given a character concept, propose a full sheet.
Respond with a JSON object only:
{"race": "...", "class": "...", "alignment": "true-neutral", "level": 1, "backstory": "...", "attributes": {"strength": 10, "dexterity": 10, "constitution": 10, "intelligence": 10, "wisdom": 10, "charisma": 10}, "skills": {"combat": {"swords": 2}, "social": {}, "exploration": {}, "knowledge": {}}, "background": {"personality": "...", "ideal": "...", "bond": "...", "flaw": "..."}}
Alignment is one of the nine classic alignments in kebab case, e.g. chaotic-good.`
)

// Service defines the interface for character operations
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// AddMemory records an event in the character's memory
	AddMemory(ctx context.Context, input *AddMemoryInput) (*AddMemoryOutput, error)

	// ApplyDamage and Heal keep HP inside [0, maxHP] and manage the
	// active/incapacitated transition. Death is only ever set by an
	// explicit update.
	ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error)
	Heal(ctx context.Context, input *HealInput) (*HealOutput, error)

	// GenerateSheet builds a character from a concept via the model
	GenerateSheet(ctx context.Context, input *GenerateSheetInput) (*GenerateSheetOutput, error)
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	WorldRepo     worldrepo.Repository
	Provider      llm.Provider
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
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
	characterRepo characterrepo.Repository
	worldRepo     worldrepo.Repository
	provider      llm.Provider
	idGen         idgen.Generator
	clock         clock.Clock
}

// NewOrchestrator creates a new character orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		worldRepo:     cfg.WorldRepo,
		provider:      cfg.Provider,
		idGen:         cfg.IDGenerator,
		clock:         c,
	}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampAttributes(a entities.Attributes) entities.Attributes {
	// An all-zero block means the caller gave no scores at all; start
	// from the flat default rather than clamping everything to 3
	if a == (entities.Attributes{}) {
		return entities.Attributes{
			Strength: 10, Dexterity: 10, Constitution: 10,
			Intelligence: 10, Wisdom: 10, Charisma: 10,
		}
	}
	return entities.Attributes{
		Strength:     clamp(a.Strength, minAttribute, maxAttribute),
		Dexterity:    clamp(a.Dexterity, minAttribute, maxAttribute),
		Constitution: clamp(a.Constitution, minAttribute, maxAttribute),
		Intelligence: clamp(a.Intelligence, minAttribute, maxAttribute),
		Wisdom:       clamp(a.Wisdom, minAttribute, maxAttribute),
		Charisma:     clamp(a.Charisma, minAttribute, maxAttribute),
	}
}

func clampSkills(s entities.Skills) entities.Skills {
	clampMap := func(m map[string]int) map[string]int {
		if m == nil {
			return map[string]int{}
		}
		out := make(map[string]int, len(m))
		for name, mod := range m {
			out[name] = clamp(mod, minSkill, maxSkill)
		}
		return out
	}
	return entities.Skills{
		Combat:      clampMap(s.Combat),
		Social:      clampMap(s.Social),
		Exploration: clampMap(s.Exploration),
		Knowledge:   clampMap(s.Knowledge),
	}
}

func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	vb := errors.NewValidationBuilder()
	if input.WorldID == "" {
		vb.RequiredField("WorldID")
	}
	if input.Name == "" {
		vb.RequiredField("Name")
	}
	if input.Alignment != "" && !input.Alignment.Valid() {
		vb.Fieldf("Alignment", "unknown alignment %q", input.Alignment)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.worldRepo.Get(ctx, worldrepo.GetInput{ID: input.WorldID}); err != nil {
		return nil, errors.Wrap(err, "failed to get world")
	}

	alignment := input.Alignment
	if alignment == "" {
		alignment = entities.TrueNeutral
	}
	level := clamp(input.Level, minLevel, maxLevel)

	attrs := clampAttributes(input.Attributes)
	maxHP := baseHP + dice.AttributeModifier(attrs.Constitution) + level

	char := &entities.Character{
		ID:         o.idGen.Generate(),
		WorldID:    input.WorldID,
		Name:       input.Name,
		Race:       input.Race,
		Class:      input.Class,
		Alignment:  alignment,
		Level:      level,
		Backstory:  input.Backstory,
		Attributes: attrs,
		Skills:     clampSkills(input.Skills),
		Background: input.Background,
		Memories:   []entities.Memory{},
		CurrentHP:  maxHP,
		MaxHP:      maxHP,
		Status:     entities.CharacterActive,
		CreatedAt:  o.clock.Now(),
	}

	createOutput, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.Info("Character created",
		"character_id", char.ID,
		"world_id", char.WorldID,
		"name", char.Name,
		"max_hp", char.MaxHP,
	)

	return &CreateCharacterOutput{Character: createOutput.Character}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	return &GetCharacterOutput{Character: getOutput.Character}, nil
}

func (o *orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument("world ID is required")
	}

	listOutput, err := o.characterRepo.ListByWorld(ctx, characterrepo.ListByWorldInput{WorldID: input.WorldID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListCharactersOutput{Characters: listOutput.Characters}, nil
}

func (o *orchestrator) UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if !input.Character.Status.Valid() {
		return nil, errors.InvalidArgumentf("unknown character status %q", input.Character.Status)
	}
	if !input.Character.Alignment.Valid() {
		return nil, errors.InvalidArgumentf("unknown alignment %q", input.Character.Alignment)
	}

	char := input.Character
	char.Attributes = clampAttributes(char.Attributes)
	char.Skills = clampSkills(char.Skills)
	char.CurrentHP = clamp(char.CurrentHP, 0, char.MaxHP)

	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}

	return &UpdateCharacterOutput{Character: updateOutput.Character}, nil
}

func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	slog.Info("Character deleted", "character_id", input.CharacterID)

	return &DeleteCharacterOutput{}, nil
}

func (o *orchestrator) AddMemory(ctx context.Context, input *AddMemoryInput) (*AddMemoryOutput, error) {
	if input.Content == "" {
		return nil, errors.InvalidArgument("memory content is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	char := getOutput.Character

	memory := entities.Memory{
		ID:                o.idGen.Generate(),
		Content:           input.Content,
		Importance:        clamp(input.Importance, minImportance, maxImportance),
		Timestamp:         o.clock.Now(),
		RelatedCharacters: input.RelatedCharacters,
		RelatedLocations:  input.RelatedLocations,
	}
	char.Memories = append(char.Memories, memory)

	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save memory")
	}

	return &AddMemoryOutput{Memory: &memory, Character: updateOutput.Character}, nil
}

func (o *orchestrator) ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error) {
	if input.Amount <= 0 {
		return nil, errors.InvalidArgument("damage amount must be positive")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	char := getOutput.Character

	if char.Status == entities.CharacterDead {
		return nil, errors.FailedPreconditionf("character %s is dead", char.ID)
	}

	char.CurrentHP = clamp(char.CurrentHP-input.Amount, 0, char.MaxHP)
	incapacitated := false
	if char.CurrentHP == 0 && char.Status == entities.CharacterActive {
		char.Status = entities.CharacterIncapacitated
		incapacitated = true
	}

	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save character")
	}

	slog.Info("Damage applied",
		"character_id", char.ID,
		"amount", input.Amount,
		"current_hp", char.CurrentHP,
		"incapacitated", incapacitated,
	)

	return &ApplyDamageOutput{Character: updateOutput.Character, Incapacitated: incapacitated}, nil
}

func (o *orchestrator) Heal(ctx context.Context, input *HealInput) (*HealOutput, error) {
	if input.Amount <= 0 {
		return nil, errors.InvalidArgument("heal amount must be positive")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	char := getOutput.Character

	if char.Status == entities.CharacterDead {
		return nil, errors.FailedPreconditionf("character %s is dead", char.ID)
	}

	char.CurrentHP = clamp(char.CurrentHP+input.Amount, 0, char.MaxHP)
	revived := false
	if char.CurrentHP > 0 && char.Status == entities.CharacterIncapacitated {
		char.Status = entities.CharacterActive
		revived = true
	}

	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save character")
	}

	slog.Info("Healing applied",
		"character_id", char.ID,
		"amount", input.Amount,
		"current_hp", char.CurrentHP,
		"revived", revived,
	)

	return &HealOutput{Character: updateOutput.Character, Revived: revived}, nil
}

// sheetExtraction mirrors the JSON shape the sheet prompt asks for
type sheetExtraction struct {
	Race       string              `json:"race"`
	Class      string              `json:"class"`
	Alignment  string              `json:"alignment"`
	Level      int                 `json:"level"`
	Backstory  string              `json:"backstory"`
	Attributes entities.Attributes `json:"attributes"`
	Skills     entities.Skills     `json:"skills"`
	Background entities.Background `json:"background"`
}

// GenerateSheet asks the model to flesh a concept out into a full
// sheet, then creates the character. When no sheet can be recovered
// the character is created with the flat default sheet.
func (o *orchestrator) GenerateSheet(ctx context.Context, input *GenerateSheetInput) (*GenerateSheetOutput, error) {
	vb := errors.NewValidationBuilder()
	if input.WorldID == "" {
		vb.RequiredField("WorldID")
	}
	if input.Name == "" {
		vb.RequiredField("Name")
	}
	if strings.TrimSpace(input.Concept) == "" {
		vb.RequiredField("Concept")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	createInput := &CreateCharacterInput{
		WorldID: input.WorldID,
		Name:    input.Name,
	}

	extraction, ok := o.extractSheet(ctx, input)
	if ok {
		createInput.Race = extraction.Race
		createInput.Class = extraction.Class
		createInput.Level = extraction.Level
		createInput.Backstory = extraction.Backstory
		createInput.Attributes = extraction.Attributes
		createInput.Skills = extraction.Skills
		createInput.Background = extraction.Background
		if a := entities.Alignment(extraction.Alignment); a.Valid() {
			createInput.Alignment = a
		}
	} else {
		createInput.Backstory = input.Concept
	}

	createOutput, err := o.CreateCharacter(ctx, createInput)
	if err != nil {
		return nil, err
	}

	slog.Info("Character sheet generated",
		"character_id", createOutput.Character.ID,
		"structured", ok,
	)

	return &GenerateSheetOutput{Character: createOutput.Character, Structured: ok}, nil
}

func (o *orchestrator) extractSheet(ctx context.Context, input *GenerateSheetInput) (*sheetExtraction, bool) {
	if !o.provider.IsConfigured() {
		return nil, false
	}

	resp, err := o.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: sheetSystemPrompt},
			{Role: llm.RoleUser, Content: "Name: " + input.Name + "\nConcept: " + input.Concept},
		},
	})
	if err != nil {
		slog.Warn("Sheet generation failed, using default sheet", "error", err.Error())
		return nil, false
	}

	outcome := jsonrepair.Recover(resp.Text)
	if outcome.Kind != jsonrepair.OutcomeStructured {
		return nil, false
	}

	var extraction sheetExtraction
	if err := outcome.Decode(&extraction); err != nil {
		return nil, false
	}

	return &extraction, true
}

package character

import (
	"github.com/storyforge/storyforge-api/internal/entities"
)

// CreateCharacterInput defines the input for creating a character
type CreateCharacterInput struct {
	WorldID    string
	Name       string
	Race       string
	Class      string
	Alignment  entities.Alignment
	Level      int
	Backstory  string
	Attributes entities.Attributes
	Skills     entities.Skills
	Background entities.Background
}

// CreateCharacterOutput defines the output for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput defines the input for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the output for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput defines the input for listing a world's characters
type ListCharactersInput struct {
	WorldID string
}

// ListCharactersOutput defines the output for listing characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// UpdateCharacterInput defines the input for updating a character
type UpdateCharacterInput struct {
	Character *entities.Character
}

// UpdateCharacterOutput defines the output for updating a character
type UpdateCharacterOutput struct {
	Character *entities.Character
}

// DeleteCharacterInput defines the input for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the output for deleting a character
type DeleteCharacterOutput struct{}

// AddMemoryInput defines the input for recording a character memory
type AddMemoryInput struct {
	CharacterID string
	Content     string

	// Importance is graded 1-10; out-of-band values are clamped
	Importance        int
	RelatedCharacters []string
	RelatedLocations  []string
}

// AddMemoryOutput defines the output for recording a memory
type AddMemoryOutput struct {
	Memory    *entities.Memory
	Character *entities.Character
}

// ApplyDamageInput defines the input for damaging a character
type ApplyDamageInput struct {
	CharacterID string
	Amount      int
}

// ApplyDamageOutput defines the output for damaging a character
type ApplyDamageOutput struct {
	Character *entities.Character

	// Incapacitated reports whether this damage dropped the character
	// to 0 HP
	Incapacitated bool
}

// HealInput defines the input for healing a character
type HealInput struct {
	CharacterID string
	Amount      int
}

// HealOutput defines the output for healing a character
type HealOutput struct {
	Character *entities.Character

	// Revived reports whether this healing brought the character back
	// from incapacitated
	Revived bool
}

// GenerateSheetInput defines the input for LLM-assisted sheet
// generation from a character concept
type GenerateSheetInput struct {
	WorldID string
	Name    string
	Concept string
}

// GenerateSheetOutput defines the output for sheet generation
type GenerateSheetOutput struct {
	Character *entities.Character

	// Structured reports whether the model produced a usable sheet;
	// false means the default sheet was used
	Structured bool
}

package dice

import (
	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/pkg/dice"
)

// RollInput defines the input for a plain dice roll
type RollInput struct {
	Kind     dice.Kind
	Count    int
	Modifier int
}

// RollOutput defines the output for a plain dice roll
type RollOutput struct {
	Roll *dice.Roll
}

// ResolveCheckInput defines the input for resolving a roll against a
// difficulty with an explicit modifier
type ResolveCheckInput struct {
	Kind       dice.Kind
	Count      int
	Modifier   int
	Difficulty int
}

// ResolveCheckOutput defines the output for a resolved check
type ResolveCheckOutput struct {
	Roll            *dice.Roll
	Difficulty      int
	Success         bool
	CriticalSuccess bool
	CriticalFailure bool
}

// RollCheckInput defines the input for a character-based check. The
// modifier is derived from the character sheet according to CheckType.
type RollCheckInput struct {
	CharacterID string
	CheckType   entities.CheckType

	// SkillName selects the skill when CheckType is skill
	SkillName string

	Difficulty int
}

// RollCheckOutput defines the output for a character-based check
type RollCheckOutput struct {
	Character       *entities.Character
	Modifier        int
	Roll            *dice.Roll
	Difficulty      int
	Success         bool
	CriticalSuccess bool
	CriticalFailure bool
}

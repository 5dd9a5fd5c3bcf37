// Package dice implements the dice orchestrator for rolls and checks
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/storyforge/storyforge-api/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"

	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/errors"
	"github.com/storyforge/storyforge-api/internal/pkg/dice"
	"github.com/storyforge/storyforge-api/internal/repositories/character"
)

// Service defines the interface for dice operations
type Service interface {
	// Roll performs a plain dice roll
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// ResolveCheck rolls against a difficulty with an explicit modifier
	ResolveCheck(ctx context.Context, input *ResolveCheckInput) (*ResolveCheckOutput, error)

	// RollCheck rolls a d20 check for a character, deriving the
	// modifier from the character sheet
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	CharacterRepo character.Repository
	Roller        dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
	roller        dice.Roller
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		roller:        cfg.Roller,
	}, nil
}

// Roll performs a plain dice roll
func (o *orchestrator) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	roll, err := o.roller.RollSet(input.Kind, input.Count, input.Modifier)
	if err != nil {
		return nil, err
	}

	return &RollOutput{Roll: roll}, nil
}

// ResolveCheck rolls against a difficulty with an explicit modifier
func (o *orchestrator) ResolveCheck(ctx context.Context, input *ResolveCheckInput) (*ResolveCheckOutput, error) {
	roll, err := o.roller.RollSet(input.Kind, input.Count, input.Modifier)
	if err != nil {
		return nil, err
	}

	return &ResolveCheckOutput{
		Roll:            roll,
		Difficulty:      input.Difficulty,
		Success:         dice.CheckAgainst(roll.Total, input.Difficulty),
		CriticalSuccess: dice.CriticalSuccess(roll.Results, input.Kind),
		CriticalFailure: dice.CriticalFailure(roll.Results, input.Kind),
	}, nil
}

// RollCheck rolls a single d20 for the character and applies the
// modifier the check type calls for: attribute checks use the ability
// modifier, skill checks use the skill modifier, attack and save rolls
// use the bare die
func (o *orchestrator) RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if !input.CheckType.Valid() {
		return nil, errors.InvalidArgumentf("unknown check type: %s", input.CheckType)
	}
	if input.CheckType == entities.CheckSkill && input.SkillName == "" {
		return nil, errors.InvalidArgument("skill name is required for skill checks")
	}

	getOutput, err := o.characterRepo.Get(ctx, character.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	char := getOutput.Character

	modifier := 0
	switch {
	case input.CheckType.IsAttribute():
		score, ok := char.Attributes.Score(string(input.CheckType))
		if !ok {
			return nil, errors.InvalidArgumentf("unknown attribute: %s", input.CheckType)
		}
		modifier = dice.AttributeModifier(score)
	case input.CheckType == entities.CheckSkill:
		modifier = char.Skills.Modifier(input.SkillName)
	}

	roll, err := o.roller.RollSet(dice.D20, 1, modifier)
	if err != nil {
		return nil, err
	}

	out := &RollCheckOutput{
		Character:       char,
		Modifier:        modifier,
		Roll:            roll,
		Difficulty:      input.Difficulty,
		Success:         dice.CheckAgainst(roll.Total, input.Difficulty),
		CriticalSuccess: dice.CriticalSuccess(roll.Results, dice.D20),
		CriticalFailure: dice.CriticalFailure(roll.Results, dice.D20),
	}

	slog.Info("Check rolled",
		"character_id", char.ID,
		"check_type", input.CheckType,
		"difficulty", input.Difficulty,
		"total", roll.Total,
		"success", out.Success,
	)

	return out, nil
}

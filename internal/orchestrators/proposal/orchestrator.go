// Package proposal implements the action proposal pipeline: it asks
// the language model for one in-character action per participant and
// queues the results on the session's current round.
package proposal

//go:generate mockgen -destination=mock/mock_service.go -package=proposalmock github.com/storyforge/storyforge-api/internal/orchestrators/proposal Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/errors"
	"github.com/storyforge/storyforge-api/internal/llm"
	sessionsvc "github.com/storyforge/storyforge-api/internal/orchestrators/session"
	"github.com/storyforge/storyforge-api/internal/pkg/jsonrepair"
	characterrepo "github.com/storyforge/storyforge-api/internal/repositories/character"
	sessionrepo "github.com/storyforge/storyforge-api/internal/repositories/session"
	worldrepo "github.com/storyforge/storyforge-api/internal/repositories/world"
)

const reasoningUnavailable = "(reasoning unavailable)"

// Service defines the interface for proposal operations
type Service interface {
	// ProposeActions generates and queues one action per active
	// participant of the session's current round
	ProposeActions(ctx context.Context, input *ProposeActionsInput) (*ProposeActionsOutput, error)

	// GenerateNarration narrates a finalized turn
	GenerateNarration(ctx context.Context, input *GenerateNarrationInput) (*GenerateNarrationOutput, error)

	// SuggestScenes proposes next scenes to the game master
	SuggestScenes(ctx context.Context, input *SuggestScenesInput) (*SuggestScenesOutput, error)
}

// Config holds the dependencies for the proposal orchestrator
type Config struct {
	SessionService sessionsvc.Service
	SessionRepo    sessionrepo.Repository
	WorldRepo      worldrepo.Repository
	CharacterRepo  characterrepo.Repository
	Provider       llm.Provider
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionService == nil {
		vb.RequiredField("SessionService")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.WorldRepo == nil {
		vb.RequiredField("WorldRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Provider == nil {
		vb.RequiredField("Provider")
	}

	return vb.Build()
}

type orchestrator struct {
	sessionService sessionsvc.Service
	sessionRepo    sessionrepo.Repository
	worldRepo      worldrepo.Repository
	characterRepo  characterrepo.Repository
	provider       llm.Provider
}

// NewOrchestrator creates a new proposal orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sessionService: cfg.SessionService,
		sessionRepo:    cfg.SessionRepo,
		worldRepo:      cfg.WorldRepo,
		characterRepo:  cfg.CharacterRepo,
		provider:       cfg.Provider,
	}, nil
}

// proposed is one character's draft action before it is queued
type proposed struct {
	action    string
	reasoning string
	fallback  bool
}

func fallbackProposal(name string) proposed {
	return proposed{
		action:   fmt.Sprintf("%s observes the surroundings, weighing the next move.", name),
		fallback: true,
	}
}

// ProposeActions fetches every active participant, asks the model for
// each one concurrently, and queues the proposals in participation
// order. A failure for one character falls back to a neutral action
// instead of failing the round.
func (o *orchestrator) ProposeActions(ctx context.Context, input *ProposeActionsInput) (*ProposeActionsOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	sessOutput, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}
	sess := sessOutput.Session

	if sess.Status != entities.SessionActive {
		return nil, errors.FailedPreconditionf("session %s is %s", sess.ID, sess.Status)
	}

	worldOutput, err := o.worldRepo.Get(ctx, worldrepo.GetInput{ID: sess.WorldID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get world")
	}

	// Only characters still able to act get a proposal
	participants := make([]*entities.Character, 0, len(sess.Characters))
	for _, id := range sess.Characters {
		charOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		if charOutput.Character.Status == entities.CharacterActive {
			participants = append(participants, charOutput.Character)
		}
	}
	if len(participants) == 0 {
		return nil, errors.FailedPrecondition("session has no active characters")
	}

	// The generation is captured before dispatch; if the round is
	// cleared while proposals are in flight, queueing them fails with
	// Aborted instead of polluting the new round
	roundOutput, err := o.sessionService.GetPendingRound(ctx, &sessionsvc.GetPendingRoundInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pending round")
	}
	generation := roundOutput.Generation

	proposals := make([]proposed, len(participants))
	var wg sync.WaitGroup
	for i, char := range participants {
		wg.Add(1)
		go func(i int, char *entities.Character) {
			defer wg.Done()
			proposals[i] = o.proposeFor(ctx, worldOutput.World, sess, char, input.SceneContext)
		}(i, char)
	}
	wg.Wait()

	out := &ProposeActionsOutput{}
	for i, char := range participants {
		p := proposals[i]
		if p.fallback {
			out.Fallbacks++
		}

		queued, err := o.sessionService.AddPendingAction(ctx, &sessionsvc.AddPendingActionInput{
			SessionID:      input.SessionID,
			CharacterID:    char.ID,
			ProposedAction: p.action,
			AIReasoning:    p.reasoning,
			Generation:     generation,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to queue proposed action")
		}
		out.Actions = append(out.Actions, *queued.Action)
	}

	slog.Info("Actions proposed",
		"session_id", input.SessionID,
		"participants", len(participants),
		"fallbacks", out.Fallbacks,
	)

	return out, nil
}

// proposeFor asks the model for one character's action. Every failure
// mode lands on a usable proposal.
func (o *orchestrator) proposeFor(ctx context.Context, world *entities.World, sess *entities.Session, char *entities.Character, sceneContext string) proposed {
	if !o.provider.IsConfigured() {
		return fallbackProposal(char.Name)
	}

	resp, err := o.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: proposalSystemPrompt},
			{Role: llm.RoleUser, Content: buildProposalPrompt(world, sess, char, sceneContext)},
		},
	})
	if err != nil {
		slog.Warn("Proposal request failed, using fallback",
			"character_id", char.ID,
			"error", err.Error(),
		)
		return fallbackProposal(char.Name)
	}

	outcome := jsonrepair.Recover(resp.Text)
	switch outcome.Kind {
	case jsonrepair.OutcomeStructured:
		var parsed struct {
			ProposedAction string `json:"proposedAction"`
			AIReasoning    string `json:"aiReasoning"`
		}
		if err := outcome.Decode(&parsed); err == nil && strings.TrimSpace(parsed.ProposedAction) != "" {
			return proposed{action: parsed.ProposedAction, reasoning: parsed.AIReasoning}
		}
		// An object with no usable action field is still an answer;
		// keep the model's words, like the prose case below
		return proposed{action: strings.TrimSpace(resp.Text), reasoning: reasoningUnavailable}
	case jsonrepair.OutcomeUnstructured:
		// The model answered in prose; keep its words as the action
		return proposed{action: strings.TrimSpace(outcome.Raw), reasoning: reasoningUnavailable}
	default:
		return fallbackProposal(char.Name)
	}
}

// GenerateNarration narrates a finalized turn as one scene
func (o *orchestrator) GenerateNarration(ctx context.Context, input *GenerateNarrationInput) (*GenerateNarrationOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	sessOutput, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}
	sess := sessOutput.Session

	if len(sess.Turns) == 0 {
		return nil, errors.FailedPrecondition("session has no finalized turns")
	}

	turnNumber := input.TurnNumber
	if turnNumber == 0 {
		turnNumber = sess.CurrentTurn
	}

	var turn *entities.Turn
	for i := range sess.Turns {
		if sess.Turns[i].TurnNumber == turnNumber {
			turn = &sess.Turns[i]
			break
		}
	}
	if turn == nil {
		return nil, errors.NotFoundf("turn %d not found in session %s", turnNumber, input.SessionID)
	}

	worldOutput, err := o.worldRepo.Get(ctx, worldrepo.GetInput{ID: sess.WorldID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get world")
	}

	if !o.provider.IsConfigured() {
		return &GenerateNarrationOutput{Narration: plainNarration(turn)}, nil
	}

	resp, err := o.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: narrationSystemPrompt},
			{Role: llm.RoleUser, Content: buildNarrationPrompt(worldOutput.World, turn)},
		},
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		if err != nil {
			slog.Warn("Narration request failed, using fallback",
				"session_id", input.SessionID,
				"error", err.Error(),
			)
		}
		return &GenerateNarrationOutput{Narration: plainNarration(turn)}, nil
	}

	return &GenerateNarrationOutput{Narration: strings.TrimSpace(resp.Text)}, nil
}

// plainNarration is the deterministic fallback: a factual recap of the turn
func plainNarration(turn *entities.Turn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Turn %d.", turn.TurnNumber)
	for _, action := range turn.Actions {
		fmt.Fprintf(&b, " %s: %s.", action.CharacterName, action.ProposedAction)
	}
	return b.String()
}

// SuggestScenes proposes next scenes for the game master
func (o *orchestrator) SuggestScenes(ctx context.Context, input *SuggestScenesInput) (*SuggestScenesOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	sessOutput, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}

	worldOutput, err := o.worldRepo.Get(ctx, worldrepo.GetInput{ID: sessOutput.Session.WorldID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get world")
	}

	if !o.provider.IsConfigured() {
		return nil, errors.Unavailable("scene suggestions require a configured language model")
	}

	resp, err := o.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: scenesSystemPrompt},
			{Role: llm.RoleUser, Content: buildScenesPrompt(worldOutput.World, sessOutput.Session)},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "scene suggestion request failed")
	}

	outcome := jsonrepair.Recover(resp.Text)
	var parsed struct {
		Suggestions []SceneSuggestion `json:"suggestions"`
	}
	if outcome.Kind != jsonrepair.OutcomeStructured {
		return nil, errors.Internal("scene suggestion response held no usable object")
	}
	if err := outcome.Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode scene suggestions")
	}

	return &SuggestScenesOutput{Suggestions: parsed.Suggestions}, nil
}

// Package session implements the turn engine: it queues proposed
// actions and their dice checks for the current round and finalizes
// them into immutable turns.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionorchestratormock github.com/storyforge/storyforge-api/internal/orchestrators/session Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/errors"
	dicesvc "github.com/storyforge/storyforge-api/internal/orchestrators/dice"
	"github.com/storyforge/storyforge-api/internal/pkg/clock"
	"github.com/storyforge/storyforge-api/internal/pkg/idgen"
	characterrepo "github.com/storyforge/storyforge-api/internal/repositories/character"
	sessionrepo "github.com/storyforge/storyforge-api/internal/repositories/session"
	worldrepo "github.com/storyforge/storyforge-api/internal/repositories/world"
)

// Service defines the interface for session and turn operations
type Service interface {
	// Session lifecycle
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)
	UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*UpdateStatusOutput, error)
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)

	// Round queues
	AddPendingAction(ctx context.Context, input *AddPendingActionInput) (*AddPendingActionOutput, error)
	AddPendingCheck(ctx context.Context, input *AddPendingCheckInput) (*AddPendingCheckOutput, error)
	ClearPendingActions(ctx context.Context, input *ClearPendingActionsInput) (*ClearPendingActionsOutput, error)
	ClearPendingChecks(ctx context.Context, input *ClearPendingChecksInput) (*ClearPendingChecksOutput, error)
	GetPendingRound(ctx context.Context, input *GetPendingRoundInput) (*GetPendingRoundOutput, error)

	// CompleteTurn finalizes the round into the session's turn history
	CompleteTurn(ctx context.Context, input *CompleteTurnInput) (*CompleteTurnOutput, error)

	// Session annotations
	AddTimelineEvent(ctx context.Context, input *AddTimelineEventInput) (*AddTimelineEventOutput, error)
	AddAdventureLog(ctx context.Context, input *AddAdventureLogInput) (*AddAdventureLogOutput, error)
}

// Config holds the dependencies for the session orchestrator
type Config struct {
	SessionRepo   sessionrepo.Repository
	WorldRepo     worldrepo.Repository
	CharacterRepo characterrepo.Repository
	DiceService   dicesvc.Service
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.WorldRepo == nil {
		vb.RequiredField("WorldRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// round holds the mutable state of the turn being played. Generation
// increments every time the queues are cleared, so submissions
// computed against an older round can be recognized and rejected.
type round struct {
	actions    []entities.TurnAction
	checks     []entities.TurnCheck
	results    []entities.TurnResult
	generation uint64
}

func (r *round) hasCheckFor(actionID string) bool {
	for _, c := range r.checks {
		if c.ActionID == actionID {
			return true
		}
	}
	return false
}

func (r *round) findAction(actionID string) *entities.TurnAction {
	for i := range r.actions {
		if r.actions[i].ID == actionID {
			return &r.actions[i]
		}
	}
	return nil
}

type orchestrator struct {
	sessionRepo   sessionrepo.Repository
	worldRepo     worldrepo.Repository
	characterRepo characterrepo.Repository
	diceService   dicesvc.Service
	idGen         idgen.Generator
	clock         clock.Clock

	mu     sync.Mutex
	rounds map[string]*round
}

// NewOrchestrator creates a new session orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		sessionRepo:   cfg.SessionRepo,
		worldRepo:     cfg.WorldRepo,
		characterRepo: cfg.CharacterRepo,
		diceService:   cfg.DiceService,
		idGen:         cfg.IDGenerator,
		clock:         c,
		rounds:        make(map[string]*round),
	}, nil
}

// roundFor returns the session's round state, creating it on first use.
// Callers must hold o.mu.
func (o *orchestrator) roundFor(sessionID string) *round {
	r, ok := o.rounds[sessionID]
	if !ok {
		r = &round{generation: 1}
		o.rounds[sessionID] = r
	}
	return r
}

func (o *orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument("world ID is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("session name is required")
	}

	if _, err := o.worldRepo.Get(ctx, worldrepo.GetInput{ID: input.WorldID}); err != nil {
		return nil, errors.Wrap(err, "failed to get world")
	}

	for _, id := range input.CharacterIDs {
		getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		if getOutput.Character.WorldID != input.WorldID {
			return nil, errors.InvalidArgumentf(
				"character %s belongs to world %s, not %s",
				id, getOutput.Character.WorldID, input.WorldID)
		}
	}

	now := o.clock.Now()
	sess := &entities.Session{
		ID:         o.idGen.Generate(),
		WorldID:    input.WorldID,
		Name:       input.Name,
		Characters: input.CharacterIDs,
		Status:     entities.SessionActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	createOutput, err := o.sessionRepo.Create(ctx, sessionrepo.CreateInput{Session: sess})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	slog.Info("Session created",
		"session_id", sess.ID,
		"world_id", sess.WorldID,
		"characters", len(sess.Characters),
	)

	return &CreateSessionOutput{Session: createOutput.Session}, nil
}

func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	getOutput, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}

	return &GetSessionOutput{Session: getOutput.Session}, nil
}

func (o *orchestrator) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	listOutput, err := o.sessionRepo.ListByWorld(ctx, sessionrepo.ListByWorldInput{WorldID: input.WorldID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return &ListSessionsOutput{Sessions: listOutput.Sessions}, nil
}

func (o *orchestrator) UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*UpdateStatusOutput, error) {
	if !input.Status.Valid() {
		return nil, errors.InvalidArgumentf("unknown session status: %s", input.Status)
	}

	getOutput, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}

	sess := getOutput.Session
	sess.Status = input.Status
	sess.UpdatedAt = o.clock.Now()

	updateOutput, err := o.sessionRepo.Update(ctx, sessionrepo.UpdateInput{Session: sess})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update session")
	}

	return &UpdateStatusOutput{Session: updateOutput.Session}, nil
}

func (o *orchestrator) DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error) {
	if _, err := o.sessionRepo.Delete(ctx, sessionrepo.DeleteInput{ID: input.SessionID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete session")
	}

	o.mu.Lock()
	delete(o.rounds, input.SessionID)
	o.mu.Unlock()

	return &DeleteSessionOutput{}, nil
}

func (o *orchestrator) AddPendingAction(ctx context.Context, input *AddPendingActionInput) (*AddPendingActionOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.ProposedAction == "" {
		return nil, errors.InvalidArgument("proposed action is required")
	}

	getOutput, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}
	sess := getOutput.Session

	if sess.Status != entities.SessionActive {
		return nil, errors.FailedPreconditionf("session %s is %s", sess.ID, sess.Status)
	}
	if !sess.Participant(input.CharacterID) {
		return nil, errors.InvalidArgumentf("character %s is not in session %s", input.CharacterID, sess.ID)
	}

	charOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	action := entities.TurnAction{
		ID:             o.idGen.Generate(),
		CharacterID:    input.CharacterID,
		CharacterName:  charOutput.Character.Name,
		ProposedAction: input.ProposedAction,
		AIReasoning:    input.AIReasoning,
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	r := o.roundFor(input.SessionID)
	if input.Generation != 0 && input.Generation != r.generation {
		return nil, errors.Abortedf(
			"round has moved on: submission is for generation %d, current is %d",
			input.Generation, r.generation)
	}
	r.actions = append(r.actions, action)

	slog.Info("Pending action queued",
		"session_id", input.SessionID,
		"character_id", input.CharacterID,
		"action_id", action.ID,
	)

	return &AddPendingActionOutput{Action: &action}, nil
}

func (o *orchestrator) AddPendingCheck(ctx context.Context, input *AddPendingCheckInput) (*AddPendingCheckOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.ActionID == "" {
		return nil, errors.InvalidArgument("action ID is required")
	}
	if !input.CheckType.Valid() {
		return nil, errors.InvalidArgumentf("unknown check type: %s", input.CheckType)
	}
	if input.Difficulty < 1 {
		return nil, errors.InvalidArgument("difficulty must be at least 1")
	}

	// Resolve the target action under the lock, then release it for
	// the dice roll so a slow character fetch can't stall the round
	o.mu.Lock()
	r := o.roundFor(input.SessionID)
	generation := r.generation
	action := r.findAction(input.ActionID)
	if action == nil {
		o.mu.Unlock()
		return nil, errors.InvalidArgumentf("no pending action with ID %s", input.ActionID)
	}
	if r.hasCheckFor(input.ActionID) {
		o.mu.Unlock()
		return nil, errors.AlreadyExistsf("action %s already has a check", input.ActionID)
	}
	characterID := action.CharacterID
	o.mu.Unlock()

	rollOutput, err := o.diceService.RollCheck(ctx, &dicesvc.RollCheckInput{
		CharacterID: characterID,
		CheckType:   input.CheckType,
		SkillName:   input.SkillName,
		Difficulty:  input.Difficulty,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll check")
	}

	check := entities.TurnCheck{
		ID:         o.idGen.Generate(),
		ActionID:   input.ActionID,
		CheckType:  input.CheckType,
		SkillName:  input.SkillName,
		Difficulty: input.Difficulty,
		DiceRoll:   *rollOutput.Roll,
	}
	result := entities.TurnResult{
		ID:           o.idGen.Generate(),
		CheckID:      check.ID,
		Success:      rollOutput.Success,
		DMNarration:  input.Narration,
		WorldChanges: input.WorldChanges,
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	r = o.roundFor(input.SessionID)
	if r.generation != generation {
		return nil, errors.Aborted("round was cleared while the check was rolling")
	}
	if r.hasCheckFor(input.ActionID) {
		return nil, errors.AlreadyExistsf("action %s already has a check", input.ActionID)
	}
	r.checks = append(r.checks, check)
	r.results = append(r.results, result)

	return &AddPendingCheckOutput{Check: &check, Result: &result}, nil
}

func (o *orchestrator) ClearPendingActions(ctx context.Context, input *ClearPendingActionsInput) (*ClearPendingActionsOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	r := o.roundFor(input.SessionID)
	cleared := len(r.actions)
	r.actions = nil
	r.checks = nil
	r.results = nil
	r.generation++

	return &ClearPendingActionsOutput{Cleared: cleared}, nil
}

func (o *orchestrator) ClearPendingChecks(ctx context.Context, input *ClearPendingChecksInput) (*ClearPendingChecksOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	r := o.roundFor(input.SessionID)
	cleared := len(r.checks)
	r.checks = nil
	r.results = nil
	r.generation++

	return &ClearPendingChecksOutput{Cleared: cleared}, nil
}

func (o *orchestrator) GetPendingRound(ctx context.Context, input *GetPendingRoundInput) (*GetPendingRoundOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	r := o.roundFor(input.SessionID)

	out := &GetPendingRoundOutput{
		Actions:    make([]entities.TurnAction, len(r.actions)),
		Checks:     make([]entities.TurnCheck, len(r.checks)),
		Results:    make([]entities.TurnResult, len(r.results)),
		Generation: r.generation,
	}
	copy(out.Actions, r.actions)
	copy(out.Checks, r.checks)
	copy(out.Results, r.results)

	return out, nil
}

func (o *orchestrator) CompleteTurn(ctx context.Context, input *CompleteTurnInput) (*CompleteTurnOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	getOutput, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}
	sess := getOutput.Session

	// Snapshot the round under the lock; persistence happens outside it
	o.mu.Lock()
	r := o.roundFor(input.SessionID)
	for _, action := range r.actions {
		if !r.hasCheckFor(action.ID) {
			o.mu.Unlock()
			return nil, errors.FailedPreconditionf(
				"action %s by %s has no check yet", action.ID, action.CharacterName)
		}
	}
	generation := r.generation
	turn := &entities.Turn{
		ID:         o.idGen.Generate(),
		SessionID:  input.SessionID,
		TurnNumber: sess.CurrentTurn + 1,
		Actions:    append([]entities.TurnAction(nil), r.actions...),
		Checks:     append([]entities.TurnCheck(nil), r.checks...),
		Results:    append([]entities.TurnResult(nil), r.results...),
		WorldState: input.WorldState,
		Timestamp:  o.clock.Now(),
	}
	o.mu.Unlock()

	appendOutput, err := o.sessionRepo.AppendTurn(ctx, sessionrepo.AppendTurnInput{
		SessionID: input.SessionID,
		Turn:      turn,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to append turn")
	}

	// Queues clear only after the turn is durably stored
	o.mu.Lock()
	r = o.roundFor(input.SessionID)
	if r.generation == generation {
		r.actions = nil
		r.checks = nil
		r.results = nil
		r.generation++
	}
	o.mu.Unlock()

	slog.Info("Turn completed",
		"session_id", input.SessionID,
		"turn_number", turn.TurnNumber,
		"actions", len(turn.Actions),
		"checks", len(turn.Checks),
	)

	return &CompleteTurnOutput{Turn: turn, Session: appendOutput.Session}, nil
}

func (o *orchestrator) AddTimelineEvent(ctx context.Context, input *AddTimelineEventInput) (*AddTimelineEventOutput, error) {
	if input.Event == "" {
		return nil, errors.InvalidArgument("event text is required")
	}
	if !input.Significance.Valid() {
		return nil, errors.InvalidArgumentf("unknown significance: %s", input.Significance)
	}

	getOutput, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}

	event := &entities.TimelineEvent{
		ID:           o.idGen.Generate(),
		Timestamp:    o.clock.Now(),
		TurnNumber:   getOutput.Session.CurrentTurn,
		Event:        input.Event,
		Significance: input.Significance,
	}

	if _, err := o.sessionRepo.AppendTimelineEvent(ctx, sessionrepo.AppendTimelineEventInput{
		SessionID: input.SessionID,
		Event:     event,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to append timeline event")
	}

	return &AddTimelineEventOutput{Event: event}, nil
}

func (o *orchestrator) AddAdventureLog(ctx context.Context, input *AddAdventureLogInput) (*AddAdventureLogOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Content == "" {
		return nil, errors.InvalidArgument("content is required")
	}

	getOutput, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}
	sess := getOutput.Session

	if !sess.Participant(input.CharacterID) {
		return nil, errors.InvalidArgumentf("character %s is not in session %s", input.CharacterID, sess.ID)
	}

	charOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	logEntry := &entities.AdventureLog{
		ID:            o.idGen.Generate(),
		CharacterID:   input.CharacterID,
		CharacterName: charOutput.Character.Name,
		TurnNumber:    sess.CurrentTurn,
		Content:       input.Content,
		Emotion:       input.Emotion,
	}

	if _, err := o.sessionRepo.AppendAdventureLog(ctx, sessionrepo.AppendAdventureLogInput{
		SessionID: input.SessionID,
		Log:       logEntry,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to append adventure log")
	}

	return &AddAdventureLogOutput{Log: logEntry}, nil
}

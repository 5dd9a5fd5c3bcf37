package proposal_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/errors"
	"github.com/storyforge/storyforge-api/internal/llm"
	llmmock "github.com/storyforge/storyforge-api/internal/llm/mock"
	"github.com/storyforge/storyforge-api/internal/orchestrators/proposal"
	sessionsvc "github.com/storyforge/storyforge-api/internal/orchestrators/session"
	sessionorchestratormock "github.com/storyforge/storyforge-api/internal/orchestrators/session/mock"
	characterrepo "github.com/storyforge/storyforge-api/internal/repositories/character"
	charactermock "github.com/storyforge/storyforge-api/internal/repositories/character/mock"
	sessionrepo "github.com/storyforge/storyforge-api/internal/repositories/session"
	sessionmock "github.com/storyforge/storyforge-api/internal/repositories/session/mock"
	worldrepo "github.com/storyforge/storyforge-api/internal/repositories/world"
	worldmock "github.com/storyforge/storyforge-api/internal/repositories/world/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockSessionService *sessionorchestratormock.MockService
	mockSessionRepo    *sessionmock.MockRepository
	mockWorldRepo      *worldmock.MockRepository
	mockCharacterRepo  *charactermock.MockRepository
	mockProvider       *llmmock.MockProvider
	svc                proposal.Service
	ctx                context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSessionService = sessionorchestratormock.NewMockService(s.ctrl)
	s.mockSessionRepo = sessionmock.NewMockRepository(s.ctrl)
	s.mockWorldRepo = worldmock.NewMockRepository(s.ctrl)
	s.mockCharacterRepo = charactermock.NewMockRepository(s.ctrl)
	s.mockProvider = llmmock.NewMockProvider(s.ctrl)
	s.ctx = context.Background()

	svc, err := proposal.NewOrchestrator(&proposal.Config{
		SessionService: s.mockSessionService,
		SessionRepo:    s.mockSessionRepo,
		WorldRepo:      s.mockWorldRepo,
		CharacterRepo:  s.mockCharacterRepo,
		Provider:       s.mockProvider,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) testWorld() *entities.World {
	return &entities.World{
		ID:         "world_001",
		Name:       "Tidewrack",
		Background: "A drowned kingdom clawing its way back above the waves.",
	}
}

func (s *OrchestratorTestSuite) testSession() *entities.Session {
	return &entities.Session{
		ID:         "sess_001",
		WorldID:    "world_001",
		Characters: []string{"char_001", "char_002"},
		Status:     entities.SessionActive,
	}
}

func (s *OrchestratorTestSuite) expectSessionAndWorld(sess *entities.Session) {
	s.mockSessionRepo.EXPECT().
		Get(s.ctx, sessionrepo.GetInput{ID: sess.ID}).
		Return(&sessionrepo.GetOutput{Session: sess}, nil)
	s.mockWorldRepo.EXPECT().
		Get(s.ctx, worldrepo.GetInput{ID: sess.WorldID}).
		Return(&worldrepo.GetOutput{World: s.testWorld()}, nil)
}

func (s *OrchestratorTestSuite) expectCharacter(id, name string, status entities.CharacterStatus) {
	s.mockCharacterRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: id}).
		Return(&characterrepo.GetOutput{
			Character: &entities.Character{ID: id, WorldID: "world_001", Name: name, Status: status},
		}, nil)
}

func (s *OrchestratorTestSuite) expectPendingRound(generation uint64) {
	s.mockSessionService.EXPECT().
		GetPendingRound(s.ctx, &sessionsvc.GetPendingRoundInput{SessionID: "sess_001"}).
		Return(&sessionsvc.GetPendingRoundOutput{Generation: generation}, nil)
}

// expectQueued records AddPendingAction calls and echoes them back
func (s *OrchestratorTestSuite) expectQueued(queued *[]sessionsvc.AddPendingActionInput, times int) {
	s.mockSessionService.EXPECT().
		AddPendingAction(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionsvc.AddPendingActionInput) (*sessionsvc.AddPendingActionOutput, error) {
			*queued = append(*queued, *input)
			return &sessionsvc.AddPendingActionOutput{
				Action: &entities.TurnAction{
					ID:             "action_" + input.CharacterID,
					CharacterID:    input.CharacterID,
					ProposedAction: input.ProposedAction,
					AIReasoning:    input.AIReasoning,
				},
			}, nil
		}).
		Times(times)
}

func (s *OrchestratorTestSuite) TestProposeActions() {
	s.expectSessionAndWorld(s.testSession())
	s.expectCharacter("char_001", "Maro", entities.CharacterActive)
	s.expectCharacter("char_002", "Sefa", entities.CharacterActive)
	s.expectPendingRound(4)

	s.mockProvider.EXPECT().IsConfigured().Return(true).Times(2)
	s.mockProvider.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			prompt := req.Messages[1].Content
			if strings.Contains(prompt, "Maro") {
				return &llm.CompletionResponse{
					Text: `{"proposedAction":"Maro slips along the seawall.","aiReasoning":"Stay unseen."}`,
				}, nil
			}
			// Sefa's answer comes back as prose, no JSON at all
			return &llm.CompletionResponse{Text: "Sefa keeps watch at the gate."}, nil
		}).
		Times(2)

	var queued []sessionsvc.AddPendingActionInput
	s.expectQueued(&queued, 2)

	// Act
	out, err := s.svc.ProposeActions(s.ctx, &proposal.ProposeActionsInput{SessionID: "sess_001"})

	// Assert: participation order is preserved regardless of which
	// completion returned first
	s.Require().NoError(err)
	s.Require().Len(out.Actions, 2)
	s.Equal("char_001", out.Actions[0].CharacterID)
	s.Equal("Maro slips along the seawall.", out.Actions[0].ProposedAction)
	s.Equal("Stay unseen.", out.Actions[0].AIReasoning)
	s.Equal("char_002", out.Actions[1].CharacterID)
	s.Equal("Sefa keeps watch at the gate.", out.Actions[1].ProposedAction)
	s.Equal("(reasoning unavailable)", out.Actions[1].AIReasoning)
	s.Equal(0, out.Fallbacks)

	// Every submission carried the generation captured at dispatch
	for _, q := range queued {
		s.Equal(uint64(4), q.Generation)
	}
}

func (s *OrchestratorTestSuite) TestProposeActions_ProviderNotConfigured() {
	s.expectSessionAndWorld(s.testSession())
	s.expectCharacter("char_001", "Maro", entities.CharacterActive)
	s.expectCharacter("char_002", "Sefa", entities.CharacterActive)
	s.expectPendingRound(1)

	s.mockProvider.EXPECT().IsConfigured().Return(false).Times(2)

	var queued []sessionsvc.AddPendingActionInput
	s.expectQueued(&queued, 2)

	out, err := s.svc.ProposeActions(s.ctx, &proposal.ProposeActionsInput{SessionID: "sess_001"})

	s.Require().NoError(err)
	s.Equal(2, out.Fallbacks)
	s.Equal("Maro observes the surroundings, weighing the next move.", out.Actions[0].ProposedAction)
	s.Equal("Sefa observes the surroundings, weighing the next move.", out.Actions[1].ProposedAction)
}

func (s *OrchestratorTestSuite) TestProposeActions_OneFailureDoesNotSinkTheRound() {
	s.expectSessionAndWorld(s.testSession())
	s.expectCharacter("char_001", "Maro", entities.CharacterActive)
	s.expectCharacter("char_002", "Sefa", entities.CharacterActive)
	s.expectPendingRound(1)

	s.mockProvider.EXPECT().IsConfigured().Return(true).Times(2)
	s.mockProvider.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			if strings.Contains(req.Messages[1].Content, "Maro") {
				return nil, errors.Unavailable("model is overloaded")
			}
			return &llm.CompletionResponse{
				Text: `{"proposedAction":"Sefa bars the gate.","aiReasoning":"Hold the line."}`,
			}, nil
		}).
		Times(2)

	var queued []sessionsvc.AddPendingActionInput
	s.expectQueued(&queued, 2)

	out, err := s.svc.ProposeActions(s.ctx, &proposal.ProposeActionsInput{SessionID: "sess_001"})

	s.Require().NoError(err)
	s.Equal(1, out.Fallbacks)
	s.Equal("Maro observes the surroundings, weighing the next move.", out.Actions[0].ProposedAction)
	s.Equal("Sefa bars the gate.", out.Actions[1].ProposedAction)
}

func (s *OrchestratorTestSuite) TestProposeActions_SkipsInactiveCharacters() {
	s.expectSessionAndWorld(s.testSession())
	s.expectCharacter("char_001", "Maro", entities.CharacterIncapacitated)
	s.expectCharacter("char_002", "Sefa", entities.CharacterActive)
	s.expectPendingRound(1)

	s.mockProvider.EXPECT().IsConfigured().Return(true)
	s.mockProvider.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return(&llm.CompletionResponse{
			Text: `{"proposedAction":"Sefa drags Maro to cover.","aiReasoning":"No one gets left."}`,
		}, nil)

	var queued []sessionsvc.AddPendingActionInput
	s.expectQueued(&queued, 1)

	out, err := s.svc.ProposeActions(s.ctx, &proposal.ProposeActionsInput{SessionID: "sess_001"})

	s.Require().NoError(err)
	s.Require().Len(out.Actions, 1)
	s.Equal("char_002", out.Actions[0].CharacterID)
}

func (s *OrchestratorTestSuite) TestProposeActions_TruncatedJSONRecovered() {
	s.expectSessionAndWorld(s.testSession())
	s.expectCharacter("char_001", "Maro", entities.CharacterActive)
	s.expectCharacter("char_002", "Sefa", entities.CharacterActive)
	s.expectPendingRound(1)

	s.mockProvider.EXPECT().IsConfigured().Return(true).Times(2)
	s.mockProvider.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			if strings.Contains(req.Messages[1].Content, "Maro") {
				// Truncated mid-string, still recoverable
				return &llm.CompletionResponse{
					Text: `{"proposedAction":"Maro dives for the grate","aiReasoning":"The tide is abo`,
				}, nil
			}
			return &llm.CompletionResponse{Text: ""}, nil
		}).
		Times(2)

	var queued []sessionsvc.AddPendingActionInput
	s.expectQueued(&queued, 2)

	out, err := s.svc.ProposeActions(s.ctx, &proposal.ProposeActionsInput{SessionID: "sess_001"})

	s.Require().NoError(err)
	s.Equal("Maro dives for the grate", out.Actions[0].ProposedAction)
	// Empty response lands on the fallback
	s.Equal("Sefa observes the surroundings, weighing the next move.", out.Actions[1].ProposedAction)
	s.Equal(1, out.Fallbacks)
}

func (s *OrchestratorTestSuite) TestProposeActions_StructuredButNoAction() {
	s.expectSessionAndWorld(s.testSession())
	s.expectCharacter("char_001", "Maro", entities.CharacterActive)
	s.expectCharacter("char_002", "Sefa", entities.CharacterActive)
	s.expectPendingRound(1)

	const rawMaro = `{"aiReasoning":"I hesitate.","proposedAction":""}`

	s.mockProvider.EXPECT().IsConfigured().Return(true).Times(2)
	s.mockProvider.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			if strings.Contains(req.Messages[1].Content, "Maro") {
				// Valid JSON, but the action field is blank
				return &llm.CompletionResponse{Text: rawMaro}, nil
			}
			return &llm.CompletionResponse{
				Text: `{"proposedAction":"Sefa lights the brazier.","aiReasoning":"Signal the others."}`,
			}, nil
		}).
		Times(2)

	var queued []sessionsvc.AddPendingActionInput
	s.expectQueued(&queued, 2)

	out, err := s.svc.ProposeActions(s.ctx, &proposal.ProposeActionsInput{SessionID: "sess_001"})

	// The model's own words stand in for the missing action; this is
	// not the deterministic fallback
	s.Require().NoError(err)
	s.Equal(rawMaro, out.Actions[0].ProposedAction)
	s.Equal("(reasoning unavailable)", out.Actions[0].AIReasoning)
	s.Equal("Sefa lights the brazier.", out.Actions[1].ProposedAction)
	s.Equal(0, out.Fallbacks)
}

func (s *OrchestratorTestSuite) TestProposeActions_PausedSession() {
	paused := s.testSession()
	paused.Status = entities.SessionPaused
	s.mockSessionRepo.EXPECT().
		Get(s.ctx, sessionrepo.GetInput{ID: "sess_001"}).
		Return(&sessionrepo.GetOutput{Session: paused}, nil)

	_, err := s.svc.ProposeActions(s.ctx, &proposal.ProposeActionsInput{SessionID: "sess_001"})

	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestGenerateNarration_FallbackWithoutProvider() {
	sess := s.testSession()
	sess.CurrentTurn = 1
	sess.Turns = []entities.Turn{{
		ID:         "turn_001",
		TurnNumber: 1,
		Actions: []entities.TurnAction{
			{ID: "action_001", CharacterName: "Maro", ProposedAction: "scale the seawall"},
		},
	}}
	s.expectSessionAndWorld(sess)
	s.mockProvider.EXPECT().IsConfigured().Return(false)

	out, err := s.svc.GenerateNarration(s.ctx, &proposal.GenerateNarrationInput{SessionID: "sess_001"})

	s.Require().NoError(err)
	s.Equal("Turn 1. Maro: scale the seawall.", out.Narration)
}

func (s *OrchestratorTestSuite) TestGenerateNarration_NoTurns() {
	s.mockSessionRepo.EXPECT().
		Get(s.ctx, sessionrepo.GetInput{ID: "sess_001"}).
		Return(&sessionrepo.GetOutput{Session: s.testSession()}, nil)

	_, err := s.svc.GenerateNarration(s.ctx, &proposal.GenerateNarrationInput{SessionID: "sess_001"})

	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSuggestScenes() {
	sess := s.testSession()
	s.expectSessionAndWorld(sess)
	s.mockProvider.EXPECT().IsConfigured().Return(true)
	s.mockProvider.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return(&llm.CompletionResponse{
			Text: "```json\n" + `{"suggestions":[{"title":"The Reef Gate","description":"The tide exposes a sunken gate.","hook":"A light burns below the waterline."}]}` + "\n```",
		}, nil)

	out, err := s.svc.SuggestScenes(s.ctx, &proposal.SuggestScenesInput{SessionID: "sess_001"})

	s.Require().NoError(err)
	s.Require().Len(out.Suggestions, 1)
	s.Equal("The Reef Gate", out.Suggestions[0].Title)
}

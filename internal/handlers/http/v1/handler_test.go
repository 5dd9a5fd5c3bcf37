package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/errors"
	v1 "github.com/storyforge/storyforge-api/internal/handlers/http/v1"
	characterorch "github.com/storyforge/storyforge-api/internal/orchestrators/character"
	characterorchestratormock "github.com/storyforge/storyforge-api/internal/orchestrators/character/mock"
	diceorch "github.com/storyforge/storyforge-api/internal/orchestrators/dice"
	dicemock "github.com/storyforge/storyforge-api/internal/orchestrators/dice/mock"
	"github.com/storyforge/storyforge-api/internal/orchestrators/proposal"
	proposalmock "github.com/storyforge/storyforge-api/internal/orchestrators/proposal/mock"
	sessionorch "github.com/storyforge/storyforge-api/internal/orchestrators/session"
	sessionorchestratormock "github.com/storyforge/storyforge-api/internal/orchestrators/session/mock"
	worldorch "github.com/storyforge/storyforge-api/internal/orchestrators/world"
	worldorchestratormock "github.com/storyforge/storyforge-api/internal/orchestrators/world/mock"
	"github.com/storyforge/storyforge-api/internal/pkg/dice"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockWorlds     *worldorchestratormock.MockService
	mockCharacters *characterorchestratormock.MockService
	mockSessions   *sessionorchestratormock.MockService
	mockDice       *dicemock.MockService
	mockProposals  *proposalmock.MockService
	router         *gin.Engine
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.mockWorlds = worldorchestratormock.NewMockService(s.ctrl)
	s.mockCharacters = characterorchestratormock.NewMockService(s.ctrl)
	s.mockSessions = sessionorchestratormock.NewMockService(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.mockProposals = proposalmock.NewMockService(s.ctrl)

	handler, err := v1.NewHandler(&v1.Config{
		WorldService:     s.mockWorlds,
		CharacterService: s.mockCharacters,
		SessionService:   s.mockSessions,
		DiceService:      s.mockDice,
		ProposalService:  s.mockProposals,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *HandlerTestSuite) TestCreateWorld() {
	s.Run("created", func() {
		s.mockWorlds.EXPECT().
			CreateWorld(gomock.Any(), &worldorch.CreateWorldInput{
				Name:       "Tidewrack",
				SourceType: entities.WorldSourceNovel,
			}).
			Return(&worldorch.CreateWorldOutput{
				World: &entities.World{ID: "world_001", Name: "Tidewrack"},
			}, nil)

		w := s.do(http.MethodPost, "/api/v1/worlds", `{"name": "Tidewrack", "sourceType": "novel"}`)

		s.Equal(http.StatusCreated, w.Code)
		s.Equal("world_001", s.decode(w)["id"])
	})

	s.Run("missing name is a bad request", func() {
		w := s.do(http.MethodPost, "/api/v1/worlds", `{"sourceType": "novel"}`)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("INVALID_ARGUMENT", s.decode(w)["code"])
	})
}

func (s *HandlerTestSuite) TestGetWorld() {
	s.Run("not found maps to 404", func() {
		s.mockWorlds.EXPECT().
			GetWorld(gomock.Any(), &worldorch.GetWorldInput{WorldID: "world_missing"}).
			Return(nil, errors.NotFound("world not found"))

		w := s.do(http.MethodGet, "/api/v1/worlds/world_missing", "")

		s.Equal(http.StatusNotFound, w.Code)
		s.Equal("NOT_FOUND", s.decode(w)["code"])
	})
}

func (s *HandlerTestSuite) TestIngestContent() {
	s.mockWorlds.EXPECT().
		IngestContent(gomock.Any(), &worldorch.IngestContentInput{
			WorldID: "world_001",
			Content: "The seawall broke.",
		}).
		Return(&worldorch.IngestContentOutput{
			World:      &entities.World{ID: "world_001"},
			Structured: true,
		}, nil)

	w := s.do(http.MethodPost, "/api/v1/worlds/world_001/ingest", `{"content": "The seawall broke."}`)

	s.Equal(http.StatusOK, w.Code)
	s.Equal(true, s.decode(w)["structured"])
}

func (s *HandlerTestSuite) TestApplyDamage() {
	s.mockCharacters.EXPECT().
		ApplyDamage(gomock.Any(), &characterorch.ApplyDamageInput{CharacterID: "char_001", Amount: 6}).
		Return(&characterorch.ApplyDamageOutput{
			Character:     &entities.Character{ID: "char_001", CurrentHP: 0},
			Incapacitated: true,
		}, nil)

	w := s.do(http.MethodPost, "/api/v1/characters/char_001/damage", `{"amount": 6}`)

	s.Equal(http.StatusOK, w.Code)
	s.Equal(true, s.decode(w)["incapacitated"])
}

func (s *HandlerTestSuite) TestAddPendingAction() {
	s.Run("queued", func() {
		s.mockSessions.EXPECT().
			AddPendingAction(gomock.Any(), &sessionorch.AddPendingActionInput{
				SessionID:      "sess_001",
				CharacterID:    "char_001",
				ProposedAction: "Scale the seawall",
				Generation:     3,
			}).
			Return(&sessionorch.AddPendingActionOutput{
				Action: &entities.TurnAction{ID: "action_001", CharacterID: "char_001"},
			}, nil)

		w := s.do(http.MethodPost, "/api/v1/sessions/sess_001/actions",
			`{"characterId": "char_001", "proposedAction": "Scale the seawall", "generation": 3}`)

		s.Equal(http.StatusCreated, w.Code)
		s.Equal("action_001", s.decode(w)["id"])
	})

	s.Run("stale generation maps to 409", func() {
		s.mockSessions.EXPECT().
			AddPendingAction(gomock.Any(), gomock.Any()).
			Return(nil, errors.Aborted("round generation has advanced"))

		w := s.do(http.MethodPost, "/api/v1/sessions/sess_001/actions",
			`{"characterId": "char_001", "proposedAction": "Scale the seawall", "generation": 1}`)

		s.Equal(http.StatusConflict, w.Code)
		s.Equal("ABORTED", s.decode(w)["code"])
	})
}

func (s *HandlerTestSuite) TestCompleteTurn() {
	s.Run("created", func() {
		s.mockSessions.EXPECT().
			CompleteTurn(gomock.Any(), &sessionorch.CompleteTurnInput{
				SessionID:  "sess_001",
				WorldState: "The gate is open.",
			}).
			Return(&sessionorch.CompleteTurnOutput{
				Turn: &entities.Turn{ID: "turn_001", TurnNumber: 4},
			}, nil)

		w := s.do(http.MethodPost, "/api/v1/sessions/sess_001/turns", `{"worldState": "The gate is open."}`)

		s.Equal(http.StatusCreated, w.Code)
		s.Equal(float64(4), s.decode(w)["turnNumber"])
	})

	s.Run("unchecked action maps to 412", func() {
		s.mockSessions.EXPECT().
			CompleteTurn(gomock.Any(), gomock.Any()).
			Return(nil, errors.FailedPrecondition("action action_001 has no check"))

		w := s.do(http.MethodPost, "/api/v1/sessions/sess_001/turns", `{}`)

		s.Equal(http.StatusPreconditionFailed, w.Code)
		s.Equal("FAILED_PRECONDITION", s.decode(w)["code"])
	})
}

func (s *HandlerTestSuite) TestProposeActions() {
	s.mockProposals.EXPECT().
		ProposeActions(gomock.Any(), &proposal.ProposeActionsInput{
			SessionID:    "sess_001",
			SceneContext: "The tide is rising.",
		}).
		Return(&proposal.ProposeActionsOutput{
			Actions: []entities.TurnAction{
				{ID: "action_001", CharacterID: "char_001"},
				{ID: "action_002", CharacterID: "char_002"},
			},
			Fallbacks: 1,
		}, nil)

	w := s.do(http.MethodPost, "/api/v1/sessions/sess_001/proposals", `{"sceneContext": "The tide is rising."}`)

	s.Equal(http.StatusCreated, w.Code)
	body := s.decode(w)
	s.Equal(float64(1), body["fallbacks"])
	s.Len(body["actions"], 2)
}

func (s *HandlerTestSuite) TestGenerateNarration() {
	s.Run("latest turn by default", func() {
		s.mockProposals.EXPECT().
			GenerateNarration(gomock.Any(), &proposal.GenerateNarrationInput{SessionID: "sess_001"}).
			Return(&proposal.GenerateNarrationOutput{Narration: "The gate groans open."}, nil)

		w := s.do(http.MethodGet, "/api/v1/sessions/sess_001/narration", "")

		s.Equal(http.StatusOK, w.Code)
		s.Equal("The gate groans open.", s.decode(w)["narration"])
	})

	s.Run("explicit turn from query", func() {
		s.mockProposals.EXPECT().
			GenerateNarration(gomock.Any(), &proposal.GenerateNarrationInput{SessionID: "sess_001", TurnNumber: 2}).
			Return(&proposal.GenerateNarrationOutput{Narration: "Turn two."}, nil)

		w := s.do(http.MethodGet, "/api/v1/sessions/sess_001/narration?turn=2", "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("bad turn query is rejected", func() {
		w := s.do(http.MethodGet, "/api/v1/sessions/sess_001/narration?turn=zero", "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HandlerTestSuite) TestRoll() {
	s.Run("plain roll", func() {
		s.mockDice.EXPECT().
			Roll(gomock.Any(), &diceorch.RollInput{Kind: dice.D20, Count: 1, Modifier: 3}).
			Return(&diceorch.RollOutput{
				Roll: &dice.Roll{Kind: dice.D20, Count: 1, Modifier: 3, Results: []int{15}, Total: 18},
			}, nil)

		w := s.do(http.MethodPost, "/api/v1/rolls", `{"kind": "d20", "modifier": 3}`)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("difficulty makes it a check", func() {
		s.mockDice.EXPECT().
			ResolveCheck(gomock.Any(), &diceorch.ResolveCheckInput{Kind: dice.D20, Count: 1, Difficulty: 15}).
			Return(&diceorch.ResolveCheckOutput{
				Roll:       &dice.Roll{Kind: dice.D20, Count: 1, Results: []int{15}, Total: 15},
				Difficulty: 15,
				Success:    true,
			}, nil)

		w := s.do(http.MethodPost, "/api/v1/rolls", `{"kind": "d20", "difficulty": 15}`)

		s.Equal(http.StatusOK, w.Code)
		s.Equal(true, s.decode(w)["success"])
	})

	s.Run("character check derives the modifier", func() {
		s.mockDice.EXPECT().
			RollCheck(gomock.Any(), &diceorch.RollCheckInput{
				CharacterID: "char_001",
				CheckType:   entities.CheckDexterity,
				Difficulty:  12,
			}).
			Return(&diceorch.RollCheckOutput{
				Character:  &entities.Character{ID: "char_001"},
				Modifier:   3,
				Roll:       &dice.Roll{Kind: dice.D20, Count: 1, Modifier: 3, Results: []int{9}, Total: 12},
				Difficulty: 12,
				Success:    true,
			}, nil)

		w := s.do(http.MethodPost, "/api/v1/rolls",
			`{"kind": "d20", "characterId": "char_001", "checkType": "dexterity", "difficulty": 12}`)

		s.Equal(http.StatusOK, w.Code)
		s.Equal(float64(3), s.decode(w)["modifier"])
	})

	s.Run("unsupported kind maps to 400", func() {
		s.mockDice.EXPECT().
			Roll(gomock.Any(), gomock.Any()).
			Return(nil, errors.InvalidArgument("unsupported die kind: d7"))

		w := s.do(http.MethodPost, "/api/v1/rolls", `{"kind": "d7"}`)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HandlerTestSuite) TestAddTimelineEvent() {
	s.mockSessions.EXPECT().
		AddTimelineEvent(gomock.Any(), &sessionorch.AddTimelineEventInput{
			SessionID:    "sess_001",
			Event:        "The Brinelords seize the docks",
			Significance: entities.SignificanceMajor,
		}).
		Return(&sessionorch.AddTimelineEventOutput{
			Event: &entities.TimelineEvent{ID: "evt_001"},
		}, nil)

	w := s.do(http.MethodPost, "/api/v1/sessions/sess_001/timeline",
		`{"event": "The Brinelords seize the docks", "significance": "major"}`)

	s.Equal(http.StatusCreated, w.Code)
}

func (s *HandlerTestSuite) TestDeleteSession() {
	s.mockSessions.EXPECT().
		DeleteSession(gomock.Any(), &sessionorch.DeleteSessionInput{SessionID: "sess_001"}).
		Return(&sessionorch.DeleteSessionOutput{}, nil)

	w := s.do(http.MethodDelete, "/api/v1/sessions/sess_001", "")

	s.Equal(http.StatusNoContent, w.Code)
}

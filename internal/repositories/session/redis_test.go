package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/errors"
	redisclient "github.com/storyforge/storyforge-api/internal/redis"
	"github.com/storyforge/storyforge-api/internal/repositories/session"
	"github.com/storyforge/storyforge-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	cleanup   func()
	repo      session.Repository
	ctx       context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.miniRedis, s.client, s.cleanup = testutils.CreateTestRedisServer(s.T())

	repo, err := session.NewRedis(&session.RedisConfig{
		Client: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) newSession(id string) *entities.Session {
	return &entities.Session{
		ID:         id,
		WorldID:    "world_001",
		Name:       "The Broken Crown",
		Characters: []string{"char_001", "char_002"},
		Status:     entities.SessionActive,
		CreatedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	sess := s.newSession("sess_001")

	// Act
	createOut, err := s.repo.Create(s.ctx, session.CreateInput{Session: sess})

	// Assert
	s.Require().NoError(err)
	s.NotNil(createOut)
	s.True(s.miniRedis.Exists("session:sess_001"))

	getOut, err := s.repo.Get(s.ctx, session.GetInput{ID: "sess_001"})
	s.Require().NoError(err)
	s.Equal("The Broken Crown", getOut.Session.Name)
	s.Equal(0, getOut.Session.CurrentTurn)
	s.Equal([]string{"char_001", "char_002"}, getOut.Session.Characters)
}

func (s *RedisRepositoryTestSuite) TestCreate_DuplicateID() {
	sess := s.newSession("sess_001")

	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: sess})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, session.CreateInput{Session: sess})
	s.Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, session.GetInput{ID: "sess_missing"})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestAppendTurn() {
	sess := s.newSession("sess_001")
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: sess})
	s.Require().NoError(err)

	turn := &entities.Turn{
		ID:         "turn_001",
		SessionID:  "sess_001",
		TurnNumber: 1,
		Actions: []entities.TurnAction{
			{ID: "action_001", CharacterID: "char_001", ProposedAction: "scale the wall"},
		},
		Timestamp: time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC),
	}

	// Act
	out, err := s.repo.AppendTurn(s.ctx, session.AppendTurnInput{
		SessionID: "sess_001",
		Turn:      turn,
	})

	// Assert
	s.Require().NoError(err)
	s.Equal(1, out.Session.CurrentTurn)
	s.Len(out.Session.Turns, 1)

	getOut, err := s.repo.Get(s.ctx, session.GetInput{ID: "sess_001"})
	s.Require().NoError(err)
	s.Equal(1, getOut.Session.CurrentTurn)
	s.Equal("turn_001", getOut.Session.Turns[0].ID)
}

func (s *RedisRepositoryTestSuite) TestAppendTurn_SequenceEnforced() {
	sess := s.newSession("sess_001")
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: sess})
	s.Require().NoError(err)

	s.Run("skipping a turn number fails", func() {
		_, err := s.repo.AppendTurn(s.ctx, session.AppendTurnInput{
			SessionID: "sess_001",
			Turn:      &entities.Turn{ID: "turn_002", TurnNumber: 2},
		})
		s.Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("consecutive turns append", func() {
		for i := 1; i <= 3; i++ {
			_, err := s.repo.AppendTurn(s.ctx, session.AppendTurnInput{
				SessionID: "sess_001",
				Turn:      &entities.Turn{TurnNumber: i},
			})
			s.Require().NoError(err)
		}

		getOut, err := s.repo.Get(s.ctx, session.GetInput{ID: "sess_001"})
		s.Require().NoError(err)
		s.Equal(3, getOut.Session.CurrentTurn)
		s.Len(getOut.Session.Turns, 3)
	})

	s.Run("replaying an old turn number fails", func() {
		_, err := s.repo.AppendTurn(s.ctx, session.AppendTurnInput{
			SessionID: "sess_001",
			Turn:      &entities.Turn{TurnNumber: 2},
		})
		s.Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *RedisRepositoryTestSuite) TestAppendTimelineEvent() {
	sess := s.newSession("sess_001")
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: sess})
	s.Require().NoError(err)

	out, err := s.repo.AppendTimelineEvent(s.ctx, session.AppendTimelineEventInput{
		SessionID: "sess_001",
		Event: &entities.TimelineEvent{
			ID:           "evt_001",
			TurnNumber:   1,
			Event:        "The gate falls",
			Significance: entities.SignificanceMajor,
		},
	})
	s.Require().NoError(err)
	s.Len(out.Session.Timeline, 1)
	s.Equal(entities.SignificanceMajor, out.Session.Timeline[0].Significance)
}

func (s *RedisRepositoryTestSuite) TestAppendAdventureLog() {
	sess := s.newSession("sess_001")
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: sess})
	s.Require().NoError(err)

	out, err := s.repo.AppendAdventureLog(s.ctx, session.AppendAdventureLogInput{
		SessionID: "sess_001",
		Log: &entities.AdventureLog{
			ID:          "log_001",
			CharacterID: "char_001",
			TurnNumber:  1,
			Content:     "We crossed the reef at dawn.",
		},
	})
	s.Require().NoError(err)
	s.Len(out.Session.AdventureLogs, 1)
}

func (s *RedisRepositoryTestSuite) TestDelete_RemovesIndexEntry() {
	sess := s.newSession("sess_001")
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: sess})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, session.DeleteInput{ID: "sess_001"})
	s.Require().NoError(err)

	s.False(s.miniRedis.Exists("session:sess_001"))

	listOut, err := s.repo.ListByWorld(s.ctx, session.ListByWorldInput{WorldID: "world_001"})
	s.Require().NoError(err)
	s.Empty(listOut.Sessions)
}

func (s *RedisRepositoryTestSuite) TestListByWorld() {
	for _, id := range []string{"sess_001", "sess_002"} {
		_, err := s.repo.Create(s.ctx, session.CreateInput{Session: s.newSession(id)})
		s.Require().NoError(err)
	}

	other := s.newSession("sess_other")
	other.WorldID = "world_002"
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: other})
	s.Require().NoError(err)

	listOut, err := s.repo.ListByWorld(s.ctx, session.ListByWorldInput{WorldID: "world_001"})
	s.Require().NoError(err)
	s.Len(listOut.Sessions, 2)
}

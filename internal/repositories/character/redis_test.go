package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/errors"
	redisclient "github.com/storyforge/storyforge-api/internal/redis"
	"github.com/storyforge/storyforge-api/internal/repositories/character"
	"github.com/storyforge/storyforge-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	cleanup   func()
	repo      character.Repository
	ctx       context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.miniRedis, s.client, s.cleanup = testutils.CreateTestRedisServer(s.T())

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) newCharacter(id string) *entities.Character {
	return &entities.Character{
		ID:        id,
		WorldID:   "world_001",
		Name:      "Maro",
		Race:      "human",
		Class:     "rogue",
		Alignment: entities.ChaoticNeutral,
		Level:     3,
		Attributes: entities.Attributes{
			Strength: 10, Dexterity: 16, Constitution: 12,
			Intelligence: 13, Wisdom: 11, Charisma: 14,
		},
		CurrentHP: 14,
		MaxHP:     14,
		Status:    entities.CharacterActive,
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	c := s.newCharacter("char_001")

	createOut, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
	s.Require().NoError(err)
	s.NotNil(createOut)
	s.True(s.miniRedis.Exists("character:char_001"))

	getOut, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_001"})
	s.Require().NoError(err)
	s.Equal("Maro", getOut.Character.Name)
	s.Equal(16, getOut.Character.Attributes.Dexterity)
}

func (s *RedisRepositoryTestSuite) TestCreate_Validation() {
	testCases := []struct {
		name  string
		input character.CreateInput
	}{
		{name: "nil character", input: character.CreateInput{}},
		{name: "empty ID", input: character.CreateInput{Character: &entities.Character{WorldID: "world_001"}}},
		{name: "empty world ID", input: character.CreateInput{Character: &entities.Character{ID: "char_001"}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, tc.input)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	c := s.newCharacter("char_001")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
	s.Require().NoError(err)

	c.CurrentHP = 0
	c.Status = entities.CharacterIncapacitated

	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: c})
	s.Require().NoError(err)

	getOut, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_001"})
	s.Require().NoError(err)
	s.Equal(0, getOut.Character.CurrentHP)
	s.Equal(entities.CharacterIncapacitated, getOut.Character.Status)
}

func (s *RedisRepositoryTestSuite) TestDelete_RemovesIndexEntry() {
	c := s.newCharacter("char_001")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_001"})
	s.Require().NoError(err)

	s.False(s.miniRedis.Exists("character:char_001"))

	listOut, err := s.repo.ListByWorld(s.ctx, character.ListByWorldInput{WorldID: "world_001"})
	s.Require().NoError(err)
	s.Empty(listOut.Characters)
}

func (s *RedisRepositoryTestSuite) TestListByWorld() {
	for _, id := range []string{"char_001", "char_002"} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(id)})
		s.Require().NoError(err)
	}

	other := s.newCharacter("char_other")
	other.WorldID = "world_002"
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: other})
	s.Require().NoError(err)

	listOut, err := s.repo.ListByWorld(s.ctx, character.ListByWorldInput{WorldID: "world_001"})
	s.Require().NoError(err)
	s.Len(listOut.Characters, 2)
}

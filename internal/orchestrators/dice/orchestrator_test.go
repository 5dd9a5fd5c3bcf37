package dice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/errors"
	"github.com/storyforge/storyforge-api/internal/orchestrators/dice"
	dicepkg "github.com/storyforge/storyforge-api/internal/pkg/dice"
	"github.com/storyforge/storyforge-api/internal/repositories/character"
	charactermock "github.com/storyforge/storyforge-api/internal/repositories/character/mock"
)

// scriptedRoller returns queued die faces in order
type scriptedRoller struct {
	faces []int
}

func (r *scriptedRoller) RollDie(kind dicepkg.Kind) (int, error) {
	if !kind.Valid() {
		return 0, errors.InvalidArgumentf("unknown dice type: %s", kind)
	}
	face := r.faces[0]
	r.faces = r.faces[1:]
	return face, nil
}

func (r *scriptedRoller) RollSet(kind dicepkg.Kind, count, modifier int) (*dicepkg.Roll, error) {
	if !kind.Valid() {
		return nil, errors.InvalidArgumentf("unknown dice type: %s", kind)
	}
	if count < 1 {
		return nil, errors.InvalidArgument("count must be at least 1")
	}
	roll := &dicepkg.Roll{Kind: kind, Count: count, Modifier: modifier}
	for i := 0; i < count; i++ {
		face, err := r.RollDie(kind)
		if err != nil {
			return nil, err
		}
		roll.Results = append(roll.Results, face)
		roll.Total += face
	}
	roll.Total += modifier
	return roll, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockCharacterRepo *charactermock.MockRepository
	roller            *scriptedRoller
	svc               dice.Service
	ctx               context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharacterRepo = charactermock.NewMockRepository(s.ctrl)
	s.roller = &scriptedRoller{}
	s.ctx = context.Background()

	svc, err := dice.NewOrchestrator(&dice.Config{
		CharacterRepo: s.mockCharacterRepo,
		Roller:        s.roller,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) testCharacter() *entities.Character {
	return &entities.Character{
		ID:      "char_001",
		WorldID: "world_001",
		Name:    "Maro",
		Attributes: entities.Attributes{
			Strength: 10, Dexterity: 16, Constitution: 12,
			Intelligence: 13, Wisdom: 11, Charisma: 8,
		},
		Skills: entities.Skills{
			Exploration: map[string]int{"stealth": 5},
		},
	}
}

func (s *OrchestratorTestSuite) TestRoll() {
	s.roller.faces = []int{4, 6}

	out, err := s.svc.Roll(s.ctx, &dice.RollInput{Kind: dicepkg.D6, Count: 2, Modifier: 3})

	s.Require().NoError(err)
	s.Equal([]int{4, 6}, out.Roll.Results)
	s.Equal(13, out.Roll.Total)
}

func (s *OrchestratorTestSuite) TestResolveCheck() {
	testCases := []struct {
		name        string
		faces       []int
		modifier    int
		difficulty  int
		wantSuccess bool
		wantCrit    bool
		wantFumble  bool
	}{
		{name: "total beats difficulty", faces: []int{14}, modifier: 2, difficulty: 15, wantSuccess: true},
		{name: "tie succeeds", faces: []int{13}, modifier: 2, difficulty: 15, wantSuccess: true},
		{name: "below difficulty fails", faces: []int{10}, modifier: 2, difficulty: 15, wantSuccess: false},
		{name: "natural twenty is critical", faces: []int{20}, modifier: 0, difficulty: 25, wantSuccess: false, wantCrit: true},
		{name: "natural one is a fumble", faces: []int{1}, modifier: 20, difficulty: 10, wantSuccess: true, wantFumble: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.roller.faces = tc.faces

			out, err := s.svc.ResolveCheck(s.ctx, &dice.ResolveCheckInput{
				Kind:       dicepkg.D20,
				Count:      1,
				Modifier:   tc.modifier,
				Difficulty: tc.difficulty,
			})

			s.Require().NoError(err)
			s.Equal(tc.wantSuccess, out.Success)
			s.Equal(tc.wantCrit, out.CriticalSuccess)
			s.Equal(tc.wantFumble, out.CriticalFailure)
		})
	}
}

func (s *OrchestratorTestSuite) TestRollCheck_AttributeModifier() {
	// Arrange: dexterity 16 gives +3
	s.mockCharacterRepo.EXPECT().
		Get(s.ctx, character.GetInput{ID: "char_001"}).
		Return(&character.GetOutput{Character: s.testCharacter()}, nil)
	s.roller.faces = []int{12}

	// Act
	out, err := s.svc.RollCheck(s.ctx, &dice.RollCheckInput{
		CharacterID: "char_001",
		CheckType:   entities.CheckDexterity,
		Difficulty:  15,
	})

	// Assert
	s.Require().NoError(err)
	s.Equal(3, out.Modifier)
	s.Equal(15, out.Roll.Total)
	s.True(out.Success)
}

func (s *OrchestratorTestSuite) TestRollCheck_SkillModifier() {
	s.mockCharacterRepo.EXPECT().
		Get(s.ctx, character.GetInput{ID: "char_001"}).
		Return(&character.GetOutput{Character: s.testCharacter()}, nil)
	s.roller.faces = []int{8}

	out, err := s.svc.RollCheck(s.ctx, &dice.RollCheckInput{
		CharacterID: "char_001",
		CheckType:   entities.CheckSkill,
		SkillName:   "stealth",
		Difficulty:  13,
	})

	s.Require().NoError(err)
	s.Equal(5, out.Modifier)
	s.Equal(13, out.Roll.Total)
	s.True(out.Success)
}

func (s *OrchestratorTestSuite) TestRollCheck_AttackUsesBareDie() {
	s.mockCharacterRepo.EXPECT().
		Get(s.ctx, character.GetInput{ID: "char_001"}).
		Return(&character.GetOutput{Character: s.testCharacter()}, nil)
	s.roller.faces = []int{17}

	out, err := s.svc.RollCheck(s.ctx, &dice.RollCheckInput{
		CharacterID: "char_001",
		CheckType:   entities.CheckAttack,
		Difficulty:  17,
	})

	s.Require().NoError(err)
	s.Equal(0, out.Modifier)
	s.Equal(17, out.Roll.Total)
	s.True(out.Success)
}

func (s *OrchestratorTestSuite) TestRollCheck_Validation() {
	s.Run("missing character ID", func() {
		_, err := s.svc.RollCheck(s.ctx, &dice.RollCheckInput{CheckType: entities.CheckStrength})
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown check type", func() {
		_, err := s.svc.RollCheck(s.ctx, &dice.RollCheckInput{CharacterID: "char_001", CheckType: "luck"})
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("skill check without skill name", func() {
		_, err := s.svc.RollCheck(s.ctx, &dice.RollCheckInput{CharacterID: "char_001", CheckType: entities.CheckSkill})
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("character not found", func() {
		s.mockCharacterRepo.EXPECT().
			Get(s.ctx, character.GetInput{ID: "char_missing"}).
			Return(nil, errors.NotFound("character with ID char_missing not found"))

		_, err := s.svc.RollCheck(s.ctx, &dice.RollCheckInput{
			CharacterID: "char_missing",
			CheckType:   entities.CheckStrength,
		})
		s.Error(err)
		s.True(errors.IsNotFound(err))
	})
}

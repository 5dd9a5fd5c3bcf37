package dice_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/storyforge/storyforge-api/internal/errors"
	"github.com/storyforge/storyforge-api/internal/pkg/dice"
)

type DiceTestSuite struct {
	suite.Suite
	roller dice.Roller
}

func TestDiceSuite(t *testing.T) {
	suite.Run(t, new(DiceTestSuite))
}

func (s *DiceTestSuite) SetupTest() {
	s.roller = dice.NewSeeded(42)
}

func (s *DiceTestSuite) TestRollDie_Bounds() {
	for _, kind := range []dice.Kind{dice.D4, dice.D6, dice.D8, dice.D10, dice.D12, dice.D20, dice.D100} {
		s.Run(string(kind), func() {
			for i := 0; i < 200; i++ {
				v, err := s.roller.RollDie(kind)
				s.Require().NoError(err)
				s.GreaterOrEqual(v, 1)
				s.LessOrEqual(v, kind.Faces())
			}
		})
	}
}

func (s *DiceTestSuite) TestRollDie_UnknownKind() {
	_, err := s.roller.RollDie(dice.Kind("d7"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DiceTestSuite) TestRollSet_TotalIsDerived() {
	testCases := []struct {
		name     string
		kind     dice.Kind
		count    int
		modifier int
	}{
		{name: "single d20", kind: dice.D20, count: 1, modifier: 0},
		{name: "multiple d6 with bonus", kind: dice.D6, count: 4, modifier: 3},
		{name: "negative modifier", kind: dice.D8, count: 2, modifier: -2},
		{name: "percentile", kind: dice.D100, count: 1, modifier: 10},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			roll, err := s.roller.RollSet(tc.kind, tc.count, tc.modifier)
			s.Require().NoError(err)

			s.Len(roll.Results, tc.count)
			sum := 0
			for _, v := range roll.Results {
				s.GreaterOrEqual(v, 1)
				s.LessOrEqual(v, tc.kind.Faces())
				sum += v
			}
			s.Equal(sum+tc.modifier, roll.Total)
		})
	}
}

func (s *DiceTestSuite) TestRollSet_InvalidInput() {
	_, err := s.roller.RollSet(dice.Kind("d3"), 1, 0)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.roller.RollSet(dice.D6, 0, 0)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DiceTestSuite) TestCheckAgainst_TieSucceeds() {
	s.True(dice.CheckAgainst(17, 15))
	s.False(dice.CheckAgainst(14, 15))
	s.True(dice.CheckAgainst(15, 15), "a tie favors the actor")
}

func (s *DiceTestSuite) TestCriticalSuccess_AnyNatural20() {
	s.True(dice.CriticalSuccess([]int{20}, dice.D20))
	s.False(dice.CriticalSuccess([]int{20}, dice.D6))
	s.False(dice.CriticalSuccess([]int{15, 19}, dice.D20))
	s.True(dice.CriticalSuccess([]int{3, 20}, dice.D20), "any die at 20 crits")
}

func (s *DiceTestSuite) TestCriticalFailure_AllNatural1s() {
	s.True(dice.CriticalFailure([]int{1, 1}, dice.D20))
	s.False(dice.CriticalFailure([]int{1, 5}, dice.D20))
	s.False(dice.CriticalFailure([]int{1}, dice.D6))
	s.False(dice.CriticalFailure(nil, dice.D20))
}

func (s *DiceTestSuite) TestAttributeModifier() {
	testCases := []struct {
		score    int
		expected int
	}{
		{score: 3, expected: -4},
		{score: 8, expected: -1},
		{score: 9, expected: -1},
		{score: 10, expected: 0},
		{score: 11, expected: 0},
		{score: 12, expected: 1},
		{score: 15, expected: 2},
		{score: 18, expected: 4},
		{score: 20, expected: 5},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, dice.AttributeModifier(tc.score), "score %d", tc.score)
	}
}

func (s *DiceTestSuite) TestRollString() {
	roll := &dice.Roll{Kind: dice.D20, Count: 2, Modifier: 3, Results: []int{15, 4}, Total: 22}
	s.Equal("2d20+3 (15 + 4) = 22", roll.String())

	roll = &dice.Roll{Kind: dice.D6, Count: 1, Modifier: -1, Results: []int{4}, Total: 3}
	s.Equal("1d6-1 = 3", roll.String())
}

package jsonrepair_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/storyforge/storyforge-api/internal/pkg/jsonrepair"
)

type RecoverTestSuite struct {
	suite.Suite
}

func TestRecoverSuite(t *testing.T) {
	suite.Run(t, new(RecoverTestSuite))
}

func (s *RecoverTestSuite) decode(o jsonrepair.Outcome) map[string]interface{} {
	s.Require().Equal(jsonrepair.OutcomeStructured, o.Kind)
	var m map[string]interface{}
	s.Require().NoError(o.Decode(&m))
	return m
}

func (s *RecoverTestSuite) TestCleanObject() {
	out := jsonrepair.Recover(`{"proposedAction":"open the door","aiReasoning":"curiosity"}`)
	m := s.decode(out)
	s.Equal("open the door", m["proposedAction"])
	s.Equal("curiosity", m["aiReasoning"])
}

func (s *RecoverTestSuite) TestRoundTrip_WithNoiseAndFences() {
	original := map[string]interface{}{
		"background": "A drowned kingdom.",
		"locations":  []interface{}{map[string]interface{}{"name": "The Reef Gate"}},
		"influence":  float64(7),
	}
	payload, err := json.Marshal(original)
	s.Require().NoError(err)

	testCases := []struct {
		name string
		text string
	}{
		{name: "bare", text: string(payload)},
		{name: "fenced", text: "```json\n" + string(payload) + "\n```"},
		{name: "leading prose", text: "Sure! Here is the result you asked for:\n" + string(payload)},
		{name: "trailing prose", text: string(payload) + "\nLet me know if you need adjustments."},
		{name: "prose both sides and fence", text: "Here you go:\n```\n" + string(payload) + "\n```\nEnjoy!"},
		{name: "byte order mark", text: "\ufeff" + string(payload)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			m := s.decode(jsonrepair.Recover(tc.text))
			s.Equal(original, m)
		})
	}
}

func (s *RecoverTestSuite) TestRepair_TruncatedArray() {
	out := jsonrepair.Recover(`{"a":1,"b":[1,2`)
	m := s.decode(out)
	s.Equal(float64(1), m["a"])
	s.Equal([]interface{}{float64(1), float64(2)}, m["b"])
}

func (s *RecoverTestSuite) TestRepair_TruncatedString() {
	out := jsonrepair.Recover(`{"proposedAction":"sneak past the gua`)
	m := s.decode(out)
	s.Equal("sneak past the gua", m["proposedAction"])
}

func (s *RecoverTestSuite) TestRepair_TruncatedNestedObject() {
	out := jsonrepair.Recover("```json\n" + `{"stages":[{"objective":"find the key","hints":["ask the keeper"` + "\n```")
	m := s.decode(out)
	stages, ok := m["stages"].([]interface{})
	s.Require().True(ok)
	s.Len(stages, 1)
}

func (s *RecoverTestSuite) TestBracesInsideStrings() {
	out := jsonrepair.Recover(`{"note":"use {curly} and [square] freely","n":2}`)
	m := s.decode(out)
	s.Equal("use {curly} and [square] freely", m["note"])
}

func (s *RecoverTestSuite) TestGarbageAfterObject() {
	out := jsonrepair.Recover(`{"ok":true} trailing {unparseable`)
	m := s.decode(out)
	s.Equal(true, m["ok"])
}

func (s *RecoverTestSuite) TestProseOnly_IsUnstructured() {
	raw := "The rogue slips into the shadows and waits."
	out := jsonrepair.Recover(raw)
	s.Equal(jsonrepair.OutcomeUnstructured, out.Kind)
	s.Equal(raw, out.Raw)
}

func (s *RecoverTestSuite) TestEmptyInput_IsEmpty() {
	s.Equal(jsonrepair.OutcomeEmpty, jsonrepair.Recover("").Kind)
	s.Equal(jsonrepair.OutcomeEmpty, jsonrepair.Recover("   \n\t").Kind)
	s.Equal(jsonrepair.OutcomeEmpty, jsonrepair.Recover("```json\n```").Kind)
}

func (s *RecoverTestSuite) TestUnrecoverable_IsUnstructured() {
	raw := `{"a": <<<not json at all>>>}`
	out := jsonrepair.Recover(raw)
	s.Equal(jsonrepair.OutcomeUnstructured, out.Kind)
	s.Equal(raw, out.Raw)
}

func (s *RecoverTestSuite) TestDecode_NonStructured() {
	var m map[string]interface{}
	err := jsonrepair.Outcome{Kind: jsonrepair.OutcomeEmpty}.Decode(&m)
	s.Error(err)
}

func (s *RecoverTestSuite) TestSyntheticTruncations() {
	payload := `{"title":"The Sunken Vault","stages":[{"objective":"reach the vault","hints":["follow the tide"]},{"objective":"open it","hints":[]}],"worldDirection":"the tide rises"}`

	// Any prefix that still contains a complete key/value boundary
	// should either recover or fall back, never panic or mis-parse.
	structured := 0
	for i := 1; i <= len(payload); i++ {
		out := jsonrepair.Recover(payload[:i])
		if out.Kind == jsonrepair.OutcomeStructured {
			structured++
			var m map[string]interface{}
			s.Require().NoError(out.Decode(&m))
		}
	}
	s.Positive(structured, "at least some truncations must be repairable")

	// The untruncated payload always parses.
	m := s.decode(jsonrepair.Recover(payload))
	s.Equal("The Sunken Vault", m["title"])
}

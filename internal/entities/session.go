package entities

import (
	"time"

	"github.com/storyforge/storyforge-api/internal/pkg/dice"
)

// CheckType identifies what a dice check tests
type CheckType string

// Check types: the six attributes plus attack, save, and skill
const (
	CheckStrength     CheckType = "strength"
	CheckDexterity    CheckType = "dexterity"
	CheckConstitution CheckType = "constitution"
	CheckIntelligence CheckType = "intelligence"
	CheckWisdom       CheckType = "wisdom"
	CheckCharisma     CheckType = "charisma"
	CheckAttack       CheckType = "attack"
	CheckSave         CheckType = "save"
	CheckSkill        CheckType = "skill"
)

// Valid reports whether the check type is known
func (t CheckType) Valid() bool {
	switch t {
	case CheckStrength, CheckDexterity, CheckConstitution,
		CheckIntelligence, CheckWisdom, CheckCharisma,
		CheckAttack, CheckSave, CheckSkill:
		return true
	}
	return false
}

// IsAttribute reports whether the check type is one of the six
// ability checks (which apply the attribute modifier)
func (t CheckType) IsAttribute() bool {
	switch t {
	case CheckStrength, CheckDexterity, CheckConstitution,
		CheckIntelligence, CheckWisdom, CheckCharisma:
		return true
	}
	return false
}

// TurnAction is a character's proposed action for the current round.
// CharacterName is a denormalized snapshot taken at proposal time.
type TurnAction struct {
	ID             string `json:"id"`
	CharacterID    string `json:"characterId"`
	CharacterName  string `json:"characterName"`
	ProposedAction string `json:"proposedAction"`
	AIReasoning    string `json:"aiReasoning"`
}

// TurnCheck is one dice-backed resolution of a pending action.
// SkillName is set iff CheckType is skill.
type TurnCheck struct {
	ID         string    `json:"id"`
	ActionID   string    `json:"actionId"`
	CheckType  CheckType `json:"checkType"`
	SkillName  string    `json:"skillName,omitempty"`
	Difficulty int       `json:"difficulty"`
	DiceRoll   dice.Roll `json:"diceRoll"`
}

// TurnResult records the outcome of one check
type TurnResult struct {
	ID           string   `json:"id"`
	CheckID      string   `json:"checkId"`
	Success      bool     `json:"success"`
	DMNarration  string   `json:"dmNarration"`
	WorldChanges []string `json:"worldChanges,omitempty"`
}

// Turn is the immutable record of one resolved round. Later turns
// never rewrite earlier ones.
type Turn struct {
	ID         string       `json:"id"`
	SessionID  string       `json:"sessionId"`
	TurnNumber int          `json:"turnNumber"`
	Actions    []TurnAction `json:"actions"`
	Checks     []TurnCheck  `json:"checks"`
	Results    []TurnResult `json:"results"`
	WorldState string       `json:"worldState"`
	Timestamp  time.Time    `json:"timestamp"`
}

// TimelineSignificance grades how much a timeline event matters
type TimelineSignificance string

// Timeline significance levels
const (
	SignificanceMinor    TimelineSignificance = "minor"
	SignificanceModerate TimelineSignificance = "moderate"
	SignificanceMajor    TimelineSignificance = "major"
	SignificanceCritical TimelineSignificance = "critical"
)

// Valid reports whether the significance level is known
func (s TimelineSignificance) Valid() bool {
	switch s {
	case SignificanceMinor, SignificanceModerate, SignificanceMajor, SignificanceCritical:
		return true
	}
	return false
}

// TimelineEvent is one significance-tagged entry in a session's timeline
type TimelineEvent struct {
	ID           string               `json:"id"`
	Timestamp    time.Time            `json:"timestamp"`
	TurnNumber   int                  `json:"turnNumber"`
	Event        string               `json:"event"`
	Significance TimelineSignificance `json:"significance"`
}

// AdventureLog is a per-character narrative log entry
type AdventureLog struct {
	ID            string `json:"id"`
	CharacterID   string `json:"characterId"`
	CharacterName string `json:"characterName"`
	TurnNumber    int    `json:"turnNumber"`
	Content       string `json:"content"`
	Emotion       string `json:"emotion,omitempty"`
}

// SessionStatus tracks a session's lifecycle
type SessionStatus string

// Session statuses
const (
	SessionActive    SessionStatus = "active"
	SessionPaused    SessionStatus = "paused"
	SessionCompleted SessionStatus = "completed"
)

// Valid reports whether the status is a known session status
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionActive, SessionPaused, SessionCompleted:
		return true
	}
	return false
}

// Session groups a world's play history: participants, finalized
// turns, timeline, and adventure logs. CurrentTurn is the highest
// finalized turn number, 0 before any turn. The pending round queues
// are engine state, not part of the persisted session.
type Session struct {
	ID            string          `json:"id"`
	WorldID       string          `json:"worldId"`
	Name          string          `json:"name"`
	Characters    []string        `json:"characters"`
	Turns         []Turn          `json:"turns"`
	CurrentTurn   int             `json:"currentTurn"`
	Timeline      []TimelineEvent `json:"timeline"`
	AdventureLogs []AdventureLog  `json:"adventureLogs"`
	Status        SessionStatus   `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Participant reports whether the character is in this session
func (s *Session) Participant(characterID string) bool {
	for _, id := range s.Characters {
		if id == characterID {
			return true
		}
	}
	return false
}

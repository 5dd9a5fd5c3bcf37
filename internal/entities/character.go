package entities

import (
	"sort"
	"time"
)

// Alignment is the classic nine-way moral axis
type Alignment string

// Alignments
const (
	LawfulGood     Alignment = "lawful-good"
	NeutralGood    Alignment = "neutral-good"
	ChaoticGood    Alignment = "chaotic-good"
	LawfulNeutral  Alignment = "lawful-neutral"
	TrueNeutral    Alignment = "true-neutral"
	ChaoticNeutral Alignment = "chaotic-neutral"
	LawfulEvil     Alignment = "lawful-evil"
	NeutralEvil    Alignment = "neutral-evil"
	ChaoticEvil    Alignment = "chaotic-evil"
)

// Valid reports whether the alignment is one of the nine
func (a Alignment) Valid() bool {
	switch a {
	case LawfulGood, NeutralGood, ChaoticGood,
		LawfulNeutral, TrueNeutral, ChaoticNeutral,
		LawfulEvil, NeutralEvil, ChaoticEvil:
		return true
	}
	return false
}

// CharacterStatus tracks whether a character can still act
type CharacterStatus string

// Character statuses
const (
	CharacterActive        CharacterStatus = "active"
	CharacterIncapacitated CharacterStatus = "incapacitated"
	CharacterDead          CharacterStatus = "dead"
)

// Valid reports whether the status is a known character status
func (s CharacterStatus) Valid() bool {
	switch s {
	case CharacterActive, CharacterIncapacitated, CharacterDead:
		return true
	}
	return false
}

// Attributes holds the six ability scores, each 3-18
type Attributes struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Score looks an attribute up by name. The second return is false for
// names that are not attributes.
func (a Attributes) Score(name string) (int, bool) {
	switch name {
	case "strength":
		return a.Strength, true
	case "dexterity":
		return a.Dexterity, true
	case "constitution":
		return a.Constitution, true
	case "intelligence":
		return a.Intelligence, true
	case "wisdom":
		return a.Wisdom, true
	case "charisma":
		return a.Charisma, true
	}
	return 0, false
}

// Skills holds the four categorized skill maps, each modifier -5..+10
type Skills struct {
	Combat      map[string]int `json:"combat"`
	Social      map[string]int `json:"social"`
	Exploration map[string]int `json:"exploration"`
	Knowledge   map[string]int `json:"knowledge"`
}

// Modifier returns the named skill's modifier from whichever category
// holds it, or 0 when the character has no such skill.
func (s Skills) Modifier(name string) int {
	for _, m := range []map[string]int{s.Combat, s.Social, s.Exploration, s.Knowledge} {
		if v, ok := m[name]; ok {
			return v
		}
	}
	return 0
}

// Background is the character's personality block
type Background struct {
	Personality string `json:"personality"`
	Ideal       string `json:"ideal"`
	Bond        string `json:"bond"`
	Flaw        string `json:"flaw"`
}

// Memory is one remembered event, importance 1-10
type Memory struct {
	ID                string    `json:"id"`
	Content           string    `json:"content"`
	Importance        int       `json:"importance"`
	Timestamp         time.Time `json:"timestamp"`
	RelatedCharacters []string  `json:"relatedCharacters,omitempty"`
	RelatedLocations  []string  `json:"relatedLocations,omitempty"`
}

// Character is a playable or non-player character owned by a world
type Character struct {
	ID         string          `json:"id"`
	WorldID    string          `json:"worldId"`
	Name       string          `json:"name"`
	Race       string          `json:"race"`
	Class      string          `json:"class"`
	Alignment  Alignment       `json:"alignment"`
	Level      int             `json:"level"`
	Backstory  string          `json:"backstory,omitempty"`
	Attributes Attributes      `json:"attributes"`
	Skills     Skills          `json:"skills"`
	Background Background      `json:"background"`
	Memories   []Memory        `json:"memories"`
	CurrentHP  int             `json:"currentHP"`
	MaxHP      int             `json:"maxHP"`
	Status     CharacterStatus `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// TopMemories returns up to n memories ordered by importance,
// most important first. Ties keep insertion order.
func (c *Character) TopMemories(n int) []Memory {
	if n <= 0 || len(c.Memories) == 0 {
		return nil
	}
	sorted := make([]Memory, len(c.Memories))
	copy(sorted, c.Memories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Importance > sorted[j].Importance
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

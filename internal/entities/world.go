// Package entities defines the domain types shared across
// repositories, orchestrators, and handlers.
package entities

import "time"

// WorldSourceType identifies where a world's source material came from
type WorldSourceType string

// World source types
const (
	WorldSourceManual WorldSourceType = "manual"
	WorldSourceNovel  WorldSourceType = "novel"
	WorldSourceURL    WorldSourceType = "url"
)

// ConflictStatus tracks how close a conflict is to boiling over
type ConflictStatus string

// Conflict statuses
const (
	ConflictDormant  ConflictStatus = "dormant"
	ConflictBrewing  ConflictStatus = "brewing"
	ConflictActive   ConflictStatus = "active"
	ConflictResolved ConflictStatus = "resolved"
)

// Valid reports whether the status is a known conflict status
func (s ConflictStatus) Valid() bool {
	switch s {
	case ConflictDormant, ConflictBrewing, ConflictActive, ConflictResolved:
		return true
	}
	return false
}

// Location is a notable place in a world
type Location struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ParentID    string   `json:"parentId,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// FactionRelation describes one faction's stance toward another
type FactionRelation struct {
	FactionID string `json:"factionId"`
	Type      string `json:"type"` // ally, neutral, enemy
}

// Faction is a power group in a world. Influence is 1-10.
type Faction struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Influence   int               `json:"influence"`
	Relations   []FactionRelation `json:"relations,omitempty"`
}

// HistoricalEvent is a past event that shaped the world
type HistoricalEvent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Era         string `json:"era"`
	Impact      string `json:"impact,omitempty"`
}

// Conflict is a tension between factions
type Conflict struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Factions    []string       `json:"factions,omitempty"`
	Status      ConflictStatus `json:"status"`
}

// World is the root aggregate: it owns its characters and sessions
type World struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	SourceType    WorldSourceType   `json:"sourceType"`
	SourceContent string            `json:"sourceContent,omitempty"`
	Background    string            `json:"background"`
	Locations     []Location        `json:"locations"`
	Factions      []Faction         `json:"factions"`
	History       []HistoricalEvent `json:"history"`
	Conflicts     []Conflict        `json:"conflicts"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// QuestStage is one step of a hidden main quest
type QuestStage struct {
	ID        string   `json:"id"`
	Order     int      `json:"order"`
	Objective string   `json:"objective"`
	Hints     []string `json:"hints,omitempty"`
	Completed bool     `json:"completed"`
}

// MainQuest is the GM-facing hidden storyline for a world. Characters
// never see it; it only steers the game master's narration.
type MainQuest struct {
	ID              string       `json:"id"`
	WorldID         string       `json:"worldId"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Stages          []QuestStage `json:"stages"`
	PotentialEvents []string     `json:"potentialEvents,omitempty"`
	WorldDirection  string       `json:"worldDirection,omitempty"`
}

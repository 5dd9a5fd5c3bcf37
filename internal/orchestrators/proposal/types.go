package proposal

import (
	"github.com/storyforge/storyforge-api/internal/entities"
)

// ProposeActionsInput defines the input for proposing a round of actions
type ProposeActionsInput struct {
	SessionID string

	// SceneContext is the game master's framing for the round,
	// included in every character's prompt
	SceneContext string
}

// ProposeActionsOutput defines the output for a proposal round. Actions
// are returned in session participation order and have already been
// queued on the round.
type ProposeActionsOutput struct {
	Actions []entities.TurnAction

	// Fallbacks counts characters whose proposal came from the
	// deterministic fallback rather than the model
	Fallbacks int
}

// GenerateNarrationInput defines the input for narrating a finalized turn
type GenerateNarrationInput struct {
	SessionID string

	// TurnNumber selects the turn; 0 means the latest turn
	TurnNumber int
}

// GenerateNarrationOutput defines the output for turn narration
type GenerateNarrationOutput struct {
	Narration string
}

// SuggestScenesInput defines the input for game-master scene suggestions
type SuggestScenesInput struct {
	SessionID string
}

// SceneSuggestion is one proposed scene for the game master
type SceneSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Hook        string `json:"hook"`
}

// SuggestScenesOutput defines the output for scene suggestions
type SuggestScenesOutput struct {
	Suggestions []SceneSuggestion
}

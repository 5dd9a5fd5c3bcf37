package proposal

import (
	"fmt"
	"strings"

	"github.com/storyforge/storyforge-api/internal/entities"
)

const (
	// memoriesPerPrompt bounds how many memories ride along with each
	// proposal prompt, most important first
	memoriesPerPrompt = 5

	// recentTurnsPerPrompt bounds how much turn history the prompts carry
	recentTurnsPerPrompt = 3

	proposalSystemPrompt = `You are roleplaying a tabletop RPG character. Given the character sheet, the world, and the current scene, decide the single action the character takes this round.
Respond with a JSON object only:
{"proposedAction": "what the character does, one or two sentences, in character", "aiReasoning": "why, from the character's point of view"}`

	narrationSystemPrompt = `You are the game master of a tabletop RPG. Narrate the outcome of the round described below as a single vivid paragraph. Weave every character's action and its success or failure into one scene. Do not invent new dice results.`

	scenesSystemPrompt = `You are the game master of a tabletop RPG. Suggest three possible next scenes for this session.
Respond with a JSON object only:
{"suggestions": [{"title": "...", "description": "...", "hook": "how to draw the party in"}]}`
)

func writeCharacterSheet(b *strings.Builder, char *entities.Character) {
	fmt.Fprintf(b, "Character: %s, level %d %s %s (%s)\n",
		char.Name, char.Level, char.Race, char.Class, char.Alignment)
	fmt.Fprintf(b, "Attributes: STR %d DEX %d CON %d INT %d WIS %d CHA %d\n",
		char.Attributes.Strength, char.Attributes.Dexterity, char.Attributes.Constitution,
		char.Attributes.Intelligence, char.Attributes.Wisdom, char.Attributes.Charisma)
	fmt.Fprintf(b, "HP: %d/%d, status: %s\n", char.CurrentHP, char.MaxHP, char.Status)

	if char.Background.Personality != "" {
		fmt.Fprintf(b, "Personality: %s\n", char.Background.Personality)
	}
	if char.Background.Ideal != "" {
		fmt.Fprintf(b, "Ideal: %s\n", char.Background.Ideal)
	}
	if char.Background.Bond != "" {
		fmt.Fprintf(b, "Bond: %s\n", char.Background.Bond)
	}
	if char.Background.Flaw != "" {
		fmt.Fprintf(b, "Flaw: %s\n", char.Background.Flaw)
	}
	if char.Backstory != "" {
		fmt.Fprintf(b, "Backstory: %s\n", char.Backstory)
	}

	if memories := char.TopMemories(memoriesPerPrompt); len(memories) > 0 {
		b.WriteString("Notable memories:\n")
		for _, m := range memories {
			fmt.Fprintf(b, "- (%d/10) %s\n", m.Importance, m.Content)
		}
	}
}

func writeRecentTurns(b *strings.Builder, sess *entities.Session) {
	if len(sess.Turns) == 0 {
		return
	}

	start := len(sess.Turns) - recentTurnsPerPrompt
	if start < 0 {
		start = 0
	}

	b.WriteString("Recent turns:\n")
	for _, turn := range sess.Turns[start:] {
		fmt.Fprintf(b, "Turn %d:\n", turn.TurnNumber)
		for _, action := range turn.Actions {
			fmt.Fprintf(b, "- %s: %s\n", action.CharacterName, action.ProposedAction)
		}
		for _, result := range turn.Results {
			if result.DMNarration != "" {
				fmt.Fprintf(b, "  outcome: %s\n", result.DMNarration)
			}
		}
	}
}

// buildProposalPrompt assembles the per-character prompt for one
// action proposal
func buildProposalPrompt(world *entities.World, sess *entities.Session, char *entities.Character, sceneContext string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "World: %s\n%s\n\n", world.Name, world.Background)
	writeCharacterSheet(&b, char)
	b.WriteString("\n")
	writeRecentTurns(&b, sess)

	if sceneContext != "" {
		fmt.Fprintf(&b, "\nCurrent scene: %s\n", sceneContext)
	}

	fmt.Fprintf(&b, "\nWhat does %s do this round?", char.Name)
	return b.String()
}

// buildNarrationPrompt assembles the prompt for narrating a finalized turn
func buildNarrationPrompt(world *entities.World, turn *entities.Turn) string {
	var b strings.Builder

	fmt.Fprintf(&b, "World: %s\n%s\n\n", world.Name, world.Background)
	fmt.Fprintf(&b, "Turn %d:\n", turn.TurnNumber)

	resultByCheck := make(map[string]*entities.TurnResult, len(turn.Results))
	for i := range turn.Results {
		resultByCheck[turn.Results[i].CheckID] = &turn.Results[i]
	}

	for _, action := range turn.Actions {
		fmt.Fprintf(&b, "- %s: %s\n", action.CharacterName, action.ProposedAction)
		for _, check := range turn.Checks {
			if check.ActionID != action.ID {
				continue
			}
			outcome := "failed"
			if r, ok := resultByCheck[check.ID]; ok && r.Success {
				outcome = "succeeded"
			}
			fmt.Fprintf(&b, "  %s check (DC %d): rolled %d, %s\n",
				check.CheckType, check.Difficulty, check.DiceRoll.Total, outcome)
		}
	}

	if turn.WorldState != "" {
		fmt.Fprintf(&b, "\nWorld state after the turn: %s\n", turn.WorldState)
	}

	return b.String()
}

// buildScenesPrompt assembles the prompt for scene suggestions
func buildScenesPrompt(world *entities.World, sess *entities.Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "World: %s\n%s\n\n", world.Name, world.Background)

	if len(world.Conflicts) > 0 {
		b.WriteString("Open conflicts:\n")
		for _, c := range world.Conflicts {
			if c.Status == entities.ConflictResolved {
				continue
			}
			fmt.Fprintf(&b, "- %s (%s): %s\n", c.Name, c.Status, c.Description)
		}
		b.WriteString("\n")
	}

	writeRecentTurns(&b, sess)
	return b.String()
}

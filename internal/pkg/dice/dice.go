// Package dice implements the dice subsystem: rolling, modifiers, and
// the outcome policies used by check resolution.
package dice

import (
	"fmt"
	"strings"

	"github.com/storyforge/storyforge-api/internal/errors"
)

// Kind identifies a die by its face count tag
type Kind string

// Supported die kinds
const (
	D4   Kind = "d4"
	D6   Kind = "d6"
	D8   Kind = "d8"
	D10  Kind = "d10"
	D12  Kind = "d12"
	D20  Kind = "d20"
	D100 Kind = "d100"
)

var kindFaces = map[Kind]int{
	D4:   4,
	D6:   6,
	D8:   8,
	D10:  10,
	D12:  12,
	D20:  20,
	D100: 100,
}

// Valid reports whether the kind is a supported die
func (k Kind) Valid() bool {
	_, ok := kindFaces[k]
	return ok
}

// Faces returns the face count for the kind. Zero for unknown kinds;
// callers validate with Valid at the boundary.
func (k Kind) Faces() int {
	return kindFaces[k]
}

// Roll is the result of rolling a set of dice. Total is derived:
// sum(Results) + Modifier, never set independently.
type Roll struct {
	Kind     Kind  `json:"type"`
	Count    int   `json:"count"`
	Modifier int   `json:"modifier"`
	Results  []int `json:"results"`
	Total    int   `json:"total"`
}

// String renders the roll in dice notation, e.g. "2d20+3 (15 + 4) = 22"
func (r *Roll) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d%s", r.Count, r.Kind)
	switch {
	case r.Modifier > 0:
		fmt.Fprintf(&b, "+%d", r.Modifier)
	case r.Modifier < 0:
		fmt.Fprintf(&b, "%d", r.Modifier)
	}
	if len(r.Results) > 1 {
		parts := make([]string, len(r.Results))
		for i, v := range r.Results {
			parts[i] = fmt.Sprintf("%d", v)
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, " + "))
	}
	fmt.Fprintf(&b, " = %d", r.Total)
	return b.String()
}

// Roller produces dice rolls from a randomness source
type Roller interface {
	// RollDie samples uniformly in [1, faces(kind)]
	RollDie(kind Kind) (int, error)

	// RollSet rolls count independent dice and applies the modifier
	RollSet(kind Kind, count, modifier int) (*Roll, error)
}

type roller struct {
	intn func(n int) int
}

// RollDie samples a single die
func (r *roller) RollDie(kind Kind) (int, error) {
	if !kind.Valid() {
		return 0, errors.InvalidArgumentf("unsupported die kind: %s", kind)
	}
	return r.intn(kind.Faces()) + 1, nil
}

// RollSet rolls count dice of the given kind and derives the total
func (r *roller) RollSet(kind Kind, count, modifier int) (*Roll, error) {
	if !kind.Valid() {
		return nil, errors.InvalidArgumentf("unsupported die kind: %s", kind)
	}
	if count < 1 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}

	results := make([]int, count)
	sum := 0
	for i := range results {
		v := r.intn(kind.Faces()) + 1
		results[i] = v
		sum += v
	}

	return &Roll{
		Kind:     kind,
		Count:    count,
		Modifier: modifier,
		Results:  results,
		Total:    sum + modifier,
	}, nil
}

package dice

// Outcome policies. These encode deliberate table rules, pinned by
// tests rather than scattered across call sites:
//   - a check succeeds on a tie (total >= difficulty),
//   - a critical success needs any natural 20 on a d20 roll,
//   - a critical failure needs every die to be a natural 1.
// The any/every asymmetry for multi-die rolls is intentional.

// CheckAgainst reports whether a roll total meets the difficulty class
func CheckAgainst(total, difficulty int) bool {
	return total >= difficulty
}

// CriticalSuccess reports a natural 20 anywhere in a d20 roll
func CriticalSuccess(results []int, kind Kind) bool {
	if kind != D20 {
		return false
	}
	for _, v := range results {
		if v == 20 {
			return true
		}
	}
	return false
}

// CriticalFailure reports a d20 roll consisting entirely of natural 1s
func CriticalFailure(results []int, kind Kind) bool {
	if kind != D20 || len(results) == 0 {
		return false
	}
	for _, v := range results {
		if v != 1 {
			return false
		}
	}
	return true
}

// AttributeModifier maps an ability score to its modifier:
// floor((score - 10) / 2)
func AttributeModifier(score int) int {
	m := score - 10
	if m < 0 {
		return (m - 1) / 2
	}
	return m / 2
}

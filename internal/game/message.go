package game

// WinTier classifies a winning step count into one of four tiers.
// Boundaries are inclusive on the lower tier: 5 is tier 1, 6 is tier 2.
func WinTier(steps int) int {
	switch {
	case steps <= 5:
		return 1
	case steps <= 10:
		return 2
	case steps <= 15:
		return 3
	default:
		return 4
	}
}

var winMessages = [...]string{
	1: "You're a genius!",
	2: "Great job!",
	3: "Nice work!",
	4: "You did it!",
}

// WinMessage is the congratulation shown for a ladder finished in steps.
func WinMessage(steps int) string { return winMessages[WinTier(steps)] }

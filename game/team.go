package game

// Team describes one of the teams configured at server startup.
//
// Invariant: AvailableSlots + (number of players currently in the team)
// always equals the team's initial slot count.
type Team struct {
	Name           string
	AvailableSlots uint32
}

package game

import "fmt"

// PlayerErrorKind distinguishes the five ways a player's own input can be
// invalid. These are usage errors: the offending connection is closed,
// whether the error occurs during the handshake or the command loop, but
// the error is never a sign of an internal bug.
type PlayerErrorKind int

const (
	InvalidTeamName PlayerErrorKind = iota
	UnknownTeam
	TeamFull
	UnknownCommand
	UnknownObjectClass
)

// PlayerError is a usage error made by a player: an invalid team name, an
// unknown team, a full team, an unknown command, or an unknown object
// class argument.
type PlayerError struct {
	Kind PlayerErrorKind

	// TeamName is set for UnknownTeam and TeamFull.
	TeamName string
	// TeamID is set for TeamFull.
	TeamID int
	// Token is set for UnknownCommand.
	Token string
	// ObjectName is set for UnknownObjectClass.
	ObjectName string
}

func (e *PlayerError) Error() string {
	switch e.Kind {
	case InvalidTeamName:
		return "invalid team name"
	case UnknownTeam:
		return fmt.Sprintf("unknown team `%s`", e.TeamName)
	case TeamFull:
		return fmt.Sprintf("team `%s` (#%d) is full", e.TeamName, e.TeamID)
	case UnknownCommand:
		return fmt.Sprintf("unknown command `%s`", e.Token)
	case UnknownObjectClass:
		return fmt.Sprintf("unknown object class `%s`", e.ObjectName)
	default:
		return "unknown player error"
	}
}


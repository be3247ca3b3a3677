package server

import (
	"testing"

	"github.com/lab1702/zappy/game"
)

func TestClassifyTeamNameEmptyIsNotInvalidTeamName(t *testing.T) {
	// An empty line is valid (if vacuous) UTF-8; it must fall through to
	// an ordinary UnknownTeam lookup failure, not InvalidTeamName.
	if err := classifyTeamName(""); err != nil {
		t.Errorf("classifyTeamName(\"\") = %v, want nil (falls through to UnknownTeam)", err)
	}

	s := NewState(testConfig())
	if _, ok := s.TeamIDByName(""); ok {
		t.Fatal(`TeamIDByName("") unexpectedly matched a configured team`)
	}
}

func TestClassifyTeamNameRejectsInvalidUTF8(t *testing.T) {
	invalid := string([]byte{0xff, 0xfe, 0xfd})

	err := classifyTeamName(invalid)
	if err == nil {
		t.Fatal("classifyTeamName(invalid UTF-8) = nil, want InvalidTeamName error")
	}
	perr, ok := err.(*game.PlayerError)
	if !ok || perr.Kind != game.InvalidTeamName {
		t.Errorf("classifyTeamName(invalid UTF-8) = %v, want *PlayerError{Kind: InvalidTeamName}", err)
	}
}

func TestClassifyTeamNameAcceptsValidUTF8(t *testing.T) {
	if err := classifyTeamName("Blue"); err != nil {
		t.Errorf("classifyTeamName(\"Blue\") = %v, want nil", err)
	}
}

package game

import "testing"

func TestParseCommandKnownTokens(t *testing.T) {
	tests := []struct {
		line  string
		kind  CommandKind
		ticks uint32
	}{
		{"avance", MoveForward, 7},
		{"droite", TurnRight, 7},
		{"gauche", TurnLeft, 7},
		{"voir", LookAround, 7},
		{"inventaire", ShowInventory, 1},
		{"expulse", KnockPlayer, 7},
		{"incantation", Evolve, 300},
		{"fork", LayAnEgg, 42},
		{"connect_nbr", AvailableTeamSlots, 0},
	}

	for _, tt := range tests {
		cmd, err := ParseCommand([]byte(tt.line))
		if err != nil {
			t.Errorf("ParseCommand(%q) returned error: %v", tt.line, err)
			continue
		}
		if cmd.Kind != tt.kind {
			t.Errorf("ParseCommand(%q).Kind = %v, want %v", tt.line, cmd.Kind, tt.kind)
		}
		if cmd.Ticks() != tt.ticks {
			t.Errorf("ParseCommand(%q).Ticks() = %d, want %d", tt.line, cmd.Ticks(), tt.ticks)
		}
	}
}

func TestParseCommandWithObjectArgument(t *testing.T) {
	cmd, err := ParseCommand([]byte("prend linemate"))
	if err != nil {
		t.Fatalf("ParseCommand returned error: %v", err)
	}
	if cmd.Kind != PickUpObject || cmd.Object != Linemate {
		t.Errorf("got Kind=%v Object=%v, want PickUpObject/Linemate", cmd.Kind, cmd.Object)
	}

	_, err = ParseCommand([]byte("prend bogus"))
	if err == nil {
		t.Fatal("ParseCommand(\"prend bogus\") succeeded, want UnknownObjectClass error")
	}
	perr, ok := err.(*PlayerError)
	if !ok || perr.Kind != UnknownObjectClass {
		t.Errorf("error = %v, want *PlayerError{Kind: UnknownObjectClass}", err)
	}
}

func TestParseCommandBroadcastKeepsFreeText(t *testing.T) {
	cmd, err := ParseCommand([]byte("broadcast hello world"))
	if err != nil {
		t.Fatalf("ParseCommand returned error: %v", err)
	}
	if cmd.Kind != Broadcast || cmd.Text != "hello world" {
		t.Errorf("got Kind=%v Text=%q, want Broadcast/\"hello world\"", cmd.Kind, cmd.Text)
	}
}

func TestParseCommandUnknownToken(t *testing.T) {
	_, err := ParseCommand([]byte("frobnicate"))
	if err == nil {
		t.Fatal("ParseCommand(\"frobnicate\") succeeded, want UnknownCommand error")
	}
	perr, ok := err.(*PlayerError)
	if !ok || perr.Kind != UnknownCommand {
		t.Errorf("error = %v, want *PlayerError{Kind: UnknownCommand}", err)
	}
}

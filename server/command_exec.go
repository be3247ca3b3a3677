package server

import (
	"strconv"
	"strings"

	"github.com/lab1702/zappy/game"
)

// Execute runs cmd against player (already removed from its queue by the
// tick driver) and returns the line to write back on the player's own
// connection. Execution never suspends and never touches any connection
// other than the player's own; graphic observers are not notified of the
// effects.
//
// Must be called with State.Mu held.
func (s *State) Execute(player *PlayerState, cmd game.Command) string {
	width, height := s.World.Dimensions()

	switch cmd.Kind {
	case game.TurnRight:
		player.TurnRight()
		return "ok"

	case game.TurnLeft:
		player.TurnLeft()
		return "ok"

	case game.MoveForward:
		player.AdvancePosition(width, height)
		return "ok"

	case game.AvailableTeamSlots:
		return strconv.FormatUint(uint64(s.Teams[player.TeamID].AvailableSlots), 10)

	case game.ShowInventory:
		return formatInventory(&player.Inventory)

	case game.PickUpObject:
		cell := s.World.CellAt(player.X, player.Y)
		if game.TryPickUp(cell, &player.Inventory, cmd.Object) {
			return "ok"
		}
		return "ko"

	case game.DropObject:
		cell := s.World.CellAt(player.X, player.Y)
		if game.TryDrop(&player.Inventory, cell, cmd.Object) {
			return "ok"
		}
		return "ko"

	case game.Broadcast:
		// Recorded for future delivery; the response is unconditional per
		// the response table, regardless of whether anyone is listening.
		return "ok"

	default:
		// LookAround, KnockPlayer, Evolve, LayAnEgg: conservative stub.
		return "ko"
	}
}

// formatInventory renders the `{ name count, ... }` response for the
// `inventaire` command: every non-food class in declaration order, plus a
// trailing `nourriture` entry computed from time_to_live.
func formatInventory(inv *game.Inventory) string {
	var b strings.Builder
	b.WriteString("{ ")
	first := true
	for _, obj := range game.AllObjectClasses {
		if obj == game.Food {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(obj.String())
		b.WriteString(" ")
		b.WriteString(strconv.FormatUint(uint64(inv.Get(obj)), 10))
	}
	if !first {
		b.WriteString(", ")
	}
	b.WriteString("nourriture ")
	b.WriteString(strconv.FormatUint(uint64(inv.Get(game.Food)), 10))
	b.WriteString(" }")
	return b.String()
}

package server

import (
	"net"

	"github.com/lab1702/zappy/game"
)

// maxQueuedCommands is the bounded command queue capacity per player. This
// is the server's backpressure mechanism: a player that floods commands
// faster than the tick driver can drain them simply loses the excess,
// matching the reference AI client's own MAX_PENDING_COMMANDS contract.
const maxQueuedCommands = 10

// scheduledCommand pairs a parsed command with the number of ticks left
// before it becomes eligible to run. Only the head of the queue ever ages;
// everything behind it is inert until it reaches the head.
type scheduledCommand struct {
	command        game.Command
	remainingTicks uint32
}

// PlayerState holds everything the simulation knows about one connected
// player. It is only ever mutated while the owning State's lock is held.
type PlayerState struct {
	ID     PlayerID
	TeamID int
	Conn   net.Conn

	Facing game.Direction
	X, Y   int

	Inventory game.Inventory
	Level     int

	queue []scheduledCommand
}

// newRandomPlayer creates a PlayerState at a random position and facing,
// using rng to pick both.
func newRandomPlayer(id PlayerID, teamID int, conn net.Conn, rng *game.Rng, width, height int) *PlayerState {
	return &PlayerState{
		ID:     id,
		TeamID: teamID,
		Conn:   conn,
		Facing: game.Direction(rng.Next() % 4),
		X:      int(rng.Next() % uint64(width)),
		Y:      int(rng.Next() % uint64(height)),
		Level:  1,
	}
}

// ScheduleCommand appends cmd to the player's queue if there is room.
// Reports whether the command was accepted; a false return means the
// command was silently dropped per the bounded-queue backpressure policy.
func (p *PlayerState) ScheduleCommand(cmd game.Command) bool {
	if len(p.queue) >= maxQueuedCommands {
		return false
	}
	p.queue = append(p.queue, scheduledCommand{command: cmd, remainingTicks: cmd.Ticks()})
	return true
}

// TryUnqueueCommand advances the head-of-queue countdown by one tick. If
// the queue is empty, it returns false. If the head command is not yet
// ready, its countdown is decremented and false is returned. Otherwise the
// head command is removed and returned.
func (p *PlayerState) TryUnqueueCommand() (game.Command, bool) {
	if len(p.queue) == 0 {
		return game.Command{}, false
	}

	head := &p.queue[0]
	if head.remainingTicks > 0 {
		head.remainingTicks--
		return game.Command{}, false
	}

	cmd := head.command
	p.queue = p.queue[1:]
	return cmd, true
}

// TurnRight rotates the player's facing clockwise.
func (p *PlayerState) TurnRight() {
	p.Facing = p.Facing.TurnRight()
}

// TurnLeft rotates the player's facing counter-clockwise.
func (p *PlayerState) TurnLeft() {
	p.Facing = p.Facing.TurnLeft()
}

// AdvancePosition moves the player one tile in its current facing,
// wrapping on the torus defined by width x height.
func (p *PlayerState) AdvancePosition(width, height int) {
	switch p.Facing {
	case game.North:
		p.Y = wrapCoord(p.Y+1, height)
	case game.South:
		p.Y = wrapCoord(p.Y-1, height)
	case game.West:
		p.X = wrapCoord(p.X-1, width)
	case game.East:
		p.X = wrapCoord(p.X+1, width)
	}
}

func wrapCoord(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

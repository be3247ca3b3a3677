package game

import (
	"bytes"
)

// CommandKind identifies which command a client line decoded to.
type CommandKind int

const (
	MoveForward CommandKind = iota
	TurnRight
	TurnLeft
	LookAround
	ShowInventory
	PickUpObject
	DropObject
	KnockPlayer
	Broadcast
	Evolve
	LayAnEgg
	AvailableTeamSlots
)

// ticksByKind is the number of ticks each command takes to execute, per
// spec.md's command table.
var ticksByKind = map[CommandKind]uint32{
	MoveForward:         7,
	TurnRight:           7,
	TurnLeft:            7,
	LookAround:          7,
	ShowInventory:       1,
	PickUpObject:        7,
	DropObject:          7,
	KnockPlayer:         7,
	Broadcast:           7,
	Evolve:              300,
	LayAnEgg:            42,
	AvailableTeamSlots:  0,
}

// tokenByKind is the wire token (the word before the first space) for each
// command kind.
var tokenByKind = map[CommandKind]string{
	MoveForward:        "avance",
	TurnRight:          "droite",
	TurnLeft:           "gauche",
	LookAround:         "voir",
	ShowInventory:      "inventaire",
	PickUpObject:       "prend",
	DropObject:         "pose",
	KnockPlayer:        "expulse",
	Broadcast:          "broadcast",
	Evolve:             "incantation",
	LayAnEgg:           "fork",
	AvailableTeamSlots: "connect_nbr",
}

var kindByToken = func() map[string]CommandKind {
	m := make(map[string]CommandKind, len(tokenByKind))
	for k, tok := range tokenByKind {
		m[tok] = k
	}
	return m
}()

// Command is a single parsed client command, ready to be scheduled and
// later executed against a player and the world.
type Command struct {
	Kind CommandKind
	// Object holds the target object class for PickUpObject/DropObject.
	Object ObjectClass
	// Text holds the free-form payload for Broadcast.
	Text string
}

// Ticks returns the number of ticks this command takes to execute.
func (c Command) Ticks() uint32 {
	return ticksByKind[c.Kind]
}

// Token returns the wire token for this command's kind.
func (c Command) Token() string {
	return tokenByKind[c.Kind]
}

// ParseCommand decodes a single client line (without the trailing LF) into
// a Command. The bytes before the first space (or the whole line if there
// is none) are the command token; anything after is the argument.
func ParseCommand(line []byte) (Command, error) {
	token, args, _ := bytes.Cut(line, []byte{' '})

	kind, ok := kindByToken[string(token)]
	if !ok {
		return Command{}, &PlayerError{Kind: UnknownCommand, Token: string(token)}
	}

	switch kind {
	case PickUpObject, DropObject:
		obj, ok := ParseObjectClass(string(args))
		if !ok {
			return Command{}, &PlayerError{Kind: UnknownObjectClass, ObjectName: string(args)}
		}
		return Command{Kind: kind, Object: obj}, nil
	case Broadcast:
		return Command{Kind: kind, Text: string(args)}, nil
	default:
		return Command{Kind: kind}, nil
	}
}

package server

import (
	"net"
	"sync"
	"time"

	"github.com/lab1702/zappy/game"
)

// minTickDuration is the floor `sst` clamps tick_duration to, so that an
// observer cannot drive the tick driver into a busy loop by setting it to
// zero or a negative value.
const minTickDuration = time.Millisecond

// Config carries the parsed command-line configuration needed to build a
// State.
type Config struct {
	Width            int
	Height           int
	TeamNames        []string
	InitialSlotCount uint32
	TickFrequencyHz  float64
}

// State is the single mutable root of the simulation: it owns the teams,
// the connected players, the world grid, the rng, and the list of
// subscribed graphical observers. Every field is only ever mutated while Mu
// is held.
type State struct {
	Mu sync.Mutex

	Teams []game.Team
	World *game.World
	Rng   *game.Rng

	// players and order together behave like the original's key-ordered
	// slot map: order preserves insertion order (so tick-time iteration is
	// deterministic across a fixed insertion/removal history) and players
	// gives O(1) lookup by id.
	players map[PlayerID]*PlayerState
	order   []PlayerID
	nextID  PlayerID

	GfxMonitors []net.Conn

	TickDuration time.Duration
}

// NewState builds a fresh State from a parsed Config.
func NewState(cfg Config) *State {
	teams := make([]game.Team, len(cfg.TeamNames))
	for i, name := range cfg.TeamNames {
		teams[i] = game.Team{Name: name, AvailableSlots: cfg.InitialSlotCount}
	}

	return &State{
		Teams:        teams,
		World:        game.NewWorld(cfg.Width, cfg.Height),
		Rng:          game.NewRngFromOS(),
		players:      make(map[PlayerID]*PlayerState),
		TickDuration: durationFromHz(cfg.TickFrequencyHz),
	}
}

// durationFromHz converts a tick frequency in Hz to a tick period, the Go
// analogue of the original's `tick_duration = 1 / tick_frequency_hz`.
func durationFromHz(hz float64) time.Duration {
	return time.Duration(float64(time.Second) / hz)
}

// TeamIDByName returns the index of the team with the given name, if any.
func (s *State) TeamIDByName(name string) (int, bool) {
	for i, t := range s.Teams {
		if t.Name == name {
			return i, true
		}
	}
	return 0, false
}

// AvailableSlotsFor returns the current available-slot count for a team.
func (s *State) AvailableSlotsFor(teamID int) uint32 {
	return s.Teams[teamID].AvailableSlots
}

// TryJoinTeam reserves a slot on teamID for a new player connected on conn,
// and creates the player's PlayerState at a random position and facing. On
// failure (team full), no state is mutated.
func (s *State) TryJoinTeam(conn net.Conn, teamID int) (PlayerID, error) {
	team := &s.Teams[teamID]
	if team.AvailableSlots == 0 {
		return 0, &game.PlayerError{Kind: game.TeamFull, TeamName: team.Name, TeamID: teamID}
	}

	team.AvailableSlots--

	s.nextID++
	id := s.nextID
	width, height := s.World.Dimensions()
	s.players[id] = newRandomPlayer(id, teamID, conn, s.Rng, width, height)
	s.order = append(s.order, id)

	return id, nil
}

// Leave removes a player from the server and restores its team's slot.
func (s *State) Leave(id PlayerID) {
	player, ok := s.players[id]
	if !ok {
		return
	}

	s.Teams[player.TeamID].AvailableSlots++
	delete(s.players, id)

	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Player returns the player with the given id, if connected.
func (s *State) Player(id PlayerID) (*PlayerState, bool) {
	p, ok := s.players[id]
	return p, ok
}

// PlayerIDsInOrder returns the currently connected player ids, in stable
// insertion order.
func (s *State) PlayerIDsInOrder() []PlayerID {
	out := make([]PlayerID, len(s.order))
	copy(out, s.order)
	return out
}

// AddGfxMonitor adds conn to GfxMonitors. Nothing in the server writes
// pushes to the connections in that list.
func (s *State) AddGfxMonitor(conn net.Conn) {
	s.GfxMonitors = append(s.GfxMonitors, conn)
}

// RemoveGfxMonitor unsubscribes conn. It is idempotent: removing a
// connection that is not (or no longer) present is a no-op, since the
// guard that calls this always runs on every exit path including ones
// that race with a concurrent removal attempt.
func (s *State) RemoveGfxMonitor(conn net.Conn) {
	for i, c := range s.GfxMonitors {
		if c == conn {
			s.GfxMonitors = append(s.GfxMonitors[:i], s.GfxMonitors[i+1:]...)
			return
		}
	}
}

// SetTickDuration updates the tick period, clamped to minTickDuration.
func (s *State) SetTickDuration(d time.Duration) {
	if d < minTickDuration {
		d = minTickDuration
	}
	s.TickDuration = d
}

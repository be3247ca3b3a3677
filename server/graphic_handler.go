package server

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/lab1702/zappy/game"
	"github.com/lab1702/zappy/zlog"
)

// handleGraphicConnection runs the initial full-state dump followed by the
// admin query loop for one GRAPHIC-flavored connection.
func handleGraphicConnection(s *State, conn net.Conn, lc *lineConn) {
	s.Mu.Lock()
	s.AddGfxMonitor(conn)
	s.Mu.Unlock()

	zlog.Info("graphic observer connected")

	defer func() {
		s.Mu.Lock()
		s.RemoveGfxMonitor(conn)
		s.Mu.Unlock()
	}()

	if err := sendInitialDump(s, lc); err != nil {
		logClientError(asClientError(err))
		return
	}

	for {
		line, err := lc.readLine()
		if err != nil {
			logClientError(asClientError(err))
			return
		}

		reply := handleGraphicQuery(s, line)
		if err := lc.writeLine(reply); err != nil {
			logClientError(asClientError(err))
			return
		}
	}
}

func sendInitialDump(s *State, lc *lineConn) error {
	s.Mu.Lock()
	width, height := s.World.Dimensions()
	tickSeconds := s.TickDuration.Seconds()
	teams := append([]game.Team(nil), s.Teams...)
	players := s.PlayerIDsInOrder()
	type dumpPlayer struct {
		id     PlayerID
		x, y   int
		facing game.Direction
		level  int
		team   string
	}
	dumpPlayers := make([]dumpPlayer, 0, len(players))
	for _, id := range players {
		p, ok := s.Player(id)
		if !ok {
			continue
		}
		dumpPlayers = append(dumpPlayers, dumpPlayer{
			id: id, x: p.X, y: p.Y, facing: p.Facing, level: p.Level,
			team: s.Teams[p.TeamID].Name,
		})
	}
	cells := bctLines(s)
	s.Mu.Unlock()

	if err := lc.writeLine(fmt.Sprintf("msz %d %d", width, height)); err != nil {
		return err
	}
	if err := lc.writeLine(fmt.Sprintf("sgt %g", tickSeconds)); err != nil {
		return err
	}
	for _, line := range cells {
		if err := lc.writeLine(line); err != nil {
			return err
		}
	}
	for _, team := range teams {
		if err := lc.writeLine("tna " + team.Name); err != nil {
			return err
		}
	}
	for _, p := range dumpPlayers {
		line := fmt.Sprintf("pnw %s %d %d %d %d %s", PlayerID(p.id).String(), p.x, p.y, p.facing.Wire(), p.level, p.team)
		if err := lc.writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

// bctLines renders a `bct x y ...` line for every cell, row-major. Caller
// must hold s.Mu.
func bctLines(s *State) []string {
	width, height := s.World.Dimensions()
	lines := make([]string, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			lines = append(lines, bctLine(s, x, y))
		}
	}
	return lines
}

func bctLine(s *State, x, y int) string {
	cell := s.World.CellAt(x, y)
	var b strings.Builder
	fmt.Fprintf(&b, "bct %d %d", x, y)
	for _, obj := range game.AllObjectClasses {
		fmt.Fprintf(&b, " %d", cell.Get(obj))
	}
	return b.String()
}

// handleGraphicQuery answers one admin query line. It acquires s.Mu itself
// for the duration of the lookup only.
func handleGraphicQuery(s *State, line string) string {
	token, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch token {
	case "msz":
		s.Mu.Lock()
		w, h := s.World.Dimensions()
		s.Mu.Unlock()
		return fmt.Sprintf("msz %d %d", w, h)

	case "bct":
		parts := strings.Fields(rest)
		if len(parts) != 2 {
			return "error: bct requires x y"
		}
		x, errX := strconv.Atoi(parts[0])
		y, errY := strconv.Atoi(parts[1])
		if errX != nil || errY != nil {
			return "error: bct requires integer x y"
		}
		s.Mu.Lock()
		defer s.Mu.Unlock()
		width, height := s.World.Dimensions()
		if x < 0 || x >= width || y < 0 || y >= height {
			return "error: bct coordinates out of range"
		}
		return bctLine(s, x, y)

	case "mct":
		s.Mu.Lock()
		lines := bctLines(s)
		s.Mu.Unlock()
		return strings.Join(lines, "\n")

	case "tna":
		s.Mu.Lock()
		names := make([]string, len(s.Teams))
		for i, t := range s.Teams {
			names[i] = "tna " + t.Name
		}
		s.Mu.Unlock()
		return strings.Join(names, "\n")

	case "ppo":
		id, err := ParsePlayerID(rest)
		if err != nil {
			return "error: ppo requires a valid player id"
		}
		s.Mu.Lock()
		defer s.Mu.Unlock()
		p, ok := s.Player(id)
		if !ok {
			return "error: unknown player"
		}
		return fmt.Sprintf("ppo %s %d %d %d", id.String(), p.X, p.Y, p.Facing.Wire())

	case "plv":
		id, err := ParsePlayerID(rest)
		if err != nil {
			return "error: plv requires a valid player id"
		}
		s.Mu.Lock()
		defer s.Mu.Unlock()
		p, ok := s.Player(id)
		if !ok {
			return "error: unknown player"
		}
		return fmt.Sprintf("plv %s %d", id.String(), p.Level)

	case "pin":
		id, err := ParsePlayerID(rest)
		if err != nil {
			return "error: pin requires a valid player id"
		}
		s.Mu.Lock()
		defer s.Mu.Unlock()
		p, ok := s.Player(id)
		if !ok {
			return "error: unknown player"
		}
		var b strings.Builder
		fmt.Fprintf(&b, "pin %s %d %d", id.String(), p.X, p.Y)
		for _, obj := range game.AllObjectClasses {
			fmt.Fprintf(&b, " %d", p.Inventory.Get(obj))
		}
		return b.String()

	case "sgt":
		s.Mu.Lock()
		seconds := s.TickDuration.Seconds()
		s.Mu.Unlock()
		return fmt.Sprintf("sgt %g", seconds)

	case "sst":
		// EXAMPLE: sst <time_unit> -> sgt <time_unit>
		// The argument is the new tick_duration in seconds directly, not a
		// frequency: original_source's sst arm does
		// Duration::from_secs_f32(new_time_unit), no inversion.
		seconds, err := strconv.ParseFloat(rest, 64)
		if err != nil || seconds <= 0 {
			return "error: sst requires a positive number"
		}
		s.Mu.Lock()
		s.SetTickDuration(time.Duration(seconds * float64(time.Second)))
		newSeconds := s.TickDuration.Seconds()
		s.Mu.Unlock()
		return fmt.Sprintf("sgt %g", newSeconds)

	default:
		return "error: unknown command"
	}
}

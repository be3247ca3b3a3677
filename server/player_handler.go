package server

import (
	"fmt"
	"net"
	"strconv"
	"unicode/utf8"

	"github.com/lab1702/zappy/game"
	"github.com/lab1702/zappy/zlog"
)

// handleConnection runs the full per-connection state machine: handshake,
// then branch into either the player command loop or the graphic observer
// loop depending on the first line the client sends.
func handleConnection(s *State, conn net.Conn) {
	defer conn.Close()

	lc := newLineConn(conn)

	if err := lc.writeLine("BIENVENUE"); err != nil {
		logClientError(asClientError(err))
		return
	}

	teamLine, err := lc.readLine()
	if err != nil {
		logClientError(asClientError(err))
		return
	}

	if teamLine == "GRAPHIC" {
		handleGraphicConnection(s, conn, lc)
		return
	}

	handlePlayerConnection(s, conn, lc, teamLine)
}

// logClientError logs a classified connection error at the severity its
// kind warrants, per spec.md §7's propagation policy: a plain disconnect
// and a player usage error are both routine (info); only an unexpected,
// internal error is error-level.
func logClientError(cerr *ClientError) {
	if cerr == nil {
		return
	}
	if cerr.Kind == KindUnexpected {
		zlog.Error("%v", cerr)
		return
	}
	zlog.Info("%v", cerr)
}

// classifyTeamName validates a handshake team-name line before any team
// lookup is attempted. InvalidTeamName is raised only for a line that is
// not valid UTF-8 (the original's str::from_utf8 failure case); an empty
// but well-formed line is valid UTF-8 and is left to the team-name lookup,
// which reports it as an ordinary UnknownTeam.
func classifyTeamName(teamName string) error {
	if !utf8.ValidString(teamName) {
		return &game.PlayerError{Kind: game.InvalidTeamName}
	}
	return nil
}

// handlePlayerConnection completes an AI handshake and runs the command
// loop for the remaining lifetime of the connection.
func handlePlayerConnection(s *State, conn net.Conn, lc *lineConn, teamName string) {
	if err := classifyTeamName(teamName); err != nil {
		logClientError(playerClientError(err.(*game.PlayerError)))
		return
	}

	s.Mu.Lock()
	teamID, ok := s.TeamIDByName(teamName)
	if !ok {
		s.Mu.Unlock()
		logClientError(playerClientError(&game.PlayerError{Kind: game.UnknownTeam, TeamName: teamName}))
		return
	}

	id, err := s.TryJoinTeam(conn, teamID)
	if err != nil {
		s.Mu.Unlock()
		if perr, ok := err.(*game.PlayerError); ok {
			logClientError(playerClientError(perr))
		} else {
			zlog.Error("%v", err)
		}
		return
	}

	available := s.Teams[teamID].AvailableSlots
	width, height := s.World.Dimensions()
	s.Mu.Unlock()

	zlog.Info("player %v joined team %q", id, teamName)

	defer func() {
		s.Mu.Lock()
		s.Leave(id)
		s.Mu.Unlock()
	}()

	if err := lc.writeLine(strconv.FormatUint(uint64(available), 10)); err != nil {
		logClientError(asClientError(err))
		return
	}
	if err := lc.writeLine(fmt.Sprintf("%d %d", width, height)); err != nil {
		logClientError(asClientError(err))
		return
	}

	for {
		line, err := lc.readLine()
		if err != nil {
			logClientError(asClientError(err))
			return
		}

		cmd, err := game.ParseCommand([]byte(line))
		if err != nil {
			// Preserve close-on-parse-failure behavior: a downgrade to a
			// `ko` response was considered and rejected per the documented
			// open question on this exact behavior.
			perr, _ := err.(*game.PlayerError)
			logClientError(playerClientError(perr))
			return
		}

		s.Mu.Lock()
		if player, ok := s.Player(id); ok {
			player.ScheduleCommand(cmd)
		}
		s.Mu.Unlock()
	}
}

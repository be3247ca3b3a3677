package server

import (
	"bufio"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// dialAndHandshake connects to addr, reads the BIENVENUE line, sends
// teamLine, and returns the connection and a buffered reader for further
// reads. This is the common prefix of every scenario below.
func dialAndHandshake(t *testing.T, addr string, teamLine string) (net.Conn, *bufio.Reader) {
	t.Helper()
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	r := bufio.NewReader(conn)
	welcome, err := r.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "BIENVENUE\n", welcome)

	_, err = conn.Write([]byte(teamLine + "\n"))
	require.NoError(t, err)

	return conn, r
}

func startTestServer(t *testing.T, cfg Config) (*State, string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	s := NewState(cfg)
	go Listen(s, ln)

	return s, ln.Addr().String()
}

// stepTick drives exactly one simulation tick synchronously, bypassing the
// wall-clock tick driver so scenario tests are deterministic.
func stepTick(s *State) {
	writes := s.Tick()
	flushWrites(writes)
}

// TestScenarioAIHandshakeHappyPath covers spec's S1: joining consumes a
// slot, and the post-handshake line reports the slots remaining plus the
// world dimensions.
func TestScenarioAIHandshakeHappyPath(t *testing.T) {
	cfg := testConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.InitialSlotCount = 2
	_, addr := startTestServer(t, cfg)

	_, r := dialAndHandshake(t, addr, "Blue")

	slots, err := r.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "1\n", slots)

	dims, err := r.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "10 10\n", dims)
}

// TestScenarioGraphicHandshake covers S2: the GRAPHIC handshake yields the
// full initial dump, and a subsequent `msz` query is answered directly.
func TestScenarioGraphicHandshake(t *testing.T) {
	cfg := testConfig()
	cfg.Width, cfg.Height = 10, 10
	_, addr := startTestServer(t, cfg)

	_, r := dialAndHandshake(t, addr, "GRAPHIC")

	msz, err := r.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "msz 10 10\n", msz)

	sgt, err := r.ReadString('\n')
	require.NoError(t, err)
	require.Contains(t, sgt, "sgt ")
}

// TestScenarioTeamFullClosesConnection covers S5: the first AI joins, the
// second is rejected and its connection is closed by the server.
func TestScenarioTeamFullClosesConnection(t *testing.T) {
	cfg := testConfig()
	cfg.TeamNames = []string{"Blue"}
	cfg.InitialSlotCount = 1
	_, addr := startTestServer(t, cfg)

	_, r1 := dialAndHandshake(t, addr, "Blue")
	_, err := r1.ReadString('\n') // slots line for the first player
	require.NoError(t, err)

	conn2, r2 := dialAndHandshake(t, addr, "Blue")
	conn2.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, err = r2.ReadString('\n')
	require.Error(t, err, "second join on a full team should have its connection closed, not receive a slots line")
}

// TestScenarioQueueSaturation covers S6: issuing 12 avance commands
// back-to-back before any tick elapses executes only the first 10; the
// 11th and 12th never produce a response.
func TestScenarioQueueSaturation(t *testing.T) {
	cfg := testConfig()
	cfg.Width, cfg.Height = 20, 20
	s, addr := startTestServer(t, cfg)

	conn, r := dialAndHandshake(t, addr, "Blue")
	_, err := r.ReadString('\n') // slots
	require.NoError(t, err)
	_, err = r.ReadString('\n') // dimensions
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		_, err := conn.Write([]byte("avance\n"))
		require.NoError(t, err)
	}

	// Give the reader goroutine a moment to drain all 12 lines into the
	// player's queue before any tick runs.
	deadline := time.Now().Add(time.Second)
	for {
		s.Mu.Lock()
		ready := len(s.players) == 1
		var queued int
		for _, p := range s.players {
			queued = len(p.queue)
		}
		s.Mu.Unlock()
		if ready && queued == maxQueuedCommands {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("queue never reached capacity (saw %d), commands may not have been read yet", queued)
		}
		time.Sleep(time.Millisecond)
	}

	responses := 0
	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	for tickNum := 0; tickNum < 7*maxQueuedCommands; tickNum++ {
		stepTick(s)
	}

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			break
		}
		require.Equal(t, "ok\n", line)
		responses++
	}
	require.Equal(t, maxQueuedCommands, responses)
}

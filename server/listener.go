package server

import "net"

// Listen runs the accept loop on ln until it is closed (which happens when
// the caller shuts down via the listener's Close, as main does after a
// shutdown signal). Every accepted connection is handed its own
// goroutine immediately: the dispatcher never blocks on one client's
// handshake while another is waiting to connect.
func Listen(s *State, ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			// A closed listener is the expected shutdown path, not a fault.
			return
		}
		go handleConnection(s, conn)
	}
}

package server

import (
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/lab1702/zappy/game"
)

// ErrDisconnected reports that a connection ended cleanly (EOF) or was
// reset; the owning goroutine should exit without further logging beyond
// an info-level note.
var ErrDisconnected = errors.New("client disconnected")

// ClientErrorKind distinguishes the three ways handling a connection can
// end in error.
type ClientErrorKind int

const (
	// KindDisconnected is a plain connection loss: EOF, reset, or a
	// partial write that could not be completed.
	KindDisconnected ClientErrorKind = iota
	// KindPlayer is a usage error made by the player (see game.PlayerError).
	KindPlayer
	// KindUnexpected is an internal/unanticipated error.
	KindUnexpected
)

// ClientError is the unified error type returned by connection-handling
// code, distinguishing transport, protocol/usage, and internal failures so
// that callers can decide how to log and whether to close the connection.
type ClientError struct {
	Kind ClientErrorKind
	Err  error
}

func (e *ClientError) Error() string {
	switch e.Kind {
	case KindDisconnected:
		return fmt.Sprintf("disconnected: %v", e.Err)
	case KindPlayer:
		return fmt.Sprintf("player error: %v", e.Err)
	default:
		return fmt.Sprintf("unexpected error: %v", e.Err)
	}
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// asClientError classifies a raw I/O error into a *ClientError, treating
// EOF and closed-connection errors as a plain disconnect and anything else
// as unexpected.
func asClientError(err error) *ClientError {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return &ClientError{Kind: KindDisconnected, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &ClientError{Kind: KindDisconnected, Err: err}
	}
	return &ClientError{Kind: KindUnexpected, Err: err}
}

// playerClientError wraps a *game.PlayerError into a *ClientError so it can
// flow through the same return path as transport errors.
func playerClientError(err *game.PlayerError) *ClientError {
	return &ClientError{Kind: KindPlayer, Err: err}
}

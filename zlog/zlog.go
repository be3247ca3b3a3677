// Package zlog is the server's leveled logging wrapper. It generalizes the
// teacher's bare log.Printf call sites into named levels, the same three
// severities the original Rust server writes with ft_log::trace!/info!/
// error! at its handshake-rejection, per-tick, and fatal call sites.
package zlog

import (
	"log"
	"os"
)

var std = log.New(os.Stderr, "", log.LstdFlags)

// Trace logs low-volume diagnostic detail: per-command execution,
// individual connection lifecycle events. Grounded on the original's
// ft_log::trace! sites in the tick driver and command dispatch.
func Trace(format string, args ...any) {
	std.Printf("TRACE "+format, args...)
}

// Info logs normal operational events: successful joins, disconnects, and
// player usage errors such as rejected handshakes. Grounded on
// ft_log::info! call sites around handshake completion.
func Info(format string, args ...any) {
	std.Printf("INFO "+format, args...)
}

// Error logs unexpected failures: internal and unclassified I/O errors.
// Grounded on ft_log::error! call sites around Unexpected variants in
// spec.md §7.
func Error(format string, args ...any) {
	std.Printf("ERROR "+format, args...)
}

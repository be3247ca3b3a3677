package server

import (
	"fmt"
	"strconv"
	"strings"
)

// PlayerID is an opaque, stable identifier assigned to a player when its
// handshake succeeds. IDs are handed out from a monotonically increasing
// counter and are never reused, so a PlayerID from a player that has since
// left can never alias a later player — the same guarantee a generational
// slot map gives, without needing one.
type PlayerID uint64

// String renders the ID the way it appears on the wire, e.g. in `pnw` and
// `ppo` lines: a `#` followed by the decimal id.
func (id PlayerID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// ParsePlayerID parses the `#<id>` form used by admin queries such as `ppo`.
func ParsePlayerID(s string) (PlayerID, error) {
	if !strings.HasPrefix(s, "#") {
		return 0, fmt.Errorf("player id must start with '#': %q", s)
	}
	n, err := strconv.ParseUint(s[1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid player id %q: %w", s, err)
	}
	return PlayerID(n), nil
}

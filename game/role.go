package game

import (
	"fmt"
	"strings"
)

// Role is a once-per-round action category.
type Role int

const (
	RoleUnknown Role = iota
	Settler          // claim a face-up plantation or a quarry
	Builder          // purchase a building
	Prospector       // take doubloons from the bank
	Mayor
	Craftsman
	Trader
	Captain
)

var roleNames = map[Role]string{
	RoleUnknown: "Unknown",
	Settler:     "Settler",
	Builder:     "Builder",
	Prospector:  "Prospector",
	Mayor:       "Mayor",
	Craftsman:   "Craftsman",
	Trader:      "Trader",
	Captain:     "Captain",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "Unknown"
}

// AllRoles returns the seven two-player roles in canonical order.
func AllRoles() []Role {
	return []Role{Settler, Builder, Prospector, Mayor, Craftsman, Trader, Captain}
}

// ParseRole matches a role name case-insensitively. Unrecognised names
// yield RoleUnknown.
func ParseRole(name string) Role {
	trimmed := strings.TrimSpace(name)
	for _, r := range AllRoles() {
		if strings.EqualFold(trimmed, r.String()) {
			return r
		}
	}
	return RoleUnknown
}

// Secondary reports whether r is neither Settler nor Builder.
func (r Role) Secondary() bool {
	return r != Settler && r != Builder && r != RoleUnknown
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed := ParseRole(string(text))
	if parsed == RoleUnknown && len(strings.TrimSpace(string(text))) > 0 {
		return fmt.Errorf("%w: %q", ErrUnknownRole, string(text))
	}
	*r = parsed
	return nil
}

package user

import "fmt"

// AccessLevel is a participant's permission rank in a channel.
type AccessLevel uint8

const (
	Member AccessLevel = iota
	Voice
	HalfOp
	Oper
	Admin
	Owner
)

// rank is the ordering table; the declaration order above is not consulted.
var rank = map[AccessLevel]int{
	Owner:  5,
	Admin:  4,
	Oper:   3,
	HalfOp: 2,
	Voice:  1,
	Member: 0,
}

// Compare returns -1, 0 or +1 as a ranks below, equal to or above b.
// Owner ranks highest, Member lowest.
func (a AccessLevel) Compare(b AccessLevel) int {
	ra, rb := rank[a], rank[b]
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	}
	return 0
}

// Symbol is the nickname prefix shown for the level. Member has none.
func (a AccessLevel) Symbol() string {
	switch a {
	case Owner:
		return "~"
	case Admin:
		return "&"
	case Oper:
		return "@"
	case HalfOp:
		return "%"
	case Voice:
		return "+"
	default:
		return ""
	}
}

func (a AccessLevel) String() string {
	switch a {
	case Owner:
		return "owner"
	case Admin:
		return "admin"
	case Oper:
		return "oper"
	case HalfOp:
		return "halfop"
	case Voice:
		return "voice"
	case Member:
		return "member"
	default:
		return fmt.Sprintf("AccessLevel(%d)", uint8(a))
	}
}

// FromPrefix maps a nickname prefix symbol (as sent in NAMES replies) to its level.
func FromPrefix(r rune) (AccessLevel, bool) {
	switch r {
	case '~':
		return Owner, true
	case '&':
		return Admin, true
	case '@':
		return Oper, true
	case '%':
		return HalfOp, true
	case '+':
		return Voice, true
	}
	return Member, false
}

// FromMode maps a channel membership mode letter to its level.
func FromMode(r rune) (AccessLevel, bool) {
	switch r {
	case 'q':
		return Owner, true
	case 'a':
		return Admin, true
	case 'o':
		return Oper, true
	case 'h':
		return HalfOp, true
	case 'v':
		return Voice, true
	}
	return Member, false
}

// ParseAccessLevel accepts a level name, a prefix symbol or a mode letter.
// The empty string is Member.
func ParseAccessLevel(s string) (AccessLevel, error) {
	switch s {
	case "", "member":
		return Member, nil
	case "owner":
		return Owner, nil
	case "admin":
		return Admin, nil
	case "oper", "op":
		return Oper, nil
	case "halfop":
		return HalfOp, nil
	case "voice":
		return Voice, nil
	}
	if r := []rune(s); len(r) == 1 {
		if lvl, ok := FromPrefix(r[0]); ok {
			return lvl, nil
		}
		if lvl, ok := FromMode(r[0]); ok {
			return lvl, nil
		}
	}
	return Member, fmt.Errorf("unknown access level %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a AccessLevel) MarshalText() ([]byte, error) {
	if _, ok := rank[a]; !ok {
		return nil, fmt.Errorf("invalid access level %d", uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AccessLevel) UnmarshalText(text []byte) error {
	lvl, err := ParseAccessLevel(string(text))
	if err != nil {
		return err
	}
	*a = lvl
	return nil
}

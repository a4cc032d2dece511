// Package user models chat participants: who they are (nick!user@host), how
// they rank in a channel and how a roster orders them.
//
// Identity and ordering are deliberately separate. Equal, Key and Hash look
// only at nickname, username and hostname, so a map keyed by Key keeps one
// entry per person across rank changes. Compare sorts by rank first.
package user

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"

	"rosterhue/theme"
)

// User is an immutable participant identity. An empty Username or Hostname
// means the part is unknown.
type User struct {
	nick     Nick
	username string
	hostname string
	access   []AccessLevel
}

// Key is the comparable identity of a User, suitable as a map key.
type Key struct {
	Nick     Nick
	Username string
	Hostname string
}

// ParseError is returned when no nickname can be extracted from the input.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse user %q: %s", e.Input, e.Reason)
}

// New builds a User from its parts. Empty username or hostname means absent.
func New(nick Nick, username, hostname string) User {
	return User{nick: nick, username: username, hostname: hostname}
}

// Parse reads "[prefixes]nick[!user][@host]". Leading prefix symbols
// ("@+alice") become access levels. Anything after the nickname is taken
// best-effort; only a missing nickname is an error.
func Parse(raw string) (User, error) {
	var u User
	s := raw
	for len(s) > 0 {
		lvl, ok := FromPrefix(rune(s[0]))
		if !ok {
			break
		}
		u.access = append(u.access, lvl)
		s = s[1:]
	}

	end := strings.IndexAny(s, "!@")
	if end < 0 {
		u.nick = Nick(s)
	} else {
		u.nick = Nick(s[:end])
		rest := s[end+1:]
		if s[end] == '!' {
			if at := strings.IndexByte(rest, '@'); at >= 0 {
				u.username, u.hostname = rest[:at], rest[at+1:]
			} else {
				u.username = rest
			}
		} else {
			u.hostname = rest
		}
	}

	if u.nick == "" {
		return User{}, &ParseError{Input: raw, Reason: "empty nickname"}
	}
	return u, nil
}

// WithAccessLevels returns a copy of u holding exactly levels.
func (u User) WithAccessLevels(levels ...AccessLevel) User {
	u.access = slices.Clone(levels)
	return u
}

// WithNick returns a copy of u renamed to nick, keeping username, hostname
// and access.
func (u User) WithNick(nick Nick) User {
	u.nick = nick
	u.access = slices.Clone(u.access)
	return u
}

func (u User) Nickname() Nick {
	return u.nick
}

func (u User) Username() string {
	return u.username
}

func (u User) Hostname() string {
	return u.hostname
}

// AccessLevels returns a copy of the levels u holds.
func (u User) AccessLevels() []AccessLevel {
	return slices.Clone(u.access)
}

// HighestAccessLevel returns the top-ranked level u holds, Member if none.
func (u User) HighestAccessLevel() AccessLevel {
	highest := Member
	for _, lvl := range u.access {
		if lvl.Compare(highest) > 0 {
			highest = lvl
		}
	}
	return highest
}

// String returns the canonical form: nick, nick@host, nick!user or
// nick!user@host.
func (u User) String() string {
	switch {
	case u.username == "" && u.hostname == "":
		return string(u.nick)
	case u.username == "":
		return fmt.Sprintf("%s@%s", u.nick, u.hostname)
	case u.hostname == "":
		return fmt.Sprintf("%s!%s", u.nick, u.username)
	default:
		return fmt.Sprintf("%s!%s@%s", u.nick, u.username, u.hostname)
	}
}

// Formatted returns the display form: nick, nick (host), nick (user) or
// nick (user@host).
func (u User) Formatted() string {
	switch {
	case u.username == "" && u.hostname == "":
		return string(u.nick)
	case u.username == "":
		return fmt.Sprintf("%s (%s)", u.nick, u.hostname)
	case u.hostname == "":
		return fmt.Sprintf("%s (%s)", u.nick, u.username)
	default:
		return fmt.Sprintf("%s (%s@%s)", u.nick, u.username, u.hostname)
	}
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (u User) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *User) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Key returns the identity of u, without access levels.
func (u User) Key() Key {
	return Key{Nick: u.nick, Username: u.username, Hostname: u.hostname}
}

// Equal reports whether u and o are the same participant. Access levels are
// ignored and the nickname is compared case-sensitively.
func (u User) Equal(o User) bool {
	return u.Key() == o.Key()
}

// Hash is a stable 64-bit hash consistent with Equal.
func (u User) Hash() uint64 {
	d := xxhash.New()
	for _, part := range []string{string(u.nick), u.username, u.hostname} {
		_, _ = d.WriteString(part)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// Compare orders users for a roster: highest access level first, then
// nickname ascending ignoring case. Remaining ties fall back to the exact
// nickname, username and hostname so distinct users never compare equal
// within a rank.
func Compare(a, b User) int {
	if c := b.HighestAccessLevel().Compare(a.HighestAccessLevel()); c != 0 {
		return c
	}
	if c := a.nick.Compare(b.nick); c != 0 {
		return c
	}
	return cmp.Or(
		strings.Compare(string(a.nick), string(b.nick)),
		strings.Compare(a.username, b.username),
		strings.Compare(a.hostname, b.hostname),
	)
}

// Sort orders users in place by Compare.
func Sort(users []User) {
	slices.SortFunc(users, Compare)
}

// ColorSeed returns the string a unique nickname color is derived from: the
// hostname when known, else the nickname. Solid mode has no seed.
func (u User) ColorSeed(mode theme.ColorMode) (string, bool) {
	if mode != theme.ColorUnique {
		return "", false
	}
	if u.hostname != "" {
		return u.hostname, true
	}
	return string(u.nick), true
}

// Package roster keeps a channel's member list and renders it sorted and
// colored.
package roster

import (
	"fmt"

	"rosterhue/events"
	"rosterhue/theme"
	"rosterhue/user"
)

// Entry is one rendered roster line.
type Entry struct {
	Nick     string `json:"nick"`
	Prefix   string `json:"prefix,omitempty"`
	FullText string `json:"full_text"`
	Color    string `json:"color"`
	Seed     string `json:"seed,omitempty"`
}

// Display formats for an entry's text.
const (
	FormatNick = "nick"
	FormatFull = "full"
)

// Options control rendering.
type Options struct {
	Palette         theme.Palette
	Mode            theme.ColorMode
	ShowAccessLevel bool
	Format          string
}

// Roster is a set of users keyed by identity. It is not safe for concurrent use.
type Roster struct {
	members map[user.Key]user.User
}

func New() *Roster {
	return &Roster{members: map[user.Key]user.User{}}
}

// Len returns the number of members.
func (r *Roster) Len() int {
	return len(r.members)
}

// Users returns the members in roster order.
func (r *Roster) Users() []user.User {
	out := make([]user.User, 0, len(r.members))
	for _, u := range r.members {
		out = append(out, u)
	}
	user.Sort(out)
	return out
}

// byNick finds the member currently using nick. Nicknames are unique within
// a channel, but events often carry only the nickname, not the full identity.
func (r *Roster) byNick(nick user.Nick) (user.User, bool) {
	for _, u := range r.members {
		if u.Nickname() == nick {
			return u, true
		}
	}
	return user.User{}, false
}

// Apply folds one event into the roster and reports whether the rendered
// roster may have changed.
func (r *Roster) Apply(ev events.Event) (bool, error) {
	u, err := ev.User()
	if err != nil {
		return false, err
	}
	existing, found := r.byNick(u.Nickname())

	switch ev.Kind {
	case events.Join, events.Names:
		if found {
			delete(r.members, existing.Key())
		}
		r.members[u.Key()] = u
		return true, nil

	case events.Part, events.Quit:
		if !found {
			return false, nil
		}
		delete(r.members, existing.Key())
		return true, nil

	case events.Nick:
		if !found {
			return false, fmt.Errorf("nick change for unknown member %q", u.Nickname())
		}
		renamed := existing.WithNick(user.Nick(ev.NewNick))
		// the server owns nick uniqueness, so a current holder is stale
		if holder, taken := r.byNick(renamed.Nickname()); taken {
			delete(r.members, holder.Key())
		}
		delete(r.members, existing.Key())
		r.members[renamed.Key()] = renamed
		return true, nil

	case events.Mode:
		if !found {
			return false, fmt.Errorf("mode change for unknown member %q", u.Nickname())
		}
		r.members[existing.Key()] = existing.WithAccessLevels(u.AccessLevels()...)
		return existing.HighestAccessLevel() != u.HighestAccessLevel(), nil
	}
	return false, fmt.Errorf("unknown event kind %q", ev.Kind)
}

// NickColor is the color a user's name is painted with: the palette accent
// in solid mode, a seeded hue of it in unique mode.
func NickColor(u user.User, p theme.Palette, mode theme.ColorMode) theme.Color {
	if seed, ok := u.ColorSeed(mode); ok {
		return theme.RandomizeColor(p.Accent, seed)
	}
	return p.Accent
}

// Render turns sorted users into entries.
func Render(users []user.User, opts Options) []Entry {
	out := make([]Entry, 0, len(users))
	for _, u := range users {
		e := Entry{
			Nick:     u.Nickname().String(),
			FullText: u.Nickname().String(),
			Color:    theme.ColorToHex(NickColor(u, opts.Palette, opts.Mode)),
		}
		if opts.Format == FormatFull {
			e.FullText = u.Formatted()
		}
		if opts.ShowAccessLevel {
			e.Prefix = u.HighestAccessLevel().Symbol()
			e.FullText = e.Prefix + e.FullText
		}
		if seed, ok := u.ColorSeed(opts.Mode); ok {
			e.Seed = seed
		}
		out = append(out, e)
	}
	return out
}

package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterhue/events"
	"rosterhue/theme"
	"rosterhue/user"
)

func apply(t *testing.T, r *Roster, evs ...events.Event) {
	t.Helper()
	for _, ev := range evs {
		_, err := r.Apply(ev)
		require.NoError(t, err, "%+v", ev)
	}
}

func nicks(users []user.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.HighestAccessLevel().Symbol()+u.Nickname().String())
	}
	return out
}

func TestRoster_Lifecycle(t *testing.T) {
	t.Parallel()

	r := New()
	apply(t, r,
		events.Event{Kind: events.Names, Source: "~zeta!z@z.example"},
		events.Event{Kind: events.Names, Source: "alpha!a@a.example"},
		events.Event{Kind: events.Names, Source: "~alpha2!a@b.example"},
		events.Event{Kind: events.Join, Source: "Bravo!b@c.example"},
	)
	assert.Equal(t, []string{"~alpha2", "~zeta", "alpha", "Bravo"}, nicks(r.Users()))

	apply(t, r, events.Event{Kind: events.Mode, Source: "Bravo", Access: []string{"o"}})
	assert.Equal(t, []string{"~alpha2", "~zeta", "@Bravo", "alpha"}, nicks(r.Users()))

	apply(t, r, events.Event{Kind: events.Nick, Source: "zeta", NewNick: "eta"})
	assert.Equal(t, []string{"~alpha2", "~eta", "@Bravo", "alpha"}, nicks(r.Users()))

	// the rename keeps the rest of the identity
	for _, u := range r.Users() {
		if u.Nickname() == "eta" {
			assert.Equal(t, "z.example", u.Hostname())
		}
	}

	apply(t, r,
		events.Event{Kind: events.Part, Source: "alpha!a@a.example"},
		events.Event{Kind: events.Quit, Source: "alpha2"},
	)
	assert.Equal(t, []string{"~eta", "@Bravo"}, nicks(r.Users()))
	assert.Equal(t, 2, r.Len())
}

func TestRoster_ApplyReportsChange(t *testing.T) {
	t.Parallel()

	r := New()
	changed, err := r.Apply(events.Event{Kind: events.Join, Source: "alice"})
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = r.Apply(events.Event{Kind: events.Part, Source: "nobody"})
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = r.Apply(events.Event{Kind: events.Mode, Source: "alice", Access: []string{"member"}})
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = r.Apply(events.Event{Kind: events.Mode, Source: "ghost", Access: []string{"v"}})
	assert.Error(t, err)
	_, err = r.Apply(events.Event{Kind: events.Nick, Source: "ghost", NewNick: "spirit"})
	assert.Error(t, err)
	_, err = r.Apply(events.Event{Kind: events.Join, Source: ""})
	assert.Error(t, err)
}

func TestRoster_RejoinReplacesIdentity(t *testing.T) {
	t.Parallel()

	r := New()
	apply(t, r,
		events.Event{Kind: events.Join, Source: "alice!a@old.example"},
		events.Event{Kind: events.Join, Source: "alice!a@new.example"},
	)
	users := r.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "new.example", users[0].Hostname())
}

func TestRoster_NickChangeOntoHeldNick(t *testing.T) {
	t.Parallel()

	r := New()
	apply(t, r,
		events.Event{Kind: events.Names, Source: "@alice!al@a.example"},
		events.Event{Kind: events.Names, Source: "bob!b@b.example"},
		events.Event{Kind: events.Nick, Source: "alice", NewNick: "bob"},
	)
	require.Equal(t, 1, r.Len())
	got := r.Users()[0]
	assert.Equal(t, user.Nick("bob"), got.Nickname())
	assert.Equal(t, "a.example", got.Hostname())
	assert.Equal(t, user.Oper, got.HighestAccessLevel())

	// later events by nick always hit the renamed member
	apply(t, r, events.Event{Kind: events.Mode, Source: "bob", Access: []string{"v"}})
	assert.Equal(t, []string{"+bob"}, nicks(r.Users()))

	// renaming to the current nick is a no-op on membership
	apply(t, r, events.Event{Kind: events.Nick, Source: "bob", NewNick: "bob"})
	assert.Equal(t, []string{"+bob"}, nicks(r.Users()))
}

func TestRender(t *testing.T) {
	t.Parallel()

	p := theme.Default()
	users := []user.User{
		user.New("alice", "al", "a.example").WithAccessLevels(user.Oper),
		user.New("bob", "", ""),
	}

	solid := Render(users, Options{Palette: p, Mode: theme.ColorSolid, ShowAccessLevel: true, Format: FormatNick})
	require.Len(t, solid, 2)
	assert.Equal(t, "@alice", solid[0].FullText)
	assert.Equal(t, "@", solid[0].Prefix)
	assert.Equal(t, "bob", solid[1].FullText)
	assert.Equal(t, "#d1d1e0", solid[0].Color)
	assert.Equal(t, solid[0].Color, solid[1].Color)
	assert.Empty(t, solid[0].Seed)

	unique := Render(users, Options{Palette: p, Mode: theme.ColorUnique, Format: FormatFull})
	assert.Equal(t, "alice (al@a.example)", unique[0].FullText)
	assert.Equal(t, "a.example", unique[0].Seed)
	assert.Equal(t, "bob", unique[1].Seed)
	assert.Equal(t, theme.ColorToHex(theme.RandomizeColor(p.Accent, "a.example")), unique[0].Color)

	again := Render(users, Options{Palette: p, Mode: theme.ColorUnique, Format: FormatFull})
	assert.Equal(t, unique, again)
}

func TestNotice(t *testing.T) {
	t.Parallel()

	e := Notice("boom", theme.Default(), theme.RoleError)
	assert.Equal(t, "boom", e.FullText)
	assert.Equal(t, "#e06b75", e.Color)

	assert.Empty(t, Notice("x", theme.Default(), theme.Role(99)).Color)
}

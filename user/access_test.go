package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ranked = []AccessLevel{Owner, Admin, Oper, HalfOp, Voice, Member}

func TestAccessLevel_Compare(t *testing.T) {
	t.Parallel()

	for i, a := range ranked {
		for j, b := range ranked {
			want := 0
			switch {
			case i < j:
				want = 1
			case i > j:
				want = -1
			}
			assert.Equal(t, want, a.Compare(b), "%v vs %v", a, b)
		}
	}
}

func TestAccessLevel_Symbol(t *testing.T) {
	t.Parallel()

	want := map[AccessLevel]string{
		Owner:  "~",
		Admin:  "&",
		Oper:   "@",
		HalfOp: "%",
		Voice:  "+",
		Member: "",
	}
	for lvl, sym := range want {
		assert.Equal(t, sym, lvl.Symbol(), lvl.String())
		if sym == "" {
			continue
		}
		back, ok := FromPrefix([]rune(sym)[0])
		require.True(t, ok)
		assert.Equal(t, lvl, back)
	}

	_, ok := FromPrefix('!')
	assert.False(t, ok)
}

func TestParseAccessLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]AccessLevel{
		"":       Member,
		"member": Member,
		"owner":  Owner,
		"q":      Owner,
		"~":      Owner,
		"admin":  Admin,
		"a":      Admin,
		"op":     Oper,
		"oper":   Oper,
		"@":      Oper,
		"o":      Oper,
		"halfop": HalfOp,
		"h":      HalfOp,
		"voice":  Voice,
		"+":      Voice,
		"v":      Voice,
	}
	for in, want := range tests {
		got, err := ParseAccessLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"x", "king", "@@"} {
		_, err := ParseAccessLevel(in)
		assert.Error(t, err, in)
	}
}

func TestAccessLevel_Text(t *testing.T) {
	t.Parallel()

	for _, lvl := range ranked {
		text, err := lvl.MarshalText()
		require.NoError(t, err)
		var back AccessLevel
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, lvl, back)
	}

	_, err := AccessLevel(99).MarshalText()
	assert.Error(t, err)
}

func TestNick_Compare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Nick("Bob").Compare("bob"))
	assert.Equal(t, -1, Nick("alice").Compare("Bob"))
	assert.Equal(t, 1, Nick("Zed").Compare("adam"))
	assert.NotEqual(t, Nick("Bob"), Nick("bob"))
}

// Package theme derives every color the roster paints from a small palette:
// fixed semantic roles come straight from the Palette, per-participant colors
// are seeded hue variations of a palette color.
package theme

import "fmt"

// Role names a semantic use of a palette color.
type Role int

const (
	RoleBackground Role = iota
	RoleText
	RoleAction
	RoleAccent
	RoleAlert
	RoleError
	RoleInfo
	RoleSuccess
)

var roleNames = [...]string{
	RoleBackground: "background",
	RoleText:       "text",
	RoleAction:     "action",
	RoleAccent:     "accent",
	RoleAlert:      "alert",
	RoleError:      "error",
	RoleInfo:       "info",
	RoleSuccess:    "success",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// ParseRole maps a palette field name to its Role.
func ParseRole(s string) (Role, error) {
	for i, name := range roleNames {
		if name == s {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown palette role %q", s)
}

// ColorFor returns the palette color for role and true, or false for an
// unknown role.
func (p Palette) ColorFor(role Role) (Color, bool) {
	switch role {
	case RoleBackground:
		return p.Background, true
	case RoleText:
		return p.Text, true
	case RoleAction:
		return p.Action, true
	case RoleAccent:
		return p.Accent, true
	case RoleAlert:
		return p.Alert, true
	case RoleError:
		return p.Error, true
	case RoleInfo:
		return p.Info, true
	case RoleSuccess:
		return p.Success, true
	default:
		return Color{}, false
	}
}

// ColorMode selects how participant names are colored.
type ColorMode int

const (
	// ColorSolid paints every participant with one fixed palette color.
	ColorSolid ColorMode = iota
	// ColorUnique gives each participant a hue seeded from its identity.
	ColorUnique
)

func (m ColorMode) String() string {
	switch m {
	case ColorSolid:
		return "solid"
	case ColorUnique:
		return "unique"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m ColorMode) MarshalText() ([]byte, error) {
	switch m {
	case ColorSolid, ColorUnique:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("invalid color mode %d", int(m))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ColorMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "solid":
		*m = ColorSolid
	case "unique":
		*m = ColorUnique
	default:
		return fmt.Errorf("invalid color mode %q: want solid or unique", text)
	}
	return nil
}

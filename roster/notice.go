package roster

import "rosterhue/theme"

// Notice builds a status line painted with the palette color for role, e.g.
// RoleError for events the roster could not apply.
func Notice(text string, p theme.Palette, role theme.Role) Entry {
	e := Entry{FullText: text}
	if c, ok := p.ColorFor(role); ok {
		e.Color = theme.ColorToHex(c)
	}
	return e
}

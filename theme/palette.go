package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Palette holds the eight base colors every other color is derived from.
type Palette struct {
	Background Color `json:"background" toml:"background"`
	Text       Color `json:"text" toml:"text"`
	Action     Color `json:"action" toml:"action"`
	Accent     Color `json:"accent" toml:"accent"`
	Alert      Color `json:"alert" toml:"alert"`
	Error      Color `json:"error" toml:"error"`
	Info       Color `json:"info" toml:"info"`
	Success    Color `json:"success" toml:"success"`
}

// Default returns the built-in palette.
func Default() Palette {
	return Palette{
		Background: mustHex("#2b292d"),
		Text:       mustHex("#fecdb2"),
		Action:     mustHex("#b1b695"),
		Accent:     mustHex("#d1d1e0"),
		Alert:      mustHex("#ffa07a"),
		Error:      mustHex("#e06b75"),
		Info:       mustHex("#f5d76e"),
		Success:    mustHex("#b1b695"),
	}
}

func mustHex(s string) Color {
	c, err := HexToColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsDark reports whether the palette is a dark theme, judged by its background.
func (p Palette) IsDark() bool {
	return IsDark(p.Background)
}

// paletteField binds a persisted key to its Palette field.
type paletteField struct {
	name string
	ptr  func(*Palette) *Color
}

// fields is in persisted order.
var fields = []paletteField{
	{"background", func(p *Palette) *Color { return &p.Background }},
	{"text", func(p *Palette) *Color { return &p.Text }},
	{"action", func(p *Palette) *Color { return &p.Action }},
	{"accent", func(p *Palette) *Color { return &p.Accent }},
	{"alert", func(p *Palette) *Color { return &p.Alert }},
	{"error", func(p *Palette) *Color { return &p.Error }},
	{"info", func(p *Palette) *Color { return &p.Info }},
	{"success", func(p *Palette) *Color { return &p.Success }},
}

// ErrMissingField reports a palette without one of its eight colors.
var ErrMissingField = errors.New("missing field")

// decodePalette builds a Palette from hex strings keyed by field name.
// Every field must be present and valid; unknown keys are rejected.
func decodePalette(hex map[string]string) (Palette, error) {
	for key := range hex {
		if !slices.ContainsFunc(fields, func(f paletteField) bool { return f.name == key }) {
			return Palette{}, fmt.Errorf("palette: unknown field %q", key)
		}
	}
	var p Palette
	for _, f := range fields {
		s, ok := hex[f.name]
		if !ok {
			return Palette{}, fmt.Errorf("palette: %s: %w", f.name, ErrMissingField)
		}
		c, err := HexToColor(s)
		if err != nil {
			return Palette{}, fmt.Errorf("palette: %s: not a valid hex: %w", f.name, err)
		}
		*f.ptr(&p) = c
	}
	return p, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Palette) UnmarshalJSON(data []byte) error {
	var hex map[string]string
	if err := json.Unmarshal(data, &hex); err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	decoded, err := decodePalette(hex)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler for a [palette] table.
func (p *Palette) UnmarshalTOML(data any) error {
	table, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("palette: expected a table, got %T", data)
	}
	hex := make(map[string]string, len(table))
	for key, v := range table {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("palette: %s: expected a hex string, got %T", key, v)
		}
		hex[key] = s
	}
	decoded, err := decodePalette(hex)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

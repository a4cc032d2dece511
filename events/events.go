// Package events decodes channel membership signals from the protocol layer.
package events

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"rosterhue/user"
)

// Kind is the type of membership change.
type Kind string

const (
	Join  Kind = "join"
	Names Kind = "names"
	Part  Kind = "part"
	Quit  Kind = "quit"
	Nick  Kind = "nick"
	Mode  Kind = "mode"
)

// Event is a single membership change, one JSON object per line on the wire.
type Event struct {
	Kind Kind `json:"kind"`
	// Source is the raw identity, "[prefixes]nick[!user][@host]".
	Source string `json:"source"`
	// NewNick is set for Nick events.
	NewNick string `json:"new_nick,omitempty"`
	// Access lists the levels held after a Mode event, as names, prefix
	// symbols or mode letters. Empty means plain member.
	Access []string `json:"access,omitempty"`
}

// Validate checks that the fields required by the event kind are present.
func (e Event) Validate() error {
	switch e.Kind {
	case Join, Names, Part, Quit, Mode:
	case Nick:
		if e.NewNick == "" {
			return fmt.Errorf("nick event for %q without new_nick", e.Source)
		}
	default:
		return fmt.Errorf("unknown event kind %q", e.Kind)
	}
	if e.Source == "" {
		return fmt.Errorf("%s event without source", e.Kind)
	}
	return nil
}

// User parses Source. For Mode events the levels in Access replace any
// prefixes in Source.
func (e Event) User() (user.User, error) {
	u, err := user.Parse(e.Source)
	if err != nil {
		return user.User{}, err
	}
	if e.Kind != Mode {
		return u, nil
	}
	levels := make([]user.AccessLevel, 0, len(e.Access))
	for _, s := range e.Access {
		lvl, err := user.ParseAccessLevel(s)
		if err != nil {
			return user.User{}, fmt.Errorf("mode event for %q: %w", e.Source, err)
		}
		levels = append(levels, lvl)
	}
	return u.WithAccessLevels(levels...), nil
}

// Read consumes newline-delimited JSON events from r and sends the valid
// ones to out. Malformed lines are logged and skipped. Read closes out when
// r is exhausted or ctx is done.
func Read(ctx context.Context, r io.Reader, out chan<- Event, log *zap.Logger) error {
	defer close(out)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
			log.Warn("event parse", zap.Int("line", line), zap.Error(err))
			continue
		}
		if err := ev.Validate(); err != nil {
			log.Warn("event invalid", zap.Int("line", line), zap.Error(err))
			continue
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("event scanner: %w", err)
	}
	return nil
}

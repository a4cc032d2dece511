package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"rosterhue/config"
	"rosterhue/events"
	"rosterhue/roster"
	"rosterhue/theme"
)

// runRoster applies events from in until it is exhausted or ctx is done,
// writing a row after every change. It returns ctx.Err() on cancellation
// without waiting for a pending read on in.
func runRoster(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, log *zap.Logger) error {
	opts := roster.Options{
		Palette:         cfg.Palette,
		Mode:            cfg.Nickname.Color,
		ShowAccessLevel: cfg.Nickname.ShowAccessLevel,
		Format:          cfg.Nickname.Format,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan events.Event, 16)
	readErr := make(chan error, 1)
	go func() { readErr <- events.Read(ctx, in, ch, log) }()

	r := roster.New()
	buf := bytes.NewBuffer(nil)
	for {
		var ev events.Event
		select {
		case <-ctx.Done():
			// the reader may be parked in a read on idle input
			return ctx.Err()
		case e, ok := <-ch:
			if !ok {
				return <-readErr
			}
			ev = e
		}

		changed, err := r.Apply(ev)
		if err != nil {
			log.Warn("apply event", zap.String("kind", string(ev.Kind)), zap.String("source", ev.Source), zap.Error(err))
			notice := roster.Notice(err.Error(), opts.Palette, theme.RoleError)
			if err := writeRow(buf, out, []roster.Entry{notice}); err != nil {
				return err
			}
			continue
		}
		if !changed {
			continue
		}
		log.Debug("roster changed", zap.String("kind", string(ev.Kind)), zap.Int("members", r.Len()))
		if err := writeRow(buf, out, roster.Render(r.Users(), opts)); err != nil {
			return err
		}
	}
}

// writeRow emits entries as a single JSON line.
func writeRow(buf *bytes.Buffer, out io.Writer, entries []roster.Entry) error {
	buf.Reset()
	if err := json.NewEncoder(buf).Encode(entries); err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return nil
}

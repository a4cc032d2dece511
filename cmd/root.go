package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rosterhue/config"
)

var (
	configPath string
	logLevel   string
)

// rootCmd reads membership events on stdin and writes the sorted, colored
// roster to stdout as one JSON array per change.
var rootCmd = &cobra.Command{
	Use:   "rosterhue",
	Short: "Render a sorted, colored channel roster from membership events",
	Long: `Reads newline-delimited JSON membership events on stdin, for example

	{"kind":"names","source":"@alice!al@a.example"}
	{"kind":"mode","source":"alice","access":["voice"]}

and prints the sorted roster as a JSON array after every change.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		err = runRoster(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), log)
		if errors.Is(err, context.Canceled) {
			log.Info("interrupted")
			return nil
		}
		return err
	},
}

// Execute runs the command tree until it finishes or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		// restore default signal handling so a second interrupt kills the process
		<-ctx.Done()
		stop()
	}()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/rosterhue/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override [log] level: debug, info, warn or error")
}

// setup loads the config and builds the logger. A missing config file is
// not fatal; a broken one is reported and the defaults are used.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, cfgErr := config.Load(configPath)

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	log, err := newLogger(level)
	if err != nil {
		return nil, nil, err
	}

	if cfgErr != nil {
		log.Warn("config", zap.Error(cfgErr))
	}
	if unknown := cfg.Unknown(); len(unknown) > 0 {
		log.Warn("config has unknown keys", zap.Strings("keys", unknown))
	}
	return cfg, log, nil
}

// newLogger builds a production (JSON, stderr) logger at level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

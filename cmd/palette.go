package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"rosterhue/theme"
)

var paletteFormat string

// paletteCmd prints the active palette
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Print the active palette as TOML or JSON",
	Long: `Prints the palette from the config file, or the built-in default,
in a form that can be pasted back into the [palette] table.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		return writePalette(cmd.OutOrStdout(), cfg.Palette, paletteFormat)
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "toml", "output format: toml or json")
}

func writePalette(w io.Writer, p theme.Palette, format string) error {
	switch format {
	case "toml":
		return toml.NewEncoder(w).Encode(struct {
			Palette theme.Palette `toml:"palette"`
		}{p})
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	default:
		return fmt.Errorf("unknown format %q: want toml or json", format)
	}
}

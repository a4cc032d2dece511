package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rosterhue/theme"
	"rosterhue/user"
)

var colorRole string

// colorCmd prints the nickname color each identity gets in unique mode
var colorCmd = &cobra.Command{
	Use:   "color IDENTITY...",
	Short: "Print the seeded color for each identity",
	Long: `Prints the unique-mode color for each identity (nick, nick!user,
nick@host or nick!user@host). The seed is the hostname when present, else
the nickname.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		role, err := theme.ParseRole(colorRole)
		if err != nil {
			return err
		}
		base, _ := cfg.Palette.ColorFor(role)
		return writeColors(cmd.OutOrStdout(), base, args)
	},
}

func init() {
	rootCmd.AddCommand(colorCmd)

	colorCmd.Flags().StringVar(&colorRole, "base", "accent", "palette color whose saturation and lightness are kept")
}

func writeColors(w io.Writer, base theme.Color, identities []string) error {
	for _, raw := range identities {
		u, err := user.Parse(raw)
		if err != nil {
			return err
		}
		seed, _ := u.ColorSeed(theme.ColorUnique)
		c := theme.RandomizeColor(base, seed)
		dark := ""
		if theme.IsDark(c) {
			dark = "\tdark"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s%s\n", u.Formatted(), seed, theme.ColorToHex(c), dark); err != nil {
			return err
		}
	}
	return nil
}

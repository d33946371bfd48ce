// Package cvt prints VESA CVT modelines.
package cvt

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/clktmr/radeonhd/modes"
)

const long = `Computes the VESA Coordinated Video Timing for WIDTH x HEIGHT at
REFRESH Hz (60 if omitted) and prints it as a modeline.`

// Command returns the cvt subcommand.
func Command() *cobra.Command {
	var reduced, interlaced bool
	var lang string

	cmd := &cobra.Command{
		Use:   "cvt [flags] WIDTH HEIGHT [REFRESH]",
		Short: "Print CVT modelines",
		Long:  long,
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(lang)
			if err != nil {
				return err
			}
			w, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("width: %w", err)
			}
			h, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("height: %w", err)
			}
			var refresh float64
			if len(args) > 2 {
				if refresh, err = strconv.ParseFloat(args[2], 64); err != nil {
					return fmt.Errorf("refresh: %w", err)
				}
			}
			if w <= 0 || h <= 0 || refresh < 0 {
				return fmt.Errorf("bad mode %sx%s", args[0], args[1])
			}
			if reduced && refresh != 0 && refresh != 60 {
				return fmt.Errorf("reduced blanking is only defined for 60 Hz")
			}

			m := modes.CVT(w, h, refresh, reduced, interlaced)
			Print(message.NewPrinter(tag), cmd.OutOrStdout(), m)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&reduced, "reduced", "r", false, "use reduced blanking")
	cmd.Flags().BoolVarP(&interlaced, "interlaced", "i", false, "compute an interlaced mode")
	cmd.Flags().StringVar(&lang, "lang", "en", "language of the number formatting")
	return cmd
}

// Package validate runs the mode validation of a screen and prints the
// resulting mode pool.
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/clktmr/radeonhd/config"
	"github.com/clktmr/radeonhd/drivers/display"
	"github.com/clktmr/radeonhd/modes"
)

const long = `Validates the modes named on the command line, or RHD_MODES, against the
configured card and monitor and prints the ones the screen would offer. The
first one is the mode the screen starts with.`

// Command returns the validate subcommand. cfg is read when it runs.
func Command(cfg *config.Config) *cobra.Command {
	var sim, modelines bool
	var lang string

	cmd := &cobra.Command{
		Use:   "validate [flags] [MODE...]",
		Short: "Validate modes against the card",
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(lang)
			if err != nil {
				return err
			}
			c := *cfg
			if sim {
				c.Slot = ""
			}
			if len(args) > 0 {
				c.Modes = args
			}

			s, err := display.Open(c, nil, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			pool, err := s.Probe()
			if err != nil {
				return err
			}
			Print(message.NewPrinter(tag), cmd.OutOrStdout(), s.Validator, pool, modelines)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sim, "sim", false, "validate against a simulated card")
	cmd.Flags().BoolVarP(&modelines, "modelines", "m", false, "print modelines")
	cmd.Flags().StringVar(&lang, "lang", "en", "language of the number formatting")
	return cmd
}

// Print writes the virtual size of v and the modes of pool.
func Print(p *message.Printer, w io.Writer, v *modes.Validator, pool modes.List, modelines bool) {
	fmt.Fprintf(w, "virtual %dx%d, pitch %d pixels\n", v.VirtualX, v.VirtualY, v.DisplayWidth)
	for _, m := range pool {
		mark := " "
		if m == v.Current() {
			mark = "*"
		}
		p.Fprintf(w, "%s %-16s %8.2f MHz %7.2f kHz %6.2f Hz\n", mark, m.Name,
			float64(m.SynthClock)/1000, m.HSync, m.VRefresh)
		if modelines {
			fmt.Fprintf(w, "    %s\n", m.Modeline())
		}
	}
}

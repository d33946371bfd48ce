// Package csdump decodes the command stream dumps a screen writes into
// RHD_DUMP_DIR.
package csdump

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/clktmr/radeonhd/hw/cs"
)

// Command returns the csdump subcommand.
func Command() *cobra.Command {
	var summary bool
	var lang string

	cmd := &cobra.Command{
		Use:   "csdump [flags] FILE...",
		Short: "Decode command stream dumps",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(lang)
			if err != nil {
				return err
			}
			p := message.NewPrinter(tag)
			out := cmd.OutOrStdout()

			var all []*Submission
			for _, name := range args {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				subs, err := Parse(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				all = append(all, subs...)
			}

			if !summary {
				for _, s := range all {
					Decode(out, s)
				}
			}
			Summarize(p, out, all)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "only print the packet statistics")
	cmd.Flags().StringVar(&lang, "lang", "en", "language of the number formatting")
	return cmd
}

// Decode prints the packets of s.
func Decode(w io.Writer, s *Submission) {
	crc := "ok"
	if !s.CRCOK() {
		crc = "MISMATCH"
	}
	fmt.Fprintf(w, "ring %s %v (%s)\n", s.Ring, s.Submission, crc)

	cs.Walk(s.Words, func(off int, h cs.Header, body []uint32) {
		addr := s.Addr + uint64(off)
		switch h.Type() {
		case 0:
			reg := h.Reg()
			for _, v := range body {
				fmt.Fprintf(w, "  %08x  PACKET0 %v = 0x%08x\n", addr, reg, v)
				if !h.OneReg() {
					reg += 4
				}
			}
		case 2:
			fmt.Fprintf(w, "  %08x  PACKET2\n", addr)
		case 3:
			fmt.Fprintf(w, "  %08x  PACKET3 %v", addr, h.Opcode())
			for _, v := range body {
				fmt.Fprintf(w, " %08x", v)
			}
			fmt.Fprintln(w)
		default:
			fmt.Fprintf(w, "  %08x  bad header %08x\n", addr, uint32(h))
		}
		if len(body) < h.Count() && h.Type() != 2 {
			fmt.Fprintf(w, "  %08x  truncated, %d of %d words\n", addr, len(body), h.Count())
		}
	})
}

// Summarize prints how many packets of each kind the submissions contain.
func Summarize(p *message.Printer, w io.Writer, subs []*Submission) {
	counts := map[string]int{}
	var bytes, bad int
	for _, s := range subs {
		bytes += s.Size
		if !s.CRCOK() {
			bad++
		}
		cs.Walk(s.Words, func(off int, h cs.Header, body []uint32) {
			switch h.Type() {
			case 0:
				counts["PACKET0"]++
			case 2:
				counts["PACKET2"]++
			case 3:
				counts[h.Opcode().String()]++
			default:
				counts["invalid"]++
			}
		})
	}

	p.Fprintf(w, "%d submissions, %d bytes, %d checksum errors\n", len(subs), bytes, bad)
	for _, n := range slices.Sorted(maps.Keys(counts)) {
		p.Fprintf(w, "  %-16s %8d\n", n, counts[n])
	}
}

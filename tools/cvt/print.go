package cvt

import (
	"fmt"
	"io"

	"golang.org/x/text/message"

	"github.com/clktmr/radeonhd/modes"
)

// Print writes m as a modeline preceded by a comment with its rates.
func Print(p *message.Printer, w io.Writer, m *modes.Mode) {
	kind := "CVT"
	if m.HTotal-m.HDisplay == 160 {
		kind = "CVT-RB"
	}
	// the printer would group the digits of a plain %d
	size := fmt.Sprintf("%dx%d", m.HDisplay, m.VDisplay)
	p.Fprintf(w, "# %s %.2f Hz (%s) hsync: %.2f kHz; pclk: %.2f MHz\n",
		size, m.VRefresh, kind, m.HSync, float64(m.Clock)/1000)
	p.Fprintln(w, m.Modeline())
}

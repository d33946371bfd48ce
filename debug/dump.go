package debug

import (
	"encoding/binary"
	"fmt"
	"io"
)

// DumpWords writes p as little endian 32-bit words, four per line, prefixed
// with their byte offset relative to base.
func DumpWords(w io.Writer, base uint64, p []byte) error {
	for off := 0; off < len(p); off += 16 {
		if _, err := fmt.Fprintf(w, "%08x:", base+uint64(off)); err != nil {
			return err
		}
		for i := off; i < min(off+16, len(p)); i += 4 {
			var word [4]byte
			copy(word[:], p[i:])
			if _, err := fmt.Fprintf(w, " %08x", binary.LittleEndian.Uint32(word[:])); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

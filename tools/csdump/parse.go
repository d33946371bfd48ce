package csdump

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/clktmr/radeonhd/hw/cs"
)

// Submission is one indirect buffer read back from a dump.
type Submission struct {
	Ring string
	cs.Submission
	Addr  uint64 // GPU address of the first word
	Words []uint32
}

// payload returns the submitted bytes.
func (s *Submission) payload() []byte {
	p := make([]byte, 0, len(s.Words)*4)
	for _, w := range s.Words {
		p = binary.LittleEndian.AppendUint32(p, w)
	}
	return p[:min(len(p), s.Size)]
}

// CRCOK reports whether the words match the recorded checksum.
func (s *Submission) CRCOK() bool {
	return len(s.Words)*4 >= s.Size && cs.Checksum(s.payload()) == s.CRC
}

// Parse reads all submissions of a dump.
func Parse(r io.Reader) ([]*Submission, error) {
	var subs []*Submission
	var cur *Submission

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, "#"):
			cur = &Submission{}
			_, err := fmt.Sscanf(line, "# ring %s #%d ib%d %d bytes crc 0x%x",
				&cur.Ring, &cur.Seq, &cur.Idx, &cur.Size, &cur.CRC)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad header: %w", n, err)
			}
			subs = append(subs, cur)
		case cur == nil:
			return nil, fmt.Errorf("line %d: words before the first header", n)
		default:
			addr, words, ok := strings.Cut(line, ":")
			if !ok {
				return nil, fmt.Errorf("line %d: expected ADDR: WORDS", n)
			}
			a, err := strconv.ParseUint(addr, 16, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			if len(cur.Words) == 0 {
				cur.Addr = a
			}
			for _, f := range strings.Fields(words) {
				w, err := strconv.ParseUint(f, 16, 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", n, err)
				}
				cur.Words = append(cur.Words, uint32(w))
			}
		}
	}
	return subs, sc.Err()
}

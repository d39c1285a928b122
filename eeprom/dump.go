package eeprom

import (
	"fmt"
	"io"
	"strings"
)

const dumpLineCells = 16

// Dump writes a hex listing of every cell, 16 cells per line.
func (e *EEPROM) Dump(w io.Writer) error {
	var line strings.Builder
	for i, ref := range e.All() {
		if i%dumpLineCells == 0 {
			fmt.Fprintf(&line, "%04X:", i)
		}
		fmt.Fprintf(&line, " %02X", ref.Get())
		if i%dumpLineCells == dumpLineCells-1 || i == e.Length()-1 {
			line.WriteByte('\n')
			if _, err := io.WriteString(w, line.String()); err != nil {
				return fmt.Errorf("couldn't write dump line at %04X: %w", i-i%dumpLineCells, err)
			}
			line.Reset()
		}
	}
	return nil
}

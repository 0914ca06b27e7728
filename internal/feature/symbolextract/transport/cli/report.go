// Package cli renders extraction results for the terminal.
package cli

import (
	"bufio"
	"fmt"
	"io"
)

// WriteReport writes the symbol count line followed by one indented symbol per line.
// symbols are written in the order given.
func WriteReport(w io.Writer, symbols []string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "Found %d unique symbol combinations:\n", len(symbols)); err != nil {
		return err
	}
	for _, s := range symbols {
		if _, err := fmt.Fprintf(bw, "  %s\n", s); err != nil {
			return err
		}
	}
	return bw.Flush()
}

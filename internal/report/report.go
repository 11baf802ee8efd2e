// Package report writes the ranked frequency table.
package report

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/Borislavv/ip-log-counter/internal/read"
)

// Entry is one report line.
type Entry struct {
	Address string
	Count   int
}

// Rank orders the table by count, highest first; equal counts are ordered
// by address so the output is reproducible.
func Rank(t read.Table) []Entry {
	out := make([]Entry, 0, len(t))
	for addr, n := range t {
		out = append(out, Entry{Address: addr, Count: n})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Address, b.Address)
	})
	return out
}

// WriteTo writes one "<address>: <count>" line per entry of t.
func WriteTo(w io.Writer, t read.Table) error {
	bw := bufio.NewWriter(w)
	for _, e := range Rank(t) {
		if _, err := fmt.Fprintf(bw, "%s: %d\n", e.Address, e.Count); err != nil {
			return fmt.Errorf("failed to write report line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}

// Write creates (or truncates) the file at path and writes the report.
func Write(path string, t read.Table) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file '%s': %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report file '%s': %w", path, cerr)
		}
	}()
	return WriteTo(file, t)
}

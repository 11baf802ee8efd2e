// Package params holds the run parameters and the rules for combining the
// command-line and config-file sources into one validated set.
package params

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted textual date form (dd.MM.yyyy).
const DateLayout = "02.01.2006"

var (
	// MinInstant marks an unset TimeStart.
	MinInstant = time.Time{}
	// MaxInstant marks an unset TimeEnd.
	MaxInstant = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)
)

// Parameters is one run's configuration. Empty strings mean "not set".
type Parameters struct {
	FileLog      string
	FileOutput   string
	AddressStart string
	AddressMask  string
	TimeStart    time.Time
	TimeEnd      time.Time
}

// New returns parameters with every field unset.
func New() *Parameters {
	return &Parameters{TimeStart: MinInstant, TimeEnd: MaxInstant}
}

// ParseDate parses a dd.MM.yyyy date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not dd.MM.yyyy: %w", s, err)
	}
	return t, nil
}

// ParseEndDate parses an inclusive end date and returns the last
// millisecond of that day.
func ParseEndDate(s string) (time.Time, error) {
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return t.AddDate(0, 0, 1).Add(-time.Millisecond), nil
}

// Merge fills every unset field of primary from fallback and returns primary.
func Merge(primary, fallback *Parameters) *Parameters {
	if fallback == nil {
		return primary
	}
	if primary.FileLog == "" {
		primary.FileLog = fallback.FileLog
	}
	if primary.FileOutput == "" {
		primary.FileOutput = fallback.FileOutput
	}
	if primary.AddressStart == "" {
		primary.AddressStart = fallback.AddressStart
	}
	if primary.AddressMask == "" {
		primary.AddressMask = fallback.AddressMask
	}
	if primary.TimeStart.Equal(MinInstant) {
		primary.TimeStart = fallback.TimeStart
	}
	if primary.TimeEnd.Equal(MaxInstant) {
		primary.TimeEnd = fallback.TimeEnd
	}
	return primary
}

// Validate reports whether p can drive a run.
func Validate(p *Parameters) bool {
	return len(Problems(p)) == 0
}

// Problems lists the rules p violates, in a stable order.
// A mask without a start address is accepted.
func Problems(p *Parameters) []string {
	if p == nil {
		return []string{"no parameters"}
	}
	var out []string
	if p.FileLog == "" {
		out = append(out, "log file is not set")
	}
	if p.FileOutput == "" {
		out = append(out, "output file is not set")
	}
	if !p.TimeStart.Before(p.TimeEnd) {
		out = append(out, "time start must be before time end")
	}
	if p.AddressStart != "" && p.AddressMask == "" {
		out = append(out, "address start requires an address mask")
	}
	return out
}

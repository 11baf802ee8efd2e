package read

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Borislavv/ip-log-counter/internal/match"
)

// ErrCancelled is returned when the context is done before the scan ends.
var ErrCancelled = errors.New("scan cancelled")

// Table maps an address to the number of accepted lines that carry it.
type Table map[string]int

// Stats describes one finished scan.
type Stats struct {
	Lines    int
	Skipped  int
	Accepted int
}

const readBufSize = 1 << 20

// timeLayouts are the accepted forms of the time-of-day token.
var timeLayouts = []string{
	"15:04:05",
	"15:04:05.999999999",
	"15:04",
	"3:04:05PM",
	"3:04PM",
}

// Scan counts the addresses of the log at path that pass f.
func Scan(ctx context.Context, path string, f *match.Filter) (Table, error) {
	t, _, err := ScanWithStats(ctx, path, f)
	return t, err
}

// ScanWithStats reads the log at path line by line. Lines of the form
// "<address>: <date> <time>" whose address passes f are counted; any other
// line is skipped. The context is polled once per line and a done context
// ends the scan with ErrCancelled. The date/time window is not applied here.
//
// The table is nil whenever the error is not.
func ScanWithStats(ctx context.Context, path string, f *match.Filter) (Table, Stats, error) {
	var st Stats

	file, err := os.Open(path)
	if err != nil {
		return nil, st, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	br := bufio.NewReaderSize(file, readBufSize)
	out := make(Table)
	for {
		if ctx.Err() != nil {
			return nil, st, fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
		}

		line, er := br.ReadString('\n')
		if len(line) > 0 {
			st.Lines++
			ip, ok := parseLine(line)
			if !ok {
				st.Skipped++
			} else {
				pass, err := f.Accept(ip)
				if err != nil {
					return nil, st, fmt.Errorf("line %d: %w", st.Lines, err)
				}
				if pass {
					out[ip]++
					st.Accepted++
				}
			}
		}

		if er == io.EOF {
			break
		}
		if er != nil {
			return nil, st, fmt.Errorf("read log: %w", er)
		}
	}
	return out, st, nil
}

// parseLine extracts the address of a "<address>: <date> <time>" record.
func parseLine(line string) (string, bool) {
	// strip LF / CRLF
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	ip, rest, found := strings.Cut(line, ":")
	if !found {
		return "", false
	}
	if ip == "" {
		return "", false
	}

	fields := strings.Fields(rest)
	if len(fields) != 2 || !isTimeOfDay(fields[1]) {
		return "", false
	}
	return ip, true
}

func isTimeOfDay(s string) bool {
	for _, layout := range timeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

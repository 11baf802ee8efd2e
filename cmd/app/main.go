package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/Borislavv/ip-log-counter/internal/cli"
	"github.com/Borislavv/ip-log-counter/internal/config"
	"github.com/Borislavv/ip-log-counter/internal/logging"
	"github.com/Borislavv/ip-log-counter/internal/match"
	"github.com/Borislavv/ip-log-counter/internal/params"
	"github.com/Borislavv/ip-log-counter/internal/read"
	"github.com/Borislavv/ip-log-counter/internal/report"
	"golang.org/x/sys/unix"
)

var errInvalidParams = errors.New("invalid parameters")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()

	err := run(ctx, filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
		return
	case errors.Is(err, cli.ErrUsage):
		stop()
		os.Exit(2)
	case errors.Is(err, read.ErrCancelled):
		stop()
		os.Exit(1)
	default:
		_, _ = fmt.Fprintln(os.Stderr, "ERR:", err)
		stop()
		os.Exit(1)
	}
}

// run resolves the parameters, scans the log and writes the report.
func run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	var from = time.Now()

	opts, err := cli.Parse(name, args, stderr)
	if err != nil {
		return err
	}

	logger, closer := logging.New(stderr, opts.LogFile)
	defer closer.Close()

	p := opts.Params
	if fileParams, err := config.Load(opts.ConfigPath); err != nil {
		logger.Printf("config: %v; using command-line values only", err)
	} else {
		p = params.Merge(p, fileParams)
	}

	if !params.Validate(p) {
		return fmt.Errorf("%w: %s", errInvalidParams, strings.Join(params.Problems(p), "; "))
	}

	filter, err := match.NewFilter(p.AddressStart, p.AddressMask)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidParams, err)
	}
	logger.Printf("scanning %s for %s", p.FileLog, filter)

	table, st, err := read.ScanWithStats(ctx, p.FileLog, filter)
	if err != nil {
		if errors.Is(err, read.ErrCancelled) {
			logger.Printf("scan cancelled after %d lines", st.Lines)
		}
		return err
	}
	logger.Printf("scanned %d lines: %d accepted, %d skipped, %d distinct addresses",
		st.Lines, st.Accepted, st.Skipped, len(table))

	if err := report.Write(p.FileOutput, table); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "Report saved to %s (%d addresses), elapsed: %s.\n",
		p.FileOutput, len(table), time.Since(from).String())
	return nil
}

// Package cli decodes the command line into run parameters.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Borislavv/ip-log-counter/internal/config"
	"github.com/Borislavv/ip-log-counter/internal/params"
)

// ErrUsage wraps every command-line decoding failure.
var ErrUsage = errors.New("usage error")

// Options is the decoded command line.
type Options struct {
	Params     *params.Parameters
	ConfigPath string
	LogFile    string
}

// Parse decodes args (without the program name). Every flag takes a value,
// so args must come in "--flag value" pairs; "-flag" and "--flag=value"
// are rejected. On failure the usage text is
// written to out.
func Parse(name string, args []string, out io.Writer) (*Options, error) {
	opts := &Options{Params: params.New()}
	p := opts.Params

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { usage(out, name) }

	fs.StringVar(&p.FileLog, "file-log", "", "path to the access log")
	fs.StringVar(&p.FileOutput, "file-output", "", "path to the report file")
	fs.StringVar(&p.AddressStart, "address-start", "", "range start or exact address (optional)")
	fs.StringVar(&p.AddressMask, "address-mask", "", "subnet mask for --address-start (optional)")
	fs.Func("time-start", "first day of the interval, dd.MM.yyyy", func(s string) (err error) {
		p.TimeStart, err = params.ParseDate(s)
		return err
	})
	fs.Func("time-end", "last day of the interval (inclusive), dd.MM.yyyy", func(s string) (err error) {
		p.TimeEnd, err = params.ParseEndDate(s)
		return err
	})
	fs.StringVar(&opts.ConfigPath, "config", config.DefaultPath, "parameter file, JSON or YAML (optional)")
	fs.StringVar(&opts.LogFile, "log-file", "", "also write diagnostics to this rotated file (optional)")

	if len(args) < 4 || len(args)%2 != 0 {
		_, _ = fmt.Fprintf(out, "wrong number of arguments: %d\n", len(args))
		fs.Usage()
		return nil, fmt.Errorf("%w: wrong number of arguments", ErrUsage)
	}
	for i := 0; i < len(args); i += 2 {
		if !strings.HasPrefix(args[i], "--") || strings.Contains(args[i], "=") {
			_, _ = fmt.Fprintf(out, "expected --flag followed by its value, got: %s\n", args[i])
			fs.Usage()
			return nil, fmt.Errorf("%w: malformed flag %q", ErrUsage, args[i])
		}
	}
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(out, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return opts, nil
}

func usage(out io.Writer, name string) {
	_, _ = fmt.Fprintf(out, "usage: %s --file-log <path> --file-output <path>"+
		" [--address-start <ipv4>] [--address-mask <ipv4 mask>]"+
		" [--time-start <dd.MM.yyyy>] [--time-end <dd.MM.yyyy>]"+
		" [--config <path>] [--log-file <path>]\n", name)
}

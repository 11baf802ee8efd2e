package main

import (
	"flag"
	"log"

	"github.com/Borislavv/ip-log-counter/internal/gen"
)

var (
	lines = flag.Int("lines", 1_000_000, "number of log records to write")
	seed  = flag.Int64("seed", 1, "PRNG seed")
	dir   = flag.String("dir", "", "output directory (default: os.TempDir)")
)

func init() {
	flag.Parse()
}

func main() {
	if *lines <= 0 {
		log.Fatalf("invalid lines flag: must be > 0")
	}

	if fp, err := gen.LogFile(*dir, *lines, *seed); err != nil {
		log.Fatalf("could not generate access log: %v", err)
	} else {
		log.Printf("generated access log: %s (%d lines)\n", fp, *lines)
	}
}

package gen

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/Borislavv/ip-log-counter/internal/codec"
)

// base is the first timestamp written; every line advances it by up to a minute.
var base = time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

// LogFile writes the given number of access-log records
// ("<ip>: <yyyy-MM-dd> <HH:mm:ss>") to a new file in dir and returns its
// path. Addresses are drawn from a few /24 networks so counts repeat; the
// output is fully determined by seed.
func LogFile(dir string, lines int, seed int64) (string, error) {
	if lines < 0 {
		return "", fmt.Errorf("gen: negative line count %d", lines)
	}
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("access_%d_%d.log", lines, seed))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("gen: create %s: %w", path, err)
	}
	defer f.Close()

	r := rand.New(rand.NewSource(seed))
	nets := []uint32{0xC0A80000, 0xC0A80100, 0x0A000000, 0xAC100000} // 192.168.0/24, 192.168.1/24, 10.0.0/24, 172.16.0/24
	w := bufio.NewWriterSize(f, 1<<20)
	ts := base
	for i := 0; i < lines; i++ {
		ip := nets[r.Intn(len(nets))] | uint32(r.Intn(256))
		ts = ts.Add(time.Duration(r.Intn(60)) * time.Second)
		if _, err := fmt.Fprintf(w, "%s: %s\n", codec.FormatIPv4(ip), ts.Format("2006-01-02 15:04:05")); err != nil {
			return "", fmt.Errorf("gen: write: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("gen: flush: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("gen: close: %w", err)
	}
	return path, nil
}

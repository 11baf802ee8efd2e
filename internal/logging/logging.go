// Package logging builds the diagnostic logger.
package logging

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to console and, when file is set, to a
// size-rotated copy at file. The closer releases the file.
func New(console io.Writer, file string) (*log.Logger, io.Closer) {
	if file == "" {
		return log.New(console, "", log.LstdFlags), nopCloser{}
	}
	rotated := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	return log.New(io.MultiWriter(console, rotated), "", log.LstdFlags), rotated
}

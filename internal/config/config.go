// Package config reads the optional parameter file. JSON is the default
// format; files ending in .yaml or .yml are decoded as YAML.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Borislavv/ip-log-counter/internal/params"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when no --config flag is given.
const DefaultPath = "config.json"

// ErrNotFound is returned when the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// File mirrors the on-disk layout. Dates use params.DateLayout.
type File struct {
	FileLog      string `json:"FileLog" yaml:"FileLog"`
	FileOutput   string `json:"FileOutput" yaml:"FileOutput"`
	AddressStart string `json:"AddressStart" yaml:"AddressStart"`
	AddressMask  string `json:"AddressMask" yaml:"AddressMask"`
	TimeStart    string `json:"TimeStart" yaml:"TimeStart"`
	TimeEnd      string `json:"TimeEnd" yaml:"TimeEnd"`
}

// Load reads the parameter file at path.
func Load(path string) (*params.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config JSON: %w", err)
		}
	}

	return f.Parameters()
}

// Parameters converts the file values; unset dates stay at the sentinels.
func (f File) Parameters() (*params.Parameters, error) {
	p := params.New()
	p.FileLog = f.FileLog
	p.FileOutput = f.FileOutput
	p.AddressStart = f.AddressStart
	p.AddressMask = f.AddressMask

	var err error
	if f.TimeStart != "" {
		if p.TimeStart, err = params.ParseDate(f.TimeStart); err != nil {
			return nil, fmt.Errorf("TimeStart: %w", err)
		}
	}
	if f.TimeEnd != "" {
		if p.TimeEnd, err = params.ParseEndDate(f.TimeEnd); err != nil {
			return nil, fmt.Errorf("TimeEnd: %w", err)
		}
	}
	return p, nil
}

// Package debug contains functions for dealing with runtime/debug settings
package debug

import (
	"errors"
	"fmt"
	"math"
	"runtime/debug"
	"strings"

	"github.com/dustin/go-humanize"
)

// NoMemoryLimit is the memory limit which means no limit
const NoMemoryLimit = math.MaxInt64

// SetGCPercent calls the runtime/debug.SetGCPercent function to set the garbage
// collection percentage.
func SetGCPercent(percent int) int {
	return debug.SetGCPercent(percent)
}

// SetMemoryLimit calls the runtime/debug.SetMemoryLimit function to set the
// soft-memory limit.
func SetMemoryLimit(limit int64) int64 {
	return debug.SetMemoryLimit(limit)
}

// FreeOSMemory calls the runtime/debug.FreeOSMemory function to free memory
// that is no longer in use.
func FreeOSMemory() {
	debug.FreeOSMemory()
}

// ParseMemoryLimit parses a human readable size such as "512MiB" or
// "2GB". An empty string or "off" means NoMemoryLimit.
func ParseMemoryLimit(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "off") {
		return NoMemoryLimit, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid memory limit %q: %w", s, err)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("memory limit %q is too large", s)
	}
	return int64(n), nil
}

// Apply sets the GC percentage and the soft memory limit. It returns a
// function which puts back the previous settings.
func Apply(gcPercent int, memoryLimit string) (restore func(), err error) {
	if gcPercent < -1 {
		return nil, errors.New("gc percent must be -1 or more")
	}
	limit, err := ParseMemoryLimit(memoryLimit)
	if err != nil {
		return nil, err
	}
	oldPercent := SetGCPercent(gcPercent)
	oldLimit := SetMemoryLimit(limit)
	return func() {
		SetGCPercent(oldPercent)
		SetMemoryLimit(oldLimit)
	}, nil
}

// Package fs holds the process-wide configuration and logging used by the
// exactjoin command. The join library itself does not depend on it.
package fs

import (
	"context"
)

// ConfigInfo is exactjoin's global config
type ConfigInfo struct {
	Separator   string
	Escape      bool
	Zero        bool
	SkipEmpty   bool
	Sort        bool
	Normalize   string
	CheckUTF8   bool
	Newline     bool
	LogLevel    LogLevel
	LogFormat   string
	Verbose     int
	GCPercent   int
	MemoryLimit string
}

// NewConfig creates a new config with everything set to the default
// value.
func NewConfig() *ConfigInfo {
	c := new(ConfigInfo)

	// Set any values which aren't the zero for the type
	c.Separator = " "
	c.Normalize = "none"
	c.LogLevel = LogLevelNotice
	c.LogFormat = "text"
	c.GCPercent = 100
	c.MemoryLimit = "off"

	return c
}

type configContextKeyType struct{}

// Context key for config
var configContextKey = configContextKeyType{}

// globalConfig for exactjoin
var globalConfig = NewConfig()

// GetConfig returns the global or context sensitive context
func GetConfig(ctx context.Context) *ConfigInfo {
	if ctx == nil {
		return globalConfig
	}
	c := ctx.Value(configContextKey)
	if c == nil {
		return globalConfig
	}
	return c.(*ConfigInfo)
}

// AddConfig returns a mutable config structure based on a shallow
// copy of that found in ctx and returns a new context with that added
// to it.
func AddConfig(ctx context.Context) (context.Context, *ConfigInfo) {
	c := GetConfig(ctx)
	cCopy := new(ConfigInfo)
	*cCopy = *c
	newCtx := context.WithValue(ctx, configContextKey, cCopy)
	return newCtx, cCopy
}

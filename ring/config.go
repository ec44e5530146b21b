// File: ring/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "github.com/momentics/hioload-ring/api"

// Config holds construction parameters. Both fields are fixed for the
// lifetime of the buffer.
type Config struct {
	Capacity   int  // Maximum number of held elements, >= 1
	ClearOnPop bool // Reset vacated slots to the zero value on Pop
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Capacity:   1024, // 1024 entries
		ClearOnPop: false,
	}
}

// Validate reports a configuration error for a non-positive capacity.
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return api.Wrap(api.ErrCodeInvalidArgument, api.ErrInvalidCapacity).
			WithContext("capacity", c.Capacity)
	}
	return nil
}

// Option customizes ring construction.
type Option func(*Config)

// WithClearOnPop makes Pop reset the vacated slot to the zero value, so
// popped pointers, slices and maps are no longer reachable from the buffer.
func WithClearOnPop() Option {
	return func(c *Config) {
		c.ClearOnPop = true
	}
}

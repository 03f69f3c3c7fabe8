// SPDX-License-Identifier: MIT
// Package: townmesh/layout
//
// config.go — generation record, defaults and YAML loading.

package layout

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/townmesh/network"
)

// Default values applied by Config.WithDefaults to zero (or nil) fields.
const (
	DefaultMinDistanceBetweenCells = 6
	DefaultBufferDepth             = 1
	DefaultMinRectangleWidth       = 3
	DefaultBorderWidth             = 1
	DefaultRandomSeed              = int64(1)
	DefaultCellSize                = 2.0
)

// Config is the full set of generation options.
type Config struct {
	// Network configures street densification. A zero Network.RandomSeed
	// inherits RandomSeed.
	Network network.Config `yaml:"network"`
	// MinDistanceBetweenCells is the Chebyshev spacing between features.
	MinDistanceBetweenCells int `yaml:"minDistanceBetweenCells"`
	// BufferDepth is the clearance, in cells, kept around streets and lots.
	// Nil means DefaultBufferDepth; 0 keeps no clearance.
	BufferDepth *int `yaml:"bufferDepth"`
	// MinRectangleWidth is the smallest lot side, in cells.
	MinRectangleWidth int `yaml:"minRectangleWidth"`
	// BorderWidth is the gap between neighboring lots, in cells.
	BorderWidth int `yaml:"borderWidth"`
	// RandomSeed drives lot partitioning (and the network by default).
	RandomSeed int64 `yaml:"randomSeed"`
	// CellSize is the side of one grid cell in world units.
	CellSize float64 `yaml:"cellSize"`
}

// Depth returns a pointer to d for Config.BufferDepth.
func Depth(d int) *int { return &d }

// WithDefaults returns a copy of c with every zero or nil field set to its
// default.
func (c Config) WithDefaults() Config {
	if c.MinDistanceBetweenCells == 0 {
		c.MinDistanceBetweenCells = DefaultMinDistanceBetweenCells
	}
	if c.BufferDepth == nil {
		c.BufferDepth = Depth(DefaultBufferDepth)
	}
	if c.MinRectangleWidth == 0 {
		c.MinRectangleWidth = DefaultMinRectangleWidth
	}
	if c.BorderWidth == 0 {
		c.BorderWidth = DefaultBorderWidth
	}
	if c.RandomSeed == 0 {
		c.RandomSeed = DefaultRandomSeed
	}
	if c.CellSize == 0 {
		c.CellSize = DefaultCellSize
	}
	if c.Network.RandomSeed == 0 {
		c.Network.RandomSeed = c.RandomSeed
	}
	c.Network = c.Network.WithDefaults()
	return c
}

// Validate reports the first field outside its domain, wrapped around
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.MinDistanceBetweenCells < 1:
		return fmt.Errorf("minDistanceBetweenCells=%d < 1: %w", c.MinDistanceBetweenCells, ErrInvalidConfig)
	case c.BufferDepth != nil && *c.BufferDepth < 0:
		return fmt.Errorf("bufferDepth=%d < 0: %w", *c.BufferDepth, ErrInvalidConfig)
	case c.MinRectangleWidth < 1:
		return fmt.Errorf("minRectangleWidth=%d < 1: %w", c.MinRectangleWidth, ErrInvalidConfig)
	case c.BorderWidth < 0:
		return fmt.Errorf("borderWidth=%d < 0: %w", c.BorderWidth, ErrInvalidConfig)
	case !(c.CellSize > 0) || math.IsInf(c.CellSize, 0):
		return fmt.Errorf("cellSize=%v must be finite and > 0: %w", c.CellSize, ErrInvalidConfig)
	}
	if err := c.Network.Validate(); err != nil {
		return fmt.Errorf("network: %w: %w", err, ErrInvalidConfig)
	}
	return nil
}

// LoadConfig decodes one YAML document from r, rejecting unknown keys, then
// applies defaults and validates. An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig: %w: %w", err, ErrInvalidConfig)
	}
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	return c, nil
}

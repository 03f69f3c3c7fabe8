package layout

import "errors"

var (
	// ErrInvalidConfig indicates a Config field outside its domain or a
	// YAML document that does not decode into Config.
	ErrInvalidConfig = errors.New("layout: invalid config")
	// ErrNilSeed indicates Generate was called without a seed graph.
	ErrNilSeed = errors.New("layout: nil seed graph")
)

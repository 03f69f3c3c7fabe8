package layout

import "log/slog"

// Option customizes Generate.
type Option func(*settings)

type settings struct {
	log    *slog.Logger
	origin string
}

// WithLogger routes run records, including the network builder's, to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.log = l
	}
}

// WithOrigin measures lot distances from vertex id instead of the vertex
// nearest the centre of the network.
func WithOrigin(id string) Option {
	return func(s *settings) {
		s.origin = id
	}
}

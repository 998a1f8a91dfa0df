package reckon

import (
	"log"

	"nickandperla.net/reckon/internal/calc"
)

// Option configures a Session.
type Option func(*Session)

// WithCalculator hands the session an existing calculator instead of a
// fresh one. Callers that share a calculator across sessions own its
// lifetime.
func WithCalculator(c *calc.Calculator) Option {
	return func(s *Session) {
		if c != nil {
			s.calculator = c
		}
	}
}

// WithLogger directs the session's diagnostic logging to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDisplayPrecision sets how many decimal places replies show.
// Negative values are ignored.
func WithDisplayPrecision(places int) Option {
	return func(s *Session) {
		if places >= 0 {
			s.displayPrecision = places
		}
	}
}

// WithThousandsSeparator toggles comma grouping in displayed results.
func WithThousandsSeparator(on bool) Option {
	return func(s *Session) {
		s.thousands = on
	}
}

package reckon

import (
	"log"
	"time"
)

// LineFunc processes one input line and returns the reply text.
type LineFunc func(line string) string

// LogCalls wraps fn with invocation logging: the input line, the reply,
// and how long the call took.
func LogCalls(logger *log.Logger, fn LineFunc) LineFunc {
	return func(line string) string {
		start := time.Now()
		reply := fn(line)
		logger.Printf("eval %q -> %q (%s)", line, reply, time.Since(start))
		return reply
	}
}

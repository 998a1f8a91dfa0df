// Package reckon wires the calculator core to its command surface:
// decoding input lines, executing commands, formatting replies, and
// running batches.
package reckon

import (
	"log"
	"strings"

	"nickandperla.net/reckon/internal/calc"
	"nickandperla.net/reckon/internal/logutil"
	"nickandperla.net/reckon/internal/parse"
)

// historyDisplayLimit is how many calculations the history command shows.
const historyDisplayLimit = 10

// Session owns one calculator and the reply formatting around it. A
// Session is safe for concurrent use; batches share it across
// goroutines.
type Session struct {
	calculator       *calc.Calculator
	logger           *log.Logger
	displayPrecision int
	thousands        bool
	eval             LineFunc
}

// New builds a Session. Without options it gets a fresh calculator,
// default display settings, and a logger that discards everything.
func New(options ...Option) *Session {
	session := &Session{
		logger:           logutil.Discard,
		displayPrecision: 6,
		thousands:        true,
	}

	for _, option := range options {
		option(session)
	}

	if session.calculator == nil {
		session.calculator = calc.New()
	}
	session.eval = LogCalls(session.logger, session.evalLine)

	return session
}

// Calculator returns the session's calculator.
func (s *Session) Calculator() *calc.Calculator {
	return s.calculator
}

// Eval decodes and executes one input line. Failures come back in the
// reply with an "Error: " prefix; Eval never returns an error itself.
func (s *Session) Eval(line string) string {
	return s.eval(line)
}

func (s *Session) evalLine(line string) string {
	cmd, err := Decode(line)
	if err != nil {
		return "Error: " + err.Error()
	}
	return s.Execute(cmd)
}

// Execute runs one decoded command and returns the reply text. Empty
// input earns an empty reply; KindQuit earns the farewell, and deciding
// to stop reading input stays with the caller.
func (s *Session) Execute(cmd Command) string {
	s.logger.Printf("execute %s", cmd.Kind)

	switch cmd.Kind {
	case KindEmpty:
		return ""
	case KindHelp:
		return HelpText()
	case KindQuit:
		return "Goodbye!"
	case KindHistory:
		return s.renderHistory()
	case KindReset:
		s.calculator.Reset()
		return "Calculator reset"
	case KindMemoryClear:
		s.calculator.MemoryClear()
		return "Memory cleared"
	case KindMemoryRecall:
		return "Memory: " + calc.FormatNumber(s.calculator.MemoryRecall())
	case KindMemoryAdd:
		return "Added to memory: " + calc.FormatNumber(s.calculator.MemoryAdd(cmd.Value))
	case KindMemorySubtract:
		return "Subtracted from memory: " + calc.FormatNumber(s.calculator.MemorySubtract(cmd.Value))
	case KindExpression:
		return s.evaluate(cmd.Text)
	default:
		return "Error: unknown command"
	}
}

func (s *Session) evaluate(text string) string {
	expr, err := parse.Parse(text)
	if err != nil {
		return "Error: " + err.Error()
	}

	result := s.calculator.Calculate(expr.Operation, expr.Operands...)
	if !result.OK() {
		return "Error: " + result.Err.Error()
	}
	return calc.FormatValue(result.Value, s.displayPrecision, s.thousands)
}

func (s *Session) renderHistory() string {
	entries := s.calculator.History(historyDisplayLimit)
	if len(entries) == 0 {
		return "No history"
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, "  "+entry.Expression+" = "+calc.FormatNumber(entry.Result))
	}
	return strings.Join(lines, "\n")
}

// Close resets the calculator state: memory, history, and last result.
// The session itself remains usable afterwards.
func (s *Session) Close() error {
	s.calculator.Reset()
	return nil
}

// Package calc implements the calculator core: the operation table, a
// bounded calculation history, a memory register, and the statistics and
// integer helpers behind it.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	DefaultPrecision   = 10
	DefaultHistorySize = 50
)

// AngleMode selects the unit trigonometric operands are interpreted in.
type AngleMode int

const (
	Radians AngleMode = iota
	Degrees
)

func (m AngleMode) String() string {
	switch m {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	default:
		return "unknown"
	}
}

// ParseAngleMode maps a mode name to its AngleMode. The second return is
// false when the name is not recognized.
func ParseAngleMode(name string) (AngleMode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "radians", "rad":
		return Radians, true
	case "degrees", "deg":
		return Degrees, true
	default:
		return Radians, false
	}
}

// Result reports the outcome of one Calculate call. Err is nil on
// success; callers distinguish failure kinds with errors.Is against the
// package sentinels.
type Result struct {
	Operation string
	Operands  []float64
	Value     float64
	Err       error
}

// OK reports whether the calculation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Calculator holds one session's evaluation state. All methods are safe
// for concurrent use.
type Calculator struct {
	mu         sync.RWMutex
	precision  int
	memory     float64
	lastResult float64
	angleMode  AngleMode
	history    *historyRing
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithPrecision sets the number of decimal places results are rounded
// to. Negative values are ignored.
func WithPrecision(places int) Option {
	return func(c *Calculator) {
		if places >= 0 {
			c.precision = places
		}
	}
}

// WithHistorySize bounds how many calculations are retained. Values
// below one are ignored.
func WithHistorySize(size int) Option {
	return func(c *Calculator) {
		if size >= 1 {
			c.history = newHistoryRing(size)
		}
	}
}

// WithAngleMode sets the unit for trigonometric operands.
func WithAngleMode(mode AngleMode) Option {
	return func(c *Calculator) {
		c.angleMode = mode
	}
}

func New(options ...Option) *Calculator {
	calculator := &Calculator{
		precision: DefaultPrecision,
		history:   newHistoryRing(DefaultHistorySize),
	}

	for _, option := range options {
		option(calculator)
	}

	return calculator
}

// Calculate applies one named operation to its operands. It never
// panics and never returns a partial value: on failure Result.Err is set
// and Result.Value is zero. Successful results are rounded to the
// configured precision, recorded in history, and stored as the last
// result.
func (c *Calculator) Calculate(operation string, operands ...float64) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := Result{Operation: operation, Operands: operands}

	if err := validateOperands(operands); err != nil {
		result.Err = err
		return result
	}

	apply := lookupOperation(operation)
	if apply == nil {
		result.Err = fmt.Errorf("%w: %q", ErrUnknownOperation, operation)
		return result
	}

	value, err := apply(c, operands)
	if err != nil {
		result.Err = err
		return result
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		result.Err = fmt.Errorf("%w: result of %s is not finite", ErrDomain, operation)
		return result
	}

	value = roundHalfUp(value, c.precision)
	c.lastResult = value
	c.history.append(HistoryEntry{
		Expression: renderExpression(operation, operands),
		Result:     value,
		Timestamp:  time.Now(),
	})

	result.Value = value
	return result
}

// validateOperands rejects NaN and infinite operands before dispatch.
func validateOperands(operands []float64) error {
	for _, v := range operands {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: operand %v is not finite", ErrValidation, v)
		}
	}
	return nil
}

// renderExpression formats an operation and its operands the way history
// records them: "operation(op1, op2, ...)".
func renderExpression(operation string, operands []float64) string {
	parts := make([]string, len(operands))
	for i, v := range operands {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return operation + "(" + strings.Join(parts, ", ") + ")"
}

// History returns a copy of the most recent limit entries, oldest first.
// A limit of zero or less returns the full retained history.
func (c *Calculator) History(limit int) []HistoryEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.history.last(limit)
}

// HistoryLen returns how many calculations are currently retained.
func (c *Calculator) HistoryLen() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.history.len()
}

// LastResult returns the value of the most recent successful
// calculation, or zero when there is none.
func (c *Calculator) LastResult() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastResult
}

// Precision returns the configured rounding precision.
func (c *Calculator) Precision() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.precision
}

// SetPrecision changes the rounding precision for subsequent
// calculations. Negative values are rejected.
func (c *Calculator) SetPrecision(places int) error {
	if places < 0 {
		return fmt.Errorf("%w: precision must be non-negative, got %d", ErrValidation, places)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.precision = places
	return nil
}

// AngleMode returns the unit trigonometric operands are interpreted in.
func (c *Calculator) AngleMode() AngleMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.angleMode
}

// SetAngleMode changes the unit for trigonometric operands.
func (c *Calculator) SetAngleMode(mode AngleMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.angleMode = mode
}

// MemoryAdd adds v to the memory register and returns the updated
// register.
func (c *Calculator) MemoryAdd(v float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.memory += v
	return c.memory
}

// MemorySubtract subtracts v from the memory register and returns the
// updated register.
func (c *Calculator) MemorySubtract(v float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.memory -= v
	return c.memory
}

// MemoryRecall returns the memory register.
func (c *Calculator) MemoryRecall() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.memory
}

// MemoryClear zeroes the memory register.
func (c *Calculator) MemoryClear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.memory = 0
}

// Reset clears memory, history, and the last result. Precision and angle
// mode are left as configured. Reset is idempotent.
func (c *Calculator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.memory = 0
	c.lastResult = 0
	c.history.clear()
}

// toRadians converts v from the configured angle unit to radians. Callers
// must hold the lock.
func (c *Calculator) toRadians(v float64) float64 {
	if c.angleMode == Degrees {
		return v * math.Pi / 180
	}
	return v
}

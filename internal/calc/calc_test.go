package calc

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestCalculateBasicOperations(t *testing.T) {
	tests := []struct {
		operation string
		operands  []float64
		expected  float64
	}{
		{"+", []float64{2, 3}, 5},
		{"-", []float64{10, 4}, 6},
		{"*", []float64{6, 7}, 42},
		{"/", []float64{10, 4}, 2.5},
		{"**", []float64{2, 8}, 256},
		{"**", []float64{2, -2}, 0.25},
		{"%", []float64{10, 3}, 1},
		{"%", []float64{-10, 3}, -1},
		{"sqrt", []float64{16}, 4},
		{"log", []float64{8, 2}, 3},
		{"log", []float64{1}, 0},
		{"sin", []float64{0}, 0},
		{"cos", []float64{0}, 1},
		{"tan", []float64{0}, 0},
		{"sum", []float64{1, 2, 3, 4}, 10},
		{"avg", []float64{2, 4, 6}, 4},
		{"product", []float64{2, 3, 4}, 24},
		{"max", []float64{3, 9, 1}, 9},
		{"min", []float64{3, -9, 1}, -9},
		{"mean", []float64{1, 2, 3, 4}, 2.5},
		{"median", []float64{5, 1, 3}, 3},
		{"median", []float64{4, 1, 3, 2}, 2.5},
		{"mode", []float64{1, 2, 2, 3}, 2},
		{"variance", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 4.5714285714},
		{"factorial", []float64{5}, 120},
		{"fibonacci", []float64{10}, 55},
	}

	calculator := New()
	for _, test := range tests {
		result := calculator.Calculate(test.operation, test.operands...)
		if !result.OK() {
			t.Fatalf("Calculate(%q, %v) returned unexpected error: %v",
				test.operation, test.operands, result.Err)
		}
		if result.Value != test.expected {
			t.Errorf("Calculate(%q, %v): expected %v, got %v",
				test.operation, test.operands, test.expected, result.Value)
		}
	}
}

func TestCalculatePrecisionRounding(t *testing.T) {
	calculator := New(WithPrecision(4))
	result := calculator.Calculate("/", 1, 3)
	if !result.OK() {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Value != 0.3333 {
		t.Errorf("expected 0.3333, got %v", result.Value)
	}

	// Ties round away from zero, not to even.
	calculator = New(WithPrecision(2))
	result = calculator.Calculate("+", 2.675, 0)
	if result.Value != 2.68 {
		t.Errorf("expected 2.68, got %v", result.Value)
	}
	result = calculator.Calculate("-", 0, 2.675)
	if result.Value != -2.68 {
		t.Errorf("expected -2.68, got %v", result.Value)
	}

	// tan(45 degrees) lands a hair under 1 in floats; rounding cleans it.
	calculator = New(WithAngleMode(Degrees))
	result = calculator.Calculate("tan", 45)
	if result.Value != 1 {
		t.Errorf("expected 1, got %v", result.Value)
	}
}

func TestCalculateErrorKinds(t *testing.T) {
	tests := []struct {
		operation string
		operands  []float64
		expected  error
	}{
		{"/", []float64{5, 0}, ErrDivisionByZero},
		{"%", []float64{5, 0}, ErrModuloByZero},
		{"sqrt", []float64{-4}, ErrDomain},
		{"log", []float64{0}, ErrDomain},
		{"log", []float64{-5}, ErrDomain},
		{"log", []float64{10, 1}, ErrDomain},
		{"log", []float64{10, 0}, ErrDomain},
		{"log", []float64{10, -2}, ErrDomain},
		{"frobnicate", []float64{1, 2}, ErrUnknownOperation},
		{"+", []float64{1, 2, 3}, ErrUnknownOperation},
		{"sqrt", []float64{1, 2}, ErrUnknownOperation},
		{"log", []float64{10, 2, 3}, ErrUnknownOperation},
		{"+", []float64{math.NaN(), 1}, ErrValidation},
		{"+", []float64{1, math.Inf(1)}, ErrValidation},
		{"mean", []float64{}, ErrEmptyInput},
		{"stdev", []float64{5}, ErrDomain},
		{"variance", []float64{5}, ErrDomain},
		{"factorial", []float64{5.5}, ErrDomain},
		{"factorial", []float64{-1}, ErrDomain},
		{"fibonacci", []float64{-3}, ErrDomain},
		{"**", []float64{0, -1}, ErrDomain},
		{"**", []float64{10, 400}, ErrDomain},
	}

	calculator := New()
	for _, test := range tests {
		result := calculator.Calculate(test.operation, test.operands...)
		if result.OK() {
			t.Fatalf("Calculate(%q, %v) expected error, got value %v",
				test.operation, test.operands, result.Value)
		}
		if !errors.Is(result.Err, test.expected) {
			t.Errorf("Calculate(%q, %v): expected %v, got %v",
				test.operation, test.operands, test.expected, result.Err)
		}
		if result.Value != 0 {
			t.Errorf("Calculate(%q, %v): failed result carries value %v",
				test.operation, test.operands, result.Value)
		}
	}
}

func TestHistoryRecordsSuccessesOnly(t *testing.T) {
	calculator := New()

	calculator.Calculate("+", 2, 3)
	calculator.Calculate("/", 1, 0)
	calculator.Calculate("sqrt", 16)

	entries := calculator.History(0)
	if len(entries) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(entries))
	}
	if entries[0].Expression != "+(2, 3)" || entries[0].Result != 5 {
		t.Errorf("expected '+(2, 3)' = 5, got '%s' = %v",
			entries[0].Expression, entries[0].Result)
	}
	if entries[1].Expression != "sqrt(16)" || entries[1].Result != 4 {
		t.Errorf("expected 'sqrt(16)' = 4, got '%s' = %v",
			entries[1].Expression, entries[1].Result)
	}
	if entries[0].Timestamp.IsZero() {
		t.Errorf("expected a recorded timestamp")
	}
}

func TestHistoryCapacityEvictsOldest(t *testing.T) {
	calculator := New(WithHistorySize(3))

	for i := 1; i <= 5; i++ {
		calculator.Calculate("+", float64(i), 0)
	}

	entries := calculator.History(0)
	if len(entries) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(entries))
	}
	if entries[0].Result != 3 || entries[2].Result != 5 {
		t.Errorf("expected oldest 3 and newest 5, got %v and %v",
			entries[0].Result, entries[2].Result)
	}
}

func TestHistoryLimit(t *testing.T) {
	calculator := New()
	for i := 1; i <= 4; i++ {
		calculator.Calculate("+", float64(i), 0)
	}

	entries := calculator.History(2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Result != 3 || entries[1].Result != 4 {
		t.Errorf("expected [3 4], got [%v %v]", entries[0].Result, entries[1].Result)
	}

	if got := len(calculator.History(-1)); got != 4 {
		t.Errorf("expected full history for negative limit, got %d entries", got)
	}
	if got := len(calculator.History(100)); got != 4 {
		t.Errorf("expected 4 entries for oversized limit, got %d", got)
	}
}

func TestLastResult(t *testing.T) {
	calculator := New()
	if calculator.LastResult() != 0 {
		t.Errorf("expected 0 before any calculation, got %v", calculator.LastResult())
	}

	calculator.Calculate("+", 2, 3)
	if calculator.LastResult() != 5 {
		t.Errorf("expected 5, got %v", calculator.LastResult())
	}

	// Failures leave the last result alone.
	calculator.Calculate("/", 1, 0)
	if calculator.LastResult() != 5 {
		t.Errorf("expected 5 after failed calculation, got %v", calculator.LastResult())
	}
}

func TestMemoryRegister(t *testing.T) {
	calculator := New()

	if got := calculator.MemoryAdd(10); got != 10 {
		t.Errorf("expected 10, got %v", got)
	}
	if got := calculator.MemoryAdd(5); got != 15 {
		t.Errorf("expected 15, got %v", got)
	}
	if got := calculator.MemorySubtract(3); got != 12 {
		t.Errorf("expected 12, got %v", got)
	}
	if got := calculator.MemoryRecall(); got != 12 {
		t.Errorf("expected 12, got %v", got)
	}

	calculator.MemoryClear()
	if got := calculator.MemoryRecall(); got != 0 {
		t.Errorf("expected 0 after clear, got %v", got)
	}

	calculator.MemoryAdd(5)
	calculator.MemorySubtract(3)
	if got := calculator.MemoryRecall(); got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
}

func TestResetClearsStateButKeepsConfiguration(t *testing.T) {
	calculator := New(WithPrecision(4), WithAngleMode(Degrees))
	calculator.Calculate("+", 2, 3)
	calculator.MemoryAdd(7)

	calculator.Reset()
	if calculator.MemoryRecall() != 0 {
		t.Errorf("expected cleared memory, got %v", calculator.MemoryRecall())
	}
	if calculator.LastResult() != 0 {
		t.Errorf("expected cleared last result, got %v", calculator.LastResult())
	}
	if calculator.HistoryLen() != 0 {
		t.Errorf("expected empty history, got %d entries", calculator.HistoryLen())
	}
	if calculator.Precision() != 4 {
		t.Errorf("expected precision 4, got %d", calculator.Precision())
	}
	if calculator.AngleMode() != Degrees {
		t.Errorf("expected degrees, got %s", calculator.AngleMode())
	}

	// Reset is idempotent.
	calculator.Reset()
	if calculator.HistoryLen() != 0 {
		t.Errorf("expected empty history after second reset, got %d entries", calculator.HistoryLen())
	}
}

func TestSetPrecision(t *testing.T) {
	calculator := New()

	if err := calculator.SetPrecision(-1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if calculator.Precision() != DefaultPrecision {
		t.Errorf("expected precision unchanged, got %d", calculator.Precision())
	}

	if err := calculator.SetPrecision(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result := calculator.Calculate("/", 1, 3)
	if result.Value != 0.33 {
		t.Errorf("expected 0.33, got %v", result.Value)
	}
}

func TestAngleModes(t *testing.T) {
	calculator := New(WithAngleMode(Degrees))

	result := calculator.Calculate("sin", 90)
	if result.Value != 1 {
		t.Errorf("expected sin(90 degrees) = 1, got %v", result.Value)
	}
	result = calculator.Calculate("cos", 180)
	if result.Value != -1 {
		t.Errorf("expected cos(180 degrees) = -1, got %v", result.Value)
	}

	calculator.SetAngleMode(Radians)
	result = calculator.Calculate("cos", 0)
	if result.Value != 1 {
		t.Errorf("expected cos(0) = 1, got %v", result.Value)
	}
}

func TestParseAngleMode(t *testing.T) {
	tests := []struct {
		input    string
		expected AngleMode
		ok       bool
	}{
		{"radians", Radians, true},
		{"rad", Radians, true},
		{"DEGREES", Degrees, true},
		{" deg ", Degrees, true},
		{"gradians", Radians, false},
		{"", Radians, false},
	}

	for _, test := range tests {
		mode, ok := ParseAngleMode(test.input)
		if mode != test.expected || ok != test.ok {
			t.Errorf("ParseAngleMode(%q): expected (%s, %t), got (%s, %t)",
				test.input, test.expected, test.ok, mode, ok)
		}
	}
}

func TestCalculatorConcurrentUse(t *testing.T) {
	calculator := New(WithHistorySize(25))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				calculator.Calculate("+", float64(n), float64(j))
				calculator.MemoryAdd(1)
				calculator.LastResult()
			}
		}(i)
	}
	wg.Wait()

	if got := calculator.HistoryLen(); got != 25 {
		t.Errorf("expected history capped at 25, got %d", got)
	}
	if got := calculator.MemoryRecall(); got != 200 {
		t.Errorf("expected memory 200, got %v", got)
	}
}

// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package parse turns one raw input line into an operation name and its
// numeric operands.
package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrParse reports input that matches no recognized expression form.
var ErrParse = errors.New("cannot parse expression")

// BinaryOperators is the operator scan order. "**" is listed before the
// bare "*" that is its prefix so power expressions are never split on the
// wrong symbol.
var BinaryOperators = []string{"**", "+", "-", "*", "/", "%"}

// Expression is a parsed calculator expression: a single operation applied
// to ordered operands.
type Expression struct {
	Operation string
	Operands  []float64
}

// callPattern matches the function-call form: name(arg1, arg2, ...).
var callPattern = regexp.MustCompile(`^(\w+)\s*\(\s*(.+?)\s*\)$`)

// Parse recognizes either a function call (sqrt(16), log(8, 2)) or a
// single binary operation (2 + 3). Binary operators are scanned in
// BinaryOperators order and split on their first occurrence; if either
// side fails to parse as a number the next operator is tried. The operator
// must not be the first character, so a leading sign never splits the
// expression.
func Parse(text string) (*Expression, error) {
	text = strings.TrimSpace(text)

	if m := callPattern.FindStringSubmatch(text); m != nil {
		operands, err := parseOperands(m[1], m[2])
		if err != nil {
			return nil, err
		}
		return &Expression{Operation: m[1], Operands: operands}, nil
	}

	for _, op := range BinaryOperators {
		idx := strings.Index(text, op)
		if idx <= 0 {
			continue
		}
		left, lerr := strconv.ParseFloat(strings.TrimSpace(text[:idx]), 64)
		right, rerr := strconv.ParseFloat(strings.TrimSpace(text[idx+len(op):]), 64)
		if lerr != nil || rerr != nil {
			continue
		}
		return &Expression{Operation: op, Operands: []float64{left, right}}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrParse, text)
}

// parseOperands parses the comma-separated argument list of a function
// call. Every piece must be a number; an empty or malformed piece fails
// the whole call.
func parseOperands(name, list string) ([]float64, error) {
	pieces := strings.Split(list, ",")
	operands := make([]float64, 0, len(pieces))
	for _, piece := range pieces {
		v, err := strconv.ParseFloat(strings.TrimSpace(piece), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid arguments for %s: %q", ErrParse, name, list)
		}
		operands = append(operands, v)
	}
	return operands, nil
}

// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package calc

import "errors"

// Sentinel errors for every failure Calculate can report. Operations wrap
// these with fmt.Errorf and %w; callers distinguish kinds with errors.Is.
var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrModuloByZero     = errors.New("modulo by zero")
	ErrDomain           = errors.New("domain error")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrEmptyInput       = errors.New("empty input")
	ErrValidation       = errors.New("invalid input")
)

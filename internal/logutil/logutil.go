// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package logutil provides shared logging helpers.
package logutil

import (
	"io"
	"log"
)

// Discard is a Logger that ignores all loggings.
var Discard = log.New(io.Discard, "", 0)

// New returns a Logger writing to w with the standard diagnostic flags.
func New(w io.Writer, prefix string) *log.Logger {
	return log.New(w, prefix, log.Ldate|log.Ltime|log.Lmicroseconds)
}

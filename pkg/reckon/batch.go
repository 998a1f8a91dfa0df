// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package reckon

import (
	"strings"
	"sync"
)

// EvalBatch evaluates expressions concurrently, one goroutine each, and
// returns the replies as "expression = result" lines in input order.
// Blank lines and lines starting with # are skipped. A failing
// expression contributes its error text without aborting the rest.
func (s *Session) EvalBatch(expressions []string) []string {
	kept := make([]string, 0, len(expressions))
	for _, expression := range expressions {
		trimmed := strings.TrimSpace(expression)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		kept = append(kept, trimmed)
	}

	results := make([]string, len(kept))
	var wg sync.WaitGroup
	for i, expression := range kept {
		wg.Add(1)
		go func(slot int, line string) {
			defer wg.Done()
			results[slot] = line + " = " + s.Eval(line)
		}(i, expression)
	}
	wg.Wait()

	return results
}

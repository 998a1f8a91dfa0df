// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package calc

import "time"

// HistoryEntry records one successful calculation.
type HistoryEntry struct {
	Expression string
	Result     float64
	Timestamp  time.Time
}

// historyRing is a fixed-capacity buffer of history entries. Appending
// past capacity evicts the oldest entry first.
type historyRing struct {
	entries  []HistoryEntry
	capacity int
}

func newHistoryRing(capacity int) *historyRing {
	if capacity < 1 {
		capacity = 1
	}
	return &historyRing{capacity: capacity}
}

func (h *historyRing) append(entry HistoryEntry) {
	if len(h.entries) >= h.capacity {
		n := copy(h.entries, h.entries[len(h.entries)-h.capacity+1:])
		h.entries = h.entries[:n]
	}
	h.entries = append(h.entries, entry)
}

// last returns a copy of the most recent limit entries, oldest first.
// A limit of zero or less returns everything.
func (h *historyRing) last(limit int) []HistoryEntry {
	start := 0
	if limit > 0 && limit < len(h.entries) {
		start = len(h.entries) - limit
	}
	out := make([]HistoryEntry, len(h.entries)-start)
	copy(out, h.entries[start:])
	return out
}

func (h *historyRing) clear() {
	h.entries = h.entries[:0]
}

func (h *historyRing) len() int {
	return len(h.entries)
}

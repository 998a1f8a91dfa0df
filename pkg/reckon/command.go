// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package reckon

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandKind identifies the shape of a decoded input line.
type CommandKind int

const (
	KindEmpty CommandKind = iota
	KindHelp
	KindQuit
	KindHistory
	KindReset
	KindMemoryClear
	KindMemoryRecall
	KindMemoryAdd
	KindMemorySubtract
	KindExpression
)

func (k CommandKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindHelp:
		return "help"
	case KindQuit:
		return "quit"
	case KindHistory:
		return "history"
	case KindReset:
		return "reset"
	case KindMemoryClear:
		return "memory clear"
	case KindMemoryRecall:
		return "memory recall"
	case KindMemoryAdd:
		return "memory add"
	case KindMemorySubtract:
		return "memory subtract"
	case KindExpression:
		return "expression"
	default:
		return "unknown"
	}
}

// Command is one decoded input line. Value carries the amount for the
// memory commands that take one; Text carries the expression for
// KindExpression.
type Command struct {
	Kind  CommandKind
	Value float64
	Text  string
}

// Decode classifies one raw input line. The line is trimmed and
// lowercased once, so every command and expression is matched
// case-insensitively. Anything that is not a recognized command comes
// back as KindExpression for the parser to deal with.
func Decode(line string) (Command, error) {
	line = strings.ToLower(strings.TrimSpace(line))

	if line == "" {
		return Command{Kind: KindEmpty}, nil
	}

	switch line {
	case "help", "?", "h":
		return Command{Kind: KindHelp}, nil
	case "quit", "exit", "q":
		return Command{Kind: KindQuit}, nil
	case "history":
		return Command{Kind: KindHistory}, nil
	case "reset":
		return Command{Kind: KindReset}, nil
	case "mc", "memory clear":
		return Command{Kind: KindMemoryClear}, nil
	case "mr", "memory recall":
		return Command{Kind: KindMemoryRecall}, nil
	}

	for _, prefix := range []string{"m+ ", "memory add "} {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			return decodeAmount(KindMemoryAdd, rest)
		}
	}
	for _, prefix := range []string{"m- ", "memory sub "} {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			return decodeAmount(KindMemorySubtract, rest)
		}
	}

	return Command{Kind: KindExpression, Text: line}, nil
}

func decodeAmount(kind CommandKind, rest string) (Command, error) {
	rest = strings.TrimSpace(rest)
	v, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return Command{}, fmt.Errorf("invalid number for %s: %q", kind, rest)
	}
	return Command{Kind: kind, Value: v}, nil
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"nickandperla.net/reckon/pkg/reckon"
)

const (
	prompt             = "calc> "
	continuationPrompt = "...   "
)

func printBanner() {
	fmt.Printf("reckon v%s\n", reckon.Version)
	fmt.Println("Type 'help' for commands, 'quit' to exit")
	fmt.Println()
}

func runREPL(session *reckon.Session) {
	printBanner()

	// Check if stdin is a terminal
	if !isTerminal(os.Stdin) {
		// Not a TTY, fall back to basic mode
		runBasicREPL(session)
		return
	}

	runRawREPL(session)
}

// runBasicREPL handles non-TTY input (piped input)
func runBasicREPL(session *reckon.Session) {
	// Cooked mode delivers Ctrl+C as SIGINT rather than a byte; keep the
	// session alive and show the same notice the raw editor prints.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		for range sigCh {
			fmt.Printf("\nInterrupted. Type 'quit' to exit.\n%s", prompt)
		}
	}()

	reader := bufio.NewReader(os.Stdin)
	var multiline strings.Builder
	inMultiline := false

	for {
		if inMultiline {
			fmt.Print(continuationPrompt)
		} else {
			fmt.Print(prompt)
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			return
		}

		line = strings.TrimRight(line, "\r\n")

		if strings.HasSuffix(line, "\\") {
			multiline.WriteString(strings.TrimSuffix(line, "\\"))
			inMultiline = true
			continue
		}

		var input string
		if inMultiline {
			multiline.WriteString(line)
			input = multiline.String()
			multiline.Reset()
			inMultiline = false
		} else {
			input = line
		}

		cmd, err := reckon.Decode(input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		if reply := session.Execute(cmd); reply != "" {
			fmt.Println(reply)
		}
		if cmd.Kind == reckon.KindQuit {
			return
		}
	}
}

// runRawREPL handles TTY input with line editing and input recall
func runRawREPL(session *reckon.Session) {
	fd := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set raw mode: %v\n", err)
		runBasicREPL(session)
		return
	}
	defer term.Restore(fd, oldState)

	var submitted []string
	var multiline strings.Builder
	inMultiline := false

	for {
		if inMultiline {
			fmt.Print(continuationPrompt)
		} else {
			fmt.Print(prompt)
		}

		line, eof, interrupted := readLineRaw(submitted)
		if eof {
			fmt.Print("\r\nGoodbye!\r\n")
			return
		}
		if interrupted {
			fmt.Print("Interrupted. Type 'quit' to exit.\r\n")
			multiline.Reset()
			inMultiline = false
			continue
		}

		if strings.HasSuffix(line, "\\") {
			multiline.WriteString(strings.TrimSuffix(line, "\\"))
			inMultiline = true
			continue
		}

		var input string
		if inMultiline {
			multiline.WriteString(line)
			input = multiline.String()
			multiline.Reset()
			inMultiline = false
		} else {
			input = line
		}

		if strings.TrimSpace(input) != "" {
			submitted = append(submitted, input)
		}

		cmd, err := reckon.Decode(input)
		if err != nil {
			fmt.Printf("Error: %v\r\n", err)
			continue
		}

		reply := session.Execute(cmd)
		if reply != "" {
			// Replace newlines with \r\n for raw mode display
			reply = strings.ReplaceAll(reply, "\n", "\r\n")
			fmt.Print(reply + "\r\n")
		}
		if cmd.Kind == reckon.KindQuit {
			return
		}
	}
}

// readLineRaw reads a line in raw mode with basic line editing and
// Up/Down recall over lines submitted earlier in the session.
// Returns the line, whether input ended (Ctrl+D on an empty line or a
// read failure), and whether the line was cancelled with Ctrl+C.
func readLineRaw(history []string) (string, bool, bool) {
	var line []rune
	cursor := 0 // Position in line (for arrow key navigation)
	histIdx := len(history)
	var draft []rune // Stashed in-progress line while browsing history
	buf := make([]byte, 1)

	// Helper to redraw line from cursor position
	redrawFromCursor := func() {
		// Clear from cursor to end of line
		fmt.Print("\x1b[K")
		// Print remaining characters
		for i := cursor; i < len(line); i++ {
			fmt.Print(string(line[i]))
		}
		// Move cursor back to position
		if cursor < len(line) {
			fmt.Printf("\x1b[%dD", len(line)-cursor)
		}
	}

	// Helper to replace the whole line, used by history recall
	setLine := func(content []rune) {
		if cursor > 0 {
			fmt.Printf("\x1b[%dD", cursor)
		}
		fmt.Print("\x1b[K")
		fmt.Print(string(content))
		line = append([]rune(nil), content...)
		cursor = len(line)
	}

	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return string(line), true, false
		}

		b := buf[0]

		switch b {
		case 0x04: // Ctrl+D
			if len(line) == 0 {
				return "", true, false
			}
			// Delete character at cursor (like Delete key)
			if cursor < len(line) {
				line = append(line[:cursor], line[cursor+1:]...)
				redrawFromCursor()
			}

		case 0x03: // Ctrl+C - cancel the line, not the session
			fmt.Print("^C\r\n")
			return "", false, true

		case 0x0d, 0x0a: // Enter (CR or LF)
			fmt.Print("\r\n")
			return string(line), false, false

		case 0x7f, 0x08: // Backspace (DEL or BS)
			if cursor > 0 {
				cursor--
				line = append(line[:cursor], line[cursor+1:]...)
				fmt.Print("\b") // Move cursor back
				redrawFromCursor()
			}

		case 0x1b: // ESC - arrow key or other escape sequence
			nextBuf := make([]byte, 1)
			n, err := os.Stdin.Read(nextBuf)
			if err != nil || n == 0 {
				continue
			}

			if nextBuf[0] != '[' {
				continue
			}

			// Arrow key sequence: ESC [ A/B/C/D
			arrowBuf := make([]byte, 1)
			n, err = os.Stdin.Read(arrowBuf)
			if err != nil || n == 0 {
				continue
			}

			switch arrowBuf[0] {
			case 'A': // Up arrow - recall previous input
				if len(history) == 0 || histIdx == 0 {
					continue
				}
				if histIdx == len(history) {
					draft = append([]rune(nil), line...)
				}
				histIdx--
				setLine([]rune(history[histIdx]))
			case 'B': // Down arrow - toward the newest input
				if histIdx >= len(history) {
					continue
				}
				histIdx++
				if histIdx == len(history) {
					setLine(draft)
					draft = nil
				} else {
					setLine([]rune(history[histIdx]))
				}
			case 'C': // Right arrow
				if cursor < len(line) {
					cursor++
					fmt.Print("\x1b[C")
				}
			case 'D': // Left arrow
				if cursor > 0 {
					cursor--
					fmt.Print("\x1b[D")
				}
			case '3': // Delete key: ESC [ 3 ~
				delBuf := make([]byte, 1)
				os.Stdin.Read(delBuf)
				if delBuf[0] == '~' && cursor < len(line) {
					line = append(line[:cursor], line[cursor+1:]...)
					redrawFromCursor()
				}
			}

		case 0x01: // Ctrl+A - beginning of line
			if cursor > 0 {
				fmt.Printf("\x1b[%dD", cursor)
				cursor = 0
			}

		case 0x05: // Ctrl+E - end of line
			if cursor < len(line) {
				fmt.Printf("\x1b[%dC", len(line)-cursor)
				cursor = len(line)
			}

		case 0x0b: // Ctrl+K - kill to end of line
			if cursor < len(line) {
				line = line[:cursor]
				fmt.Print("\x1b[K")
			}

		case 0x15: // Ctrl+U - kill to beginning of line
			if cursor > 0 {
				fmt.Printf("\x1b[%dD", cursor)
				line = line[cursor:]
				cursor = 0
				redrawFromCursor()
			}

		default:
			if b >= 0x20 && b < 0x7f {
				// Printable ASCII character
				r := rune(b)
				newLine := make([]rune, 0, len(line)+1)
				newLine = append(newLine, line[:cursor]...)
				newLine = append(newLine, r)
				newLine = append(newLine, line[cursor:]...)
				line = newLine
				cursor++
				fmt.Print(string(r))
				if cursor < len(line) {
					redrawFromCursor()
				}
			} else if b >= 0x80 {
				// UTF-8 multi-byte sequence - read remaining bytes
				var utfBuf []byte
				utfBuf = append(utfBuf, b)

				numBytes := 0
				if b&0xE0 == 0xC0 {
					numBytes = 1
				} else if b&0xF0 == 0xE0 {
					numBytes = 2
				} else if b&0xF8 == 0xF0 {
					numBytes = 3
				}

				for i := 0; i < numBytes; i++ {
					n, err := os.Stdin.Read(buf)
					if err != nil || n == 0 {
						break
					}
					utfBuf = append(utfBuf, buf[0])
				}

				r := []rune(string(utfBuf))[0]
				newLine := make([]rune, 0, len(line)+1)
				newLine = append(newLine, line[:cursor]...)
				newLine = append(newLine, r)
				newLine = append(newLine, line[cursor:]...)
				line = newLine
				cursor++
				fmt.Print(string(r))
				if cursor < len(line) {
					redrawFromCursor()
				}
			}
		}
	}
}

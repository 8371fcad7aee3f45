//go:build linux

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// readInteractiveLine reads one line from stdin. On a TTY the terminal
// is switched to raw mode for the duration so the line can be edited
// in place, with history browsing through hist. Off a TTY it falls
// back to plain buffered reads and reports io.EOF at end of input.
func readInteractiveLine(prompt string, hist *[]string) (string, error) {
	if !stdinIsTTY() {
		return readStdinLine()
	}

	fd := int(os.Stdin.Fd())
	oldState, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return "", err
	}
	raw := *oldState
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return "", err
	}
	defer func() {
		_ = unix.IoctlSetTermios(fd, unix.TCSETS, oldState)
	}()

	ed := &lineEditor{prompt: prompt, history: hist, histPos: len(*hist)}
	return ed.run()
}

// lineEditor edits a single input line in raw mode.
type lineEditor struct {
	prompt  string
	history *[]string

	line     []byte
	cursor   int
	histPos  int
	draft    string
	browsing bool
}

func (e *lineEditor) run() (string, error) {
	fmt.Print(e.prompt)
	var buf [16]byte
	esc := 0
	var seq strings.Builder
	for {
		n, err := os.Stdin.Read(buf[:])
		if err != nil {
			return "", err
		}
		for i := 0; i < n; i++ {
			b := buf[i]
			if esc == 1 {
				switch {
				case b == '[':
					esc = 2
					seq.Reset()
				case b == 'b' || b == 'B':
					e.moveWordLeft() // Alt+b
					esc = 0
				case b == 'f' || b == 'F':
					e.moveWordRight() // Alt+f
					esc = 0
				case b == 127:
					e.deleteWordBack() // Alt+Backspace
					esc = 0
				default:
					esc = 0
				}
				continue
			}
			if esc == 2 {
				seq.WriteByte(b)
				if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
					e.handleCSI(seq.String())
					esc = 0
				}
				continue
			}

			switch b {
			case 27: // ESC
				esc = 1
			case '\r', '\n':
				fmt.Print("\r\n")
				out := string(e.line)
				if strings.TrimSpace(out) != "" {
					*e.history = append(*e.history, out)
				}
				return out, nil
			case 3: // Ctrl+C
				fmt.Print("^C\r\n")
				return "", io.EOF
			case 4: // Ctrl+D
				if len(e.line) == 0 {
					fmt.Print("\r\n")
					return "", io.EOF
				}
			case 127, 8: // backspace
				e.backspace()
			case 1: // Ctrl+A
				e.cursor = 0
				e.redraw()
			case 5: // Ctrl+E
				e.cursor = len(e.line)
				e.redraw()
			case 23: // Ctrl+W
				e.deleteWordBack()
			default:
				if b >= 32 {
					e.insert(b)
				}
			}
		}
	}
}

func (e *lineEditor) handleCSI(seq string) {
	switch seq {
	case "A": // up
		e.historyPrev()
	case "B": // down
		e.historyNext()
	case "D":
		if e.cursor > 0 {
			e.cursor--
			e.redraw()
		}
	case "C":
		if e.cursor < len(e.line) {
			e.cursor++
			e.redraw()
		}
	case "H":
		e.cursor = 0
		e.redraw()
	case "F":
		e.cursor = len(e.line)
		e.redraw()
	case "3~": // delete
		if e.cursor < len(e.line) {
			e.line = append(e.line[:e.cursor], e.line[e.cursor+1:]...)
			e.redraw()
		}
	case "1;5D", "5D":
		e.moveWordLeft()
	case "1;5C", "5C":
		e.moveWordRight()
	case "3;5~":
		e.deleteWordForward()
	}
}

func (e *lineEditor) historyPrev() {
	h := *e.history
	if len(h) == 0 {
		return
	}
	if !e.browsing {
		e.draft = string(e.line)
		e.browsing = true
		e.histPos = len(h)
	}
	if e.histPos > 0 {
		e.histPos--
		e.line = append(e.line[:0], h[e.histPos]...)
		e.cursor = len(e.line)
		e.redraw()
	}
}

func (e *lineEditor) historyNext() {
	if !e.browsing {
		return
	}
	h := *e.history
	if e.histPos < len(h)-1 {
		e.histPos++
		e.line = append(e.line[:0], h[e.histPos]...)
	} else {
		e.histPos = len(h)
		e.line = append(e.line[:0], e.draft...)
		e.browsing = false
	}
	e.cursor = len(e.line)
	e.redraw()
}

func (e *lineEditor) redraw() {
	fmt.Printf("\r%s%s", e.prompt, string(e.line))
	fmt.Print("\x1b[K")
	if e.cursor < len(e.line) {
		fmt.Printf("\r%s%s", e.prompt, string(e.line[:e.cursor]))
	}
}

func (e *lineEditor) insert(b byte) {
	if e.cursor == len(e.line) {
		e.line = append(e.line, b)
	} else {
		e.line = append(e.line, 0)
		copy(e.line[e.cursor+1:], e.line[e.cursor:])
		e.line[e.cursor] = b
	}
	e.cursor++
	e.redraw()
}

func (e *lineEditor) backspace() {
	if e.cursor == 0 {
		return
	}
	e.line = append(e.line[:e.cursor-1], e.line[e.cursor:]...)
	e.cursor--
	e.redraw()
}

func isWordSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

func (e *lineEditor) moveWordLeft() {
	if e.cursor == 0 {
		return
	}
	for e.cursor > 0 && isWordSpace(e.line[e.cursor-1]) {
		e.cursor--
	}
	for e.cursor > 0 && !isWordSpace(e.line[e.cursor-1]) {
		e.cursor--
	}
	e.redraw()
}

func (e *lineEditor) moveWordRight() {
	if e.cursor >= len(e.line) {
		return
	}
	for e.cursor < len(e.line) && isWordSpace(e.line[e.cursor]) {
		e.cursor++
	}
	for e.cursor < len(e.line) && !isWordSpace(e.line[e.cursor]) {
		e.cursor++
	}
	e.redraw()
}

func (e *lineEditor) deleteWordBack() {
	if e.cursor == 0 {
		return
	}
	start := e.cursor
	for start > 0 && isWordSpace(e.line[start-1]) {
		start--
	}
	for start > 0 && !isWordSpace(e.line[start-1]) {
		start--
	}
	e.line = append(e.line[:start], e.line[e.cursor:]...)
	e.cursor = start
	e.redraw()
}

func (e *lineEditor) deleteWordForward() {
	if e.cursor >= len(e.line) {
		return
	}
	end := e.cursor
	for end < len(e.line) && isWordSpace(e.line[end]) {
		end++
	}
	for end < len(e.line) && !isWordSpace(e.line[end]) {
		end++
	}
	e.line = append(e.line[:e.cursor], e.line[end:]...)
	e.redraw()
}

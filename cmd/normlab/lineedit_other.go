//go:build !linux

package main

import "fmt"

// readInteractiveLine reads one line from stdin. Editing and history
// need raw terminal support, so other platforms fall back to plain
// buffered reads.
func readInteractiveLine(prompt string, _ *[]string) (string, error) {
	if stdinIsTTY() {
		fmt.Print(prompt)
	}
	return readStdinLine()
}

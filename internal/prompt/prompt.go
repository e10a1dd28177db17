// Package prompt provides the blocking questions the front ends ask:
// a free-text input and a yes/no confirmation.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user something and blocks until answered.
type Prompter interface {
	// Ask returns the entered text; ok is false when the user cancelled.
	Ask(question, initial string) (answer string, ok bool)
	Confirm(question string) bool
}

// Terminal reads answers line by line. End of input cancels.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Ask prints the question; an empty line keeps initial.
func (t *Terminal) Ask(question, initial string) (string, bool) {
	if initial != "" {
		fmt.Fprintf(t.out, "%s [%s] ", question, initial)
	} else {
		fmt.Fprintf(t.out, "%s ", question)
	}
	line, ok := t.readLine()
	if !ok {
		return "", false
	}
	if strings.TrimSpace(line) == "" {
		return initial, true
	}
	return line, true
}

func (t *Terminal) Confirm(question string) bool {
	fmt.Fprintf(t.out, "%s [j/N] ", question)
	line, ok := t.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "j", "ja":
		return true
	}
	return false
}

func (t *Terminal) readLine() (string, bool) {
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		fmt.Fprintln(t.out)
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// Static answers every question the same way.
type Static struct {
	Answer    string
	Cancel    bool
	Confirmed bool
}

func (s Static) Ask(string, string) (string, bool) {
	if s.Cancel {
		return "", false
	}
	return s.Answer, true
}

func (s Static) Confirm(string) bool { return s.Confirmed }

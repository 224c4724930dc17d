// Package prompt asks the user questions on a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter is the capability to ask the user something and wait for the answer.
type Prompter interface {
	// Confirm shows message and reports whether the answer was "yes" or "y", case-insensitively.
	// Any other answer, including end of input, is a refusal.
	Confirm(message string) bool
	// Ask shows message and returns the trimmed answer; empty at end of input.
	Ask(message string) string
}

// Line is a Prompter reading whole lines from an input stream.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

func (p *Line) Ask(message string) string {
	fmt.Fprint(p.out, message)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return ""
	}
	return strings.TrimSpace(line)
}

func (p *Line) Confirm(message string) bool {
	return IsYes(p.Ask(message))
}

// IsYes reports whether answer is an affirmative reply.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	}
	return false
}

// Scripted answers prompts from a fixed list, recording what was asked.
// Once the answers run out every prompt gets the empty answer.
type Scripted struct {
	Answers []string
	Asked   []string
}

func (s *Scripted) Ask(message string) string {
	s.Asked = append(s.Asked, message)
	if len(s.Answers) == 0 {
		return ""
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer
}

func (s *Scripted) Confirm(message string) bool {
	return IsYes(s.Ask(message))
}

package main

import (
	"bytes"
	"strings"

	"github.com/mgomes/minipy/minipy"
)

// replSession keeps the lines accepted so far. Each new entry re-runs
// the accumulated program in a fresh closure and reports only the
// output the entry added; entries that fail are not retained.
type replSession struct {
	lines      []string
	prevOutput string
}

func (s *replSession) eval(input string) (string, error) {
	candidate := append(append([]string(nil), s.lines...), input)
	prog, err := minipy.Compile(strings.Join(candidate, "\n") + "\n")
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := prog.Run(&buf); err != nil {
		return "", err
	}
	full := buf.String()

	s.lines = candidate
	added := full
	if strings.HasPrefix(full, s.prevOutput) {
		added = full[len(s.prevOutput):]
	}
	s.prevOutput = full
	return strings.TrimSuffix(added, "\n"), nil
}

func (s *replSession) reset() {
	s.lines = nil
	s.prevOutput = ""
}

// Package prompt implements the free-form yes/no exchanges the fix flow
// uses for its human decision gates. Reader and writer are injected so
// tests can script the whole conversation.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pathtidy/pkg/errors"
)

// Prompter asks yes/no questions over a pair of streams.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading answers from in and writing questions to
// out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks question and returns the user's answer. An empty line picks
// def; anything other than a y/yes/n/no variant re-prompts. A read failure
// (including EOF mid-conversation) is an error, never a silent default.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}
	for {
		fmt.Fprintf(p.out, "%s %s: ", question, marker)
		line, err := p.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return false, errors.Wrap(err, errors.ErrPromptRead, "failed to read answer")
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

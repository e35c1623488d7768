package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrEmpty is returned when a required answer is blank.
var ErrEmpty = errors.New("empty input")

// Prompter asks questions on an input/output pair. Passwords are read without
// echo when the input is a terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// NewPrompter creates a Prompter. in is checked for a terminal when it is an *os.File.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok {
		p.fd = int(f.Fd())
		p.tty = term.IsTerminal(p.fd)
	}
	return p
}

// Line prints prompt and returns the trimmed answer. Blank answers are ErrEmpty.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmpty
	}
	return s, nil
}

// Password prints prompt and reads a secret. The answer is not trimmed
// beyond the line ending.
func (p *Prompter) Password(prompt string) (string, error) {
	if !p.tty {
		fmt.Fprint(p.out, prompt)
		s, err := p.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && s != "") {
			return "", err
		}
		s = strings.TrimRight(s, "\r\n")
		if s == "" {
			return "", ErrEmpty
		}
		return s, nil
	}

	fmt.Fprint(p.out, prompt)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", ErrEmpty
	}
	return string(b), nil
}

// Interactive reports whether the input is a terminal.
func (p *Prompter) Interactive() bool { return p.tty }

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"pwvault/internal/crypto"
)

// DefaultMaxAttempts bounds retries when none is configured.
const DefaultMaxAttempts = 3

// ErrTooManyAttempts is returned once a prompt has rejected MaxAttempts values.
var ErrTooManyAttempts = errors.New("too many invalid attempts")

// Test seams for the terminal; tests replace them to avoid touching a tty.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	maxAttempts int

	fd     int
	hidden bool
}

// New returns a Prompter. maxAttempts below 1 selects DefaultMaxAttempts.
func New(in io.Reader, out io.Writer, maxAttempts int) *Prompter {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Prompter{in: bufio.NewReader(in), out: out, maxAttempts: maxAttempts}
}

// HideInput makes Password read from fd without echo when fd is a terminal.
func (p *Prompter) HideInput(fd int) *Prompter {
	p.fd = fd
	p.hidden = isTerminal(fd)
	return p
}

// Out returns the writer prompts are printed to.
func (p *Prompter) Out() io.Writer { return p.out }

// Printf writes formatted text to the prompt output.
func (p *Prompter) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// Line prints prompt and returns the next line with surrounding whitespace
// removed. A final line without a newline is returned as is; io.EOF is only
// returned when nothing was read.
func (p *Prompter) Line(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// rawLine is Line without trimming; only the line terminator is dropped.
func (p *Prompter) rawLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Required asks until validate accepts the answer, at most MaxAttempts times.
func (p *Prompter) Required(prompt string, validate func(string) error) (string, error) {
	return p.retry(func() (string, error) { return p.Line(prompt) }, validate)
}

// Password reads a secret, hidden when the input is a terminal, and retries
// like Required.
func (p *Prompter) Password(prompt string, validate func(string) error) (string, error) {
	return p.retry(func() (string, error) { return p.readSecret(prompt) }, validate)
}

// Choice reads a single integer accepted by valid.
func (p *Prompter) Choice(prompt string, valid func(int) bool) (int, error) {
	var n int
	_, err := p.retry(
		func() (string, error) { return p.Line(prompt) },
		func(s string) error {
			v, err := ParseInts(s)
			if err != nil || len(v) != 1 {
				return errors.New("please enter a valid number")
			}
			if !valid(v[0]) {
				return fmt.Errorf("%d does not correspond to a valid action", v[0])
			}
			n = v[0]
			return nil
		},
	)
	return n, err
}

// Ints reads a comma separated list of integers accepted by validate.
func (p *Prompter) Ints(prompt string, validate func([]int) error) ([]int, error) {
	var out []int
	_, err := p.retry(
		func() (string, error) { return p.Line(prompt) },
		func(s string) error {
			v, err := ParseInts(s)
			if err != nil {
				return err
			}
			if err := validate(v); err != nil {
				return err
			}
			out = v
			return nil
		},
	)
	return out, err
}

func (p *Prompter) retry(read func() (string, error), validate func(string) error) (string, error) {
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		v, err := read()
		if err != nil {
			return "", err
		}
		if validate == nil {
			return v, nil
		}
		verr := validate(v)
		if verr == nil {
			return v, nil
		}
		p.Printf("%v\n", verr)
	}
	return "", ErrTooManyAttempts
}

func (p *Prompter) readSecret(prompt string) (string, error) {
	if !p.hidden {
		return p.rawLine(prompt)
	}
	if _, err := fmt.Fprint(p.out, prompt+": "); err != nil {
		return "", err
	}
	b, err := readPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(b)
	return string(b), nil
}

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	cfgerrors "github.com/feonix-uav/configuranator/internal/errors"
	"github.com/feonix-uav/configuranator/internal/logging"
)

// ErrTooManyAttempts is returned when a question bounded by
// WithMaxAttempts never receives a valid answer.
var ErrTooManyAttempts = errors.New("too many invalid attempts")

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	errOut      io.Writer
	maxAttempts int

	labelStyle  lipgloss.Style
	headerStyle lipgloss.Style
	errorStyle  lipgloss.Style
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithMaxAttempts bounds the number of answers read for one question.
// Zero or less means unbounded.
func WithMaxAttempts(n int) Option {
	return func(p *Prompter) {
		p.maxAttempts = n
	}
}

// New creates a Prompter. Questions go to out, parse and validation
// errors to errOut.
func New(in io.Reader, out, errOut io.Writer, opts ...Option) *Prompter {
	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errOut)

	p := &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
	p.labelStyle = outRenderer.NewStyle().Bold(true)
	p.headerStyle = outRenderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))
	p.errorStyle = errRenderer.NewStyle().
		Foreground(lipgloss.Color("196"))

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Header writes a section heading on its own line.
func (p *Prompter) Header(text string) {
	fmt.Fprintln(p.out, p.headerStyle.Render(text))
}

// ReadLine writes label and returns the next line of input with outer
// whitespace removed. A final line without a newline is still returned.
func (p *Prompter) ReadLine(label string) (string, error) {
	trimmed := strings.TrimRight(label, " ")
	fmt.Fprint(p.out, p.labelStyle.Render(trimmed)+label[len(trimmed):])

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", cfgerrors.InputError(err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) reportf(format string, args ...any) {
	fmt.Fprintln(p.errOut, p.errorStyle.Render(fmt.Sprintf(format, args...)))
}

// askState is a step of the per-question loop.
type askState int

const (
	stateRead askState = iota
	stateParse
	stateValidate
)

// Ask asks label until the answer parses as s.
func Ask[T any](p *Prompter, label string, s Scalar[T]) (T, error) {
	return AskValid(p, label, s, nil)
}

// AskValid asks label until the answer parses as s and passes check.
// A nil check accepts every parsed value.
func AskValid[T any](p *Prompter, label string, s Scalar[T], check func(T) error) (T, error) {
	var (
		zero     T
		value    T
		line     string
		err      error
		attempts int
	)

	state := stateRead
	for {
		switch state {
		case stateRead:
			if p.maxAttempts > 0 && attempts >= p.maxAttempts {
				return zero, cfgerrors.InputError(fmt.Errorf("%w: %d answers to %q", ErrTooManyAttempts, attempts, strings.TrimSpace(label)))
			}
			attempts++
			line, err = p.ReadLine(label)
			if err != nil {
				return zero, err
			}
			state = stateParse

		case stateParse:
			value, err = s.Parse(line)
			if err != nil {
				logging.Debug("rejected input", "label", strings.TrimSpace(label), "error", err)
				if s.ShowErrors {
					p.reportf("Error: %v", err)
				} else {
					p.reportf("Invalid input. Please enter a valid %s.", s.Name)
				}
				state = stateRead
				continue
			}
			state = stateValidate

		case stateValidate:
			if check != nil {
				if err := check(value); err != nil {
					p.reportf("Error: %v", err)
					state = stateRead
					continue
				}
			}
			return value, nil
		}
	}
}

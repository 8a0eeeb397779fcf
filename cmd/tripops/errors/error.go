// Package errors provides errors which are shown to operators on terminal.
package errors

import (
	"fmt"
	"strings"
)

// Verbose is implemented by errors which can explain themselves in detail.
type Verbose interface {
	Verbose() string
}

type CUIError interface {
	error
	Verbose
}

type cuierror struct {
	summary string
	verbose string
	hint    string
	detail  func(summary string) (string, error)
	cause   error
}

func (ce *cuierror) Unwrap() error {
	return ce.cause
}

func (ce *cuierror) Error() string {
	message := ce.summary
	if ce.detail != nil {
		m, err := ce.detail(ce.summary)
		if err != nil {
			m = fmt.Sprintf(
				"%s\n(building detailed message causes error: %s)",
				ce.summary, err,
			)
		}
		message = m
	}
	if ce.hint != "" {
		message += "\nhint: " + ce.hint
	}
	return message
}

func (ce *cuierror) Verbose() string {
	lines := []string{ce.Error()}
	if ce.verbose != "" {
		lines = append(lines, "("+ce.verbose+")")
	}

	switch cause := ce.cause.(type) {
	case nil:
	case Verbose:
		lines = append(lines, "caused by: ", cause.Verbose())
	default:
		lines = append(lines, "caused by: ", cause.Error())
	}
	return strings.Join(lines, "\n")
}

type Option func(*cuierror)

func NewCuiError(summary string, options ...Option) CUIError {
	err := &cuierror{summary: summary}
	for _, o := range options {
		o(err)
	}
	return err
}

// WithVerbose sets a message shown only in verbose mode.
func WithVerbose(verbose string) Option {
	return func(ce *cuierror) { ce.verbose = verbose }
}

// WithDetail replaces the message with the one built from summary.
func WithDetail(printer func(summary string) (string, error)) Option {
	return func(ce *cuierror) { ce.detail = printer }
}

// WithHint appends a suggestion of what operator can do next.
func WithHint(hint string) Option {
	return func(ce *cuierror) { ce.hint = hint }
}

func WithCause(err error) Option {
	return func(ce *cuierror) { ce.cause = err }
}

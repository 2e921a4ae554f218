package expr

import (
	"strings"

	"mapexpr/internal/geom"
)

// ParseError is one message recorded through a ParsingContext's sink.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }

// ParsingContext collects parse-time errors while an expression tree is
// being constructed. Every recorded error is fatal to the expression being
// parsed; the context only accumulates them for reporting.
type ParsingContext struct {
	errs []*ParseError
}

// Error records msg in the sink and returns it as an error, so parse code
// can `return nil, ctx.Error(...)` in one step.
func (c *ParsingContext) Error(msg string) error {
	e := &ParseError{Message: msg}
	c.errs = append(c.errs, e)
	return e
}

// Errors returns everything recorded so far, in order.
func (c *ParsingContext) Errors() []*ParseError {
	return c.errs
}

// Err combines the recorded messages into a single error, or nil.
func (c *ParsingContext) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	if len(c.errs) == 1 {
		return c.errs[0]
	}
	msgs := make([]string, 0, len(c.errs))
	for _, e := range c.errs {
		msgs = append(msgs, e.Message)
	}
	return &ParseError{Message: strings.Join(msgs, "; ")}
}

// EvaluationContext carries the per-feature inputs of one evaluation.
// Feature and Canonical are optional; evaluation degrades to false when
// either is missing. Observer is optional and receives non-fatal
// diagnostics.
type EvaluationContext struct {
	Feature   geom.Feature
	Canonical *geom.TileID
	Observer  Observer
}

func (c EvaluationContext) warn(msg string) {
	if c.Observer != nil {
		c.Observer.Warn(msg)
	}
}

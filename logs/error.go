package logs

import (
	"context"
	"errors"
	"fmt"
)

// SpanError records the span an error was returned from.
type SpanError struct {
	Err  error
	Span Span
}

func (s *SpanError) Error() string {
	return fmt.Sprintf("%v\nspan: %s", s.Err, s.Span)
}

func (s *SpanError) Unwrap() error {
	return s.Err
}

// WrapSpan attaches the span of ctx to err. An error already carrying a span
// keeps the innermost one.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := SpanOf(err); ok {
		return err
	}
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return &SpanError{
		Err:  err,
		Span: v.(Span),
	}
}

func SpanOf(err error) (Span, bool) {
	var spanErr *SpanError
	if errors.As(err, &spanErr) {
		return spanErr.Span, true
	}
	return "", false
}

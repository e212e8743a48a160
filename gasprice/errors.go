package gasprice

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// TimeoutError reports that a source did not produce a price within the
// slice of the time budget it was allotted.
type TimeoutError struct {
	Allotted time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no price produced within %s", e.Allotted)
}

// Is makes errors.Is(err, context.DeadlineExceeded) report true for
// timed-out sources.
func (e *TimeoutError) Is(target error) bool {
	return target == context.DeadlineExceeded
}

// ExhaustedError reports that every configured source failed or timed out.
// Reasons holds each source's failure, indexed by priority position.
type ExhaustedError struct {
	Reasons []error
}

func (e *ExhaustedError) Error() string {
	msgs := make([]string, len(e.Reasons))
	for i, err := range e.Reasons {
		msgs[i] = fmt.Sprintf("source %d: %v", i, err)
	}
	return "all gas price sources failed: " + strings.Join(msgs, "; ")
}

func (e *ExhaustedError) Unwrap() []error {
	return e.Reasons
}

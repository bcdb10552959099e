package testcase

import (
	"fmt"

	"github.com/gravitational/trace"
)

// NotApplicableError marks a test case that cannot be executed in the
// current environment, e.g. because the browser is not supported or the
// Selenium server is unreachable
type NotApplicableError struct {
	Reason string
}

func (r *NotApplicableError) Error() string {
	return r.Reason
}

// NotApplicable returns a new not-applicable error
func NotApplicable(format string, args ...interface{}) error {
	return trace.Wrap(&NotApplicableError{Reason: fmt.Sprintf(format, args...)})
}

// IsNotApplicable returns true if err marks a not-applicable test case
func IsNotApplicable(err error) bool {
	_, ok := trace.Unwrap(err).(*NotApplicableError)
	return ok
}

package xlog

import (
	"fmt"
	"io/ioutil"
	"testing"

	"github.com/gepard-test/gepard-selenium/lib/report"

	"github.com/sirupsen/logrus"
)

// TestingHook forwards log entries to the test log
type TestingHook struct {
	t testing.TB
}

func (hook *TestingHook) Fire(e *logrus.Entry) error {
	hook.t.Helper()
	if len(e.Data) == 0 {
		hook.t.Log(e.Message)
		return nil
	}
	hook.t.Log(e.Message, fmt.Sprint(e.Data))
	return nil
}

// Levels returns logging levels supported by logrus
func (hook *TestingHook) Levels() []logrus.Level {
	return allLevels
}

// ExecutionHook records log entries as test output of a test class execution
type ExecutionHook struct {
	exec *report.Execution
}

// NewExecutionHook returns a hook recording entries into exec
func NewExecutionHook(exec *report.Execution) *ExecutionHook {
	return &ExecutionHook{exec: exec}
}

func (hook *ExecutionHook) Fire(e *logrus.Entry) error {
	hook.exec.AddSysOut(e.Message)
	return nil
}

// Levels returns logging levels mirrored to the test output
func (hook *ExecutionHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
	}
}

// NewLogger returns a logger that writes to the test log.
// If exec is not nil, warnings and errors are also recorded as test output
func NewLogger(t testing.TB, exec *report.Execution, commonFields logrus.Fields) logrus.FieldLogger {
	log := logrus.New()
	log.Level = logrus.DebugLevel
	log.Out = ioutil.Discard
	log.Hooks.Add(&TestingHook{t})
	if exec != nil {
		log.Hooks.Add(NewExecutionHook(exec))
	}
	return log.WithFields(commonFields)
}

package xlog

import (
	"bytes"
	"testing"

	"github.com/gepard-test/gepard-selenium/lib/report"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestExecutionHookRecordsWarnings(t *testing.T) {
	exec := report.NewExecution(nil)
	log := NewLogger(t, exec, logrus.Fields{"class": "LoginTest"})

	log.Info("opening login page")
	log.Warn("slow page load")
	log.WithError(nil).Error("dump failed")

	require.Equal(t, []string{"slow page load", "dump failed"}, exec.SysOut())
}

func TestConsoleLoggerUsesTraceFormatter(t *testing.T) {
	log := ConsoleLogger(&bytes.Buffer{}, logrus.InfoLevel)
	hook, ok := log.Hooks[logrus.InfoLevel][0].(*consoleHook)
	require.True(t, ok)
	require.IsType(t, &trace.TextFormatter{}, hook.console.Formatter)
}

func TestConsoleLoggerWritesEverything(t *testing.T) {
	var out bytes.Buffer
	log := ConsoleLogger(&out, logrus.ErrorLevel)

	log.Debug("debug message")
	log.Info("info message")

	require.Contains(t, out.String(), "debug message")
	require.Contains(t, out.String(), "info message")
}

// Package report collects the output of a test case run: the captured
// standard output and the per-method HTML log
package report

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gravitational/trace"
)

// Execution holds the output collected while a test class executes
type Execution struct {
	mu     sync.Mutex
	sysOut []string
	log    *HTMLLog
}

// NewExecution returns execution data writing the method log to log.
// log may be nil if no HTML log is produced
func NewExecution(log *HTMLLog) *Execution {
	return &Execution{log: log}
}

// AddSysOut records a line of test output
func (r *Execution) AddSysOut(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sysOut = append(r.sysOut, text)
}

// SysOut returns the recorded test output
func (r *Execution) SysOut() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.sysOut))
	copy(out, r.sysOut)
	return out
}

// TestMethodHTMLLog returns the HTML log of the running test method or nil
func (r *Execution) TestMethodHTMLLog() *HTMLLog {
	if r == nil {
		return nil
	}
	return r.log
}

// HTMLLog is the HTML report of a single test method
type HTMLLog struct {
	mu   sync.Mutex
	path string
	out  io.WriteCloser
}

// NewHTMLLog creates the log file at path
func NewHTMLLog(path string) (*HTMLLog, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, trace.ConvertSystemError(err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	if _, err := io.WriteString(f, logHeader); err != nil {
		f.Close()
		return nil, trace.ConvertSystemError(err)
	}
	return &HTMLLog{path: path, out: f}, nil
}

// LogPath returns the path of the log file
func (r *HTMLLog) LogPath() string {
	return r.path
}

// InsertText appends html to the log
func (r *HTMLLog) InsertText(html string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := io.WriteString(r.out, html)
	return trace.ConvertSystemError(err)
}

// Close finishes the log
func (r *HTMLLog) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := io.WriteString(r.out, logFooter); err != nil {
		r.out.Close()
		return trace.ConvertSystemError(err)
	}
	return trace.ConvertSystemError(r.out.Close())
}

const (
	logHeader = "<html><body><table>\n"
	logFooter = "</table></body></html>\n"
)

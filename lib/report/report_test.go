package report

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTMLLog(t *testing.T) {
	dir, err := ioutil.TempDir("", "gepard-report")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "nested", "method.html")
	log, err := NewHTMLLog(path)
	require.NoError(t, err)
	require.Equal(t, path, log.LogPath())

	require.NoError(t, log.InsertText("<tr><td>one</td></tr>\n"))
	require.NoError(t, log.InsertText("<tr><td>two</td></tr>\n"))
	require.NoError(t, log.Close())

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, logHeader+"<tr><td>one</td></tr>\n<tr><td>two</td></tr>\n"+logFooter, string(data))
}

func TestExecution(t *testing.T) {
	exec := NewExecution(nil)
	require.Nil(t, exec.TestMethodHTMLLog())

	exec.AddSysOut("first")
	exec.AddSysOut("second")
	require.Equal(t, []string{"first", "second"}, exec.SysOut())

	var missing *Execution
	require.Nil(t, missing.TestMethodHTMLLog())
}

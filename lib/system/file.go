package system

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/gepard-test/gepard-selenium/lib/constants"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// WriteFile writes data to path atomically
// using SharedReadWriteMask as permissions.
func WriteFile(path string, data []byte) error {
	return WriteFileWithPerms(path, data, constants.SharedReadWriteMask)
}

// WriteFileWithPerms writes data to path atomically.
// If path does not exist, it is created with permissions perm.
// If the write fails, path is preserved.
func WriteFileWithPerms(path string, data []byte, perm os.FileMode) error {
	log.Debugf("write %s", path)
	return WriteFrom(path, bytes.NewReader(data), perm)
}

// WriteFrom copies the contents of r to path atomically
func WriteFrom(path string, r io.Reader, perm os.FileMode) error {
	tmp, err := ioutil.TempFile(filepath.Dir(path), ".tmp-")
	if err != nil {
		return trace.ConvertSystemError(err)
	}

	cleanup := func() {
		err := os.Remove(tmp.Name())
		if err != nil {
			log.Warnf("Failed to remove %v: %v.", tmp.Name(), err)
		}
	}

	_, err = io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		cleanup()
		return trace.ConvertSystemError(err)
	}
	if err = tmp.Close(); err != nil {
		cleanup()
		return trace.ConvertSystemError(err)
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		cleanup()
		return trace.ConvertSystemError(err)
	}
	err = os.Rename(tmp.Name(), path)
	if err != nil {
		cleanup()
		return trace.ConvertSystemError(err)
	}
	return nil
}

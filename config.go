package main

import (
	"strings"

	"github.com/gepard-test/gepard-selenium/lib/config"

	"github.com/gravitational/trace"
)

type configType = config.Config

// loadConfig reads the configuration file at path.
// Without a path, defaults with environment overrides are used
func loadConfig(path string) (*configType, error) {
	if path != "" {
		conf, err := config.LoadFile(path)
		return conf, trace.Wrap(err)
	}
	conf, err := config.Load(strings.NewReader(""))
	return conf, trace.Wrap(err)
}

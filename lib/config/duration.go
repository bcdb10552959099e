package config

import (
	"encoding/json"
	"time"

	"github.com/gravitational/trace"
)

// Timeout provides "human" serialization/deserialization such as "1m" or "30s" for time.Duration.
// Plain integers are interpreted as milliseconds.
type Timeout struct {
	time.Duration
}

func (d Timeout) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Timeout) UnmarshalJSON(buf []byte) error {
	var data string
	if err := json.Unmarshal(buf, &data); err != nil {
		return trace.BadParameter("cannot parse %q as duration: %v", buf, err)
	}
	return d.SetEnv(data)
}

// UnmarshalYAML interprets the scalar as a duration or a number of milliseconds
func (d *Timeout) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var millis int64
	if err := unmarshal(&millis); err == nil {
		return d.set(time.Duration(millis) * time.Millisecond)
	}
	var data string
	if err := unmarshal(&data); err != nil {
		return trace.BadParameter("cannot parse timeout: %v", err)
	}
	return d.SetEnv(data)
}

// SetEnv interprets data as time.Duration.
// SetEnv implements configure.EnvSetter
func (d *Timeout) SetEnv(data string) error {
	dur, err := time.ParseDuration(data)
	if err != nil {
		return trace.BadParameter("cannot parse %q as duration: %v", data, err)
	}
	return d.set(dur)
}

func (d *Timeout) set(dur time.Duration) error {
	if dur < 0 {
		return trace.BadParameter("timeout must be >= 0")
	}
	d.Duration = dur
	return nil
}

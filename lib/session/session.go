// Package session opens and controls remote WebDriver browser sessions
package session

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gepard-test/gepard-selenium/lib/defaults"
	"github.com/gepard-test/gepard-selenium/lib/wait"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
)

// Session is a single remote browser session
type Session interface {
	// Navigate opens url in the current window
	Navigate(url string) error
	// URL returns the URL of the current page
	URL() (string, error)
	// HTML returns the source of the current page
	HTML() (string, error)
	// Screenshot returns the PNG image of the current window
	Screenshot() ([]byte, error)
	// Maximize enlarges the current window to the screen size
	Maximize() error
	// SendNativeKey presses and releases the given key
	SendNativeKey(key string) error
	// SetTimeout sets the page load timeout
	SetTimeout(timeout time.Duration) error
	// Quit closes all windows and ends the session
	Quit() error
}

// Dialer opens a new session on the WebDriver endpoint with the given capabilities
type Dialer func(endpoint string, caps selenium.Capabilities) (Session, error)

// NewDialer returns the dialer for the named backend
func NewDialer(driver string) (Dialer, error) {
	switch driver {
	case "", DriverSelenium:
		return DialSelenium, nil
	case DriverAgouti:
		return DialAgouti, nil
	}
	return nil, trace.BadParameter("unsupported driver %q", driver)
}

const (
	// DriverSelenium names the github.com/tebeka/selenium backend
	DriverSelenium = "selenium"
	// DriverAgouti names the github.com/sclevine/agouti backend
	DriverAgouti = "agouti"
)

// Endpoint specifies the location of a remote WebDriver server
type Endpoint struct {
	Host string
	Port int
}

// URL returns the address of the WebDriver hub on this endpoint
func (r Endpoint) URL() string {
	u := url.URL{
		Scheme: defaults.WebDriverScheme,
		Host:   fmt.Sprintf("%v:%v", r.Host, r.Port),
		Path:   defaults.WebDriverPath,
	}
	return u.String()
}

// Config defines the parameters to open a session
type Config struct {
	// Dialer opens the session
	Dialer Dialer
	// Endpoint is the remote WebDriver server
	Endpoint Endpoint
	// Capabilities are the desired session capabilities
	Capabilities selenium.Capabilities
	// Timeout is the page load timeout to set on the new session
	Timeout time.Duration
	// Attempts is the number of attempts to connect
	Attempts int
	// FieldLogger specifies the log sink
	logrus.FieldLogger
}

// CheckAndSetDefaults validates the config and sets defaults
func (r *Config) CheckAndSetDefaults() error {
	if r.Dialer == nil {
		r.Dialer = DialSelenium
	}
	if r.Endpoint.Host == "" {
		return trace.BadParameter("selenium host is required")
	}
	if r.Endpoint.Port <= 0 {
		return trace.BadParameter("selenium port is required")
	}
	if r.Capabilities == nil {
		return trace.BadParameter("capabilities are required")
	}
	if r.Timeout == 0 {
		r.Timeout = defaults.Timeout
	}
	if r.Attempts <= 0 {
		r.Attempts = defaults.ConnectAttempts
	}
	if r.FieldLogger == nil {
		r.FieldLogger = logrus.StandardLogger()
	}
	return nil
}

// isRetryable returns false for errors the server will repeat on every attempt,
// e.g. when it cannot provide a browser matching the capabilities
func isRetryable(err error) bool {
	message := strings.ToLower(err.Error())
	for _, permanent := range permanentErrors {
		if strings.Contains(message, permanent) {
			return false
		}
	}
	return true
}

// permanentErrors lists WebDriver error codes that are not worth retrying
var permanentErrors = []string{
	"session not created",
	"invalid argument",
	"unknown command",
}

// Open connects to the remote WebDriver server and starts a new session
func Open(ctx context.Context, config Config) (Session, error) {
	if err := config.CheckAndSetDefaults(); err != nil {
		return nil, trace.Wrap(err)
	}

	endpoint := config.Endpoint.URL()
	logger := config.WithField("endpoint", endpoint)
	logger.WithField("browser", config.Capabilities["browserName"]).Debug("Open session.")

	var session Session
	err := wait.RetryWithInterval(ctx,
		wait.Attempts(config.Attempts, defaults.ConnectRetryDelay, defaults.ConnectRetryMaxDelay),
		func() (err error) {
			session, err = config.Dialer(endpoint, config.Capabilities)
			if err != nil && !isRetryable(err) {
				return wait.Abort(err)
			}
			return trace.Wrap(err)
		}, logger)
	if err != nil {
		return nil, trace.Wrap(err)
	}

	if err := session.SetTimeout(config.Timeout); err != nil {
		session.Quit()
		return nil, trace.Wrap(err)
	}
	return session, nil
}

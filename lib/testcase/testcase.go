// Package testcase implements the base of browser-driven test cases.
//
// A test author embeds a *Case in their test type, calls BeforeTestCase
// to open the browser session and AfterTestCase to close it (or uses Run
// with the standard testing package), and uses the logging and dump helpers
// to populate the HTML report of the test method:
//
//	func TestLogin(t *testing.T) {
//		c, err := testcase.New(testcase.Class{Name: "LoginTest", Selenium: true}, exec, conf)
//		require.NoError(t, err)
//		testcase.Run(t, c)
//		require.NoError(t, c.Open("/login"))
//		c.LogEvent("Login page opened", true)
//	}
package testcase

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gepard-test/gepard-selenium/lib/browser"
	"github.com/gepard-test/gepard-selenium/lib/config"
	"github.com/gepard-test/gepard-selenium/lib/constants"
	"github.com/gepard-test/gepard-selenium/lib/defaults"
	"github.com/gepard-test/gepard-selenium/lib/environment"
	"github.com/gepard-test/gepard-selenium/lib/report"
	"github.com/gepard-test/gepard-selenium/lib/session"
	"github.com/gepard-test/gepard-selenium/lib/xlog"

	"github.com/gravitational/trace"
	"github.com/jonboulle/clockwork"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
)

// Class describes the test class a test case belongs to
type Class struct {
	// Name identifies the test class
	Name string
	// Selenium marks the class as driven by a Selenium browser session
	Selenium bool
	// BaseURL overrides the URL of the test environment if set
	BaseURL string
	// Browser overrides the browser string of the test environment if set
	Browser string
}

// Option configures a test case
type Option func(*Case)

// WithLogger sets the logger of the test case.
// Run keeps a logger set this way instead of logging to the test
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Case) {
		c.FieldLogger = logger
		c.customLogger = true
	}
}

// WithDialer overrides the session backend selected by configuration
func WithDialer(dialer session.Dialer) Option {
	return func(c *Case) {
		c.dialer = dialer
	}
}

// WithClock sets the clock used to timestamp dumps
func WithClock(clock clockwork.Clock) Option {
	return func(c *Case) {
		c.clock = clock
	}
}

// Case is a test case driven by a remote WebDriver browser session
type Case struct {
	logrus.FieldLogger

	class  Class
	exec   *report.Execution
	env    *environment.Helper
	dialer session.Dialer
	clock  clockwork.Clock

	session   session.Session
	sessionID string

	browserString             string
	baseURL                   string
	needCaptureNetworkTraffic bool
	addCustomRequestHeaders   bool
	commandLineFlags          string

	setupErr     error
	customLogger bool
}

// dumpFileCount numbers page dumps across all test cases of the process
var dumpFileCount int64

// New creates a test case for class reporting into exec.
// The base URL and the browser are taken from the active test environment
func New(class Class, exec *report.Execution, conf *config.Config, opts ...Option) (*Case, error) {
	if conf == nil {
		return nil, trace.BadParameter("configuration is required")
	}
	if exec == nil {
		exec = report.NewExecution(nil)
	}
	c := &Case{
		class: class,
		exec:  exec,
		env:   environment.New(conf),
		clock: clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.FieldLogger == nil {
		c.FieldLogger = logrus.WithField(constants.FieldTestClass, class.Name)
	}
	if c.dialer == nil {
		dialer, err := session.NewDialer(conf.Driver)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		c.dialer = dialer
	}
	c.SetBaseURL(c.env.TestEnvironmentURL())
	c.SetBrowserString(c.env.TestEnvironmentBrowser())
	c.SetNeedCaptureNetworkTraffic(true)
	return c, nil
}

// Run prepares c as the test case of t: it opens the browser session,
// skips t if the test case is not applicable and closes the session
// when t completes
func Run(t testing.TB, c *Case) {
	t.Helper()
	if !c.customLogger {
		c.FieldLogger = xlog.NewLogger(t, c.exec, logrus.Fields{constants.FieldTestClass: c.class.Name})
	}
	err := c.BeforeTestCase(context.Background())
	if err != nil {
		c.AfterTestCase()
		if IsNotApplicable(err) {
			t.Skip(trace.UserMessage(err))
		}
		t.Fatal(trace.DebugReport(err))
	}
	t.Cleanup(func() {
		if err := c.AfterTestCase(); err != nil {
			t.Errorf("failed to close browser session: %v", err)
		}
	})
}

// BeforeTestCase validates the test class and opens the browser session.
// Failures are reported as not-applicable errors
func (c *Case) BeforeTestCase(ctx context.Context) error {
	if c.class.Name == "" {
		return c.failSetup("When using Gepard SeleniumTestCase, you must declare your class as 'TestClass' (set Class.Name).")
	}
	if !c.class.Selenium {
		return c.failSetup("When using Gepard SeleniumTestCase, you must declare your class as 'GepardSeleniumTestClass' (set Class.Selenium).")
	}
	if c.class.BaseURL != "" {
		c.SetBaseURL(c.class.BaseURL)
	}
	if c.class.Browser != "" {
		c.SetBrowserString(c.class.Browser)
	}
	c.SetNeedCaptureNetworkTraffic(true)
	return c.initiateSession(ctx)
}

// AfterTestCase closes all browser windows and ends the session.
// It is safe to call more than once
func (c *Case) AfterTestCase() error {
	if c.session == nil {
		return nil
	}
	err := c.session.Quit()
	c.session = nil
	c.WithField(constants.FieldSession, c.sessionID).Debug("Session closed.")
	return trace.Wrap(err)
}

// RestartBrowser ends the current browser session and starts a new one
// with the current start options
func (c *Case) RestartBrowser(ctx context.Context) error {
	c.LogComment("Stopping Actual Browser session...")
	if c.session != nil {
		err := c.session.Quit()
		c.session = nil
		if err != nil {
			return NotApplicable("Start browser is failed. Reason: %v", trace.UserMessage(err))
		}
	}
	c.LogComment("Starting New Browser session...")
	if err := c.openSession(ctx); err != nil {
		return NotApplicable("Start browser is failed. Reason: %v", trace.UserMessage(err))
	}
	return nil
}

// Open navigates the browser to path resolved against the base URL
func (c *Case) Open(path string) error {
	if c.session == nil {
		return trace.BadParameter("no active browser session")
	}
	target, err := c.resolve(path)
	if err != nil {
		return trace.Wrap(err)
	}
	c.WithField("url", target).Debug("Open page.")
	return trace.Wrap(c.session.Navigate(target))
}

func (c *Case) resolve(path string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", trace.BadParameter("invalid path %q: %v", path, err)
	}
	if ref.IsAbs() || c.baseURL == "" {
		return ref.String(), nil
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", trace.BadParameter("invalid base URL %q: %v", c.baseURL, err)
	}
	return base.ResolveReference(ref).String(), nil
}

func (c *Case) failSetup(format string, args ...interface{}) error {
	c.setupErr = NotApplicable(format, args...)
	c.WithError(c.setupErr).Warn("Test case is not applicable.")
	return c.setupErr
}

func (c *Case) initiateSession(ctx context.Context) error {
	if c.browserString == "" {
		return c.failSetup("No browser to be used was specified.")
	}
	c.ApplyBrowserDefaults()
	if err := c.openSession(ctx); err != nil {
		return c.failSetup("%v", trace.UserMessage(err))
	}
	return nil
}

// ApplyBrowserDefaults sets the command line flags required by the browser
func (c *Case) ApplyBrowserDefaults() {
	if strings.HasSuffix(c.browserString, defaults.ChromeBrowserSuffix) {
		c.commandLineFlags = defaults.ChromeCommandLineFlags
	}
}

// DesiredCapabilities returns the capabilities a new session is requested with
func (c *Case) DesiredCapabilities() (selenium.Capabilities, error) {
	b, err := browser.Detect(c.browserString, c.browserStrings())
	if err != nil {
		return nil, trace.Wrap(err)
	}
	caps, err := browser.Capabilities(b, c.startOptions())
	return caps, trace.Wrap(err)
}

func (c *Case) openSession(ctx context.Context) error {
	caps, err := c.DesiredCapabilities()
	if err != nil {
		return trace.Wrap(err)
	}
	endpoint, err := c.endpoint()
	if err != nil {
		return trace.Wrap(err)
	}

	id := uuid.NewV4().String()
	logger := c.WithFields(logrus.Fields{
		constants.FieldSession: id,
		constants.FieldBrowser: c.browserString,
	})
	conf := c.env.Config()
	s, err := session.Open(ctx, session.Config{
		Dialer:       c.dialer,
		Endpoint:     endpoint,
		Capabilities: caps,
		Timeout:      conf.Timeout.Duration,
		Attempts:     conf.ConnectAttempts,
		FieldLogger:  logger,
	})
	if err != nil {
		return trace.Wrap(err)
	}
	c.session = s
	c.sessionID = id
	logger.Info("Session started.")

	// hide 'always on top' windows, otherwise screenshots capture the desktop
	if c.BrowserType() == browser.Safari {
		if err := s.SendNativeKey(selenium.F11Key); err != nil {
			logger.WithError(err).Warn("Failed to hide open windows.")
		}
	}
	return nil
}

func (c *Case) browserStrings() config.BrowserStrings {
	return config.BrowserStrings{
		Firefox:          c.env.PropertyOr(constants.PropertyBrowserFirefox, ""),
		InternetExplorer: c.env.PropertyOr(constants.PropertyBrowserInternetExplorer, ""),
		GoogleChrome:     c.env.PropertyOr(constants.PropertyBrowserGoogleChrome, ""),
		Safari:           c.env.PropertyOr(constants.PropertyBrowserSafari, ""),
	}
}

func (c *Case) endpoint() (session.Endpoint, error) {
	host := c.env.PropertyOr(constants.PropertySeleniumHost, defaults.SeleniumHost)
	value := c.env.PropertyOr(constants.PropertySeleniumPort, strconv.Itoa(defaults.SeleniumPort))
	port, err := strconv.Atoi(value)
	if err != nil {
		return session.Endpoint{}, trace.BadParameter("invalid %v %q", constants.PropertySeleniumPort, value)
	}
	return session.Endpoint{Host: host, Port: port}, nil
}

func (c *Case) startOptions() browser.Options {
	return browser.Options{
		CommandLineFlags:        c.commandLineFlags,
		CaptureNetworkTraffic:   c.needCaptureNetworkTraffic,
		AddCustomRequestHeaders: c.addCustomRequestHeaders,
	}
}

// WebDriverURL returns the address of the remote WebDriver hub
func (c *Case) WebDriverURL() (string, error) {
	endpoint, err := c.endpoint()
	if err != nil {
		return "", trace.Wrap(err)
	}
	return endpoint.URL(), nil
}

// BrowserStartString returns the legacy start options string for the browser.
// It is empty if no start option is set
func (c *Case) BrowserStartString() string {
	return browser.StartString(c.startOptions())
}

// BrowserType returns the browser identified by the browser string
func (c *Case) BrowserType() browser.Browser {
	b, _ := browser.Detect(c.browserString, c.browserStrings())
	return b
}

// Session returns the active browser session or nil
func (c *Case) Session() session.Session {
	return c.session
}

// Environment returns the environment helper
func (c *Case) Environment() *environment.Helper {
	return c.env
}

// Execution returns the execution data the test case reports into
func (c *Case) Execution() *report.Execution {
	return c.exec
}

// SetupError returns the error that made the test case not applicable during setup
func (c *Case) SetupError() error {
	return c.setupErr
}

func (c *Case) BrowserString() string {
	return c.browserString
}

// SetBrowserString sets the browser string identifying the browser to use, e.g. "*googlechrome"
func (c *Case) SetBrowserString(browserString string) string {
	c.browserString = browserString
	return c.browserString
}

func (c *Case) BaseURL() string {
	return c.baseURL
}

func (c *Case) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// NeedCaptureNetworkTraffic returns whether the browser records its network traffic
func (c *Case) NeedCaptureNetworkTraffic() bool {
	return c.needCaptureNetworkTraffic
}

// SetNeedCaptureNetworkTraffic enables recording of the browser network traffic.
// Capturing implies AddCustomRequestHeaders
func (c *Case) SetNeedCaptureNetworkTraffic(capture bool) {
	c.needCaptureNetworkTraffic = capture
}

func (c *Case) AddCustomRequestHeaders() bool {
	return c.addCustomRequestHeaders
}

// SetAddCustomRequestHeaders allows the browser to add custom headers to requests
func (c *Case) SetAddCustomRequestHeaders(add bool) {
	c.addCustomRequestHeaders = add
}

// CommandLineFlags returns the flags passed to the browser binary
func (c *Case) CommandLineFlags() string {
	return c.commandLineFlags
}

func (c *Case) SetCommandLineFlags(flags string) {
	c.commandLineFlags = flags
}

func nextDumpNumber() int64 {
	return atomic.AddInt64(&dumpFileCount, 1)
}

package browser

import (
	"strings"

	"github.com/gepard-test/gepard-selenium/lib/config"

	"github.com/gravitational/trace"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
	"github.com/tebeka/selenium/log"
)

// Browser identifies a browser supported by the test cases
type Browser int

const (
	// Unknown is a browser that could not be detected
	Unknown Browser = iota
	// Firefox is Mozilla Firefox
	Firefox
	// InternetExplorer is Microsoft Internet Explorer
	InternetExplorer
	// Chrome is Google Chrome
	Chrome
	// Safari is Apple Safari
	Safari
)

// String returns the WebDriver browser name
func (r Browser) String() string {
	switch r {
	case Firefox:
		return "firefox"
	case InternetExplorer:
		return "internetExplorer"
	case Chrome:
		return "chrome"
	case Safari:
		return "safari"
	}
	return "unknown"
}

// Detect maps browserString to a browser by comparing it against the configured browser strings
func Detect(browserString string, known config.BrowserStrings) (Browser, error) {
	if browserString == "" {
		return Unknown, trace.BadParameter("No browser to be used was specified.")
	}
	if known.GoogleChrome == "" || known.Firefox == "" ||
		known.InternetExplorer == "" || known.Safari == "" {
		return Unknown, trace.NotFound("Gepard property values for Selenium Browsers are not available.")
	}
	switch browserString {
	case known.GoogleChrome:
		return Chrome, nil
	case known.Firefox:
		return Firefox, nil
	case known.InternetExplorer:
		return InternetExplorer, nil
	case known.Safari:
		return Safari, nil
	}
	return Unknown, trace.BadParameter("Specified browser:'%v' is not supported.", browserString)
}

// Options defines the browser start options
type Options struct {
	// CommandLineFlags are passed to the browser binary
	CommandLineFlags string
	// CaptureNetworkTraffic enables recording of the browser network traffic
	CaptureNetworkTraffic bool
	// AddCustomRequestHeaders allows adding custom headers to the browser requests.
	// Implied by CaptureNetworkTraffic
	AddCustomRequestHeaders bool
}

// StartString formats options as a legacy browser start string,
// e.g. "commandLineFlags=--disable-web-security;captureNetworkTraffic=true".
// Returns an empty string if no option is set
func StartString(opts Options) string {
	var parts []string
	if strings.TrimSpace(opts.CommandLineFlags) != "" {
		parts = append(parts, "commandLineFlags="+opts.CommandLineFlags)
	}
	if opts.CaptureNetworkTraffic {
		parts = append(parts, "captureNetworkTraffic=true")
	}
	if opts.AddCustomRequestHeaders && !opts.CaptureNetworkTraffic {
		parts = append(parts, "addCustomRequestHeaders=true")
	}
	return strings.Join(parts, ";")
}

// Capabilities returns the desired capabilities to request a session for browser b with
func Capabilities(b Browser, opts Options) (selenium.Capabilities, error) {
	if b == Unknown {
		return nil, trace.BadParameter("unknown browser")
	}
	caps := selenium.Capabilities{"browserName": b.String()}
	args := strings.Fields(opts.CommandLineFlags)
	switch b {
	case Chrome:
		if len(args) != 0 {
			caps.AddChrome(chrome.Capabilities{Args: args})
		}
	case Firefox:
		caps["version"] = "ANY"
		if len(args) != 0 {
			caps.AddFirefox(firefox.Capabilities{Args: args})
		}
	}
	if opts.CaptureNetworkTraffic {
		caps.SetLogLevel(log.Performance, log.All)
	}
	if opts.AddCustomRequestHeaders || opts.CaptureNetworkTraffic {
		caps[CapabilityCustomRequestHeaders] = true
	}
	if start := StartString(opts); start != "" {
		caps[CapabilityStartOptions] = start
	}
	return caps, nil
}

const (
	// CapabilityStartOptions carries the legacy browser start string
	CapabilityStartOptions = "gepard:startOptions"
	// CapabilityCustomRequestHeaders marks sessions that may add custom request headers
	CapabilityCustomRequestHeaders = "gepard:addCustomRequestHeaders"
)

package browser

import (
	"testing"

	"github.com/gepard-test/gepard-selenium/lib/config"

	"github.com/gravitational/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
	"github.com/tebeka/selenium/log"
)

var knownStrings = config.BrowserStrings{
	Firefox:          "*firefox",
	InternetExplorer: "*iexplore",
	GoogleChrome:     "*googlechrome",
	Safari:           "*safari",
}

func TestDetect(t *testing.T) {
	var testCases = []struct {
		browserString string
		expected      Browser
	}{
		{browserString: "*firefox", expected: Firefox},
		{browserString: "*iexplore", expected: InternetExplorer},
		{browserString: "*googlechrome", expected: Chrome},
		{browserString: "*safari", expected: Safari},
	}
	for _, tc := range testCases {
		b, err := Detect(tc.browserString, knownStrings)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, b, tc.browserString)
	}
}

func TestDetectFailures(t *testing.T) {
	_, err := Detect("", knownStrings)
	require.Error(t, err)
	assert.Equal(t, "No browser to be used was specified.", trace.UserMessage(err))

	_, err = Detect("*opera", knownStrings)
	require.Error(t, err)
	assert.Equal(t, "Specified browser:'*opera' is not supported.", trace.UserMessage(err))

	_, err = Detect("*firefox", config.BrowserStrings{Firefox: "*firefox"})
	require.Error(t, err)
	assert.True(t, trace.IsNotFound(err))
}

func TestStartString(t *testing.T) {
	var testCases = []struct {
		comment  string
		opts     Options
		expected string
	}{
		{comment: "nothing set", opts: Options{}, expected: ""},
		{comment: "blank flags", opts: Options{CommandLineFlags: "  "}, expected: ""},
		{
			comment:  "flags only",
			opts:     Options{CommandLineFlags: "--disable-web-security"},
			expected: "commandLineFlags=--disable-web-security",
		},
		{
			comment:  "flags and capture",
			opts:     Options{CommandLineFlags: "--disable-web-security", CaptureNetworkTraffic: true},
			expected: "commandLineFlags=--disable-web-security;captureNetworkTraffic=true",
		},
		{
			comment:  "capture subsumes custom headers",
			opts:     Options{CaptureNetworkTraffic: true, AddCustomRequestHeaders: true},
			expected: "captureNetworkTraffic=true",
		},
		{
			comment:  "custom headers only",
			opts:     Options{AddCustomRequestHeaders: true},
			expected: "addCustomRequestHeaders=true",
		},
		{
			comment:  "flags and custom headers",
			opts:     Options{CommandLineFlags: "-private", AddCustomRequestHeaders: true},
			expected: "commandLineFlags=-private;addCustomRequestHeaders=true",
		},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, StartString(tc.opts), tc.comment)
	}
}

func TestCapabilities(t *testing.T) {
	caps, err := Capabilities(Chrome, Options{CommandLineFlags: "--disable-web-security"})
	require.NoError(t, err)
	assert.Equal(t, "chrome", caps["browserName"])
	assert.Equal(t, chrome.Capabilities{Args: []string{"--disable-web-security"}}, caps[chrome.CapabilitiesKey])
	assert.Equal(t, "commandLineFlags=--disable-web-security", caps[CapabilityStartOptions])

	caps, err = Capabilities(Firefox, Options{CommandLineFlags: "-private", CaptureNetworkTraffic: true})
	require.NoError(t, err)
	assert.Equal(t, "firefox", caps["browserName"])
	assert.Equal(t, "ANY", caps["version"])
	assert.Equal(t, firefox.Capabilities{Args: []string{"-private"}}, caps[firefox.CapabilitiesKey])
	assert.Equal(t, log.Capabilities{log.Performance: log.All}, caps[log.CapabilitiesKey])
	assert.Equal(t, true, caps[CapabilityCustomRequestHeaders])

	caps, err = Capabilities(InternetExplorer, Options{})
	require.NoError(t, err)
	assert.Equal(t, selenium.Capabilities{"browserName": "internetExplorer"}, caps)

	caps, err = Capabilities(Safari, Options{AddCustomRequestHeaders: true})
	require.NoError(t, err)
	assert.Equal(t, "safari", caps["browserName"])
	assert.Equal(t, true, caps[CapabilityCustomRequestHeaders])

	_, err = Capabilities(Unknown, Options{})
	require.Error(t, err)
}

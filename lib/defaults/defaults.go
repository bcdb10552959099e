package defaults

import "time"

const (
	// SeleniumHost is the Selenium server host used when none is configured
	SeleniumHost = "localhost"
	// SeleniumPort is the Selenium server port used when none is configured
	SeleniumPort = 4444
	// WebDriverScheme is the URL scheme of the remote WebDriver endpoint
	WebDriverScheme = "http"
	// WebDriverPath is the path of the remote WebDriver endpoint on the Selenium server
	WebDriverPath = "/wd/hub"

	// Timeout is the page load timeout applied to every new browser session
	Timeout = 30000 * time.Millisecond

	// ConnectAttempts defines the number of attempts to open a session
	ConnectAttempts = 1
	// ConnectRetryDelay defines the initial interval between session connect attempts
	ConnectRetryDelay = 2 * time.Second
	// ConnectRetryMaxDelay caps the interval between session connect attempts
	ConnectRetryMaxDelay = 30 * time.Second

	// ChromeCommandLineFlags are forced for browser strings ending in ChromeBrowserSuffix
	ChromeCommandLineFlags = "--disable-web-security"
	// ChromeBrowserSuffix identifies legacy google chrome browser strings
	ChromeBrowserSuffix = "*googlechrome"

	// BrowserStringFirefox is the default browser string for Firefox
	BrowserStringFirefox = "*firefox"
	// BrowserStringInternetExplorer is the default browser string for Internet Explorer
	BrowserStringInternetExplorer = "*iexplore"
	// BrowserStringGoogleChrome is the default browser string for Chrome
	BrowserStringGoogleChrome = "*googlechrome"
	// BrowserStringSafari is the default browser string for Safari
	BrowserStringSafari = "*safari"

	// Driver is the session backend used when none is configured
	Driver = "selenium"

	// WindowWidth and WindowHeight size the window for backends without a maximize command
	WindowWidth  = 1920
	WindowHeight = 1080

	// DumpFilePrefix is the file name prefix of page source dumps
	DumpFilePrefix = "dump"
	// ScreenshotSuffix is appended to the dump file name to name its screenshot
	ScreenshotSuffix = ".png"
)

package constants

import "os"

const (
	// PropertySeleniumHost names the property holding the Selenium server host
	PropertySeleniumHost = "gepard.selenium.host"
	// PropertySeleniumPort names the property holding the Selenium server port
	PropertySeleniumPort = "gepard.selenium.port"

	// PropertyBrowserFirefox names the property holding the Firefox browser string
	PropertyBrowserFirefox = "gepard.selenium.browserString.FF"
	// PropertyBrowserInternetExplorer names the property holding the Internet Explorer browser string
	PropertyBrowserInternetExplorer = "gepard.selenium.browserString.IE"
	// PropertyBrowserGoogleChrome names the property holding the Chrome browser string
	PropertyBrowserGoogleChrome = "gepard.selenium.browserString.GoogleChrome"
	// PropertyBrowserSafari names the property holding the Safari browser string
	PropertyBrowserSafari = "gepard.selenium.browserString.Safari"

	// EnvConfigFile names the environment variable with the path to the configuration file
	EnvConfigFile = "GEPARD_CONFIG_FILE"

	// FieldSession defines a logging field with the session correlation id
	FieldSession = "session"
	// FieldBrowser defines a logging field with the browser string
	FieldBrowser = "browser"
	// FieldTestClass defines a logging field with the test class name
	FieldTestClass = "class"

	// SharedReadWriteMask is a mask for a shared file with read/write access for everyone
	SharedReadWriteMask os.FileMode = 0666
)

// Package environment resolves the settings of the environment under test
// and the named gepard properties
package environment

import (
	"strconv"

	"github.com/gepard-test/gepard-selenium/lib/config"
	"github.com/gepard-test/gepard-selenium/lib/constants"
)

// Helper gives test cases access to the active test environment
type Helper struct {
	config *config.Config
}

// New returns a helper for the given configuration
func New(config *config.Config) *Helper {
	return &Helper{config: config}
}

// Config returns the underlying configuration
func (r *Helper) Config() *config.Config {
	return r.config
}

// TestEnvironmentURL returns the entry point of the active test environment
func (r *Helper) TestEnvironmentURL() string {
	return r.config.ActiveEnvironment().URL
}

// TestEnvironmentBrowser returns the browser string of the active test environment
func (r *Helper) TestEnvironmentBrowser() string {
	return r.config.ActiveEnvironment().Browser
}

// Property returns the value of the named property.
// Free-form properties take precedence over the typed configuration
func (r *Helper) Property(key string) (value string, ok bool) {
	if value, ok = r.config.Properties[key]; ok {
		return value, true
	}
	value = r.typed(key)
	return value, value != ""
}

// PropertyOr returns the value of the named property or def if it is not set
func (r *Helper) PropertyOr(key, def string) string {
	if value, ok := r.Property(key); ok {
		return value
	}
	return def
}

func (r *Helper) typed(key string) string {
	switch key {
	case constants.PropertySeleniumHost:
		return r.config.Selenium.Host
	case constants.PropertySeleniumPort:
		if r.config.Selenium.Port == 0 {
			return ""
		}
		return strconv.Itoa(r.config.Selenium.Port)
	case constants.PropertyBrowserFirefox:
		return r.config.BrowserStrings.Firefox
	case constants.PropertyBrowserInternetExplorer:
		return r.config.BrowserStrings.InternetExplorer
	case constants.PropertyBrowserGoogleChrome:
		return r.config.BrowserStrings.GoogleChrome
	case constants.PropertyBrowserSafari:
		return r.config.BrowserStrings.Safari
	}
	return ""
}

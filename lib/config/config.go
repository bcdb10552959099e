package config

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/gepard-test/gepard-selenium/lib/constants"
	"github.com/gepard-test/gepard-selenium/lib/defaults"

	"github.com/gravitational/configure"
	"github.com/gravitational/trace"
	"gopkg.in/go-playground/validator.v9"
	"gopkg.in/yaml.v2"
)

// Config describes the test environments and the Selenium server
// the test cases are executed against
type Config struct {
	// Environment selects the active entry from Environments
	Environment string `json:"environment" yaml:"environment" env:"GEPARD_ENVIRONMENT"`
	// Environments lists the known test environments by name
	Environments map[string]TestEnvironment `json:"environments" yaml:"environments" validate:"dive"`
	// BaseURL overrides the URL of the active test environment
	BaseURL string `json:"base_url" yaml:"base_url" env:"GEPARD_BASE_URL" validate:"omitempty,url"`
	// Browser overrides the browser string of the active test environment
	Browser string `json:"browser" yaml:"browser" env:"GEPARD_BROWSER"`
	// Selenium specifies the remote Selenium server
	Selenium Selenium `json:"selenium" yaml:"selenium"`
	// BrowserStrings maps supported browsers to the browser strings identifying them
	BrowserStrings BrowserStrings `json:"browser_strings" yaml:"browser_strings"`
	// Properties holds free-form gepard properties.
	// Values here take precedence over the typed settings above
	Properties map[string]string `json:"properties" yaml:"properties"`
	// Driver selects the session backend
	Driver string `json:"driver" yaml:"driver" env:"GEPARD_DRIVER" validate:"omitempty,oneof=selenium agouti"`
	// Timeout is the page load timeout applied to new sessions
	Timeout Timeout `json:"timeout" yaml:"timeout" env:"GEPARD_TIMEOUT"`
	// ConnectAttempts is the number of attempts to open a session before giving up
	ConnectAttempts int `json:"connect_attempts" yaml:"connect_attempts" env:"GEPARD_CONNECT_ATTEMPTS" validate:"gte=0"`
}

// TestEnvironment describes a single environment under test
type TestEnvironment struct {
	// URL is the entry point of the application under test
	URL string `json:"url" yaml:"url" validate:"omitempty,url"`
	// Browser is the browser string to run the tests with
	Browser string `json:"browser" yaml:"browser"`
}

// Selenium specifies the location of the Selenium server
type Selenium struct {
	Host string `json:"host" yaml:"host" env:"GEPARD_SELENIUM_HOST"`
	Port int    `json:"port" yaml:"port" env:"GEPARD_SELENIUM_PORT" validate:"gte=0,lte=65535"`
}

// BrowserStrings lists the browser strings identifying each supported browser
type BrowserStrings struct {
	Firefox          string `json:"firefox" yaml:"firefox" env:"GEPARD_BROWSER_STRING_FF"`
	InternetExplorer string `json:"internet_explorer" yaml:"internet_explorer" env:"GEPARD_BROWSER_STRING_IE"`
	GoogleChrome     string `json:"google_chrome" yaml:"google_chrome" env:"GEPARD_BROWSER_STRING_CHROME"`
	Safari           string `json:"safari" yaml:"safari" env:"GEPARD_BROWSER_STRING_SAFARI"`
}

// Load reads configuration from input, applies environment overrides
// and validates the result
func Load(input io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(input)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, trace.BadParameter("failed to parse configuration: %v", err)
	}

	if err := configure.ParseEnv(&config); err != nil {
		return nil, trace.Wrap(err)
	}

	if err := config.CheckAndSetDefaults(); err != nil {
		return nil, trace.Wrap(err)
	}
	return &config, nil
}

// LoadFile reads configuration from the file at path
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	defer f.Close()
	config, err := Load(f)
	if err != nil {
		return nil, trace.Wrap(err, "failed to load %v", path)
	}
	return config, nil
}

// FromEnv reads configuration from the file named by GEPARD_CONFIG_FILE
func FromEnv() (*Config, error) {
	path := os.Getenv(constants.EnvConfigFile)
	if path == "" {
		return nil, trace.NotFound("set path to configuration as %v", constants.EnvConfigFile)
	}
	return LoadFile(path)
}

// CheckAndSetDefaults validates this configuration and sets defaults
// for unspecified values
func (r *Config) CheckAndSetDefaults() error {
	if err := validator.New().Struct(r); err != nil {
		return trace.Wrap(err)
	}

	if r.Environment != "" && len(r.Environments) != 0 {
		if _, ok := r.Environments[r.Environment]; !ok {
			return trace.NotFound("test environment %q is not defined", r.Environment)
		}
	}

	if r.Selenium.Host == "" {
		r.Selenium.Host = defaults.SeleniumHost
	}
	if r.Selenium.Port == 0 {
		r.Selenium.Port = defaults.SeleniumPort
	}
	if r.BrowserStrings.Firefox == "" {
		r.BrowserStrings.Firefox = defaults.BrowserStringFirefox
	}
	if r.BrowserStrings.InternetExplorer == "" {
		r.BrowserStrings.InternetExplorer = defaults.BrowserStringInternetExplorer
	}
	if r.BrowserStrings.GoogleChrome == "" {
		r.BrowserStrings.GoogleChrome = defaults.BrowserStringGoogleChrome
	}
	if r.BrowserStrings.Safari == "" {
		r.BrowserStrings.Safari = defaults.BrowserStringSafari
	}
	if r.Driver == "" {
		r.Driver = defaults.Driver
	}
	if r.Timeout.Duration == 0 {
		r.Timeout.Duration = defaults.Timeout
	}
	if r.ConnectAttempts == 0 {
		r.ConnectAttempts = defaults.ConnectAttempts
	}
	return nil
}

// ActiveEnvironment returns the selected test environment with
// the top-level overrides applied
func (r *Config) ActiveEnvironment() TestEnvironment {
	env := r.Environments[r.Environment]
	if r.BaseURL != "" {
		env.URL = r.BaseURL
	}
	if r.Browser != "" {
		env.Browser = r.Browser
	}
	return env
}

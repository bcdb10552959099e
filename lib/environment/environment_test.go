package environment

import (
	"github.com/gepard-test/gepard-selenium/lib/config"
	"github.com/gepard-test/gepard-selenium/lib/constants"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Helper", func() {
	var (
		conf   *config.Config
		helper *Helper
	)

	BeforeEach(func() {
		conf = &config.Config{
			Environment: "staging",
			Environments: map[string]config.TestEnvironment{
				"staging": {URL: "http://staging.example.com", Browser: "*firefox"},
			},
			Selenium: config.Selenium{Host: "grid", Port: 4444},
			BrowserStrings: config.BrowserStrings{
				Firefox: "*firefox",
			},
		}
		helper = New(conf)
	})

	It("resolves the active test environment", func() {
		Expect(helper.TestEnvironmentURL()).To(Equal("http://staging.example.com"))
		Expect(helper.TestEnvironmentBrowser()).To(Equal("*firefox"))
	})

	It("applies top-level overrides", func() {
		conf.BaseURL = "http://override.example.com"
		conf.Browser = "*safari"
		Expect(helper.TestEnvironmentURL()).To(Equal("http://override.example.com"))
		Expect(helper.TestEnvironmentBrowser()).To(Equal("*safari"))
	})

	It("returns empty settings without an active environment", func() {
		conf.Environment = ""
		Expect(helper.TestEnvironmentURL()).To(BeEmpty())
		Expect(helper.TestEnvironmentBrowser()).To(BeEmpty())
	})

	It("serves well-known properties from typed settings", func() {
		Expect(helper.PropertyOr(constants.PropertySeleniumHost, "localhost")).To(Equal("grid"))
		Expect(helper.PropertyOr(constants.PropertySeleniumPort, "1")).To(Equal("4444"))
		value, ok := helper.Property(constants.PropertyBrowserFirefox)
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("*firefox"))
	})

	It("prefers free-form properties", func() {
		conf.Properties = map[string]string{constants.PropertySeleniumPort: "5555"}
		Expect(helper.PropertyOr(constants.PropertySeleniumPort, "1")).To(Equal("5555"))
	})

	It("reports unset properties", func() {
		_, ok := helper.Property(constants.PropertyBrowserSafari)
		Expect(ok).To(BeFalse())
		Expect(helper.PropertyOr("gepard.unknown", "fallback")).To(Equal("fallback"))
	})
})

package e2e

import (
	"context"
	"io/ioutil"
	"path/filepath"

	"github.com/gepard-test/gepard-selenium/lib/report"
	"github.com/gepard-test/gepard-selenium/lib/session"
	"github.com/gepard-test/gepard-selenium/lib/testcase"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Selenium test case", func() {
	for _, driver := range []string{session.DriverSelenium, session.DriverAgouti} {
		driver := driver

		Context("with the "+driver+" driver", func() {
			var (
				c       *testcase.Case
				htmlLog *report.HTMLLog
			)

			BeforeEach(func() {
				var err error
				htmlLog, err = report.NewHTMLLog(filepath.Join(reportDir, driver, "method.html"))
				Expect(err).NotTo(HaveOccurred())

				dialer, err := session.NewDialer(driver)
				Expect(err).NotTo(HaveOccurred())

				c, err = testcase.New(testcase.Class{Name: "SmokeTest", Selenium: true},
					report.NewExecution(htmlLog), conf, testcase.WithDialer(dialer))
				Expect(err).NotTo(HaveOccurred())

				err = c.BeforeTestCase(context.TODO())
				if testcase.IsNotApplicable(err) {
					Skip(err.Error())
				}
				Expect(err).NotTo(HaveOccurred())
			})

			AfterEach(func() {
				Expect(c.AfterTestCase()).To(Succeed())
				Expect(htmlLog.Close()).To(Succeed())
			})

			It("should dump the start page", func() {
				Expect(c.Open("/")).To(Succeed())
				c.LogEvent("Start page", true)

				fileName, err := c.DumpSource(false)
				Expect(err).NotTo(HaveOccurred())
				data, err := ioutil.ReadFile(fileName)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(data)).To(HavePrefix("<!-- Dumped on "))
			})

			It("should survive a browser restart", func() {
				Expect(c.RestartBrowser(context.TODO())).To(Succeed())
				Expect(c.Session()).NotTo(BeNil())
				Expect(c.Open("/")).To(Succeed())
			})
		})
	}
})

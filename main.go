package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gepard-test/gepard-selenium/lib/report"
	"github.com/gepard-test/gepard-selenium/lib/testcase"
	"github.com/gepard-test/gepard-selenium/lib/xlog"

	"github.com/gravitational/configure/cstrings"
	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	if err := run(); err != nil {
		log.Errorf(trace.DebugReport(err))
		os.Exit(255)
	}
}

func run() error {
	args, _ := cstrings.SplitAt(os.Args, "--")

	var (
		app     = kingpin.New("gepard-selenium", "Selenium test case runner")
		debug   = app.Flag("debug", "enable debug logging").Bool()
		logFile = app.Flag("log-file", "write the full log to this file").String()
		conf    = app.Flag("config", "path to the configuration file").Envar("GEPARD_CONFIG_FILE").String()

		ccheck        = app.Command("check", "open a browser session, load a page and dump it")
		ccheckPath    = ccheck.Flag("path", "page to open relative to the base URL").Default("/").String()
		ccheckOut     = ccheck.Flag("out", "report directory").Default("gepard-report").String()
		ccheckBrowser = ccheck.Flag("browser", "browser string overriding the test environment").String()

		ccaps        = app.Command("capabilities", "print the desired capabilities for a browser")
		ccapsBrowser = ccaps.Flag("browser", "browser string overriding the test environment").String()

		curl = app.Command("url", "print the remote WebDriver URL")
	)

	cmd, err := app.Parse(args[1:])
	if err != nil {
		return trace.Wrap(err)
	}

	level := log.InfoLevel
	if *debug {
		level = log.DebugLevel
	}
	logger, closeLog, err := newLogger(*logFile, level)
	if err != nil {
		return trace.Wrap(err)
	}
	defer closeLog()

	config, err := loadConfig(*conf)
	if err != nil {
		return trace.Wrap(err)
	}

	switch cmd {
	case ccheck.FullCommand():
		return check(config, logger, *ccheckPath, *ccheckOut, *ccheckBrowser)
	case ccaps.FullCommand():
		return capabilities(config, logger, *ccapsBrowser)
	case curl.FullCommand():
		c, err := testcase.New(testcase.Class{Name: "url", Selenium: true}, nil, config, testcase.WithLogger(logger))
		if err != nil {
			return trace.Wrap(err)
		}
		url, err := c.WebDriverURL()
		if err != nil {
			return trace.Wrap(err)
		}
		fmt.Println(url)
	}

	return nil
}

func check(config *configType, logger log.FieldLogger, path, out, browserString string) error {
	htmlLog, err := report.NewHTMLLog(filepath.Join(out, "check.html"))
	if err != nil {
		return trace.Wrap(err)
	}
	defer htmlLog.Close()

	class := testcase.Class{Name: "check", Selenium: true, Browser: browserString}
	c, err := testcase.New(class, report.NewExecution(htmlLog), config, testcase.WithLogger(logger))
	if err != nil {
		return trace.Wrap(err)
	}
	if err := c.BeforeTestCase(context.TODO()); err != nil {
		return trace.Wrap(err)
	}
	defer c.AfterTestCase()

	if err := c.Open(path); err != nil {
		return trace.Wrap(err)
	}
	c.LogEvent(fmt.Sprintf("Opened %v", path), true)
	logger.WithField("report", htmlLog.LogPath()).Info("Check completed.")
	return nil
}

func capabilities(config *configType, logger log.FieldLogger, browserString string) error {
	class := testcase.Class{Name: "capabilities", Selenium: true, Browser: browserString}
	c, err := testcase.New(class, nil, config, testcase.WithLogger(logger))
	if err != nil {
		return trace.Wrap(err)
	}
	if browserString != "" {
		c.SetBrowserString(browserString)
	}
	c.ApplyBrowserDefaults()
	caps, err := c.DesiredCapabilities()
	if err != nil {
		return trace.Wrap(err)
	}
	logger.WithField("browser", c.BrowserType()).Debug("Desired capabilities.")
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return trace.Wrap(enc.Encode(caps))
}

func newLogger(path string, level log.Level) (log.FieldLogger, func(), error) {
	if path == "" {
		log.SetLevel(level)
		log.SetFormatter(&trace.TextFormatter{})
		return log.StandardLogger(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, trace.ConvertSystemError(err)
	}
	return xlog.ConsoleLogger(f, level), func() { f.Close() }, nil
}

package testcase

import (
	"bytes"
	"fmt"
	"html"
	"path"
	"strings"

	"github.com/gepard-test/gepard-selenium/lib/defaults"
	"github.com/gepard-test/gepard-selenium/lib/system"

	"github.com/dustin/go-humanize"
	"github.com/gravitational/trace"
)

// LogComment writes a comment to the test output and the HTML log
func (c *Case) LogComment(text string) {
	c.exec.AddSysOut(text)
	c.LogEvent(fmt.Sprintf(`<font color="#508050">%v</font>`, text), false)
}

// LogEvent writes an event message to the test output and the HTML log.
// Messages formatted with a <font> tag are only written to the HTML log.
// With makeDump, the page source and a screenshot are saved next to the log
// and linked from the message
func (c *Case) LogEvent(text string, makeDump bool) {
	if !strings.HasPrefix(text, "<font") {
		c.exec.AddSysOut(text)
	}
	log := c.exec.TestMethodHTMLLog()
	if log == nil {
		return
	}
	var links string
	if makeDump {
		links = c.dump()
	}
	row := fmt.Sprintf(`<tr><td>&nbsp;</td><td bgcolor="#F0F0F0">%v%v</td></tr>`+"\n", text, links)
	if err := log.InsertText(row); err != nil {
		c.WithError(err).Warn("Failed to write HTML log.")
	}
}

// dump saves the escaped and the raw page source and a screenshot and
// returns the HTML links to them
func (c *Case) dump() string {
	sourceFile, err := c.DumpSource(true)
	if err != nil {
		c.WithError(err).Warn("Dump failed.")
		return " <small>[Dump failed]</small>"
	}
	if c.session != nil {
		if err := c.screenshot(sourceFile + defaults.ScreenshotSuffix); err != nil {
			c.WithError(err).Warn("Dump failed.")
			return " <small>[Dump failed]</small>"
		}
	}
	viewFile, err := c.DumpSource(false)
	if err != nil {
		c.WithError(err).Warn("Dump failed.")
		return " <small>[Dump failed]</small>"
	}
	source, view := baseName(sourceFile), baseName(viewFile)
	return fmt.Sprintf(` <small>[<a href="%v" target="_new">source</a>]`+
		` [<a href="%v" target="_new">view</a>]`+
		` [<a href="%v%v" target="_new">screenshot</a>]</small>`,
		source, view, source, defaults.ScreenshotSuffix)
}

func (c *Case) screenshot(fileName string) error {
	if err := c.session.Maximize(); err != nil {
		return trace.Wrap(err)
	}
	image, err := c.session.Screenshot()
	if err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(system.WriteFile(fileName, image))
}

// DumpSourceTo writes the source of the current page to fileName.
// With escapeHTML, the source is escaped and wrapped into a viewable HTML page
func (c *Case) DumpSourceTo(fileName string, escapeHTML bool) error {
	if c.session == nil {
		return trace.BadParameter("no active browser session")
	}
	location, err := c.session.URL()
	if err != nil {
		return trace.Wrap(err)
	}
	source, err := c.session.HTML()
	if err != nil {
		return trace.Wrap(err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<!-- Dumped on %v, URL: %v -->\n", c.clock.Now().Format(dumpTimeFormat), location)
	if escapeHTML {
		buf.WriteString("<html><body><pre>\n")
		buf.WriteString(html.EscapeString(source))
		buf.WriteString("\n</pre></body></html>\n")
	} else {
		buf.WriteString(source)
	}

	if err := system.WriteFile(fileName, buf.Bytes()); err != nil {
		return trace.Wrap(err)
	}
	c.WithField("file", fileName).Debugf("Dumped %v of page source.", humanize.Bytes(uint64(buf.Len())))
	return nil
}

// DumpSource writes the source of the current page to a new numbered file
// in the directory of the HTML log and returns the path of the file
func (c *Case) DumpSource(escapeHTML bool) (string, error) {
	log := c.exec.TestMethodHTMLLog()
	if log == nil {
		return "", trace.NotFound("no HTML log to dump the page source to")
	}
	logPath := log.LogPath()
	pos := strings.LastIndex(strings.Replace(logPath, `\`, "/", -1), "/")
	name := fmt.Sprintf("%v%v.html", defaults.DumpFilePrefix, nextDumpNumber())

	fileName := name
	if pos != -1 {
		fileName = logPath[:pos] + "/" + name
	}
	if err := c.DumpSourceTo(fileName, escapeHTML); err != nil {
		return "", trace.Wrap(err)
	}
	return fileName, nil
}

func baseName(fileName string) string {
	return path.Base(strings.Replace(fileName, `\`, "/", -1))
}

// dumpTimeFormat formats the dump timestamp, e.g. "10/16/26 3:04 PM"
const dumpTimeFormat = "1/2/06 3:04 PM"

package session

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/gepard-test/gepard-selenium/lib/defaults"

	"github.com/gravitational/trace"
	"github.com/sclevine/agouti"
	"github.com/tebeka/selenium"
)

// DialAgouti opens a session using the github.com/sclevine/agouti client
func DialAgouti(endpoint string, caps selenium.Capabilities) (Session, error) {
	page, err := agouti.NewPage(endpoint, agouti.Desired(agouti.Capabilities(caps)))
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return &pageSession{page: page}, nil
}

type pageSession struct {
	page *agouti.Page
}

func (r *pageSession) Navigate(url string) error {
	return trace.Wrap(r.page.Navigate(url))
}

func (r *pageSession) URL() (string, error) {
	url, err := r.page.URL()
	return url, trace.Wrap(err)
}

func (r *pageSession) HTML() (string, error) {
	source, err := r.page.HTML()
	return source, trace.Wrap(err)
}

// Screenshot goes through a temporary file as agouti only saves screenshots to disk
func (r *pageSession) Screenshot() ([]byte, error) {
	f, err := ioutil.TempFile("", "gepard-screenshot-")
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	f.Close()
	defer os.Remove(f.Name())

	if err := r.page.Screenshot(f.Name()); err != nil {
		return nil, trace.Wrap(err)
	}
	image, err := ioutil.ReadFile(f.Name())
	return image, trace.ConvertSystemError(err)
}

func (r *pageSession) Maximize() error {
	return trace.Wrap(r.page.Size(defaults.WindowWidth, defaults.WindowHeight))
}

func (r *pageSession) SendNativeKey(key string) error {
	return trace.BadParameter("native key presses are not supported by the agouti driver")
}

func (r *pageSession) SetTimeout(timeout time.Duration) error {
	return trace.Wrap(r.page.SetPageLoad(int(timeout / time.Millisecond)))
}

func (r *pageSession) Quit() error {
	return trace.Wrap(r.page.Destroy())
}

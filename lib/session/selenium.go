package session

import (
	"time"

	"github.com/gravitational/trace"
	"github.com/tebeka/selenium"
)

// DialSelenium opens a session using the github.com/tebeka/selenium client
func DialSelenium(endpoint string, caps selenium.Capabilities) (Session, error) {
	remote, err := selenium.NewRemote(caps, endpoint)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return &remoteSession{WebDriver: remote}, nil
}

type remoteSession struct {
	selenium.WebDriver
}

func (r *remoteSession) Navigate(url string) error {
	return trace.Wrap(r.Get(url))
}

func (r *remoteSession) URL() (string, error) {
	url, err := r.CurrentURL()
	return url, trace.Wrap(err)
}

func (r *remoteSession) HTML() (string, error) {
	source, err := r.PageSource()
	return source, trace.Wrap(err)
}

func (r *remoteSession) Screenshot() ([]byte, error) {
	image, err := r.WebDriver.Screenshot()
	return image, trace.Wrap(err)
}

func (r *remoteSession) Maximize() error {
	return trace.Wrap(r.MaximizeWindow(""))
}

func (r *remoteSession) SendNativeKey(key string) error {
	if err := r.KeyDown(key); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(r.KeyUp(key))
}

func (r *remoteSession) SetTimeout(timeout time.Duration) error {
	return trace.Wrap(r.SetPageLoadTimeout(timeout))
}

func (r *remoteSession) Quit() error {
	return trace.Wrap(r.WebDriver.Quit())
}

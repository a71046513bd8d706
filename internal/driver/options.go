package driver

import (
	"fmt"
	"time"
)

// Options configures a launched browser.
type Options struct {
	Width      int
	Height     int
	Headless   bool
	NoSandbox  bool
	Timeout    time.Duration // navigation timeout
	ProfileDir string        // Chrome/Chromium profile directory for authenticated sessions
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = 1280
	}
	if o.Height == 0 {
		o.Height = 720
	}
	if o.Timeout == 0 {
		o.Timeout = 30 * time.Second
	}
	return o
}

// Launch starts a browser using the named backend: "rod" or "playwright".
func Launch(backend string, opts Options) (Browser, error) {
	var (
		b   Browser
		err error
	)
	switch backend {
	case "", "rod":
		b, err = LaunchRod(opts)
	case "playwright":
		b, err = LaunchPlaywright(opts)
	default:
		return nil, fmt.Errorf("unknown driver: %s (supported: rod, playwright)", backend)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

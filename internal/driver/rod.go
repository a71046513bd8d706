package driver

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/v0xg/devhub-listing/internal/locator"
)

// RodBrowser wraps the Rod browser and its single page.
type RodBrowser struct {
	browser *rod.Browser
	page    *rod.Page
	timeout time.Duration
}

// LaunchRod starts a local Chromium through Rod's launcher and opens a blank
// page sized to the viewport in opts.
func LaunchRod(opts Options) (*RodBrowser, error) {
	opts = opts.withDefaults()

	l := launcher.New().Headless(opts.Headless).NoSandbox(opts.NoSandbox)
	if path, has := launcher.LookPath(); has {
		l = l.Bin(path)
	}
	if opts.ProfileDir != "" {
		l = l.UserDataDir(opts.ProfileDir)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chromium: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("open page: %w", err)
	}

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             opts.Width,
		Height:            opts.Height,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("set viewport: %w", err)
	}

	return &RodBrowser{browser: browser, page: page, timeout: opts.Timeout}, nil
}

// Session returns a Session bound to the browser's page.
func (b *RodBrowser) Session() Session {
	return &RodSession{page: b.page, timeout: b.timeout}
}

// Page returns the underlying Rod page
func (b *RodBrowser) Page() *rod.Page {
	return b.page
}

// Close cleans up browser resources
func (b *RodBrowser) Close() error {
	if b.page != nil {
		b.page.Close()
	}
	if b.browser != nil {
		return b.browser.Close()
	}
	return nil
}

// RodSession drives a Rod page. Lookups never wait: Rod's Element would
// block until the selector appears, so Has/Elements are used instead.
type RodSession struct {
	page    *rod.Page
	timeout time.Duration
}

// NewRodSession wraps a page created by test setup.
func NewRodSession(page *rod.Page) *RodSession {
	return &RodSession{page: page, timeout: 30 * time.Second}
}

func (s *RodSession) Navigate(url string) error {
	page := s.page.Timeout(s.timeout)
	defer page.CancelTimeout()

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait for %s to load: %w", url, err)
	}
	return nil
}

func (s *RodSession) Find(loc locator.Locator) (Element, error) {
	var (
		has bool
		el  *rod.Element
		err error
	)
	if loc.IsXPath() {
		has, el, err = s.page.HasX(loc.Value)
	} else {
		has, el, err = s.page.Has(loc.Selector())
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", loc, err)
	}
	if !has {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, loc)
	}
	return &rodElement{el: el}, nil
}

func (s *RodSession) FindAll(loc locator.Locator) ([]Element, error) {
	var (
		els rod.Elements
		err error
	)
	if loc.IsXPath() {
		els, err = s.page.ElementsX(loc.Value)
	} else {
		els, err = s.page.Elements(loc.Selector())
	}
	if err != nil {
		return nil, fmt.Errorf("find all %s: %w", loc, err)
	}

	result := make([]Element, 0, len(els))
	for _, el := range els {
		result = append(result, &rodElement{el: el})
	}
	return result, nil
}

func (s *RodSession) Screenshot() ([]byte, error) {
	return s.page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
}

type rodElement struct {
	el *rod.Element
}

func (e *rodElement) Text() (string, error) {
	res, err := e.el.Eval(textOf)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

func (e *rodElement) Attribute(name string) (string, error) {
	v, err := e.el.Attribute(name)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

func (e *rodElement) Click() error {
	return e.el.Click(proto.InputMouseButtonLeft, 1)
}

// clearValue empties a form control and notifies its listeners.
const clearValue = `function () {
	this.value = '';
	this.dispatchEvent(new Event('input', {bubbles: true}));
}`

func (e *rodElement) Type(text string) error {
	if _, err := e.el.Eval(clearValue); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	return e.el.Input(text)
}

func (e *rodElement) Checked() (bool, error) {
	v, err := e.el.Property("checked")
	if err != nil {
		return false, err
	}
	return v.Bool(), nil
}

func (e *rodElement) Visible() (bool, error) {
	return e.el.Visible()
}

func (e *rodElement) Find(loc locator.Locator) (Element, error) {
	var (
		has bool
		el  *rod.Element
		err error
	)
	if loc.IsXPath() {
		has, el, err = e.el.HasX(loc.Value)
	} else {
		has, el, err = e.el.Has(loc.Selector())
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", loc, err)
	}
	if !has {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, loc)
	}
	return &rodElement{el: el}, nil
}

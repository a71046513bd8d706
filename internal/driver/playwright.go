package driver

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/v0xg/devhub-listing/internal/locator"
)

// PlaywrightBrowser holds a Playwright driver process and one page.
type PlaywrightBrowser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
}

// LaunchPlaywright starts Chromium through Playwright. The browser must be
// installed beforehand:
//
//	go run github.com/playwright-community/playwright-go/cmd/playwright install chromium
func LaunchPlaywright(opts Options) (*PlaywrightBrowser, error) {
	opts = opts.withDefaults()

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	var args []string
	if opts.NoSandbox {
		args = append(args, "--no-sandbox")
	}
	viewport := &playwright.Size{Width: opts.Width, Height: opts.Height}

	b := &PlaywrightBrowser{pw: pw}
	if opts.ProfileDir != "" {
		b.context, err = pw.Chromium.LaunchPersistentContext(opts.ProfileDir, playwright.BrowserTypeLaunchPersistentContextOptions{
			Headless: playwright.Bool(opts.Headless),
			Args:     args,
			Viewport: viewport,
		})
	} else {
		b.browser, err = pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
			Headless: playwright.Bool(opts.Headless),
			Args:     args,
		})
		if err == nil {
			b.context, err = b.browser.NewContext(playwright.BrowserNewContextOptions{Viewport: viewport})
		}
	}
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	b.page, err = b.context.NewPage()
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("open page: %w", err)
	}
	b.page.SetDefaultNavigationTimeout(float64(opts.Timeout.Milliseconds()))

	return b, nil
}

func (b *PlaywrightBrowser) Session() Session {
	return NewPlaywrightSession(b.page)
}

func (b *PlaywrightBrowser) Close() error {
	if b.context != nil {
		b.context.Close()
	}
	if b.browser != nil {
		b.browser.Close()
	}
	if b.pw != nil {
		return b.pw.Stop()
	}
	return nil
}

// PlaywrightSession drives a Playwright page.
type PlaywrightSession struct {
	page playwright.Page
}

// NewPlaywrightSession wraps a page created by test setup.
func NewPlaywrightSession(page playwright.Page) *PlaywrightSession {
	return &PlaywrightSession{page: page}
}

func (s *PlaywrightSession) Navigate(url string) error {
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	if err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

func (s *PlaywrightSession) Find(loc locator.Locator) (Element, error) {
	return firstOf(s.page.Locator(playwrightSelector(loc)), loc)
}

func (s *PlaywrightSession) FindAll(loc locator.Locator) ([]Element, error) {
	all, err := s.page.Locator(playwrightSelector(loc)).All()
	if err != nil {
		return nil, fmt.Errorf("find all %s: %w", loc, err)
	}

	result := make([]Element, 0, len(all))
	for _, l := range all {
		result = append(result, &playwrightElement{loc: l})
	}
	return result, nil
}

func (s *PlaywrightSession) Screenshot() ([]byte, error) {
	return s.page.Screenshot(playwright.PageScreenshotOptions{
		Type: playwright.ScreenshotTypePng,
	})
}

type playwrightElement struct {
	loc playwright.Locator
}

func (e *playwrightElement) Text() (string, error) {
	v, err := e.loc.Evaluate(textOf, nil)
	if err != nil {
		return "", err
	}
	s, _ := v.(string)
	return s, nil
}

func (e *playwrightElement) Attribute(name string) (string, error) {
	return e.loc.GetAttribute(name)
}

func (e *playwrightElement) Click() error {
	return e.loc.Click()
}

// Type uses Fill, which clears the field first.
func (e *playwrightElement) Type(text string) error {
	return e.loc.Fill(text)
}

func (e *playwrightElement) Checked() (bool, error) {
	return e.loc.IsChecked()
}

func (e *playwrightElement) Visible() (bool, error) {
	return e.loc.IsVisible()
}

func (e *playwrightElement) Find(loc locator.Locator) (Element, error) {
	return firstOf(e.loc.Locator(playwrightSelector(loc)), loc)
}

func firstOf(l playwright.Locator, loc locator.Locator) (Element, error) {
	n, err := l.Count()
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", loc, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, loc)
	}
	return &playwrightElement{loc: l.First()}, nil
}

func playwrightSelector(loc locator.Locator) string {
	if loc.IsXPath() {
		return "xpath=" + loc.Value
	}
	return "css=" + loc.Selector()
}

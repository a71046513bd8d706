// Package pagestest fakes the listing edit page on top of drivertest, so
// code built on the page objects can be tested without a browser.
package pagestest

import (
	"github.com/v0xg/devhub-listing/internal/driver/drivertest"
	"github.com/v0xg/devhub-listing/internal/pages"
)

// App is the server-side state behind the fake page.
type App struct {
	Name, URLEnd, ManifestURL, Summary, Email, Website string

	Categories    map[string]bool
	CategoryOrder []string
	DeviceTypes   map[string]bool
	DeviceOrder   []string
	MaxSummaryLen int // saves with a longer summary are rejected; 0 disables
}

// NewApp returns a listing with two categories and two device types checked.
func NewApp() *App {
	return &App{
		Name:          "Tiny Tetris",
		URLEnd:        "tiny-tetris",
		ManifestURL:   "https://tiny.example.com/manifest.webapp",
		Summary:       "Old text",
		Email:         "support@tiny.example.com",
		Website:       "https://tiny.example.com",
		Categories:    map[string]bool{"Games": true, "Social": true, "Music": false},
		CategoryOrder: []string{"Games", "Social", "Music"},
		DeviceTypes:   map[string]bool{"Desktop": true, "Mobile": false, "Tablet": true},
		DeviceOrder:   []string{"Desktop", "Mobile", "Tablet"},
	}
}

// EditPage wires a fake session so that clicks move it between the listing
// and the two forms the way the real page does.
type EditPage struct {
	App     *App
	Session *drivertest.Session

	// CategoryBoxes and DeviceBoxes hold the checkbox inputs of the open
	// basic info form, keyed by label.
	CategoryBoxes map[string]*drivertest.Node
	DeviceBoxes   map[string]*drivertest.Node

	listing, basic, support pages.Locators
}

// NewEditPage renders a on a fresh session with no form open.
func NewEditPage(a *App) *EditPage {
	p := &EditPage{
		App:     a,
		Session: drivertest.NewSession(),
		listing: pages.LocatorsFor(pages.KindListing),
		basic:   pages.LocatorsFor(pages.KindBasicInfo),
		support: pages.LocatorsFor(pages.KindSupportInfo),
	}
	p.showListing()
	return p
}

func text(v string) *drivertest.Node {
	return &drivertest.Node{Value: v}
}

func checked(order []string, state map[string]bool) []string {
	var out []string
	for _, n := range order {
		if state[n] {
			out = append(out, n)
		}
	}
	return out
}

func (p *EditPage) clear(table pages.Locators) {
	for _, loc := range table {
		p.Session.Remove(loc)
	}
}

func (p *EditPage) showListing() {
	s, a, l := p.Session, p.App, p.listing
	p.clear(p.basic)
	p.clear(p.support)

	s.Set(l[pages.FieldName], text(a.Name))
	s.Set(l[pages.FieldURLEnd], text(a.URLEnd))
	s.Set(l[pages.FieldManifestURL], text(a.ManifestURL))
	s.Set(l[pages.FieldSummary], text(a.Summary))
	s.Set(l[pages.FieldEmail], text(a.Email))
	s.Set(l[pages.FieldWebsite], text(a.Website))
	s.Set(l[pages.FieldCategories], text(drivertest.Joined(checked(a.CategoryOrder, a.Categories)...)))
	s.Set(l[pages.FieldDeviceTypes], text(drivertest.Joined(checked(a.DeviceOrder, a.DeviceTypes)...)))

	s.Set(l[pages.FieldEditBasicInfo], &drivertest.Node{OnClick: p.showBasicInfo})
	s.Set(l[pages.FieldEditSupportInfo], &drivertest.Node{OnClick: p.showSupportInfo})
}

func boxes(order []string, state map[string]bool) ([]*drivertest.Node, map[string]*drivertest.Node) {
	var items []*drivertest.Node
	inputs := map[string]*drivertest.Node{}
	for _, n := range order {
		item := drivertest.Checkbox(pages.CheckboxLabelLocator, pages.CheckboxInputLocator, " "+n+" ", state[n])
		items = append(items, item)
		inputs[n] = item.Child(pages.CheckboxInputLocator)
	}
	return items, inputs
}

func (p *EditPage) showBasicInfo() {
	s, a, b := p.Session, p.App, p.basic
	s.Set(b[pages.FieldName], text(a.Name))
	s.Set(b[pages.FieldURLEnd], text(a.URLEnd))
	s.Set(b[pages.FieldManifestURL], text(a.ManifestURL))
	s.Set(b[pages.FieldSummary], text(a.Summary))
	s.Set(b[pages.FieldSummaryCharCount], &drivertest.Node{
		Attrs: map[string]string{"class": "char-count"},
	})

	var items []*drivertest.Node
	items, p.CategoryBoxes = boxes(a.CategoryOrder, a.Categories)
	s.Set(b[pages.FieldCategories], items...)
	items, p.DeviceBoxes = boxes(a.DeviceOrder, a.DeviceTypes)
	s.Set(b[pages.FieldDeviceTypes], items...)

	s.Set(b[pages.FieldSaveChanges], &drivertest.Node{OnClick: p.saveBasicInfo})
}

func (p *EditPage) saveBasicInfo() {
	s, a, b := p.Session, p.App, p.basic

	summary := s.Get(b[pages.FieldSummary]).Value
	if a.MaxSummaryLen > 0 && len([]rune(summary)) > a.MaxSummaryLen {
		s.Get(b[pages.FieldSummaryCharCount]).Attrs["class"] = "char-count error"
		s.Set(b[pages.FieldSummaryCharCountError], text("Ensure this value has at most 250 characters."))
		return
	}

	a.Name = s.Get(b[pages.FieldName]).Value
	a.URLEnd = s.Get(b[pages.FieldURLEnd]).Value
	a.ManifestURL = s.Get(b[pages.FieldManifestURL]).Value
	a.Summary = summary
	for n, in := range p.CategoryBoxes {
		a.Categories[n] = in.Checked
	}
	for n, in := range p.DeviceBoxes {
		a.DeviceTypes[n] = in.Checked
	}
	p.showListing()
}

func (p *EditPage) showSupportInfo() {
	s, a, sp := p.Session, p.App, p.support
	s.Set(sp[pages.FieldEmail], text(a.Email))
	s.Set(sp[pages.FieldWebsite], text(a.Website))
	s.Set(sp[pages.FieldSaveChanges], &drivertest.Node{OnClick: p.saveSupportInfo})
}

func (p *EditPage) saveSupportInfo() {
	s, a, sp := p.Session, p.App, p.support
	a.Email = s.Get(sp[pages.FieldEmail]).Value
	a.Website = s.Get(sp[pages.FieldWebsite]).Value
	p.showListing()
}

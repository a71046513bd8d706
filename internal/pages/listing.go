package pages

import (
	"fmt"

	"github.com/v0xg/devhub-listing/internal/driver"
	"go.uber.org/zap"
)

// Listing is the edit page with no section form open.
//
//	https://marketplace.example.org/developers/app/{app_slug}/edit
type Listing struct {
	view
}

// NewListing returns a Listing view over a session already on the edit page.
func NewListing(s driver.Session, opts Options) *Listing {
	return &Listing{view: newView(s, KindListing, listingLocators, opts)}
}

// Open navigates s to the listing edit page at url.
func Open(s driver.Session, url string, opts Options) (*Listing, error) {
	l := NewListing(s, opts)
	l.log.Info("opening listing", zap.String("url", url))
	if err := s.Navigate(url); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Listing) Kind() Kind { return KindListing }

// ClickEditBasicInfo opens the basic information form.
func (l *Listing) ClickEditBasicInfo() (*BasicInfoForm, error) {
	if err := l.click(FieldEditBasicInfo); err != nil {
		return nil, err
	}
	return NewBasicInfoForm(l.session, l.opts), nil
}

// ClickSupportInformation opens the support information form.
func (l *Listing) ClickSupportInformation() (*SupportInfoForm, error) {
	if err := l.click(FieldEditSupportInfo); err != nil {
		return nil, err
	}
	return NewSupportInfoForm(l.session, l.opts), nil
}

// Snapshot is every displayed field of a listing.
type Snapshot struct {
	Name        string   `json:"name" yaml:"name"`
	URLEnd      string   `json:"url_end" yaml:"url_end"`
	ManifestURL string   `json:"manifest_url" yaml:"manifest_url"`
	Summary     string   `json:"summary" yaml:"summary"`
	Categories  []string `json:"categories" yaml:"categories"`
	DeviceTypes []string `json:"device_types" yaml:"device_types"`
	Email       string   `json:"email" yaml:"email"`
	Website     string   `json:"website" yaml:"website"`
}

// Snapshot reads every displayed field. It fails on the first missing one.
func (l *Listing) Snapshot() (Snapshot, error) {
	var (
		s   Snapshot
		err error
	)
	read := func(dst *string, get func() (string, error)) {
		if err == nil {
			*dst, err = get()
		}
	}
	read(&s.Name, l.Name)
	read(&s.URLEnd, l.URLEnd)
	read(&s.ManifestURL, l.ManifestURL)
	read(&s.Summary, l.Summary)
	read(&s.Email, l.Email)
	read(&s.Website, l.Website)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: %w", err)
	}

	if s.Categories, err = l.Categories(); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: %w", err)
	}
	if s.DeviceTypes, err = l.DeviceTypes(); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: %w", err)
	}
	return s, nil
}

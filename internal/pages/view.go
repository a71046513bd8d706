// Package pages models the developer hub's listing edit page as page
// objects. A view never holds element handles: every accessor re-queries
// the live session, so a view stays valid for as long as the UI state it
// represents is on screen.
package pages

import (
	"errors"
	"fmt"
	"strings"

	"github.com/v0xg/devhub-listing/internal/driver"
	"go.uber.org/zap"
)

// Separator joins the values of multi-value fields on the listing page.
const Separator = " · "

var (
	ErrCheckboxNotFound  = errors.New("checkbox not found")
	ErrInvalidTransition = errors.New("invalid transition")
)

// Kind tags which UI state a View represents.
type Kind int

const (
	KindListing Kind = iota
	KindBasicInfo
	KindSupportInfo
)

func (k Kind) String() string {
	switch k {
	case KindListing:
		return "listing"
	case KindBasicInfo:
		return "basic info form"
	case KindSupportInfo:
		return "support info form"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// View is one of *Listing, *BasicInfoForm or *SupportInfoForm.
type View interface {
	Kind() Kind
	NoFormsAreOpen() bool
}

// view holds what every page object shares: the session, its own locator
// table and the wait settings.
type view struct {
	session  driver.Session
	locators Locators
	opts     Options
	log      *zap.Logger
}

func newView(s driver.Session, k Kind, locators Locators, opts Options) view {
	opts = opts.withDefaults()
	return view{
		session:  s,
		locators: locators,
		opts:     opts,
		log:      opts.Logger.With(zap.Stringer("view", k)),
	}
}

func (v *view) find(f Field) (driver.Element, error) {
	loc, ok := v.locators[f]
	if !ok {
		return nil, fmt.Errorf("%s: no locator in this view", f)
	}
	el, err := v.session.Find(loc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f, err)
	}
	return el, nil
}

func (v *view) text(f Field) (string, error) {
	el, err := v.find(f)
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("%s: read text: %w", f, err)
	}
	return text, nil
}

func (v *view) values(f Field) ([]string, error) {
	text, err := v.text(f)
	if err != nil {
		return nil, err
	}
	return SplitValues(text), nil
}

func (v *view) click(f Field) error {
	el, err := v.find(f)
	if err != nil {
		return err
	}
	v.log.Debug("click", zap.String("field", string(f)), zap.Stringer("locator", v.locators[f]))
	if err := el.Click(); err != nil {
		return fmt.Errorf("%s: click: %w", f, err)
	}
	return nil
}

func (v *view) typeInto(f Field, text string) error {
	el, err := v.find(f)
	if err != nil {
		return err
	}
	v.log.Debug("type", zap.String("field", string(f)), zap.Int("chars", len(text)))
	if err := el.Type(text); err != nil {
		return fmt.Errorf("%s: type: %w", f, err)
	}
	return nil
}

// setCheckbox leaves the checkbox labelled name in the requested state,
// clicking it only when it differs.
func (v *view) setCheckbox(f Field, name string, state bool) error {
	loc, ok := v.locators[f]
	if !ok {
		return fmt.Errorf("%s: no locator in this view", f)
	}
	items, err := v.session.FindAll(loc)
	if err != nil {
		return fmt.Errorf("%s: %w", f, err)
	}

	for _, item := range items {
		cb := NewCheckbox(item)
		label, err := cb.Name()
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
		if label != name {
			continue
		}

		current, err := cb.State()
		if err != nil {
			return fmt.Errorf("%s %q: %w", f, name, err)
		}
		if current == state {
			return nil
		}
		v.log.Debug("toggle checkbox", zap.String("field", string(f)), zap.String("name", name), zap.Bool("state", state))
		if err := cb.ChangeState(); err != nil {
			return fmt.Errorf("%s %q: %w", f, name, err)
		}
		return nil
	}

	return fmt.Errorf("%s: %w: %q (%d candidates at %s)", f, ErrCheckboxNotFound, name, len(items), loc)
}

// Name returns the app name.
func (v *view) Name() (string, error) { return v.text(FieldName) }

// URLEnd returns the slug appended to the app's marketplace URL.
func (v *view) URLEnd() (string, error) { return v.text(FieldURLEnd) }

// ManifestURL returns the app manifest URL.
func (v *view) ManifestURL() (string, error) { return v.text(FieldManifestURL) }

// Summary returns the app summary.
func (v *view) Summary() (string, error) { return v.text(FieldSummary) }

// Email returns the support email.
func (v *view) Email() (string, error) { return v.text(FieldEmail) }

// Website returns the support website.
func (v *view) Website() (string, error) { return v.text(FieldWebsite) }

// Categories returns the listed categories in display order.
func (v *view) Categories() ([]string, error) { return v.values(FieldCategories) }

// DeviceTypes returns the supported device types in display order.
func (v *view) DeviceTypes() ([]string, error) { return v.values(FieldDeviceTypes) }

// NoFormsAreOpen reports whether the save button disappears within the
// configured timeout.
func (v *view) NoFormsAreOpen() bool {
	return driver.WaitNotPresent(v.session, v.locators[FieldSaveChanges], v.opts.Timeout, v.opts.PollInterval)
}

func (v *view) formOpen() bool {
	return driver.WaitVisible(v.session, v.locators[FieldSaveChanges], v.opts.Timeout, v.opts.PollInterval)
}

// SplitValues splits a multi-value field on Separator. Blank text yields an
// empty slice.
func SplitValues(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	return strings.Split(text, Separator)
}

package pages

import (
	"fmt"
	"strings"

	"github.com/v0xg/devhub-listing/internal/driver"
)

// BasicInfoForm is the listing page while the basic information section is
// being edited. Read accessors report the form inputs.
type BasicInfoForm struct {
	view
}

func NewBasicInfoForm(s driver.Session, opts Options) *BasicInfoForm {
	return &BasicInfoForm{view: newView(s, KindBasicInfo, basicInfoLocators, opts)}
}

func (f *BasicInfoForm) Kind() Kind { return KindBasicInfo }

// IsThisFormOpen reports whether the form's save button becomes visible
// within the configured timeout.
func (f *BasicInfoForm) IsThisFormOpen() bool { return f.formOpen() }

func (f *BasicInfoForm) TypeName(text string) error {
	return f.typeInto(FieldName, text)
}

func (f *BasicInfoForm) TypeSummary(text string) error {
	return f.typeInto(FieldSummary, text)
}

func (f *BasicInfoForm) TypeURLEnd(text string) error {
	return f.typeInto(FieldURLEnd, text)
}

func (f *BasicInfoForm) TypeManifestURL(text string) error {
	return f.typeInto(FieldManifestURL, text)
}

// SelectDeviceType leaves the device type checkbox labelled name checked or
// unchecked according to state.
func (f *BasicInfoForm) SelectDeviceType(name string, state bool) error {
	return f.setCheckbox(FieldDeviceTypes, name, state)
}

// SelectCategories leaves the category checkbox labelled name checked or
// unchecked according to state.
func (f *BasicInfoForm) SelectCategories(name string, state bool) error {
	return f.setCheckbox(FieldCategories, name, state)
}

// IsSummaryCharCountOK reports whether the summary character counter is
// free of the error style.
func (f *BasicInfoForm) IsSummaryCharCountOK() (bool, error) {
	el, err := f.find(FieldSummaryCharCount)
	if err != nil {
		return false, err
	}
	class, err := el.Attribute("class")
	if err != nil {
		return false, fmt.Errorf("%s: read class: %w", FieldSummaryCharCount, err)
	}
	return !strings.Contains(class, "error"), nil
}

// SummaryCharCountErrorMessage returns the validation error shown under the
// summary.
func (f *BasicInfoForm) SummaryCharCountErrorMessage() (string, error) {
	return f.text(FieldSummaryCharCountError)
}

// ClickSaveChanges submits the form and returns the listing it closes into.
func (f *BasicInfoForm) ClickSaveChanges() (*Listing, error) {
	if err := f.click(FieldSaveChanges); err != nil {
		return nil, err
	}
	return NewListing(f.session, f.opts), nil
}

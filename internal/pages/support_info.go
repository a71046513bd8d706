package pages

import "github.com/v0xg/devhub-listing/internal/driver"

// SupportInfoForm is the listing page while the support information section
// is being edited.
type SupportInfoForm struct {
	view
}

func NewSupportInfoForm(s driver.Session, opts Options) *SupportInfoForm {
	return &SupportInfoForm{view: newView(s, KindSupportInfo, supportInfoLocators, opts)}
}

func (f *SupportInfoForm) Kind() Kind { return KindSupportInfo }

func (f *SupportInfoForm) IsThisFormOpen() bool { return f.formOpen() }

func (f *SupportInfoForm) TypeSupportEmail(text string) error {
	return f.typeInto(FieldEmail, text)
}

func (f *SupportInfoForm) TypeSupportURL(text string) error {
	return f.typeInto(FieldWebsite, text)
}

func (f *SupportInfoForm) ClickSaveChanges() (*Listing, error) {
	if err := f.click(FieldSaveChanges); err != nil {
		return nil, err
	}
	return NewListing(f.session, f.opts), nil
}

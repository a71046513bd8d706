package pages

import "github.com/v0xg/devhub-listing/internal/locator"

// Field names one element of the listing edit page.
type Field string

const (
	FieldName                  Field = "name"
	FieldURLEnd                Field = "url_end"
	FieldManifestURL           Field = "manifest_url"
	FieldSummary               Field = "summary"
	FieldCategories            Field = "categories"
	FieldDeviceTypes           Field = "device_types"
	FieldEmail                 Field = "email"
	FieldWebsite               Field = "website"
	FieldEditBasicInfo         Field = "edit_basic_info"
	FieldEditSupportInfo       Field = "edit_support_info"
	FieldSaveChanges           Field = "save_changes"
	FieldSummaryCharCount      Field = "summary_char_count"
	FieldSummaryCharCountError Field = "summary_char_count_error"
)

// Locators maps the fields a view can see to where they live in the markup.
type Locators map[Field]locator.Locator

// Shared by every view.
var commonLocators = Locators{
	FieldSaveChanges: locator.ByCSS("div.listing-footer > button"),
}

// The read-only rendering of the listing, shown whenever its section is not
// being edited.
var displayLocators = Locators{
	FieldName:        locator.ByCSS(`div[data-name="name"]`),
	FieldURLEnd:      locator.ByID("slug_edit"),
	FieldManifestURL: locator.ByCSS("#manifest_url > td"),
	FieldSummary:     locator.ByCSS(`div[data-name="summary"]`),
	FieldCategories:  locator.ByCSS("ul.addon-app-cats-inline > li"),
	FieldDeviceTypes: locator.ByID("addon-device-types-edit"),
	FieldEmail:       locator.ByCSS(`div[data-name="support_email"] span`),
	FieldWebsite:     locator.ByCSS(`div[data-name="support_url"] span`),
}

var listingLocators = merge(commonLocators, displayLocators, Locators{
	FieldEditBasicInfo:   locator.ByCSS("#addon-edit-basic > h2 > a.button"),
	FieldEditSupportInfo: locator.ByCSS("#edit-addon-support .button"),
})

var basicInfoLocators = merge(commonLocators, Locators{
	FieldName:                  locator.ByID("id_name_0"),
	FieldURLEnd:                locator.ByID("id_slug"),
	FieldManifestURL:           locator.ByCSS("#manifest-url > td > input"),
	FieldSummary:               locator.ByID("id_summary_0"),
	FieldSummaryCharCount:      locator.ByCSS("div.char-count"),
	FieldSummaryCharCountError: locator.ByCSS("#trans-summary + ul.errorlist > li"),
	FieldCategories:            locator.ByCSS("ul.addon-categories > li"),
	FieldDeviceTypes:           locator.ByCSS("#addon-device-types-edit > ul > li"),
	FieldEmail:                 displayLocators[FieldEmail],
	FieldWebsite:               displayLocators[FieldWebsite],
})

var supportInfoLocators = merge(commonLocators, Locators{
	FieldName:        displayLocators[FieldName],
	FieldURLEnd:      displayLocators[FieldURLEnd],
	FieldManifestURL: displayLocators[FieldManifestURL],
	FieldSummary:     displayLocators[FieldSummary],
	FieldCategories:  displayLocators[FieldCategories],
	FieldDeviceTypes: displayLocators[FieldDeviceTypes],
	FieldEmail:       locator.ByID("id_support_email_0"),
	FieldWebsite:     locator.ByID("id_support_url_0"),
})

// Checkbox parts, relative to a checkbox list item.
var (
	CheckboxLabelLocator = locator.ByCSS("label")
	CheckboxInputLocator = locator.ByCSS(`input[type="checkbox"]`)
)

func merge(tables ...Locators) Locators {
	out := Locators{}
	for _, t := range tables {
		for f, l := range t {
			out[f] = l
		}
	}
	return out
}

// LocatorsFor returns a copy of the locator table used by views of kind k.
func LocatorsFor(k Kind) Locators {
	switch k {
	case KindBasicInfo:
		return merge(basicInfoLocators)
	case KindSupportInfo:
		return merge(supportInfoLocators)
	default:
		return merge(listingLocators)
	}
}

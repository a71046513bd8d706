package plan

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/v0xg/devhub-listing/internal/pages"
	"github.com/v0xg/devhub-listing/internal/pages/pagestest"
)

var fastOpts = pages.Options{Timeout: 20 * time.Millisecond, PollInterval: time.Millisecond}

func off() *bool {
	b := false
	return &b
}

func TestRunEditsBothSections(t *testing.T) {
	p := pagestest.NewEditPage(pagestest.NewApp())
	l := pages.NewListing(p.Session, fastOpts)

	steps := []Step{
		{Action: EditBasicInfo},
		{Action: TypeSummary, Text: "New text"},
		{Action: SelectDeviceType, Name: "Mobile"},
		{Action: SelectCategory, Name: "Social", State: off()},
		{Action: Save},
		{Action: EditSupportInfo},
		{Action: TypeSupportEmail, Text: "help@tiny.example.com"},
		{Action: Save},
	}

	var seen []pages.Kind
	final, err := Run(l, steps, Options{OnStep: func(i int, step Step, v pages.View) {
		seen = append(seen, v.Kind())
	}})
	require.NoError(t, err)

	snap, err := final.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "New text", snap.Summary)
	assert.Equal(t, "help@tiny.example.com", snap.Email)
	assert.Equal(t, []string{"Games"}, snap.Categories)
	assert.Equal(t, []string{"Desktop", "Mobile", "Tablet"}, snap.DeviceTypes)

	assert.Equal(t, []pages.Kind{
		pages.KindBasicInfo, pages.KindBasicInfo, pages.KindBasicInfo, pages.KindBasicInfo,
		pages.KindListing,
		pages.KindSupportInfo, pages.KindSupportInfo,
		pages.KindListing,
	}, seen)
}

func TestRunRejectsStepsOutsideTheirForm(t *testing.T) {
	p := pagestest.NewEditPage(pagestest.NewApp())
	l := pages.NewListing(p.Session, fastOpts)

	_, err := Run(l, []Step{{Action: TypeName, Text: "x"}}, Options{})
	assert.ErrorIs(t, err, ErrWrongView)
	assert.Contains(t, err.Error(), "step 1 (type_name)")

	_, err = Run(l, []Step{{Action: EditBasicInfo}, {Action: TypeSupportURL, Text: "x"}}, Options{})
	assert.ErrorIs(t, err, ErrWrongView)
}

func TestRunInvalidTransition(t *testing.T) {
	p := pagestest.NewEditPage(pagestest.NewApp())
	_, err := Run(pages.NewListing(p.Session, fastOpts), []Step{{Action: Save}}, Options{})
	assert.ErrorIs(t, err, pages.ErrInvalidTransition)
}

func TestRunUnknownAction(t *testing.T) {
	p := pagestest.NewEditPage(pagestest.NewApp())
	_, err := Run(pages.NewListing(p.Session, fastOpts), []Step{{Action: "delete_app"}}, Options{})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestRunLeavesFormOpen(t *testing.T) {
	p := pagestest.NewEditPage(pagestest.NewApp())
	_, err := Run(pages.NewListing(p.Session, fastOpts), []Step{
		{Action: EditBasicInfo},
		{Action: TypeName, Text: "Unsaved"},
	}, Options{})
	assert.ErrorIs(t, err, ErrUnsaved)
	assert.Equal(t, "Tiny Tetris", p.App.Name)
}

func TestRunSaveRejected(t *testing.T) {
	a := pagestest.NewApp()
	a.MaxSummaryLen = 250
	p := pagestest.NewEditPage(a)

	_, err := Run(pages.NewListing(p.Session, fastOpts), []Step{
		{Action: EditBasicInfo},
		{Action: TypeSummary, Text: strings.Repeat("a", 251)},
		{Action: Save},
	}, Options{})
	require.ErrorIs(t, err, ErrSaveRejected)
	assert.Contains(t, err.Error(), "at most 250 characters")
	assert.Equal(t, "Old text", a.Summary)
}

func TestRunMissingCheckbox(t *testing.T) {
	p := pagestest.NewEditPage(pagestest.NewApp())
	_, err := Run(pages.NewListing(p.Session, fastOpts), []Step{
		{Action: EditBasicInfo},
		{Action: SelectCategory, Name: "Weather"},
		{Action: Save},
	}, Options{})
	assert.ErrorIs(t, err, pages.ErrCheckboxNotFound)
}

func TestRunEmptyPlan(t *testing.T) {
	p := pagestest.NewEditPage(pagestest.NewApp())
	l := pages.NewListing(p.Session, fastOpts)

	final, err := Run(l, nil, Options{})
	require.NoError(t, err)
	assert.Same(t, l, final)
}

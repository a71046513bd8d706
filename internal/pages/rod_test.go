package pages_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/v0xg/devhub-listing/internal/driver"
	"github.com/v0xg/devhub-listing/internal/pages"
)

// openRodListing serves testdata/edit.html and opens it in headless
// Chromium. The test is skipped when no browser is installed.
func openRodListing(t *testing.T) *pages.Listing {
	t.Helper()
	if testing.Short() {
		t.Skip("browser test")
	}
	if _, has := launcher.LookPath(); !has {
		t.Skip("chromium not found")
	}

	srv := httptest.NewServer(http.FileServer(http.Dir("testdata")))
	t.Cleanup(srv.Close)

	b, err := driver.LaunchRod(driver.Options{Headless: true, NoSandbox: true})
	if err != nil {
		t.Skipf("chromium failed to start: %v", err)
	}
	t.Cleanup(func() { b.Close() })

	l, err := pages.Open(b.Session(), srv.URL+"/edit.html", pages.Options{Timeout: 2 * time.Second, PollInterval: 50 * time.Millisecond})
	require.NoError(t, err)
	return l
}

func TestRodEditSummaryAndSave(t *testing.T) {
	l := openRodListing(t)

	summary, err := l.Summary()
	require.NoError(t, err)
	require.Equal(t, "Old text", summary)
	assert.True(t, l.NoFormsAreOpen())

	form, err := l.ClickEditBasicInfo()
	require.NoError(t, err)
	assert.True(t, form.IsThisFormOpen())

	name, err := form.Name()
	require.NoError(t, err)
	assert.Equal(t, "Tiny Tetris", name)

	require.NoError(t, form.TypeSummary("New text"))
	require.NoError(t, form.SelectDeviceType("Mobile", true))
	require.NoError(t, form.SelectDeviceType("Mobile", true))
	require.NoError(t, form.SelectCategories("Social", false))
	assert.ErrorIs(t, form.SelectCategories("Weather", true), pages.ErrCheckboxNotFound)

	ok, err := form.IsSummaryCharCountOK()
	require.NoError(t, err)
	assert.True(t, ok)

	saved, err := form.ClickSaveChanges()
	require.NoError(t, err)
	assert.True(t, saved.NoFormsAreOpen())

	snap, err := saved.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "New text", snap.Summary)
	assert.Equal(t, []string{"Games"}, snap.Categories)
	assert.Equal(t, []string{"Desktop", "Mobile", "Tablet"}, snap.DeviceTypes)
}

func TestRodSupportInformation(t *testing.T) {
	l := openRodListing(t)

	form, err := l.ClickSupportInformation()
	require.NoError(t, err)
	assert.True(t, form.IsThisFormOpen())

	require.NoError(t, form.TypeSupportEmail("help@tiny.example.com"))
	require.NoError(t, form.TypeSupportURL("https://tiny.example.com/help"))

	saved, err := form.ClickSaveChanges()
	require.NoError(t, err)
	assert.True(t, saved.NoFormsAreOpen())

	email, err := saved.Email()
	require.NoError(t, err)
	assert.Equal(t, "help@tiny.example.com", email)
	website, err := saved.Website()
	require.NoError(t, err)
	assert.Equal(t, "https://tiny.example.com/help", website)
}

func TestRodClearedFieldsReportEmptyValue(t *testing.T) {
	l := openRodListing(t)

	form, err := l.ClickEditBasicInfo()
	require.NoError(t, err)

	require.NoError(t, form.TypeSummary(""))
	require.NoError(t, form.TypeName(""))

	summary, err := form.Summary()
	require.NoError(t, err)
	assert.Equal(t, "", summary, "placeholder must not be reported")
	name, err := form.Name()
	require.NoError(t, err)
	assert.Equal(t, "", name)

	require.NoError(t, form.TypeName("Tetris"))
	name, err = form.Name()
	require.NoError(t, err)
	assert.Equal(t, "Tetris", name)

	saved, err := form.ClickSaveChanges()
	require.NoError(t, err)
	assert.True(t, saved.NoFormsAreOpen())

	summary, err = saved.Summary()
	require.NoError(t, err)
	assert.Equal(t, "", summary)
	name, err = saved.Name()
	require.NoError(t, err)
	assert.Equal(t, "Tetris", name)
}

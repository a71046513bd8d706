package driver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/v0xg/devhub-listing/internal/driver"
	"github.com/v0xg/devhub-listing/internal/driver/drivertest"
	"github.com/v0xg/devhub-listing/internal/locator"
)

var save = locator.ByCSS("div.listing-footer > button")

func TestWaitNotPresent(t *testing.T) {
	t.Run("absent immediately", func(t *testing.T) {
		s := drivertest.NewSession()
		assert.True(t, driver.WaitNotPresent(s, save, 0, time.Millisecond))
	})

	t.Run("still present after timeout", func(t *testing.T) {
		s := drivertest.NewSession()
		s.Set(save, &drivertest.Node{})

		start := time.Now()
		assert.False(t, driver.WaitNotPresent(s, save, 30*time.Millisecond, 5*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("disappears while polling", func(t *testing.T) {
		s := &removingSession{Session: drivertest.NewSession(), after: 3}
		s.Set(save, &drivertest.Node{})
		assert.True(t, driver.WaitNotPresent(s, save, time.Second, time.Millisecond))
	})
}

func TestWaitVisible(t *testing.T) {
	s := drivertest.NewSession()
	assert.False(t, driver.WaitVisible(s, save, 10*time.Millisecond, time.Millisecond))

	s.Set(save, &drivertest.Node{Hidden: true})
	assert.False(t, driver.WaitVisible(s, save, 10*time.Millisecond, time.Millisecond))

	s.Get(save).Hidden = false
	assert.True(t, driver.WaitVisible(s, save, 10*time.Millisecond, time.Millisecond))
}

func TestLaunchUnknownBackend(t *testing.T) {
	_, err := driver.Launch("selenium", driver.Options{})
	assert.ErrorContains(t, err, "unknown driver")
}

// removingSession drops every node after a number of FindAll calls.
type removingSession struct {
	*drivertest.Session
	after int
	calls int
}

func (s *removingSession) FindAll(loc locator.Locator) ([]driver.Element, error) {
	s.calls++
	if s.calls > s.after {
		s.Remove(loc)
	}
	return s.Session.FindAll(loc)
}

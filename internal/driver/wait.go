package driver

import (
	"time"

	"github.com/v0xg/devhub-listing/internal/locator"
)

// WaitNotPresent polls until nothing matches loc. It returns false if an
// element is still present when timeout elapses.
func WaitNotPresent(s Session, loc locator.Locator, timeout, interval time.Duration) bool {
	return poll(timeout, interval, func() bool {
		els, err := s.FindAll(loc)
		return err == nil && len(els) == 0
	})
}

// WaitVisible polls until the first element matching loc is displayed.
func WaitVisible(s Session, loc locator.Locator, timeout, interval time.Duration) bool {
	return poll(timeout, interval, func() bool {
		el, err := s.Find(loc)
		if err != nil {
			return false
		}
		visible, err := el.Visible()
		return err == nil && visible
	})
}

func poll(timeout, interval time.Duration, cond func() bool) bool {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	deadline := time.Now().Add(timeout)

	for {
		if cond() {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		time.Sleep(interval)
	}
}

package device

import (
	"context"
	"errors"
	"sync"
	"time"
)

type State string

const (
	StateDetecting    State = "detecting"
	StateCountingDown State = "counting-down"
	StateRedirecting  State = "redirecting"
)

// DefaultSeconds is the auto-redirect delay on mobile devices.
const DefaultSeconds = 3

var ErrNoAutoRedirect = errors.New("device does not auto-redirect")

// Snapshot is the observable state of a countdown.
type Snapshot struct {
	State     State  `json:"state"`
	Remaining int    `json:"remaining"`
	Device    Class  `json:"device"`
	StoreURL  string `json:"store_url,omitempty"`
	Manual    bool   `json:"manual,omitempty"`
}

// Countdown is the download page redirect state machine:
//
//	detecting → counting-down(N) → … → counting-down(1) → redirecting
//	counting-down(N) → redirecting   (manual Trigger)
//
// redirecting is terminal and the redirect callback runs at most once.
type Countdown struct {
	device   Class
	storeURL string
	seconds  int
	redirect func(storeURL string)

	mu        sync.Mutex
	state     State
	remaining int
	fired     bool
	manual    bool
	done      chan struct{}
}

// NewCountdown prepares a countdown for an already classified device.
// redirect is called once with the store URL when the countdown ends.
func NewCountdown(class Class, urls StoreURLs, seconds int, redirect func(storeURL string)) *Countdown {
	if seconds <= 0 {
		seconds = DefaultSeconds
	}
	if redirect == nil {
		redirect = func(string) {}
	}
	return &Countdown{
		device:   class,
		storeURL: urls.For(class),
		seconds:  seconds,
		redirect: redirect,
		state:    StateDetecting,
		done:     make(chan struct{}),
	}
}

func (c *Countdown) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{State: c.state, Remaining: c.remaining, Device: c.device, StoreURL: c.storeURL, Manual: c.manual}
}

// Run counts down one step per tick and blocks until the redirect fires, the
// countdown is triggered manually, or ctx is cancelled (page unmount). observe
// receives every state change, including the terminal one.
func (c *Countdown) Run(ctx context.Context, ticks <-chan time.Time, observe func(Snapshot)) error {
	if observe == nil {
		observe = func(Snapshot) {}
	}
	if !c.device.IsMobile() {
		return ErrNoAutoRedirect
	}

	c.mu.Lock()
	if c.fired {
		c.mu.Unlock()
		observe(c.Snapshot())
		return nil
	}
	c.state = StateCountingDown
	c.remaining = c.seconds
	c.mu.Unlock()
	observe(c.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			observe(c.Snapshot())
			return nil
		case <-ticks:
			if c.tick() {
				c.fire(false)
				observe(c.Snapshot())
				return nil
			}
			observe(c.Snapshot())
		}
	}
}

// RunEvery drives Run from a wall-clock ticker that is stopped on return.
func (c *Countdown) RunEvery(ctx context.Context, interval time.Duration, observe func(Snapshot)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	return c.Run(ctx, ticker.C, observe)
}

// Trigger is the manual "Download Now" action. It short-circuits the timer
// and reports whether this call caused the redirect.
func (c *Countdown) Trigger() bool {
	if !c.device.IsMobile() {
		return false
	}
	return c.fire(true)
}

func (c *Countdown) tick() (expired bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fired {
		return false
	}
	c.remaining--
	return c.remaining <= 0
}

func (c *Countdown) fire(manual bool) bool {
	c.mu.Lock()
	if c.fired {
		c.mu.Unlock()
		return false
	}
	c.fired = true
	c.manual = manual
	c.state = StateRedirecting
	c.remaining = 0
	close(c.done)
	c.mu.Unlock()

	c.redirect(c.storeURL)
	return true
}

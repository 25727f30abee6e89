package services

import (
	"sync"

	"github.com/capoeira360/Craft-Art-Market-sub000/device"
)

// CountdownRegistry tracks the download countdown each visitor session is
// currently streaming, so a manual "Download Now" can end it.
type CountdownRegistry struct {
	mu   sync.Mutex
	live map[string]*device.Countdown
}

func NewCountdownRegistry() *CountdownRegistry {
	return &CountdownRegistry{live: make(map[string]*device.Countdown)}
}

// Register makes cd the live countdown for sessionID. The returned release
// removes it again unless a newer countdown replaced it.
func (r *CountdownRegistry) Register(sessionID string, cd *device.Countdown) (release func()) {
	if sessionID == "" {
		return func() {}
	}
	r.mu.Lock()
	r.live[sessionID] = cd
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.live[sessionID] == cd {
			delete(r.live, sessionID)
		}
	}
}

// Live returns the countdown sessionID is streaming, if any.
func (r *CountdownRegistry) Live(sessionID string) (*device.Countdown, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cd, ok := r.live[sessionID]
	return cd, ok
}

// Global instance
var (
	countdownRegistry     *CountdownRegistry
	countdownRegistryOnce sync.Once
)

func GetCountdownRegistry() *CountdownRegistry {
	countdownRegistryOnce.Do(func() {
		countdownRegistry = NewCountdownRegistry()
	})
	return countdownRegistry
}

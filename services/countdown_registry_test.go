package services

import (
	"testing"

	"github.com/capoeira360/Craft-Art-Market-sub000/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownRegistry(t *testing.T) {
	r := NewCountdownRegistry()
	stores := device.StoreURLs{IOS: "https://apps.apple.com/x", Android: "https://play.google.com/x"}

	first := device.NewCountdown(device.IOS, stores, 3, nil)
	releaseFirst := r.Register("session-a", first)

	got, ok := r.Live("session-a")
	require.True(t, ok)
	assert.Same(t, first, got)

	_, ok = r.Live("session-b")
	assert.False(t, ok)

	// a second tab replaces the first; the stale release keeps the newer one
	second := device.NewCountdown(device.IOS, stores, 3, nil)
	releaseSecond := r.Register("session-a", second)
	releaseFirst()
	got, ok = r.Live("session-a")
	require.True(t, ok)
	assert.Same(t, second, got)

	releaseSecond()
	_, ok = r.Live("session-a")
	assert.False(t, ok)
}

func TestCountdownRegistryIgnoresEmptySession(t *testing.T) {
	r := NewCountdownRegistry()
	release := r.Register("", device.NewCountdown(device.Android, device.StoreURLs{}, 3, nil))
	release()

	_, ok := r.Live("")
	assert.False(t, ok)
}

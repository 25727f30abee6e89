package device

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testStores = StoreURLs{
	IOS:     "https://apps.apple.com/app/craft-art-market",
	Android: "https://play.google.com/store/apps/details?id=market.craftart",
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want Class
	}{
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", IOS},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X)", IOS},
		{"ipod", "Mozilla/5.0 (iPod touch; CPU iPhone OS 12_0)", IOS},
		{"android", "Mozilla/5.0 (Linux; Android 14; Pixel 8)", Android},
		{"ios wins over android", "iPhone Android", IOS},
		{"lower case does not match", "mozilla (iphone; android)", Desktop},
		{"desktop", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", Desktop},
		{"empty", "", Desktop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ua))
		})
	}
}

type recorder struct {
	mu        sync.Mutex
	snapshots []Snapshot
	redirects []string
}

func (r *recorder) observe(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, s)
}

func (r *recorder) redirect(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redirects = append(r.redirects, url)
}

func (r *recorder) remaining() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, len(r.snapshots))
	for _, s := range r.snapshots {
		out = append(out, s.Remaining)
	}
	return out
}

func TestCountdownIPhoneRedirectsOnceAfterThreeTicks(t *testing.T) {
	rec := &recorder{}
	class := Classify("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)")
	require.Equal(t, IOS, class)

	cd := NewCountdown(class, testStores, DefaultSeconds, rec.redirect)
	assert.Equal(t, StateDetecting, cd.Snapshot().State)

	ticks := make(chan time.Time)
	errCh := make(chan error, 1)
	go func() { errCh <- cd.Run(context.Background(), ticks, rec.observe) }()

	for i := 0; i < 3; i++ {
		ticks <- time.Now()
	}
	require.NoError(t, <-errCh)

	assert.Equal(t, []int{3, 2, 1, 0}, rec.remaining())
	assert.Equal(t, StateRedirecting, cd.Snapshot().State)
	assert.False(t, cd.Snapshot().Manual)
	assert.Equal(t, []string{testStores.IOS}, rec.redirects)

	// terminal: a late manual trigger does not redirect again
	assert.False(t, cd.Trigger())
	assert.Len(t, rec.redirects, 1)
}

func TestCountdownManualTriggerShortCircuits(t *testing.T) {
	rec := &recorder{}
	cd := NewCountdown(Android, testStores, DefaultSeconds, rec.redirect)

	ticks := make(chan time.Time)
	errCh := make(chan error, 1)
	go func() { errCh <- cd.Run(context.Background(), ticks, rec.observe) }()

	ticks <- time.Now() // 3 → 2
	require.Eventually(t, func() bool { return cd.Snapshot().Remaining == 2 }, time.Second, time.Millisecond)

	assert.True(t, cd.Trigger())
	require.NoError(t, <-errCh)

	assert.Equal(t, StateRedirecting, cd.Snapshot().State)
	assert.True(t, cd.Snapshot().Manual)
	assert.Equal(t, []string{testStores.Android}, rec.redirects)
}

func TestCountdownCancelStopsWithoutRedirect(t *testing.T) {
	rec := &recorder{}
	cd := NewCountdown(IOS, testStores, DefaultSeconds, rec.redirect)

	ctx, cancel := context.WithCancel(context.Background())
	ticks := make(chan time.Time)
	errCh := make(chan error, 1)
	go func() { errCh <- cd.Run(ctx, ticks, rec.observe) }()

	ticks <- time.Now()
	cancel()

	assert.ErrorIs(t, <-errCh, context.Canceled)
	assert.Empty(t, rec.redirects)
	assert.Equal(t, StateCountingDown, cd.Snapshot().State)
}

func TestCountdownDesktopNeverRedirects(t *testing.T) {
	rec := &recorder{}
	cd := NewCountdown(Desktop, testStores, DefaultSeconds, rec.redirect)

	err := cd.Run(context.Background(), make(chan time.Time), rec.observe)
	assert.ErrorIs(t, err, ErrNoAutoRedirect)
	assert.False(t, cd.Trigger())
	assert.Equal(t, StateDetecting, cd.Snapshot().State)
	assert.Empty(t, rec.redirects)
}

func TestCountdownTriggerBeforeRun(t *testing.T) {
	rec := &recorder{}
	cd := NewCountdown(IOS, testStores, DefaultSeconds, rec.redirect)

	assert.True(t, cd.Trigger())
	require.NoError(t, cd.Run(context.Background(), make(chan time.Time), rec.observe))
	assert.Equal(t, []string{testStores.IOS}, rec.redirects)
}

func TestCountdownRunEvery(t *testing.T) {
	rec := &recorder{}
	cd := NewCountdown(IOS, testStores, 2, rec.redirect)

	require.NoError(t, cd.RunEvery(context.Background(), time.Millisecond, rec.observe))
	assert.Equal(t, []int{2, 1, 0}, rec.remaining())
	assert.Len(t, rec.redirects, 1)
}

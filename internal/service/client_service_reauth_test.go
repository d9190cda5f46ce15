// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeKeys struct{ valid atomic.Bool }

func (k *fakeKeys) HasKey() bool { return k.valid.Load() }

type fakeSession struct {
	loggedIn atomic.Bool
	ended    atomic.Int32
	endErr   error
}

func (s *fakeSession) IsLoggedIn(context.Context) bool { return s.loggedIn.Load() }

func (s *fakeSession) End(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.loggedIn.Store(false)
	s.ended.Add(1)
	return s.endErr
}

type countingListener struct {
	required  atomic.Int32
	cleared   atomic.Int32
	loggedOut atomic.Int32
}

func (l *countingListener) ReauthRequired() { l.required.Add(1) }
func (l *countingListener) ReauthCleared()  { l.cleared.Add(1) }
func (l *countingListener) LoggedOut()      { l.loggedOut.Add(1) }

type monitorClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *monitorClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *monitorClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestMonitor(opts ...MonitorOption) (*ReauthMonitor, *fakeKeys, *fakeSession, *countingListener) {
	keys := &fakeKeys{}
	sess := &fakeSession{}
	listener := &countingListener{}
	opts = append([]MonitorOption{WithReauthListener(listener)}, opts...)
	return NewReauthMonitor(keys, sess, logger.Nop(), opts...), keys, sess, listener
}

func TestReauthMonitor_MissingKeySignalsOnce(t *testing.T) {
	m, _, sess, listener := newTestMonitor()
	sess.loggedIn.Store(true)
	ctx := context.Background()

	assert.True(t, m.Check(ctx))
	assert.Equal(t, ReauthAwaiting, m.State())
	assert.Equal(t, int32(1), listener.required.Load())

	assert.True(t, m.Check(ctx))
	assert.Equal(t, int32(1), listener.required.Load(), "second tick must not signal again")
}

func TestReauthMonitor_NoSessionIsNoop(t *testing.T) {
	m, _, _, listener := newTestMonitor()

	assert.False(t, m.Check(context.Background()))
	assert.Equal(t, ReauthIdle, m.State())
	assert.Zero(t, listener.required.Load())
}

func TestReauthMonitor_ValidKeyKeepsMonitoring(t *testing.T) {
	m, keys, sess, listener := newTestMonitor()
	sess.loggedIn.Store(true)
	keys.valid.Store(true)

	assert.False(t, m.Check(context.Background()))
	assert.Zero(t, listener.required.Load())
}

func TestReauthMonitor_RequestReauth(t *testing.T) {
	m, _, sess, listener := newTestMonitor()
	sess.loggedIn.Store(true)

	assert.True(t, m.RequestReauth(context.Background()))
	assert.Equal(t, int32(1), listener.required.Load())
}

func TestReauthMonitor_ReauthSucceeded(t *testing.T) {
	m, keys, sess, listener := newTestMonitor(WithReauthInterval(time.Hour))
	sess.loggedIn.Store(true)
	ctx := context.Background()

	m.Start(ctx)
	defer m.Stop()
	require.Equal(t, ReauthAwaiting, m.State())

	keys.valid.Store(true)
	m.ReauthSucceeded()
	assert.Equal(t, ReauthMonitoring, m.State())
	assert.Equal(t, int32(1), listener.cleared.Load())

	// a later key loss is a new episode
	keys.valid.Store(false)
	assert.True(t, m.Check(ctx))
	assert.Equal(t, int32(2), listener.required.Load())
}

func TestReauthMonitor_ReauthSucceededWithoutSignalIsIgnored(t *testing.T) {
	m, _, _, listener := newTestMonitor()

	m.ReauthSucceeded()
	assert.Equal(t, ReauthIdle, m.State())
	assert.Zero(t, listener.cleared.Load())
}

func TestReauthMonitor_ReauthFailedForcesLogout(t *testing.T) {
	m, _, sess, listener := newTestMonitor(WithReauthInterval(time.Hour))
	sess.loggedIn.Store(true)

	m.Start(context.Background())
	require.Equal(t, ReauthAwaiting, m.State())

	require.NoError(t, m.ReauthFailed(context.Background()))
	assert.Equal(t, ReauthIdle, m.State())
	assert.Equal(t, int32(1), sess.ended.Load())
	assert.Equal(t, int32(1), listener.loggedOut.Load())

	m.Stop()
}

func TestReauthMonitor_ForceLogoutReportsTeardownError(t *testing.T) {
	m, _, sess, listener := newTestMonitor()
	sess.loggedIn.Store(true)
	sess.endErr = errors.New("disk gone")

	err := m.ReauthTimedOut(context.Background())
	assert.EqualError(t, err, "disk gone")
	assert.Equal(t, int32(1), listener.loggedOut.Load())
}

func TestReauthMonitor_TimeoutOnTick(t *testing.T) {
	clock := &monitorClock{now: time.Unix(1_700_000_000, 0)}
	m, _, sess, listener := newTestMonitor(WithReauthTimeout(5*time.Minute), WithReauthClock(clock.Now))
	sess.loggedIn.Store(true)
	ctx := context.Background()

	require.True(t, m.Check(ctx))

	clock.Advance(4 * time.Minute)
	assert.True(t, m.Check(ctx))
	assert.Zero(t, sess.ended.Load())

	clock.Advance(2 * time.Minute)
	assert.False(t, m.Check(ctx))
	assert.Equal(t, int32(1), sess.ended.Load())
	assert.Equal(t, int32(1), listener.loggedOut.Load())
	assert.Equal(t, ReauthIdle, m.State())
}

func TestReauthMonitor_TimeoutFromLoopDoesNotDeadlock(t *testing.T) {
	clock := &monitorClock{now: time.Unix(1_700_000_000, 0)}
	m, _, sess, listener := newTestMonitor(
		WithReauthInterval(5*time.Millisecond),
		WithReauthTimeout(time.Minute),
		WithReauthClock(clock.Now),
	)
	sess.loggedIn.Store(true)

	m.Start(context.Background())
	clock.Advance(2 * time.Minute)

	assert.Eventually(t, func() bool { return listener.loggedOut.Load() == 1 }, time.Second, 5*time.Millisecond)
	m.Stop()
	assert.Equal(t, int32(1), sess.ended.Load())
}

func TestReauthMonitor_StartChecksImmediately(t *testing.T) {
	m, _, sess, listener := newTestMonitor(WithReauthInterval(time.Hour))
	sess.loggedIn.Store(true)

	m.Start(context.Background())
	defer m.Stop()

	assert.Equal(t, int32(1), listener.required.Load())
}

func TestReauthMonitor_TicksUntilStopped(t *testing.T) {
	m, keys, sess, listener := newTestMonitor(WithReauthInterval(5 * time.Millisecond))
	sess.loggedIn.Store(true)
	keys.valid.Store(true)

	m.Start(context.Background())
	assert.Equal(t, ReauthMonitoring, m.State())

	keys.valid.Store(false)
	assert.Eventually(t, func() bool { return listener.required.Load() == 1 }, time.Second, 5*time.Millisecond)

	m.Stop()
	assert.Equal(t, ReauthIdle, m.State())

	// no tick fires after Stop
	m.ReauthSucceeded()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), listener.required.Load())
}

func TestReauthMonitor_StopBeforeStart_NoPanic(t *testing.T) {
	m, _, _, _ := newTestMonitor()
	assert.NotPanics(t, func() { m.Stop() })
	assert.NotPanics(t, func() { m.Stop() })
}

func TestReauthMonitor_StoppedByContext(t *testing.T) {
	m, keys, sess, listener := newTestMonitor(WithReauthInterval(5 * time.Millisecond))
	sess.loggedIn.Store(true)
	keys.valid.Store(true)

	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		m.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}

	keys.valid.Store(false)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, listener.required.Load())
}

func TestReauthState_String(t *testing.T) {
	assert.Equal(t, "idle", ReauthIdle.String())
	assert.Equal(t, "monitoring", ReauthMonitoring.String())
	assert.Equal(t, "awaiting-reauth", ReauthAwaiting.String())
	assert.Equal(t, "unknown", ReauthState(42).String())
}

func TestReauthMonitor_ListenerSignalSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mock.NewMockReauthListener(ctrl)
	keys := &fakeKeys{}
	sess := &fakeSession{}
	sess.loggedIn.Store(true)
	ctx := context.Background()

	gomock.InOrder(
		listener.EXPECT().ReauthRequired().Times(1),
		listener.EXPECT().ReauthCleared().Times(1),
		listener.EXPECT().ReauthRequired().Times(1),
		listener.EXPECT().LoggedOut().Times(1),
	)

	m := NewReauthMonitor(keys, sess, logger.Nop(), WithReauthListener(listener))

	m.Check(ctx)
	m.Check(ctx)
	keys.valid.Store(true)
	m.ReauthSucceeded()

	keys.valid.Store(false)
	m.Check(ctx)
	require.NoError(t, m.ReauthFailed(ctx))
	assert.Equal(t, ReauthIdle, m.State())
}

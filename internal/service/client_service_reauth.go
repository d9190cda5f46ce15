// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-owl/internal/logger"
)

// DefaultReauthInterval is the tick period of the monitor.
const DefaultReauthInterval = 60 * time.Second

// ReauthState is the monitor's state.
type ReauthState int

const (
	ReauthIdle ReauthState = iota
	ReauthMonitoring
	ReauthAwaiting
)

func (s ReauthState) String() string {
	switch s {
	case ReauthIdle:
		return "idle"
	case ReauthMonitoring:
		return "monitoring"
	case ReauthAwaiting:
		return "awaiting-reauth"
	default:
		return "unknown"
	}
}

// KeyChecker reports whether the symmetric session key is Valid.
type KeyChecker interface {
	HasKey() bool
}

// ActiveSession is the session the monitor guards.
type ActiveSession interface {
	IsLoggedIn(ctx context.Context) bool
	End(ctx context.Context) error
}

// ReauthMonitor periodically checks that a logged-in session still holds a
// Valid symmetric key and asks for the master password when it does not.
// A failed or timed out re-authentication ends the session.
type ReauthMonitor struct {
	keys    KeyChecker
	session ActiveSession
	logger  *logger.Logger

	interval time.Duration
	timeout  time.Duration
	now      func() time.Time

	mu            sync.Mutex
	listener      ReauthListener
	state         ReauthState
	awaitingSince time.Time
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

// MonitorOption tunes a [ReauthMonitor].
type MonitorOption func(*ReauthMonitor)

func WithReauthInterval(d time.Duration) MonitorOption {
	return func(m *ReauthMonitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithReauthTimeout bounds how long the monitor waits in the awaiting state
// before logging out. Zero waits forever.
func WithReauthTimeout(d time.Duration) MonitorOption {
	return func(m *ReauthMonitor) {
		if d >= 0 {
			m.timeout = d
		}
	}
}

func WithReauthClock(now func() time.Time) MonitorOption {
	return func(m *ReauthMonitor) {
		if now != nil {
			m.now = now
		}
	}
}

func WithReauthListener(l ReauthListener) MonitorOption {
	return func(m *ReauthMonitor) {
		if l != nil {
			m.listener = l
		}
	}
}

// NewReauthMonitor creates an idle monitor.
func NewReauthMonitor(keys KeyChecker, active ActiveSession, log *logger.Logger, opts ...MonitorOption) *ReauthMonitor {
	m := &ReauthMonitor{
		keys:     keys,
		session:  active,
		logger:   log.Component("reauth-monitor"),
		interval: DefaultReauthInterval,
		now:      time.Now,
		listener: nopListener{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetListener replaces the signal receiver. nil restores the no-op one.
func (m *ReauthMonitor) SetListener(l ReauthListener) {
	if l == nil {
		l = nopListener{}
	}
	m.mu.Lock()
	m.listener = l
	m.mu.Unlock()
}

func (m *ReauthMonitor) State() ReauthState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start stops any previous loop, runs the first check immediately and then
// checks on every tick until ctx is done or Stop is called.
func (m *ReauthMonitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.state = ReauthMonitoring
	m.wg.Add(1)
	m.mu.Unlock()

	m.logger.Debug().Dur("interval", m.interval).Msg("monitoring started")
	m.Check(loopCtx)

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				m.Check(loopCtx)
			}
		}
	}()
}

// Stop cancels the loop and blocks until it has exited. Safe to call when
// the monitor is not running.
func (m *ReauthMonitor) Stop() {
	m.halt()
	m.wg.Wait()

	m.mu.Lock()
	m.state = ReauthIdle
	m.mu.Unlock()
}

// halt cancels the loop without waiting, so it may run on the loop goroutine.
func (m *ReauthMonitor) halt() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Check runs one monitor step and reports whether the session is waiting
// for re-authentication. The ReauthRequired signal is emitted once per
// missing-key episode.
func (m *ReauthMonitor) Check(ctx context.Context) bool {
	if ctx.Err() != nil || !m.session.IsLoggedIn(ctx) {
		return false
	}

	m.mu.Lock()
	if m.state == ReauthAwaiting {
		expired := m.timeout > 0 && m.now().Sub(m.awaitingSince) > m.timeout
		m.mu.Unlock()
		if expired {
			_ = m.ReauthTimedOut(ctx)
			return false
		}
		return true
	}

	if m.keys.HasKey() {
		m.mu.Unlock()
		return false
	}

	m.state = ReauthAwaiting
	m.awaitingSince = m.now()
	listener := m.listener
	m.mu.Unlock()

	m.logger.Info().Msg("session key missing, re-authentication required")
	listener.ReauthRequired()
	return true
}

// RequestReauth is a synchronous Check for consumers that just got
// session.ErrKeyUnavailable.
func (m *ReauthMonitor) RequestReauth(ctx context.Context) bool {
	return m.Check(ctx)
}

// ReauthSucceeded is called after the key was re-derived. It withdraws the
// signal and resumes monitoring.
func (m *ReauthMonitor) ReauthSucceeded() {
	m.mu.Lock()
	if m.state != ReauthAwaiting {
		m.mu.Unlock()
		return
	}
	if m.cancel != nil {
		m.state = ReauthMonitoring
	} else {
		m.state = ReauthIdle
	}
	listener := m.listener
	m.mu.Unlock()

	m.logger.Info().Msg("re-authentication succeeded")
	listener.ReauthCleared()
}

// ReauthFailed ends the session after the user could not prove the master
// password.
func (m *ReauthMonitor) ReauthFailed(ctx context.Context) error {
	return m.forceLogout(ctx, "re-authentication failed")
}

// ReauthTimedOut ends the session after nobody answered the signal in time.
func (m *ReauthMonitor) ReauthTimedOut(ctx context.Context) error {
	return m.forceLogout(ctx, "re-authentication timed out")
}

func (m *ReauthMonitor) forceLogout(ctx context.Context, reason string) error {
	m.halt()

	err := m.session.End(context.WithoutCancel(ctx))
	if err != nil {
		m.logger.Err(err).Msg("session teardown incomplete")
	}

	m.mu.Lock()
	m.state = ReauthIdle
	listener := m.listener
	m.mu.Unlock()

	m.logger.Warn().Str("reason", reason).Msg("forced logout")
	listener.LoggedOut()
	return err
}

type nopListener struct{}

func (nopListener) ReauthRequired() {}
func (nopListener) ReauthCleared()  {}
func (nopListener) LoggedOut()      {}

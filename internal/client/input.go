package client

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

var errSignal = errors.New("interrupted by monitor signal")

// lineReader turns a blocking reader into lines that can be awaited with a
// context. The scanning goroutine starts on the first read.
type lineReader struct {
	src   io.Reader
	once  sync.Once
	lines chan string
	err   error
	done  chan struct{}
}

func newLineReader(src io.Reader) *lineReader {
	return &lineReader{
		src:   src,
		lines: make(chan string),
		done:  make(chan struct{}),
	}
}

func (r *lineReader) start() {
	r.once.Do(func() {
		go func() {
			defer close(r.done)
			scanner := bufio.NewScanner(r.src)
			for scanner.Scan() {
				r.lines <- strings.TrimRight(scanner.Text(), "\r")
			}
			r.err = scanner.Err()
			if r.err == nil {
				r.err = io.EOF
			}
		}()
	})
}

// Next blocks until a line arrives, the input ends or ctx is done.
func (r *lineReader) Next(ctx context.Context) (string, error) {
	return r.NextOrSignal(ctx, nil)
}

// NextOrSignal is Next that also returns errSignal when the monitor wakes
// the listener.
func (r *lineReader) NextOrSignal(ctx context.Context, signals *signalListener) (string, error) {
	r.start()

	var wake <-chan struct{}
	if signals != nil {
		wake = signals.wake
	}

	select {
	case line := <-r.lines:
		return line, nil
	case <-r.done:
		return "", r.err
	case <-wake:
		return "", errSignal
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// signalListener forwards monitor signals to the session loop.
type signalListener struct {
	required  chan struct{}
	loggedOut chan struct{}
	wake      chan struct{}
}

func newSignalListener() *signalListener {
	return &signalListener{
		required:  make(chan struct{}, 1),
		loggedOut: make(chan struct{}, 1),
		wake:      make(chan struct{}, 1),
	}
}

func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func (l *signalListener) ReauthRequired() {
	notify(l.required)
	notify(l.wake)
}

func (l *signalListener) ReauthCleared() {
	select {
	case <-l.required:
	default:
	}
}

func (l *signalListener) LoggedOut() {
	notify(l.loggedOut)
	notify(l.wake)
}

package wlanscan

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// WaitResult describes how a wait on the scan signal ended
type WaitResult int

const (
	WaitCompleted WaitResult = iota
	WaitTimedOut
	WaitCancelled
)

// ScanSignal is set once by the notification handler and read by the pipeline.
// It stays set until Reset is called
type ScanSignal struct {
	complete atomic.Bool

	mu   sync.Mutex
	done chan struct{}
}

// NewScanSignal creates an unset ScanSignal
func NewScanSignal() *ScanSignal {
	return &ScanSignal{done: make(chan struct{})}
}

// Notify marks the scan as complete. Safe to call from any thread, any number of times
func (s *ScanSignal) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.complete.Swap(true) {
		return
	}

	close(s.done)
}

// Reset clears the signal so the next Wait blocks again
func (s *ScanSignal) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.complete.Swap(false) {
		s.done = make(chan struct{})
	}
}

// Complete reports whether Notify has been called since the last Reset
func (s *ScanSignal) Complete() bool {
	return s.complete.Load()
}

// Wait blocks until the signal is set, timeout elapses or ctx is done
func (s *ScanSignal) Wait(ctx context.Context, timeout time.Duration) (WaitResult, time.Duration) {
	start := time.Now()

	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	select {
	case <-done:
		return WaitCompleted, time.Since(start)
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return WaitCompleted, time.Since(start)
	case <-timer.C:
		return WaitTimedOut, time.Since(start)
	case <-ctx.Done():
		return WaitCancelled, time.Since(start)
	}
}

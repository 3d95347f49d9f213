// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package progress tracks in-flight API requests to drive a global
// loading indicator.
//
// The indicator starts when the first concurrent request begins and stops
// only when the last one finishes. The counter never goes below zero: an
// unmatched Stop is absorbed.
package progress

import "sync"

// Tracker counts in-flight requests. The zero value is ready to use and has
// no callbacks.
type Tracker struct {
	mu     sync.Mutex
	active int

	onStart func()
	onDone  func()
}

// NewTracker returns a [Tracker] that calls onStart when the count goes
// from zero to one and onDone when it returns to zero. Either callback may
// be nil. Callbacks run while the tracker is locked and must not call back
// into it.
func NewTracker(onStart, onDone func()) *Tracker {
	return &Tracker{onStart: onStart, onDone: onDone}
}

// Start registers a new in-flight request.
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == 0 && t.onStart != nil {
		t.onStart()
	}
	t.active++
}

// Stop marks one request as finished.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.active--
	if t.active <= 0 {
		t.active = 0
		if t.onDone != nil {
			t.onDone()
		}
	}
}

// Active returns the current number of in-flight requests.
func (t *Tracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.active
}

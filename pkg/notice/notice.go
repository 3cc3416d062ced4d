// Package notice keeps the transient result message shown after an
// operator action. A notice disappears on its own after a fixed time.
package notice

import (
	"sync"
	"time"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

type Notice struct {
	Kind    Kind      `json:"type"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Board holds at most one notice. Each published notice schedules a
// one-shot dismissal and a newer notice is never cleared by an older timer.
type Board struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	cur    *Notice
	gen    uint64
	timer  *time.Timer
	closed bool
}

func NewBoard(ttl time.Duration) *Board {
	return &Board{ttl: ttl, now: time.Now}
}

func (b *Board) Publish(kind Kind, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.gen++
	gen := b.gen
	b.cur = &Notice{Kind: kind, Message: message, At: b.now()}
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.ttl, func() { b.dismiss(gen) })
}

func (b *Board) dismiss(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen == gen {
		b.cur = nil
	}
}

// Current returns the visible notice, if any.
func (b *Board) Current() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cur == nil {
		return Notice{}, false
	}
	return *b.cur, true
}

// Close stops the pending dismissal and drops the current notice.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.cur = nil
	b.closed = true
}

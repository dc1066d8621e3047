// Package notify keeps the transient notification banner of each visitor.
// A banner is cleared a fixed time after it was shown by a timer that is
// never cancelled: when a second banner replaces the first before the
// first timer fires, both timers still fire and each clears whatever
// banner is current at that moment.
package notify

import (
	"sync"
	"time"
)

// Kind - banner turi
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Notification - tashrif buyuruvchiga ko'rsatiladigan banner
type Notification struct {
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Event types sent to a Publisher
const (
	EventShown   = "notification"
	EventCleared = "notification_cleared"
)

// Publisher receives every banner change.
type Publisher interface {
	Publish(visitor, event string, payload any)
}

// Board holds the current banner per visitor.
type Board struct {
	mu        sync.Mutex
	ttl       time.Duration
	current   map[string]Notification
	publisher Publisher
	afterFunc func(time.Duration, func())
}

// NewBoard creates a board whose banners live for ttl. publisher may be nil.
func NewBoard(ttl time.Duration, publisher Publisher) *Board {
	return &Board{
		ttl:       ttl,
		current:   make(map[string]Notification),
		publisher: publisher,
		afterFunc: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// TTL returns how long a banner stays up.
func (b *Board) TTL() time.Duration {
	return b.ttl
}

// Show replaces the visitor's banner and schedules its clear.
func (b *Board) Show(visitor string, kind Kind, message string) Notification {
	n := Notification{Kind: kind, Message: message, ExpiresAt: time.Now().Add(b.ttl)}

	b.mu.Lock()
	b.current[visitor] = n
	b.mu.Unlock()

	b.publish(visitor, EventShown, n)
	b.afterFunc(b.ttl, func() { b.Clear(visitor) })
	return n
}

// Current returns the visitor's banner, if any.
func (b *Board) Current(visitor string) (Notification, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, ok := b.current[visitor]
	return n, ok
}

// Clear removes whatever banner the visitor has right now.
func (b *Board) Clear(visitor string) {
	b.mu.Lock()
	_, ok := b.current[visitor]
	delete(b.current, visitor)
	b.mu.Unlock()

	if ok {
		b.publish(visitor, EventCleared, nil)
	}
}

func (b *Board) publish(visitor, event string, payload any) {
	if b.publisher != nil {
		b.publisher.Publish(visitor, event, payload)
	}
}

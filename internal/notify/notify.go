// Package notify implements the transient status message area: messages
// stack, and each one removes itself after a fixed delay on its own timer.
package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Level tags a notification with its visual style.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "danger"
	LevelInfo    Level = "primary"
)

// Notification is one active message.
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// Emitter holds the set of currently active notifications. Each pushed
// message self-expires after the configured TTL, independent of the others.
// A maxActive of zero leaves stacking unbounded; otherwise the oldest entry
// is evicted to make room.
type Emitter struct {
	ttl       time.Duration
	maxActive int
	logger    *zap.Logger

	mu     sync.Mutex
	nextID int64
	active []Notification
	timers map[int64]*time.Timer
}

// NewEmitter builds an emitter with the given message lifetime.
func NewEmitter(ttl time.Duration, maxActive int, logger *zap.Logger) *Emitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Emitter{
		ttl:       ttl,
		maxActive: maxActive,
		logger:    logger,
		timers:    make(map[int64]*time.Timer),
	}
}

// Push adds a message to the active set and schedules its removal.
func (e *Emitter) Push(message string, level Level) Notification {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.maxActive > 0 && len(e.active) >= e.maxActive {
		oldest := e.active[0]
		e.dropLocked(oldest.ID)
	}

	e.nextID++
	n := Notification{
		ID:        e.nextID,
		Message:   message,
		Level:     level,
		CreatedAt: time.Now(),
	}

	e.active = append(e.active, n)
	id := n.ID
	e.timers[id] = time.AfterFunc(e.ttl, func() {
		e.expire(id)
	})

	e.logger.Debug("notification pushed", zap.Int64("id", n.ID), zap.String("level", string(level)))
	return n
}

// Active returns the currently visible notifications, oldest first.
func (e *Emitter) Active() []Notification {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Notification, len(e.active))
	copy(out, e.active)
	return out
}

// Close stops all pending removal timers.
func (e *Emitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for id, t := range e.timers {
		t.Stop()
		delete(e.timers, id)
	}
	e.active = nil
}

func (e *Emitter) expire(id int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dropLocked(id)
}

func (e *Emitter) dropLocked(id int64) {
	if t, ok := e.timers[id]; ok {
		t.Stop()
		delete(e.timers, id)
	}

	for i, n := range e.active {
		if n.ID == id {
			e.active = append(e.active[:i], e.active[i+1:]...)
			return
		}
	}
}

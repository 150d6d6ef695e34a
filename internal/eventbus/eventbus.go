package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"go.uber.org/atomic"

	"bankey/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventPageChanged        = domain.EventPageChanged
	EventOnboardingFinished = domain.EventOnboardingFinished
	EventLoginAttempted     = domain.EventLoginAttempted
	EventLoginSucceeded     = domain.EventLoginSucceeded
	EventLogoutRequested    = domain.EventLogoutRequested
	EventConfigLoaded       = domain.EventConfigLoaded
	EventConfigSaved        = domain.EventConfigSaved
	EventError              = domain.EventError
)

// Re-export domain event types
type PageChangedEvent = domain.PageChangedEvent
type OnboardingFinishedEvent = domain.OnboardingFinishedEvent
type LoginAttemptedEvent = domain.LoginAttemptedEvent
type LoginSucceededEvent = domain.LoginSucceededEvent
type LogoutRequestedEvent = domain.LogoutRequestedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// Bus is the concrete implementation of EventBus
type Bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup // dispatcher
	inflight  sync.WaitGroup // running handlers
	quit      chan struct{}
	closed    *atomic.Bool
	published *atomic.Int64
	dropped   *atomic.Int64
}

// New creates a new event bus
func New() *Bus {
	return NewWithBuffer(256)
}

// NewWithBuffer creates an event bus whose queue holds up to size pending events
func NewWithBuffer(size int) *Bus {
	b := &Bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, size),
		quit:      make(chan struct{}),
		closed:    atomic.NewBool(false),
		published: atomic.NewInt64(0),
		dropped:   atomic.NewInt64(0),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers of its type.
// Events published after Close, or while the queue is full, are dropped.
func (b *Bus) Publish(event DomainEvent) {
	if b.closed.Load() {
		b.dropped.Inc()
		return
	}

	// Page flips are too chatty for the log
	if event.Type() != EventPageChanged {
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case b.eventChan <- event:
		b.published.Inc()
	default:
		b.dropped.Inc()
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *Bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}

// Close stops the dispatcher and waits for running handlers.
// Queued events that were not dispatched yet are discarded.
func (b *Bus) Close() {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}
	close(b.quit)
	b.wg.Wait()
	b.inflight.Wait()
}

// Published returns how many events were accepted onto the queue
func (b *Bus) Published() int64 { return b.published.Load() }

// Dropped returns how many events were discarded
func (b *Bus) Dropped() int64 { return b.dropped.Load() }

// dispatch handles event distribution to subscribers
func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				b.inflight.Add(1)
				go func(h EventHandler, eventType EventType) {
					defer b.inflight.Done()
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
						}
					}()
					h(event)
				}(s.handler, event.Type())
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
					b.dropped.Inc()
				default:
					return
				}
			}
		}
	}
}

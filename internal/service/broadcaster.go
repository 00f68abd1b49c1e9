package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/marvinh/leadscout/internal/domain"
)

// subscriberBuffer is the per-subscriber event queue depth. When a slow
// observer's queue is full, new events for it are dropped rather than
// blocking the producer.
const subscriberBuffer = 64

// Subscriber receives the event stream of one job. The channel is closed on
// Unsubscribe or when a terminal complete event has been delivered and the
// broadcaster shuts the job's stream down.
type Subscriber struct {
	events  chan domain.Event
	once    sync.Once
	dropped int64
}

// Events returns the receive side of the subscriber's queue.
func (s *Subscriber) Events() <-chan domain.Event {
	return s.events
}

// Dropped returns how many events this subscriber missed because its queue
// was full.
func (s *Subscriber) Dropped() int64 {
	return atomic.LoadInt64(&s.dropped)
}

func (s *Subscriber) close() {
	s.once.Do(func() { close(s.events) })
}

// Broadcaster fans job-scoped events out to the current subscriber set of
// each job. It owns subscriber membership only; it never owns job or lead
// data. There is no replay: an observer sees only events emitted after it
// subscribed.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscriber]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[string]map[*Subscriber]struct{}),
	}
}

// Subscribe registers a new observer for a job's events.
// Parameters:
//   - jobID: job to observe.
// Returns:
//   - *Subscriber: subscription handle; release it with Unsubscribe.
func (b *Broadcaster) Subscribe(jobID string) *Subscriber {
	sub := &Subscriber{events: make(chan domain.Event, subscriberBuffer)}
	b.mu.Lock()
	set, ok := b.subs[jobID]
	if !ok {
		set = make(map[*Subscriber]struct{})
		b.subs[jobID] = set
	}
	set[sub] = struct{}{}
	b.mu.Unlock()
	return sub
}

// Unsubscribe removes an observer and closes its event channel. Safe to call
// more than once.
// Parameters:
//   - jobID: job the subscriber was registered under.
//   - sub: subscription handle returned by Subscribe.
func (b *Broadcaster) Unsubscribe(jobID string, sub *Subscriber) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	if set, ok := b.subs[jobID]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(b.subs, jobID)
		}
	}
	sub.close()
	b.mu.Unlock()
}

// SubscriberCount returns the number of current observers of a job.
func (b *Broadcaster) SubscriberCount(jobID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[jobID])
}

// PublishLog delivers a log entry to the job's subscribers.
func (b *Broadcaster) PublishLog(jobID string, entry *domain.JobLog) {
	b.publish(jobID, domain.Event{Type: domain.EventTypeLog, JobID: jobID, Log: entry})
}

// PublishStats delivers a counter snapshot to the job's subscribers.
func (b *Broadcaster) PublishStats(jobID string, snapshot *domain.StatsSnapshot) {
	b.publish(jobID, domain.Event{Type: domain.EventTypeStats, JobID: jobID, Stats: snapshot})
}

// PublishComplete delivers the terminal signal, carrying the final snapshot,
// to the job's subscribers.
func (b *Broadcaster) PublishComplete(jobID string, final *domain.StatsSnapshot) {
	if final != nil && final.Timestamp.IsZero() {
		final.Timestamp = time.Now()
	}
	b.publish(jobID, domain.Event{Type: domain.EventTypeComplete, JobID: jobID, Stats: final})
}

// publish fans an event out without blocking. A subscriber whose queue is
// full misses the event; delivery to the rest proceeds.
func (b *Broadcaster) publish(jobID string, ev domain.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.subs[jobID] {
		select {
		case sub.events <- ev:
		default:
			atomic.AddInt64(&sub.dropped, 1)
		}
	}
}

package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/marvinh/leadscout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvEvent(t *testing.T, sub *Subscriber) domain.Event {
	t.Helper()
	select {
	case ev := <-sub.Events():
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return domain.Event{}
	}
}

// TestBroadcasterOrdering verifies a subscriber observes one job's log events
// in publish order.
func TestBroadcasterOrdering(t *testing.T) {
	hub := NewBroadcaster()
	sub := hub.Subscribe("job-1")
	defer hub.Unsubscribe("job-1", sub)

	for i := 0; i < 10; i++ {
		hub.PublishLog("job-1", &domain.JobLog{Message: fmt.Sprintf("line %d", i)})
	}

	for i := 0; i < 10; i++ {
		ev := recvEvent(t, sub)
		require.Equal(t, domain.EventTypeLog, ev.Type)
		assert.Equal(t, fmt.Sprintf("line %d", i), ev.Log.Message)
	}
}

// TestBroadcasterNoReplay verifies a late subscriber sees only events
// published after it joined.
func TestBroadcasterNoReplay(t *testing.T) {
	hub := NewBroadcaster()

	hub.PublishLog("job-1", &domain.JobLog{Message: "before"})

	sub := hub.Subscribe("job-1")
	defer hub.Unsubscribe("job-1", sub)

	hub.PublishLog("job-1", &domain.JobLog{Message: "after"})

	ev := recvEvent(t, sub)
	assert.Equal(t, "after", ev.Log.Message, "history must not replay")
}

// TestBroadcasterJobIsolation verifies subscribers only get their job's events.
func TestBroadcasterJobIsolation(t *testing.T) {
	hub := NewBroadcaster()
	sub := hub.Subscribe("job-a")
	defer hub.Unsubscribe("job-a", sub)

	hub.PublishLog("job-b", &domain.JobLog{Message: "other job"})
	hub.PublishLog("job-a", &domain.JobLog{Message: "mine"})

	ev := recvEvent(t, sub)
	assert.Equal(t, "mine", ev.Log.Message)
	assert.Equal(t, "job-a", ev.JobID)
}

// TestBroadcasterSlowSubscriber verifies publishing never blocks on a full
// subscriber buffer; overflow is dropped and counted.
func TestBroadcasterSlowSubscriber(t *testing.T) {
	hub := NewBroadcaster()
	sub := hub.Subscribe("job-1")
	defer hub.Unsubscribe("job-1", sub)

	// Publish far more than the buffer holds without draining.
	const published = subscriberBuffer * 3
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < published; i++ {
			hub.PublishLog("job-1", &domain.JobLog{Message: "flood"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	assert.Equal(t, int64(published-subscriberBuffer), sub.Dropped())
}

func TestBroadcasterUnsubscribeClosesChannel(t *testing.T) {
	hub := NewBroadcaster()
	sub := hub.Subscribe("job-1")
	hub.Unsubscribe("job-1", sub)

	_, open := <-sub.Events()
	assert.False(t, open, "channel must be closed after unsubscribe")
	assert.Equal(t, 0, hub.SubscriberCount("job-1"))

	// A second unsubscribe is a no-op.
	hub.Unsubscribe("job-1", sub)
}

func TestBroadcasterCompleteEvent(t *testing.T) {
	hub := NewBroadcaster()
	sub := hub.Subscribe("job-1")
	defer hub.Unsubscribe("job-1", sub)

	snap := &domain.StatsSnapshot{JobID: "job-1", ProcessedCount: 7}
	hub.PublishComplete("job-1", snap)

	ev := recvEvent(t, sub)
	require.Equal(t, domain.EventTypeComplete, ev.Type)
	require.NotNil(t, ev.Stats)
	assert.Equal(t, 7, ev.Stats.ProcessedCount)
}

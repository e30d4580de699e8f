package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livelyicons/internal/domain"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventIconDiscovered, func(e DomainEvent) { got <- e })

	b.Publish(IconDiscoveredEvent{Icon: domain.Icon{Name: "heart"}})

	select {
	case e := <-got:
		ev, ok := e.(IconDiscoveredEvent)
		require.True(t, ok)
		assert.Equal(t, "heart", ev.Icon.Name)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var first, second atomic.Int32
	unsubscribe := b.Subscribe(EventScanCompleted, func(DomainEvent) { first.Add(1) })
	done := make(chan struct{}, 2)
	b.Subscribe(EventScanCompleted, func(DomainEvent) {
		second.Add(1)
		done <- struct{}{}
	})

	unsubscribe()
	b.Publish(ScanCompletedEvent{IconsFound: 3})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber not called")
	}
	assert.Equal(t, int32(0), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New()
	defer b.Close()

	done := make(chan struct{})
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { close(done) })

	b.Publish(ErrorEvent{Message: "x"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("healthy handler not called")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	b.Close()
	assert.NotPanics(t, func() {
		b.Publish(SearchClearedEvent{})
		b.Close()
	})
}

package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollhead/internal/domain"
)

func TestPublishDeliversInOrder(t *testing.T) {
	b := New()

	var mu sync.Mutex
	var got []domain.HeaderState
	b.Subscribe(EventHeaderStateChanged, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(HeaderStateChangedEvent).To)
	})

	b.Publish(HeaderStateChangedEvent{From: domain.StateInitial, To: domain.StateExpanded})
	b.Publish(HeaderStateChangedEvent{From: domain.StateExpanded, To: domain.StateCollapsed})
	b.Publish(HeaderStateChangedEvent{From: domain.StateCollapsed, To: domain.StateExpanded})
	b.Close()

	assert.Equal(t, []domain.HeaderState{
		domain.StateExpanded,
		domain.StateCollapsed,
		domain.StateExpanded,
	}, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	calls := make(chan struct{}, 4)
	unsubscribe := b.Subscribe(EventStrategyChanged, func(DomainEvent) {
		calls <- struct{}{}
	})

	b.Publish(StrategyChangedEvent{From: domain.StrategyOffset, To: domain.StrategyIndex})
	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("handler was not called")
	}

	unsubscribe()
	b.Publish(StrategyChangedEvent{From: domain.StrategyIndex, To: domain.StrategyOffset})

	select {
	case <-calls:
		t.Fatal("handler called after unsubscribe")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()

	done := make(chan struct{})
	b.Subscribe(EventConfigSaved, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventConfigSaved, func(DomainEvent) { close(done) })

	b.Publish(ConfigSavedEvent{Path: "x.toml"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second handler was not reached")
	}
	b.Close()
}

func TestPublishAfterCloseIsIgnored(t *testing.T) {
	b := New()
	b.Close()
	require.NotPanics(t, func() {
		b.Publish(ConfigLoadedEvent{Path: "x.toml"})
	})
}

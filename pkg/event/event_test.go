// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"
)

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewEventBus()

	var got []Event
	bus.Subscribe(StallEntered, func(e Event) {
		got = append(got, e)
	})

	ev := NewStallEvent(StallEntered, nil, 42, 2.5)
	bus.Publish(ev)

	if len(got) != 1 {
		t.Fatalf("handler called %d times, want 1", len(got))
	}
	se, ok := got[0].(*StallEvent)
	if !ok {
		t.Fatalf("handler received %T, want *StallEvent", got[0])
	}
	if se.GliderID != 42 || se.Airspeed != 2.5 {
		t.Errorf("event = %+v, want GliderID 42, Airspeed 2.5", se)
	}
}

func TestBus_TypeFiltering(t *testing.T) {
	bus := NewEventBus()

	var stallCalls, wingsCalls int
	bus.Subscribe(StallEntered, func(Event) { stallCalls++ })
	bus.Subscribe(WingsChanged, func(Event) { wingsCalls++ })

	bus.Publish(NewStallEvent(StallEntered, nil, 1, 3))
	bus.Publish(NewStallEvent(StallExited, nil, 1, 6))
	bus.Publish(NewWingsEvent(nil, 1, 0.5, 0.5))

	if stallCalls != 1 {
		t.Errorf("stall handler called %d times, want 1", stallCalls)
	}
	if wingsCalls != 1 {
		t.Errorf("wings handler called %d times, want 1", wingsCalls)
	}
}

func TestBus_MultipleHandlers(t *testing.T) {
	bus := NewEventBus()

	var calls int
	for i := 0; i < 3; i++ {
		bus.Subscribe(GliderAdded, func(Event) { calls++ })
	}

	bus.Publish(NewGliderEvent(GliderAdded, nil, 7, "hawk"))
	if calls != 3 {
		t.Errorf("handlers called %d times, want 3", calls)
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewEventBus()
	// Must not panic.
	bus.Publish(NewGliderEvent(GliderRemoved, nil, 1, "gone"))
}

func TestBus_ConcurrentSubscribePublish(t *testing.T) {
	bus := NewEventBus()

	var mu sync.Mutex
	count := 0
	bus.Subscribe(StallEntered, func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Publish(NewStallEvent(StallEntered, nil, 1, 1))
		}()
		go func() {
			defer wg.Done()
			bus.Subscribe(WingsChanged, func(Event) {})
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if count != 10 {
		t.Errorf("handler called %d times, want 10", count)
	}
}

func TestBaseEvent_Accessors(t *testing.T) {
	src := "source"
	ev := &BaseEvent{EventType: GliderAdded, Source: src}

	if ev.GetType() != GliderAdded {
		t.Errorf("GetType() = %v, want %v", ev.GetType(), GliderAdded)
	}
	if ev.GetSource() != src {
		t.Errorf("GetSource() = %v, want %v", ev.GetSource(), src)
	}
}

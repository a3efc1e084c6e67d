package event

import "testing"

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewEventBus()

	received := 0
	bus.Subscribe(BoostEngaged, func(e Event) {
		received++
		if e.GetType() != BoostEngaged {
			t.Errorf("handler got type %q, want %q", e.GetType(), BoostEngaged)
		}
	})

	bus.Publish(&BaseEvent{EventType: BoostEngaged})
	bus.Publish(&BaseEvent{EventType: BoostEngaged})

	if received != 2 {
		t.Errorf("handler invoked %d times, want 2", received)
	}
}

func TestBus_PublishIgnoresUnsubscribedTypes(t *testing.T) {
	bus := NewEventBus()

	received := false
	bus.Subscribe(CraftReset, func(Event) { received = true })

	bus.Publish(&BaseEvent{EventType: SessionStarted})

	if received {
		t.Error("handler for craft_reset fired on session_started")
	}
}

func TestBus_MultipleHandlersSameType(t *testing.T) {
	bus := NewEventBus()

	calls := make([]int, 2)
	bus.Subscribe(SessionEnded, func(Event) { calls[0]++ })
	bus.Subscribe(SessionEnded, func(Event) { calls[1]++ })

	bus.Publish(&BaseEvent{EventType: SessionEnded})

	if calls[0] != 1 || calls[1] != 1 {
		t.Errorf("handler call counts = %v, want [1 1]", calls)
	}
}

func TestCraftEvent_CarriesIdentity(t *testing.T) {
	bus := NewEventBus()

	var got *CraftEvent
	bus.Subscribe(CraftReset, func(e Event) {
		if ce, ok := e.(*CraftEvent); ok {
			got = ce
		}
	})

	bus.Publish(NewCraftEvent(CraftReset, nil, 42, 1000))

	if got == nil {
		t.Fatal("craft event was not delivered")
	}
	if got.CraftID != 42 || got.Tick != 1000 {
		t.Errorf("craft event = id %d tick %d, want id 42 tick 1000", got.CraftID, got.Tick)
	}
}

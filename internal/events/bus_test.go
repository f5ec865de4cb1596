package events_test

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/pokebattle-bot/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_Basic(t *testing.T) {
	bus := events.NewBus()

	var received events.Event
	bus.Subscribe(events.EventTypeCombatantCaptured, &testListener{
		id:       "recorder",
		priority: events.PriorityRecord,
		handler: func(e events.Event) error {
			received = e
			return nil
		},
	})

	event := &events.CombatantCapturedEvent{
		BaseEvent: events.BaseEvent{
			Type:      events.EventTypeCombatantCaptured,
			TrainerID: "trainer_1",
		},
		CombatantID:  "wild_1",
		ItemKey:      "poke-ball",
		TeamPosition: 1,
	}

	require.NoError(t, bus.Emit(event))
	require.NotNil(t, received)
	assert.Equal(t, "trainer_1", received.GetTrainerID())
	assert.Equal(t, "combatant_captured: trainer_1 caught wild_1 with poke-ball into position 1", received.String())
}

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()

	var executionOrder []string
	record := func(name string) func(events.Event) error {
		return func(events.Event) error {
			executionOrder = append(executionOrder, name)
			return nil
		}
	}

	// Subscribe out of order
	bus.Subscribe(events.EventTypeTurnResolved, &testListener{id: "low", priority: 300, handler: record("low")})
	bus.Subscribe(events.EventTypeTurnResolved, &testListener{id: "high", priority: 100, handler: record("high")})
	bus.Subscribe(events.EventTypeTurnResolved, &testListener{id: "medium", priority: 200, handler: record("medium")})

	err := bus.Emit(&events.TurnResolvedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeTurnResolved},
	})
	require.NoError(t, err)

	// Lower priority number runs first
	assert.Equal(t, []string{"high", "medium", "low"}, executionOrder)
}

func TestEventBus_FailingListenerDoesNotStopOthers(t *testing.T) {
	bus := events.NewBus()

	var secondRan bool
	bus.Subscribe(events.EventTypeCombatantFainted, &testListener{
		id:       "broken",
		priority: 1,
		handler:  func(events.Event) error { return errors.New("boom") },
	})
	bus.Subscribe(events.EventTypeCombatantFainted, &testListener{
		id:       "second",
		priority: 2,
		handler: func(events.Event) error {
			secondRan = true
			return nil
		},
	})

	err := bus.Emit(&events.CombatantFaintedEvent{
		BaseEvent:   events.BaseEvent{Type: events.EventTypeCombatantFainted},
		CombatantID: "wild_1",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listener broken failed: boom")
	assert.True(t, secondRan)
}

func TestEventBus_UnsubscribeAndClear(t *testing.T) {
	bus := events.NewBus()

	calls := 0
	counter := &events.ListenerFunc{
		Name:  "counter",
		Order: events.PriorityNotify,
		Callback: func(events.Event) error {
			calls++
			return nil
		},
	}
	bus.SubscribeAll(counter)

	starter := &events.StarterChosenEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeStarterChosen, TrainerID: "trainer_1"},
		SpeciesID: 155,
	}
	require.NoError(t, bus.Emit(starter))
	assert.Equal(t, 1, calls)

	bus.Unsubscribe(events.EventTypeStarterChosen, "counter")
	require.NoError(t, bus.Emit(starter))
	assert.Equal(t, 1, calls)

	// Still subscribed to the other types until cleared
	turn := &events.TurnResolvedEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeTurnResolved}}
	require.NoError(t, bus.Emit(turn))
	assert.Equal(t, 2, calls)

	bus.Clear()
	require.NoError(t, bus.Emit(turn))
	assert.Equal(t, 2, calls)
}

func TestPublish_NilBus(t *testing.T) {
	assert.NotPanics(t, func() {
		events.Publish(nil, &events.StarterChosenEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeStarterChosen},
		})
	})
}

// Test helper: simple event listener
type testListener struct {
	id       string
	priority int
	handler  func(events.Event) error
}

func (l *testListener) ID() string                       { return l.id }
func (l *testListener) Priority() int                    { return l.priority }
func (l *testListener) HandleEvent(e events.Event) error { return l.handler(e) }

package event

import "testing"

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, 1) }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, 2) }))
	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: EnemySpawned})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("order = %v", order)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &Recorder{}
	d.Subscribe(NightEnded, r)
	d.Dispatch(Event{Type: NightEnded})
	d.Unsubscribe(NightEnded, r)
	d.Dispatch(Event{Type: NightEnded})

	if r.Count(NightEnded) != 1 {
		t.Errorf("Count = %d, want 1", r.Count(NightEnded))
	}
}

func TestNilDispatcherIsSilent(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: EnemyKilled})
}

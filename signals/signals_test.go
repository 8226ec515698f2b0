package signals

import "testing"

func TestEmitDeliversInRegistrationOrder(t *testing.T) {
	var s Signal[int]
	var order []string

	s.Subscribe(func(v int) { order = append(order, "first") })
	s.Subscribe(func(v int) { order = append(order, "second") })
	s.Subscribe(func(v int) { order = append(order, "third") })

	s.Emit(7)

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("expected %d deliveries, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("delivery %d: expected %q, got %q", i, want[i], order[i])
		}
	}
}

func TestEmitIsSynchronous(t *testing.T) {
	var s Signal[int]
	got := -1
	s.Subscribe(func(v int) { got = v })

	s.Emit(42)

	if got != 42 {
		t.Fatalf("listener did not run before Emit returned, got %d", got)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	var s Signal[int]
	calls := 0
	id := s.Subscribe(func(v int) { calls++ })

	s.Emit(1)
	s.Unsubscribe(id)
	s.Emit(2)

	if calls != 1 {
		t.Fatalf("expected 1 call after unsubscribe, got %d", calls)
	}
}

func TestUnsubscribeDuringEmitSkipsListener(t *testing.T) {
	var s Signal[int]
	secondCalls := 0
	var secondID int
	s.Subscribe(func(v int) { s.Unsubscribe(secondID) })
	secondID = s.Subscribe(func(v int) { secondCalls++ })

	s.Emit(1)

	if secondCalls != 0 {
		t.Fatalf("listener removed mid-emit still ran %d times", secondCalls)
	}
}

func TestSubscribeDuringEmitDefersToNextEmit(t *testing.T) {
	var s Signal[int]
	lateCalls := 0
	s.Subscribe(func(v int) {
		if lateCalls == 0 && v == 1 {
			s.Subscribe(func(int) { lateCalls++ })
		}
	})

	s.Emit(1)
	if lateCalls != 0 {
		t.Fatalf("listener added mid-emit ran in the same emission")
	}
	s.Emit(2)
	if lateCalls != 1 {
		t.Fatalf("expected late listener to run on next emit, got %d", lateCalls)
	}
}

func TestUnsubscribeUnknownIDIsNoop(t *testing.T) {
	var s Signal[int]
	s.Subscribe(func(int) {})
	s.Unsubscribe(999)
	s.Emit(1)
}

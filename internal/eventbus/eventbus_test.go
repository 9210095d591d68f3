// ABOUTME: Tests for the typed event bus
// ABOUTME: Covers ordered delivery, unsubscribe, re-entrancy, and concurrent publish

package eventbus

import (
	"sync"
	"testing"
)

func TestBus_PublishSubscribe(t *testing.T) {
	t.Parallel()

	bus := New[string]()
	var received string
	bus.Subscribe(func(s string) { received = s })

	bus.Publish("hello")

	if received != "hello" {
		t.Errorf("received = %q, want %q", received, "hello")
	}
}

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	bus := New[int]()
	var order []int
	for i := range 5 {
		bus.Subscribe(func(int) { order = append(order, i) })
	}

	bus.Publish(0)

	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want ascending", order)
		}
	}
	if len(order) != 5 {
		t.Errorf("len(order) = %d, want 5", len(order))
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	t.Parallel()

	bus := New[string]()
	var calls []string
	unsubA := bus.Subscribe(func(string) { calls = append(calls, "a") })
	bus.Subscribe(func(string) { calls = append(calls, "b") })

	unsubA()
	unsubA()
	bus.Publish("x")

	if len(calls) != 1 || calls[0] != "b" {
		t.Errorf("calls = %v, want [b]", calls)
	}
	if bus.Count() != 1 {
		t.Errorf("Count() = %d, want 1", bus.Count())
	}
}

func TestBus_HandlerMayUnsubscribeDuringPublish(t *testing.T) {
	t.Parallel()

	bus := New[int]()
	var unsub func()
	hits := 0
	unsub = bus.Subscribe(func(int) {
		hits++
		unsub()
	})

	bus.Publish(1)
	bus.Publish(2)

	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
}

func TestBus_ConcurrentPublish(t *testing.T) {
	t.Parallel()

	bus := New[int]()
	var mu sync.Mutex
	sum := 0
	bus.Subscribe(func(n int) {
		mu.Lock()
		sum += n
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(2)
		}()
	}
	wg.Wait()

	if sum != 100 {
		t.Errorf("sum = %d, want 100", sum)
	}
}

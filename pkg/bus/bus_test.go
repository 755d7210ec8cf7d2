package bus

import (
	"testing"

	"github.com/xylemcad/xylem/pkg/graph"
)

func TestPublishDeliversInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	var order []int
	r.Subscribe("c", func(graph.Bucket) { order = append(order, 1) })
	r.Subscribe("c", func(graph.Bucket) { order = append(order, 2) })
	r.Subscribe("c", func(graph.Bucket) { order = append(order, 3) })

	r.Publish("c", graph.Bucket{1.0})
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("delivery order = %v, want [1 2 3]", order)
	}
}

func TestPublishIsolatesChannels(t *testing.T) {
	r := NewRegistry()
	var got graph.Bucket
	r.Subscribe("a", func(b graph.Bucket) { got = b })

	r.Publish("b", graph.Bucket{42.0})
	if got != nil {
		t.Errorf("subscriber on a received publish on b: %v", got)
	}

	r.Publish("a", graph.Bucket{7.0})
	if len(got) != 1 || got[0].(float64) != 7.0 {
		t.Errorf("got = %v, want [7]", got)
	}
}

func TestPublishNoSubscribersIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Publish("nobody", graph.Bucket{1.0})
	if r.SubscriberCount("nobody") != 0 {
		t.Error("publish should not create subscriptions")
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	r := NewRegistry()
	calls := 0
	sub := r.Subscribe("c", func(graph.Bucket) { calls++ })

	r.Publish("c", nil)
	sub.Cancel()
	r.Publish("c", nil)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if r.SubscriberCount("c") != 0 {
		t.Errorf("subscriber count = %d, want 0", r.SubscriberCount("c"))
	}

	// Cancel is idempotent and nil-safe.
	sub.Cancel()
	var nilSub *Subscription
	nilSub.Cancel()
}

func TestReentrantPublish(t *testing.T) {
	r := NewRegistry()
	var got graph.Bucket
	r.Subscribe("data", func(b graph.Bucket) { got = b })

	// A sender answering a pull republishes from inside the delivery.
	r.Subscribe(PullChannel, func(graph.Bucket) {
		r.Publish("data", graph.Bucket{99.0})
	})

	r.Publish(PullChannel, nil)
	if len(got) != 1 || got[0].(float64) != 99.0 {
		t.Errorf("got = %v, want [99]", got)
	}
}

func TestSubscribeDuringDelivery(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.Subscribe("c", func(graph.Bucket) {
		// Late subscribers never see the in-flight publish.
		r.Subscribe("c", func(graph.Bucket) { calls += 10 })
	})

	r.Publish("c", nil)
	if calls != 0 {
		t.Errorf("late subscriber ran during in-flight publish: calls = %d", calls)
	}

	r.Publish("c", nil)
	if calls != 10 {
		t.Errorf("calls = %d, want 10", calls)
	}
}

// Package bus implements the process-wide broadcast channel registry used
// by sender/receiver nodes to move value buckets between otherwise
// disconnected subgraphs. Channels are named, created on first use and
// live for the registry's lifetime.
package bus

import (
	"sync"

	"github.com/xylemcad/xylem/pkg/graph"
)

// PullChannel is the reserved channel name. A receiver publishes on it
// when it binds to a channel; every live sender answers by re-publishing
// its last value so late-joining receivers converge.
const PullChannel = "pull"

// Callback receives published buckets. Callbacks run synchronously on the
// publisher's call stack, in subscriber-registration order.
type Callback func(data graph.Bucket)

// Subscription is the handle returned by Subscribe. Its owner must call
// Cancel when its interest in the channel ends; a leaked subscription
// keeps mutating state on behalf of a dead or re-bound node.
type Subscription struct {
	reg      *Registry
	channel  string
	fn       Callback
	canceled bool
}

// Cancel removes the subscription from its channel. Cancel is idempotent
// and safe to call on a nil subscription.
func (s *Subscription) Cancel() {
	if s == nil || s.canceled {
		return
	}
	s.canceled = true
	s.reg.remove(s)
}

// Registry is the process-wide set of named broadcast channels. It is
// deliberately injected into nodes rather than accessed as a global, so
// tests and hosts can run isolated channel namespaces.
type Registry struct {
	mu       sync.Mutex
	channels map[string][]*Subscription
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{channels: make(map[string][]*Subscription)}
}

// Subscribe registers a callback on the named channel and returns its
// handle. The channel is created on first use.
func (r *Registry) Subscribe(channel string, fn Callback) *Subscription {
	s := &Subscription{reg: r, channel: channel, fn: fn}
	r.mu.Lock()
	r.channels[channel] = append(r.channels[channel], s)
	r.mu.Unlock()
	return s
}

// Publish delivers a bucket to every subscriber of the named channel, in
// registration order. Callbacks run outside the registry lock, so they
// may subscribe, cancel or publish re-entrantly; a sender answering a
// pull notification publishes from inside the pull delivery.
func (r *Registry) Publish(channel string, data graph.Bucket) {
	r.mu.Lock()
	subs := make([]*Subscription, len(r.channels[channel]))
	copy(subs, r.channels[channel])
	r.mu.Unlock()

	for _, s := range subs {
		if s.canceled {
			continue
		}
		s.fn(data)
	}
}

// SubscriberCount returns the number of live subscriptions on a channel.
func (r *Registry) SubscriberCount(channel string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.channels[channel])
}

func (r *Registry) remove(s *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs := r.channels[s.channel]
	for i, other := range subs {
		if other == s {
			r.channels[s.channel] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

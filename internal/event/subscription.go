package event

import "sync"

// Subscription is a single viewer attached to a topic.
// Events only flows while the subscription is registered; Done is closed once it
// has been unregistered, evicted as a slow consumer, or the server shut down.
type Subscription struct {
	topic  string
	events chan Event
	done   chan struct{}
	once   sync.Once
}

func newSubscription(topic string, buffer int) *Subscription {
	return &Subscription{
		topic:  topic,
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
	}
}

func (s *Subscription) Topic() string {
	return s.topic
}

func (s *Subscription) Events() <-chan Event {
	return s.events
}

func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) close() {
	s.once.Do(func() {
		close(s.done)
	})
}

package event

import (
	"sync"

	"github.com/rs/zerolog/log"
)

const DefaultBufferSize = 256

type Option func(*SSEServer)

// WithBufferSize sets how many undelivered events a subscriber may hold before it is
// evicted as a slow consumer.
func WithBufferSize(size int) Option {
	return func(s *SSEServer) {
		if size > 0 {
			s.bufferSize = size
		}
	}
}

var _ EventSender = (*SSEServer)(nil)

// topic guards the subscribers of one auction. Broadcasts on a topic are serialized
// by its own mutex, so topics never wait on each other.
type topic struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

type SSEServer struct {
	mu     sync.RWMutex
	topics map[string]*topic

	quit       chan struct{}
	quitOnce   sync.Once
	bufferSize int
}

func NewSSEServer(opts ...Option) *SSEServer {
	s := &SSEServer{
		topics:     make(map[string]*topic),
		quit:       make(chan struct{}),
		bufferSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register attaches a new subscriber to name, creating the topic on first use.
// Only events broadcast after Register returns are delivered.
func (s *SSEServer) Register(name string) *Subscription {
	sub := newSubscription(name, s.bufferSize)

	s.mu.Lock()
	select {
	case <-s.quit:
		s.mu.Unlock()
		sub.close()
		return sub
	default:
	}
	t, ok := s.topics[name]
	if !ok {
		t = &topic{subs: make(map[*Subscription]struct{})}
		s.topics[name] = t
	}
	t.mu.Lock()
	t.subs[sub] = struct{}{}
	total := len(t.subs)
	t.mu.Unlock()
	s.mu.Unlock()

	log.Debug().Str("topic", name).Int("subscribers", total).Msg("client registered")

	return sub
}

// Unregister detaches sub. Calling it more than once is a no-op.
// The topic is dropped when its last subscriber leaves.
func (s *SSEServer) Unregister(sub *Subscription) {
	if sub == nil {
		return
	}

	s.mu.Lock()
	remaining := s.remove(sub)
	s.mu.Unlock()

	sub.close()

	if remaining >= 0 {
		log.Debug().Str("topic", sub.topic).Int("subscribers", remaining).Msg("client unregistered")
	}
}

// remove must be called with s.mu held. It returns -1 if sub was not registered.
func (s *SSEServer) remove(sub *Subscription) int {
	t, ok := s.topics[sub.topic]
	if !ok {
		return -1
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok = t.subs[sub]; !ok {
		return -1
	}
	delete(t.subs, sub)
	if len(t.subs) == 0 {
		delete(s.topics, sub.topic)
	}

	return len(t.subs)
}

// Broadcast hands event to every current subscriber of its topic and returns without
// waiting for any of them to read it. A subscriber whose buffer is full is evicted.
// Callers that need ordering must not broadcast on the same topic concurrently.
func (s *SSEServer) Broadcast(event Event) error {
	select {
	case <-s.quit:
		return ErrServerClosed
	default:
	}

	s.mu.RLock()
	t, ok := s.topics[event.Topic]
	if !ok {
		s.mu.RUnlock()
		return nil
	}
	t.mu.Lock()
	s.mu.RUnlock()

	var evicted []*Subscription
	for sub := range t.subs {
		select {
		case sub.events <- event:
		default:
			delete(t.subs, sub)
			sub.close()
			evicted = append(evicted, sub)
		}
	}
	empty := len(t.subs) == 0
	t.mu.Unlock()

	for range evicted {
		log.Warn().
			Str("topic", event.Topic).
			Str("event_type", event.Type).
			Msg("subscriber too slow, evicting")
	}
	if empty && len(evicted) > 0 {
		s.dropIfEmpty(event.Topic, t)
	}

	return nil
}

func (s *SSEServer) dropIfEmpty(name string, t *topic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.topics[name] != t {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.subs) == 0 {
		delete(s.topics, name)
	}
}

// Subscribers reports how many subscribers name currently has.
func (s *SSEServer) Subscribers(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.topics[name]
	if !ok {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.subs)
}

// Topics reports how many topics currently have at least one subscriber.
func (s *SSEServer) Topics() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.topics)
}

// Shutdown rejects further broadcasts and closes every subscription.
func (s *SSEServer) Shutdown() {
	s.quitOnce.Do(func() {
		close(s.quit)

		s.mu.Lock()
		for name, t := range s.topics {
			t.mu.Lock()
			for sub := range t.subs {
				sub.close()
			}
			t.mu.Unlock()
			delete(s.topics, name)
		}
		s.mu.Unlock()
	})
}

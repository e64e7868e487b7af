package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultRelayChannel = "procurement:events"
	relayPublishTimeout = 2 * time.Second
)

// RedisRelay shares broadcasts between instances through Redis pub/sub.
// Every instance, including the publisher, re-broadcasts relayed events to its local subscribers.
type RedisRelay struct {
	client  redis.UniversalClient
	channel string
	local   EventSender

	mu     sync.Mutex
	pubsub *redis.PubSub
	wg     sync.WaitGroup

	seqMu   sync.Mutex
	lastSeq map[string]int64
}

type relayMessage struct {
	Topic string          `json:"topic"`
	Type  string          `json:"type"`
	Seq   int64           `json:"seq,omitempty"`
	Data  json.RawMessage `json:"data"`
}

func NewRedisRelay(client redis.UniversalClient, channel string, local EventSender) *RedisRelay {
	if channel == "" {
		channel = DefaultRelayChannel
	}

	return &RedisRelay{
		client:  client,
		channel: channel,
		local:   local,
		lastSeq: make(map[string]int64),
	}
}

// Broadcast publishes event to Redis. If Redis is unreachable the event is still
// delivered to this instance's subscribers. A sequenced event that reaches this
// instance both ways is delivered once.
func (r *RedisRelay) Broadcast(event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), relayPublishTimeout)
	defer cancel()

	if err = r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		log.Warn().Err(err).
			Str("topic", event.Topic).
			Str("event_type", event.Type).
			Msg("failed to relay event, delivering locally")
		return r.local.Broadcast(event)
	}

	return nil
}

// Start subscribes to the relay channel and begins forwarding. It returns once the
// subscription is confirmed by Redis.
func (r *RedisRelay) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pubsub != nil {
		return errors.New("relay already started")
	}

	pubsub := r.client.Subscribe(ctx, r.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}
	r.pubsub = pubsub

	ch := pubsub.Channel()
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for msg := range ch {
			r.forward(msg.Payload)
		}
	}()

	log.Info().Str("channel", r.channel).Msg("event relay started")

	return nil
}

func (r *RedisRelay) forward(payload string) {
	var msg relayMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		log.Error().Err(err).Msg("failed to decode relayed event")
		return
	}

	err := r.deliver(Event{
		Topic: msg.Topic,
		Type:  msg.Type,
		Seq:   msg.Seq,
		Data:  msg.Data,
	})
	if err != nil {
		log.Warn().Err(err).Str("topic", msg.Topic).Msg("failed to deliver relayed event")
	}
}

// deliver hands event to the local subscribers unless a sequenced event at or past
// its position was already delivered on the topic.
func (r *RedisRelay) deliver(event Event) error {
	r.seqMu.Lock()
	defer r.seqMu.Unlock()

	if event.Seq > 0 {
		if event.Seq <= r.lastSeq[event.Topic] {
			log.Debug().
				Str("topic", event.Topic).
				Int64("seq", event.Seq).
				Msg("dropping duplicate relayed event")
			return nil
		}
		r.lastSeq[event.Topic] = event.Seq
	}
	if event.Type == EventTypeAuctionEnded {
		delete(r.lastSeq, event.Topic)
	}

	return r.local.Broadcast(event)
}

// Close stops forwarding and waits for the forwarding goroutine to exit.
func (r *RedisRelay) Close() error {
	r.mu.Lock()
	pubsub := r.pubsub
	r.pubsub = nil
	r.mu.Unlock()

	if pubsub == nil {
		return nil
	}

	err := pubsub.Close()
	r.wg.Wait()

	return err
}

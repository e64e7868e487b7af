package event

import "errors"

// Event is a message published on a topic, e.g. "auction:<id>".
// Seq orders events within a topic; zero means the event is unordered.
type Event struct {
	Topic string      `json:"topic"`
	Type  string      `json:"type"`
	Seq   int64       `json:"seq,omitempty"`
	Data  interface{} `json:"data"`
}

const (
	EventTypeNewBid         = "new_bid"
	EventTypeAuctionStarted = "auction_started"
	EventTypeAuctionEnded   = "auction_ended"
)

var ErrServerClosed = errors.New("event server closed")

// EventSender fans events out to the subscribers of a topic.
type EventSender interface {
	Register(topic string) *Subscription
	Unregister(sub *Subscription)
	Broadcast(event Event) error
	Subscribers(topic string) int
	Shutdown()
}

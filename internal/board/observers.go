package board

import "placer/internal/pubsub"

// Observers is notified once per component touched by a completed undo
// or redo, in replay order. Implementations must not re-enter the
// registry from the callback.
type Observers interface {
	NotifyMoved(*Component)
}

// ObserverFunc adapts a function to the Observers interface.
type ObserverFunc func(*Component)

func (f ObserverFunc) NotifyMoved(c *Component) {
	f(c)
}

// BrokerObserver forwards moved notifications onto a pubsub broker so
// an editor shell can subscribe to replay events as a stream.
type BrokerObserver struct {
	broker *pubsub.Broker[*Component]
}

// NewBrokerObserver creates an observer publishing to broker.
func NewBrokerObserver(broker *pubsub.Broker[*Component]) *BrokerObserver {
	return &BrokerObserver{broker: broker}
}

func (o *BrokerObserver) NotifyMoved(c *Component) {
	o.broker.Publish(pubsub.MovedEvent, c)
}

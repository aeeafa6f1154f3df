package ports

// EventName identifies a lifecycle event on the push channel.
type EventName string

// The three lifecycle events, named as clients subscribe to them.
const (
	EventOrderCreated         EventName = "orderCreated"
	EventOrderUpdated         EventName = "orderUpdated"
	EventRiderLocationUpdated EventName = "riderLocationUpdated"
)

// Event is a lifecycle notification. Data carries the full post-mutation
// snapshot (order.View for created/updated, order.LocationUpdate for rider
// positions), never a delta.
type Event struct {
	Name EventName
	Data any
}

// EventPublisher decouples the business layer from the push transport.
// Publish must not block and must not fail the originating operation:
// delivery problems are the bus's concern, handled by logging and by
// dropping subscribers that cannot keep up.
type EventPublisher interface {
	Publish(event Event)
}

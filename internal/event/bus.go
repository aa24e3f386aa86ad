package event

// Handler consumes one event.
type Handler func(Event)

// Bus is a single-consumer FIFO of events with per-kind subscribers.
// It is not safe for concurrent use; the exhibit runs one logical thread.
type Bus struct {
	queue    []Event
	handlers map[Kind][]Handler
	all      []Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Kind][]Handler)}
}

// Subscribe registers h for events of kind k.
func (b *Bus) Subscribe(k Kind, h Handler) {
	b.handlers[k] = append(b.handlers[k], h)
}

// SubscribeAll registers h for every event.
func (b *Bus) SubscribeAll(h Handler) {
	b.all = append(b.all, h)
}

// Publish queues e for the next Flush.
func (b *Bus) Publish(e Event) {
	b.queue = append(b.queue, e)
}

// Pending returns the number of queued events.
func (b *Bus) Pending() int { return len(b.queue) }

// Flush delivers queued events in publish order and returns how many were
// delivered. Events published by handlers during the flush are delivered
// in the same call, after the ones already queued.
func (b *Bus) Flush() int {
	n := 0
	for len(b.queue) > 0 {
		e := b.queue[0]
		b.queue[0] = nil
		b.queue = b.queue[1:]
		for _, h := range b.handlers[e.Kind()] {
			h(e)
		}
		for _, h := range b.all {
			h(e)
		}
		n++
	}
	b.queue = b.queue[:0]
	return n
}

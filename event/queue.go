package event

import "github.com/lixenwraith/starfall/parameter"

const queueMask = parameter.EventQueueSize - 1

// Queue is a fixed-size ring buffer of events owned by one game loop
// Overflow: oldest events are overwritten when full
type Queue struct {
	events [parameter.EventQueueSize]Event
	head   uint64 // Read index
	tail   uint64 // Write index
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, dropping the oldest when the ring is full
func (q *Queue) Push(ev Event) {
	q.events[q.tail&queueMask] = ev
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
	}
}

// Emit is shorthand for Push with a type and payload
func (q *Queue) Emit(t Type, payload any) {
	q.Push(Event{Type: t, Payload: payload})
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []Event {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	out := make([]Event, 0, n)
	for i := q.head; i < q.tail; i++ {
		idx := i & queueMask
		out = append(out, q.events[idx])
		q.events[idx] = Event{}
	}
	q.head = q.tail
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Reset discards pending events
func (q *Queue) Reset() {
	q.Consume()
}

package events

import "sync"

// Feed delivers values of a single event kind to registered listeners.
//
// Delivery is synchronous: Publish invokes every listener on the calling
// goroutine, in subscription order, before returning. Listeners run inside
// the clock tick and must not block it.
type Feed[T any] struct {
	// mu protects the listener list.
	mu sync.Mutex
	// subs holds active listeners in subscription order.
	subs []subscriber[T]
	// nextID is the identifier handed to the next subscriber.
	nextID int
}

// subscriber pairs a listener with the id used to cancel it.
type subscriber[T any] struct {
	id int
	fn func(T)
}

// NewFeed creates an empty feed.
func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{}
}

// Subscribe registers fn and returns a cancel function that removes it.
// The cancel function is idempotent and safe to call concurrently with
// Publish.
func (f *Feed[T]) Subscribe(fn func(T)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.subs = append(f.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		for i, sub := range f.subs {
			if sub.id == id {
				f.subs = append(f.subs[:i], f.subs[i+1:]...)

				return
			}
		}
	}
}

// Publish delivers v to every listener in subscription order. The listener
// list is snapshotted before delivery, so a listener may subscribe or
// cancel from within its callback without deadlocking the feed.
func (f *Feed[T]) Publish(v T) {
	f.mu.Lock()
	snapshot := make([]subscriber[T], len(f.subs))
	copy(snapshot, f.subs)
	f.mu.Unlock()

	for _, sub := range snapshot {
		sub.fn(v)
	}
}

// Len reports the number of active listeners.
func (f *Feed[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.subs)
}

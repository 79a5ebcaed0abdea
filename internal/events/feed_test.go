package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFeed_PublishOrder verifies listeners run synchronously in subscription order.
func TestFeed_PublishOrder(t *testing.T) {
	t.Parallel()

	feed := NewFeed[int]()

	var got []int

	feed.Subscribe(func(v int) { got = append(got, v*10) })
	feed.Subscribe(func(v int) { got = append(got, v*100) })

	feed.Publish(1)
	feed.Publish(2)

	// Publish returns only after every listener ran, in order.
	require.Equal(t, []int{10, 100, 20, 200}, got)
}

// TestFeed_Cancel verifies canceled listeners stop receiving and that
// canceling twice is harmless.
func TestFeed_Cancel(t *testing.T) {
	t.Parallel()

	feed := NewFeed[string]()

	var calls int

	cancel := feed.Subscribe(func(string) { calls++ })
	require.Equal(t, 1, feed.Len())

	feed.Publish("a")
	cancel()
	cancel()
	feed.Publish("b")

	require.Equal(t, 1, calls)
	require.Equal(t, 0, feed.Len())
}

// TestFeed_SubscribeDuringPublish verifies a listener may register another
// listener from within its callback without deadlocking; the new listener
// only sees later publishes.
func TestFeed_SubscribeDuringPublish(t *testing.T) {
	t.Parallel()

	feed := NewFeed[int]()

	var late []int

	feed.Subscribe(func(v int) {
		if v == 1 {
			feed.Subscribe(func(v int) { late = append(late, v) })
		}
	})

	feed.Publish(1)
	feed.Publish(2)

	require.Equal(t, []int{2}, late)
	require.Equal(t, 2, feed.Len())
}

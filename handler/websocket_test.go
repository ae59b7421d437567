package handler

import (
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type fakeFeedClient struct {
	messages [][]byte
	writeErr error
	closed   bool
}

func (f *fakeFeedClient) WriteMessage(messageType int, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeFeedClient) Close() error {
	f.closed = true
	return nil
}

// withQuietListener registers clients without spawning the Redis
// listener goroutine, so hub tests need no broker.
func withQuietListener(table string, fn func()) {
	feedMutex.Lock()
	feedListeners[table] = true
	feedMutex.Unlock()

	fn()

	feedMutex.Lock()
	delete(feedListeners, table)
	delete(feedClients, table)
	feedMutex.Unlock()
}

func TestDrainPending_AbsorbsBurst(t *testing.T) {
	ch := make(chan *redis.Message, 8)
	for i := 0; i < 5; i++ {
		ch <- &redis.Message{Payload: "x"}
	}

	settle := make(chan time.Time, 1)
	go func() {
		// Fires once the buffered burst has been consumed.
		time.Sleep(10 * time.Millisecond)
		settle <- time.Now()
	}()

	assert.Equal(t, 5, drainPending(ch, settle))
}

func TestDrainPending_NothingQueued(t *testing.T) {
	ch := make(chan *redis.Message)
	settle := make(chan time.Time, 1)
	settle <- time.Now()

	assert.Equal(t, 0, drainPending(ch, settle))
}

func TestDrainPending_ClosedChannel(t *testing.T) {
	ch := make(chan *redis.Message, 2)
	ch <- &redis.Message{Payload: "x"}
	close(ch)

	assert.Equal(t, 1, drainPending(ch, make(chan time.Time)))
}

func TestBroadcastRefresh_DeliversToAllSubscribers(t *testing.T) {
	withQuietListener("orders", func() {
		a := &fakeFeedClient{}
		b := &fakeFeedClient{}
		registerFeedClient("orders", a)
		registerFeedClient("orders", b)

		assert.True(t, broadcastRefresh("orders", []byte(`{"table":"orders"}`)))
		assert.Len(t, a.messages, 1)
		assert.Len(t, b.messages, 1)
		assert.Equal(t, `{"table":"orders"}`, string(a.messages[0]))
	})
}

func TestBroadcastRefresh_DropsDeadConnections(t *testing.T) {
	withQuietListener("orders", func() {
		alive := &fakeFeedClient{}
		dead := &fakeFeedClient{writeErr: errors.New("broken pipe")}
		registerFeedClient("orders", alive)
		registerFeedClient("orders", dead)

		assert.True(t, broadcastRefresh("orders", []byte("r")))
		assert.True(t, dead.closed)
		assert.Len(t, alive.messages, 1)

		// The dead connection is gone; only the live one gets the next signal.
		assert.True(t, broadcastRefresh("orders", []byte("r")))
		assert.Len(t, alive.messages, 2)
	})
}

func TestBroadcastRefresh_ReportsEmptyHub(t *testing.T) {
	withQuietListener("orders", func() {
		client := &fakeFeedClient{}
		registerFeedClient("orders", client)
		unregisterFeedClient("orders", client)

		assert.False(t, broadcastRefresh("orders", []byte("r")))
		assert.Empty(t, client.messages)
	})
}

func TestWatchableTables(t *testing.T) {
	assert.True(t, watchableTables["orders"])
	assert.True(t, watchableTables["seats"])
	assert.False(t, watchableTables["accounts"])
}

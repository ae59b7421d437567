package handler

import (
	"context"
	"sync"
	"time"

	"cinebook/constants"
	"cinebook/helper"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

// feedClient is the write side of one subscribed view connection.
type feedClient interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Events landing within this window after the first one are absorbed
// into a single refresh signal.
const coalesceWindow = 200 * time.Millisecond

var (
	feedMutex     sync.Mutex
	feedClients   = make(map[string]map[feedClient]bool)
	feedListeners = make(map[string]bool)
)

var watchableTables = map[string]bool{
	constants.TABLE_MOVIES: true,
	constants.TABLE_SHOWS:  true,
	constants.TABLE_SEATS:  true,
	constants.TABLE_SNACKS: true,
	constants.TABLE_ORDERS: true,
}

// ChangeFeedWebsocket streams refresh signals for one table to a view.
// The signal carries no authoritative state; the view re-fetches.
func ChangeFeedWebsocket(c *websocket.Conn) {
	table := c.Params("table")
	if !watchableTables[table] {
		c.Close()
		return
	}

	registerFeedClient(table, c)
	defer func() {
		unregisterFeedClient(table, c)
		c.Close()
	}()

	// Clients only listen; the read loop just detects disconnects.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

func registerFeedClient(table string, client feedClient) {
	feedMutex.Lock()
	defer feedMutex.Unlock()
	if feedClients[table] == nil {
		feedClients[table] = make(map[feedClient]bool)
	}
	feedClients[table][client] = true
	if !feedListeners[table] {
		feedListeners[table] = true
		go runFeedListener(table)
	}
}

func unregisterFeedClient(table string, client feedClient) {
	feedMutex.Lock()
	defer feedMutex.Unlock()
	delete(feedClients[table], client)
	if len(feedClients[table]) == 0 {
		delete(feedClients, table)
	}
}

// runFeedListener relays a table's Redis channel to its connected
// views. It unsubscribes and exits once the last view disconnects, so
// idle tables hold no Redis subscription.
func runFeedListener(table string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubsub := helper.RedisClient().Subscribe(ctx, helper.FeedChannel(table))
	defer pubsub.Close()

	defer func() {
		feedMutex.Lock()
		delete(feedListeners, table)
		// A view may have subscribed while we were deciding to exit.
		if len(feedClients[table]) > 0 {
			feedListeners[table] = true
			go runFeedListener(table)
		}
		feedMutex.Unlock()
	}()

	ch := pubsub.Channel()
	for msg := range ch {
		drainPending(ch, time.After(coalesceWindow))
		if !broadcastRefresh(table, []byte(msg.Payload)) {
			return
		}
	}
}

// drainPending absorbs events queued behind the one being delivered so
// a burst of commits becomes a single refresh signal.
func drainPending(ch <-chan *redis.Message, settle <-chan time.Time) int {
	absorbed := 0
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return absorbed
			}
			absorbed++
		case <-settle:
			return absorbed
		}
	}
}

// broadcastRefresh writes the refresh signal to every view subscribed
// to the table, dropping dead connections. Reports whether any
// subscriber remains.
func broadcastRefresh(table string, payload []byte) bool {
	feedMutex.Lock()
	defer feedMutex.Unlock()
	clients := feedClients[table]
	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, payload); err != nil {
			client.Close()
			delete(clients, client)
		}
	}
	return len(clients) > 0
}

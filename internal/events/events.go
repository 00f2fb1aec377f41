// AngelaMos | 2026
// events.go

// Package events publishes realtime notifications over Redis pub/sub.
// Gateway processes subscribed to the socket channels fan the payloads out
// to connected clients; this side only fires and forgets.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Room names. GlobalRoom reaches every connected client; account rooms
// reach one account's connections.
const (
	GlobalRoom = "GLOBAL"
	roomPrefix = "ROOM-"
)

// Event names.
const (
	AdminCreated  = "ADMIN_CREATED"
	UserCreated   = "USER_CREATED"
	AdminExported = "ADMIN_EXPORTED"
	UserExported  = "USER_EXPORTED"
)

const channelPrefix = "socket:"

// Emitter is what services depend on; tests swap in a recording fake.
type Emitter interface {
	Emit(ctx context.Context, room, event string, payload any)
}

type envelope struct {
	Event   string    `json:"event"`
	Payload any       `json:"payload"`
	SentAt  time.Time `json:"sentAt"`
}

type RedisEmitter struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisEmitter(client *redis.Client, logger *slog.Logger) *RedisEmitter {
	return &RedisEmitter{client: client, logger: logger}
}

// Emit publishes one event to one room. Failures are logged and swallowed:
// realtime delivery is advisory, never part of the request contract.
func (e *RedisEmitter) Emit(ctx context.Context, room, event string, payload any) {
	body, err := json.Marshal(envelope{
		Event:   event,
		Payload: payload,
		SentAt:  time.Now().UTC(),
	})
	if err != nil {
		e.logger.Warn("event marshal failed", "event", event, "error", err)
		return
	}

	if err := e.client.Publish(ctx, channelPrefix+room, body).Err(); err != nil {
		e.logger.Warn("event publish failed",
			"event", event,
			"room", room,
			"error", err,
		)
	}
}

// AccountRoom is the private room for one account's connections.
func AccountRoom(accountID string) string {
	return roomPrefix + accountID
}

// Package events broadcasts workspace activity over Redis pub/sub so that
// other instances and realtime gateways can react to board changes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event is one broadcast workspace change.
type Event struct {
	WorkspaceID string            `json:"workspace_id"`
	BoardID     string            `json:"board_id,omitempty"`
	ActorID     string            `json:"actor_id"`
	Action      string            `json:"action"`
	EntityType  string            `json:"entity_type"`
	EntityID    string            `json:"entity_id"`
	Detail      map[string]string `json:"detail,omitempty"`
	At          time.Time         `json:"at"`
}

// Message is one received pub/sub payload.
type Message struct {
	Channel string
	Payload []byte
	Time    time.Time
}

// Broker publishes and subscribes to workspace event channels.
type Broker interface {
	Publish(ctx context.Context, workspaceID string, event Event) error
	Subscribe(ctx context.Context, workspaceID string) (<-chan Message, error)
}

// WorkspaceChannel returns the pub/sub channel name for a workspace.
func WorkspaceChannel(workspaceID string) string {
	return "workspace:events:" + workspaceID
}

type redisBroker struct {
	client *redis.Client
}

// NewRedisBroker creates a broker on an existing Redis client. The caller
// keeps ownership of the client.
func NewRedisBroker(client *redis.Client) Broker {
	return &redisBroker{client: client}
}

func (b *redisBroker) Publish(ctx context.Context, workspaceID string, event Event) error {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Publish(ctx, WorkspaceChannel(workspaceID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (b *redisBroker) Subscribe(ctx context.Context, workspaceID string) (<-chan Message, error) {
	pubsub := b.client.Subscribe(ctx, WorkspaceChannel(workspaceID))

	if _, err := pubsub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("failed to subscribe to workspace channel: %w", err)
	}

	messageCh := make(chan Message)
	go func() {
		defer close(messageCh)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				messageCh <- Message{
					Channel: msg.Channel,
					Payload: []byte(msg.Payload),
					Time:    time.Now(),
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return messageCh, nil
}

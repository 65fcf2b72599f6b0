// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/lib/pq"
)

type PostgreSQLMessage struct {
	ID        string               `json:"id"`
	Channel   shared.PubSubChannel `json:"topic"`
	Payload   map[string]any       `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
	SenderID  string               `json:"sender_id,omitempty"`
}

type listeningConnection struct {
	conn        *pgxpool.Conn
	cancel      context.CancelFunc
	subscribers []chan map[string]any
}

// PostgreSQLBroker implements shared.PubSubBroker using PostgreSQL LISTEN/NOTIFY
type PostgreSQLBroker struct {
	db                       *pgxpool.Pool
	subscribers              map[shared.PubSubChannel]*listeningConnection
	subscribeMux             sync.RWMutex
	wg                       sync.WaitGroup
	ID                       string
	shouldReceiveOwnMessages bool
}

func (b *PostgreSQLBroker) SetShouldReceiveOwnMessages(should bool) {
	b.shouldReceiveOwnMessages = should
}

func NewPostgreSQLBroker(db *pgxpool.Pool) *PostgreSQLBroker {
	return &PostgreSQLBroker{
		db:          db,
		subscribers: make(map[shared.PubSubChannel]*listeningConnection),
		ID:          uuid.New().String(),
	}
}

func (b *PostgreSQLBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	topic := message.GetChannel()

	pgMessage := PostgreSQLMessage{
		ID:        uuid.New().String(),
		Channel:   topic,
		Payload:   message.GetPayload(),
		Timestamp: time.Now(),
		SenderID:  b.ID,
	}

	messageJSON, err := json.Marshal(pgMessage)
	if err != nil {
		return fmt.Errorf("failed to marshal PostgreSQL message: %w", err)
	}

	// pg_notify takes the payload as a bind parameter
	if _, err = b.db.Exec(ctx, "SELECT pg_notify($1, $2)", string(topic), string(messageJSON)); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	slog.Debug("message published", "topic", topic, "messageID", pgMessage.ID)
	return nil
}

func (b *PostgreSQLBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	ch := make(chan map[string]any, 100)

	if listening, exists := b.subscribers[topic]; exists {
		listening.subscribers = append(listening.subscribers, ch)
		return ch, nil
	}

	acquireCtx, cancelAcquire := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelAcquire()
	conn, err := b.db.Acquire(acquireCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection for listening: %w", err)
	}
	if _, err = conn.Exec(acquireCtx, "LISTEN "+pq.QuoteIdentifier(string(topic))); err != nil {
		conn.Release()
		return nil, fmt.Errorf("failed to listen on topic %s: %w", topic, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.subscribers[topic] = &listeningConnection{
		conn:        conn,
		cancel:      cancel,
		subscribers: []chan map[string]any{ch},
	}
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.processMessages(ctx, topic, conn)
	}()

	return ch, nil
}

func (b *PostgreSQLBroker) processMessages(ctx context.Context, topic shared.PubSubChannel, conn *pgxpool.Conn) {
	defer conn.Release()
	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() == nil {
				monitoring.Alert("could not listen for notifications from PostgreSQL broker", err)
			}
			return
		}
		if notification == nil || notification.Channel != string(topic) {
			continue
		}

		var message PostgreSQLMessage
		if err := json.Unmarshal([]byte(notification.Payload), &message); err != nil {
			slog.Error("failed to unmarshal message", "error", err, "payload", notification.Payload)
			continue
		}

		if message.SenderID == b.ID && !b.shouldReceiveOwnMessages {
			continue
		}

		b.subscribeMux.RLock()
		listening, exists := b.subscribers[topic]
		var subscribers []chan map[string]any
		if exists {
			subscribers = listening.subscribers
		}
		b.subscribeMux.RUnlock()

		for _, subscriber := range subscribers {
			select {
			case subscriber <- message.Payload:
			default:
				slog.Warn("subscriber channel full, dropping message", "topic", topic, "messageID", message.ID)
			}
		}
	}
}

// Close stops listening on all topics and closes the subscriber channels.
func (b *PostgreSQLBroker) Close() {
	b.subscribeMux.Lock()
	for _, listening := range b.subscribers {
		listening.cancel()
	}
	b.subscribeMux.Unlock()

	b.wg.Wait()

	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()
	for topic, listening := range b.subscribers {
		for _, ch := range listening.subscribers {
			close(ch)
		}
		delete(b.subscribers, topic)
	}
}

// IsHealthy checks if the broker can still reach the database.
func (b *PostgreSQLBroker) IsHealthy(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := b.db.Ping(pingCtx); err != nil {
		slog.Error("broker database is not healthy", "error", err)
		return false
	}
	return true
}

func (b *PostgreSQLBroker) GetActiveTopics() []shared.PubSubChannel {
	b.subscribeMux.RLock()
	defer b.subscribeMux.RUnlock()

	topics := make([]shared.PubSubChannel, 0, len(b.subscribers))
	for topic := range b.subscribers {
		topics = append(topics, topic)
	}
	return topics
}

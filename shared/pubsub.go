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

package shared

import "context"

type PubSubChannel string

const (
	CacheInvalidationChannel PubSubChannel = "cacheInvalidation"
)

type PubSubMessage interface {
	GetChannel() PubSubChannel
	GetPayload() map[string]any
}

type PubSubBroker interface {
	Publish(ctx context.Context, message PubSubMessage) error
	Subscribe(topic PubSubChannel) (<-chan map[string]any, error)
}

// CacheInvalidationMessage tells the other instances which cache entries to drop.
type CacheInvalidationMessage struct {
	Keys     []string
	Prefixes []string
}

func (m CacheInvalidationMessage) GetChannel() PubSubChannel {
	return CacheInvalidationChannel
}

func (m CacheInvalidationMessage) GetPayload() map[string]any {
	return map[string]any{
		"keys":     m.Keys,
		"prefixes": m.Prefixes,
	}
}

// CacheInvalidationFromPayload reads a received payload. Payloads of other
// instances arrive json decoded, so arrays are []any.
func CacheInvalidationFromPayload(payload map[string]any) CacheInvalidationMessage {
	return CacheInvalidationMessage{
		Keys:     stringsOf(payload["keys"]),
		Prefixes: stringsOf(payload["prefixes"]),
	}
}

func stringsOf(v any) []string {
	switch values := v.(type) {
	case []string:
		return values
	case []any:
		result := make([]string, 0, len(values))
		for _, value := range values {
			if s, ok := value.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}

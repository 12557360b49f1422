package dto

import (
	"bytes"
	"encoding/json"
)

// WebhookPayload is the decoded form of an inbound webhook body. The platform
// delivers several shapes over the same endpoint, so decoding is defensive: a
// field that does not match its recognized shape is left unset instead of
// failing the whole payload. A top-level value that is not a JSON object is
// marked Unrecognized and carries no events.
type WebhookPayload struct {
	Unrecognized bool
	Field        string
	Value        *MessageEvent
	Sample       *WebhookChange
	Entry        []WebhookEntry
}

// WebhookChange is a `{field, value}` change notification, used both at the
// top level and nested under `sample` for platform-provided test payloads.
type WebhookChange struct {
	Field string
	Value *MessageEvent
}

type WebhookEntry struct {
	ID        string         `json:"id"`
	Messaging []MessageEvent `json:"messaging"`
}

// MessageEvent is one inbound messaging notification: who sent it and what
// they sent. Message is nil when the event carries no message object.
type MessageEvent struct {
	Sender  EventSender   `json:"sender"`
	Message *EventMessage `json:"message"`
}

type EventSender struct {
	ID string `json:"id"`
}

type EventMessage struct {
	Text     string         `json:"text"`
	Commands []EventCommand `json:"commands"`
}

type EventCommand struct {
	Name string `json:"name"`
}

func (p *WebhookPayload) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		p.Unrecognized = true
		return nil
	}

	p.Field, p.Value = decodeChange(data)

	if raw, ok := fields["sample"]; ok && isJSONObject(raw) {
		field, value := decodeChange(raw)
		p.Sample = &WebhookChange{Field: field, Value: value}
	}

	if raw, ok := fields["entry"]; ok {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			for _, item := range items {
				var entry WebhookEntry
				if err := json.Unmarshal(item, &entry); err == nil {
					p.Entry = append(p.Entry, entry)
				}
			}
		}
	}

	return nil
}

// decodeChange reads the `{field, value}` discriminator shape. The value is
// kept only when it is itself a JSON object.
func decodeChange(raw json.RawMessage) (string, *MessageEvent) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", nil
	}

	var field string
	if f, ok := fields["field"]; ok {
		_ = json.Unmarshal(f, &field)
	}

	var value *MessageEvent
	if v, ok := fields["value"]; ok && isJSONObject(v) {
		var event MessageEvent
		if err := json.Unmarshal(v, &event); err == nil {
			value = &event
		}
	}

	return field, value
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

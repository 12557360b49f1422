package services

import (
	"encoding/json"
	"testing"

	"messenger-relay/internal/domain/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePayload(t *testing.T, body string) dto.WebhookPayload {
	t.Helper()

	var payload dto.WebhookPayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload
}

func senderIDs(events []dto.MessageEvent) []string {
	ids := make([]string, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.Sender.ID)
	}
	return ids
}

func TestExtractNonObjectPayloadYieldsNoEvents(t *testing.T) {
	for _, body := range []string{`"just a string"`, `[1, 2, 3]`, `42`, `null`, `true`} {
		payload := decodePayload(t, body)
		assert.Empty(t, ExtractMessageEvents(payload), "body: %s", body)
	}
}

func TestExtractTopLevelChange(t *testing.T) {
	payload := decodePayload(t, `{
		"field": "messages",
		"value": {"sender": {"id": "S1"}, "message": {"text": "hi"}}
	}`)

	events := ExtractMessageEvents(payload)
	require.Len(t, events, 1)
	assert.Equal(t, "S1", events[0].Sender.ID)
	assert.Equal(t, "hi", events[0].Message.Text)
}

func TestExtractIgnoresNonMessagesField(t *testing.T) {
	payload := decodePayload(t, `{
		"field": "reactions",
		"value": {"sender": {"id": "S1"}}
	}`)

	assert.Empty(t, ExtractMessageEvents(payload))
}

func TestExtractIgnoresNonObjectValue(t *testing.T) {
	payload := decodePayload(t, `{"field": "messages", "value": 5}`)

	assert.Empty(t, ExtractMessageEvents(payload))
}

func TestExtractSamplePayload(t *testing.T) {
	payload := decodePayload(t, `{
		"sample": {
			"field": "messages",
			"value": {"sender": {"id": "T1"}, "message": {"text": "test"}}
		}
	}`)

	events := ExtractMessageEvents(payload)
	require.Len(t, events, 1)
	assert.Equal(t, "T1", events[0].Sender.ID)
}

func TestExtractBatchPreservesEntryThenInnerOrder(t *testing.T) {
	payload := decodePayload(t, `{
		"entry": [
			{"messaging": [
				{"sender": {"id": "A"}, "message": {"text": "1"}},
				{"sender": {"id": "B"}, "message": {"text": "2"}}
			]},
			{"messaging": [
				{"sender": {"id": "C"}, "message": {"text": "3"}},
				{"sender": {"id": "D"}, "message": {"text": "4"}}
			]}
		]
	}`)

	events := ExtractMessageEvents(payload)
	require.Len(t, events, 4)
	assert.Equal(t, []string{"A", "B", "C", "D"}, senderIDs(events))
}

func TestExtractSingleFormsPrecedeBatchEvents(t *testing.T) {
	payload := decodePayload(t, `{
		"field": "messages",
		"value": {"sender": {"id": "S"}, "message": {"text": "top"}},
		"sample": {
			"field": "messages",
			"value": {"sender": {"id": "T"}, "message": {"text": "sample"}}
		},
		"entry": [
			{"messaging": [{"sender": {"id": "E"}, "message": {"text": "batch"}}]}
		]
	}`)

	events := ExtractMessageEvents(payload)
	require.Len(t, events, 3)
	assert.Equal(t, []string{"S", "T", "E"}, senderIDs(events))
}

func TestExtractEventWithoutMessageObject(t *testing.T) {
	payload := decodePayload(t, `{
		"entry": [{"messaging": [{"sender": {"id": "U1"}}]}]
	}`)

	events := ExtractMessageEvents(payload)
	require.Len(t, events, 1)
	assert.Nil(t, events[0].Message)
}

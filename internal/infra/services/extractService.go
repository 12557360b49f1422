package services

import "messenger-relay/internal/domain/dto"

// ExtractMessageEvents flattens a decoded webhook payload into the message
// events it carries. Single-event forms come first (the top-level change,
// then the nested sample), followed by batch events in entry order.
// Unrecognized payloads yield an empty list.
func ExtractMessageEvents(payload dto.WebhookPayload) []dto.MessageEvent {
	events := []dto.MessageEvent{}

	if payload.Field == "messages" && payload.Value != nil {
		events = append(events, *payload.Value)
	}

	if payload.Sample != nil && payload.Sample.Field == "messages" && payload.Sample.Value != nil {
		events = append(events, *payload.Sample.Value)
	}

	for _, entry := range payload.Entry {
		events = append(events, entry.Messaging...)
	}

	return events
}

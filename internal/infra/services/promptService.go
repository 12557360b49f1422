package services

import (
	"fmt"
	"strings"

	"messenger-relay/internal/domain/dto"
	"messenger-relay/internal/domain/entities"
)

const promptTemplate = `You are a professional sales assistant chatbot.
Here are the most recent messages in this conversation:
%s
The customer just said:
%s

Reply to the customer professionally and concisely.`

// FormatHistory renders turns as one "role: content" line each, in
// chronological order. An empty history yields an empty string.
func FormatHistory(turns []entities.Turn) string {
	var b strings.Builder
	for _, turn := range turns {
		b.WriteString(turn.Role)
		b.WriteString(": ")
		b.WriteString(turn.Content)
		b.WriteByte('\n')
	}
	return b.String()
}

// NormalizeMessage merges a message's text and command directives into one
// text payload. An empty result signals the caller to skip the event.
func NormalizeMessage(message *dto.EventMessage) string {
	if message == nil {
		return ""
	}

	text := strings.TrimSpace(message.Text)

	names := make([]string, 0, len(message.Commands))
	for _, command := range message.Commands {
		if command.Name != "" {
			names = append(names, command.Name)
		}
	}

	switch {
	case text != "" && len(names) > 0:
		return fmt.Sprintf("%s\nCommands: %s", text, strings.Join(names, ", "))
	case len(names) > 0:
		return "Commands: " + strings.Join(names, ", ")
	default:
		return text
	}
}

// BuildPrompt embeds the formatted history and the new user text into the
// persona template. User content is injected verbatim.
func BuildPrompt(history, userText string) string {
	return fmt.Sprintf(promptTemplate, history, userText)
}

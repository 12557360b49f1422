package services

import (
	"strings"
	"testing"

	"messenger-relay/internal/domain/dto"
	"messenger-relay/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestFormatHistory(t *testing.T) {
	turns := []entities.Turn{
		{Role: entities.RoleUser, Content: "hi"},
		{Role: entities.RoleBot, Content: "hello, how can I help?"},
	}

	assert.Equal(t, "user: hi\nbot: hello, how can I help?\n", FormatHistory(turns))
}

func TestFormatHistoryEmpty(t *testing.T) {
	assert.Equal(t, "", FormatHistory(nil))
	assert.Equal(t, "", FormatHistory([]entities.Turn{}))
}

func TestFormatHistoryIsPure(t *testing.T) {
	turns := []entities.Turn{
		{Role: entities.RoleUser, Content: "hi"},
		{Role: entities.RoleBot, Content: "hello"},
	}

	first := FormatHistory(turns)
	second := FormatHistory(turns)
	assert.Equal(t, first, second)
}

func TestNormalizeMessage(t *testing.T) {
	tests := []struct {
		name     string
		message  *dto.EventMessage
		expected string
	}{
		{
			name: "text and commands",
			message: &dto.EventMessage{
				Text:     "Hello",
				Commands: []dto.EventCommand{{Name: "buy"}, {Name: "help"}},
			},
			expected: "Hello\nCommands: buy, help",
		},
		{
			name:     "neither",
			message:  &dto.EventMessage{Text: "", Commands: []dto.EventCommand{}},
			expected: "",
		},
		{
			name: "commands only",
			message: &dto.EventMessage{
				Text:     "",
				Commands: []dto.EventCommand{{Name: "buy"}},
			},
			expected: "Commands: buy",
		},
		{
			name:     "text only",
			message:  &dto.EventMessage{Text: "just text"},
			expected: "just text",
		},
		{
			name:     "text is trimmed",
			message:  &dto.EventMessage{Text: "  padded  "},
			expected: "padded",
		},
		{
			name: "unnamed commands are dropped",
			message: &dto.EventMessage{
				Commands: []dto.EventCommand{{Name: ""}, {Name: "buy"}, {}},
			},
			expected: "Commands: buy",
		},
		{
			name:     "nil message",
			message:  nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeMessage(tt.message))
		})
	}
}

func TestBuildPromptEmbedsHistoryAndUserText(t *testing.T) {
	history := "user: hi\nbot: hello\n"
	userText := "what do you sell?"

	prompt := BuildPrompt(history, userText)

	assert.Contains(t, prompt, history)
	assert.Contains(t, prompt, userText)
	// history precedes the new user text
	assert.Less(t, strings.Index(prompt, history), strings.Index(prompt, userText))
}

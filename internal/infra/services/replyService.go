package services

import (
	"context"
	"strings"
	"time"

	"messenger-relay/internal/domain/dto"
	"messenger-relay/internal/infra/logger"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sirupsen/logrus"
)

// FallbackReply is substituted whenever the generation step cannot produce a
// usable reply.
const FallbackReply = "Sorry, I can't respond right now."

const generateTimeout = 50 * time.Second

// ReplyService calls the generative-text API. When no credential is
// configured the client stays nil and every call short-circuits to the
// fallback (degraded mode, not an error).
type ReplyService struct {
	Logger *logger.Logger
	client *openai.Client
	model  string
}

func NewReplyService(log *logger.Logger, apiKey, model string) *ReplyService {
	rs := &ReplyService{Logger: log, model: model}
	if apiKey == "" {
		log.Warn("Generation credential not configured; replies will use the fallback text")
		return rs
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	rs.client = &client
	return rs
}

// Generate returns a reply for the prompt. Failures never propagate: the
// result carries the fallback text and the failure kind instead.
func (rs *ReplyService) Generate(ctx context.Context, prompt string) dto.ReplyResult {
	if rs.client == nil {
		return dto.ReplyResult{Text: FallbackReply, Failure: dto.FailureNoCredential}
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	res, err := rs.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: rs.model,
	})
	if err != nil {
		rs.Logger.Error("Generation call failed", logrus.Fields{"error": err.Error()})
		return dto.ReplyResult{Text: FallbackReply, Failure: dto.FailureTransport}
	}

	if len(res.Choices) == 0 {
		rs.Logger.Warn("Generation returned no choices")
		return dto.ReplyResult{Text: FallbackReply, Failure: dto.FailureEmpty}
	}

	text := strings.TrimSpace(res.Choices[0].Message.Content)
	if text == "" {
		rs.Logger.Warn("Generation returned empty text")
		return dto.ReplyResult{Text: FallbackReply, Failure: dto.FailureEmpty}
	}

	return dto.ReplyResult{Text: text}
}

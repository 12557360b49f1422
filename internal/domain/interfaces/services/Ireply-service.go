package Iservices

import (
	"context"

	"messenger-relay/internal/domain/dto"
)

// IReplyService generates a reply for a prompt. It never returns an error:
// every failure mode is folded into the result as a fallback reply.
type IReplyService interface {
	Generate(ctx context.Context, prompt string) dto.ReplyResult
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"messenger-relay/internal/domain/dto"
	"messenger-relay/internal/domain/entities"
	"messenger-relay/internal/domain/interfaces/repository"
	Iservices "messenger-relay/internal/domain/interfaces/services"
	"messenger-relay/internal/infra/logger"
	"messenger-relay/internal/infra/provider"
	"messenger-relay/internal/infra/services"

	"github.com/sirupsen/logrus"
)

const historyLimit = 5

type WebhookHandlers struct {
	Logger      *logger.Logger
	VerifyToken string
	Turns       repository.TurnRepository
	Replies     Iservices.IReplyService
	Messenger   provider.IMessengerProvider
}

func NewWebhookHandlers(log *logger.Logger, verifyToken string, turns repository.TurnRepository, replies Iservices.IReplyService, messenger provider.IMessengerProvider) *WebhookHandlers {
	return &WebhookHandlers{
		Logger:      log,
		VerifyToken: verifyToken,
		Turns:       turns,
		Replies:     replies,
		Messenger:   messenger,
	}
}

// Webhook is the unified handler for the platform webhook: verification
// requests arrive as GET, event notifications as POST.
func (th *WebhookHandlers) Webhook(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		th.handleVerification(w, r)
		return
	}

	if r.Method == http.MethodPost {
		th.handleWebhookEvent(w, r)
		return
	}

	http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
}

// handleVerification echoes hub.challenge when hub.verify_token matches the
// configured secret. An unset secret never verifies. The failure body is a
// literal string, not a structured error, and both outcomes are 200.
func (th *WebhookHandlers) handleVerification(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	token := query.Get("hub.verify_token")
	challenge := query.Get("hub.challenge")

	if th.VerifyToken != "" && token == th.VerifyToken {
		w.Write([]byte(challenge))
		return
	}

	th.Logger.Warn("Webhook verification failed")
	w.Write([]byte("Verification failed"))
}

// handleWebhookEvent processes every event in the inbound payload. The
// platform contract requires acknowledgment regardless of internal failure,
// so the response is always 200 "OK"; per-event failures are isolated and
// observable only through logs.
func (th *WebhookHandlers) handleWebhookEvent(w http.ResponseWriter, r *http.Request) {
	th.Logger.Info("Received webhook request")

	var payload dto.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		th.Logger.Warn("Received webhook with malformed or empty JSON body", logrus.Fields{
			"error": err.Error(),
		})
		respondOK(w)
		return
	}
	defer r.Body.Close()

	if payload.Unrecognized {
		th.Logger.Warn("Webhook payload is not a JSON object")
	}

	events := services.ExtractMessageEvents(payload)
	th.Logger.Info("Extracted message events", logrus.Fields{"count": len(events)})

	for _, event := range events {
		th.processEvent(r.Context(), event)
	}

	respondOK(w)
}

// processEvent runs one event through the pipeline: normalize, persist the
// user turn, fetch history, generate, persist the bot turn, send. A send
// failure never reverses the persisted turns.
func (th *WebhookHandlers) processEvent(ctx context.Context, event dto.MessageEvent) {
	senderID := event.Sender.ID
	if senderID == "" {
		th.Logger.Warn("Skipping event without sender id")
		return
	}

	userText := services.NormalizeMessage(event.Message)
	if userText == "" {
		th.Logger.Info("Skipping event with no text or commands", logrus.Fields{
			"sender_id": senderID,
		})
		return
	}

	th.Logger.Info("Processing message event", logrus.Fields{
		"sender_id": senderID,
		"text_len":  len(userText),
	})

	if err := th.Turns.Append(ctx, senderID, entities.RoleUser, userText); err != nil {
		th.Logger.Error("Failed to persist user turn", logrus.Fields{
			"sender_id": senderID,
			"error":     err.Error(),
		})
		return
	}

	turns, err := th.Turns.Recent(ctx, senderID, historyLimit)
	if err != nil {
		th.Logger.Error("Failed to load history", logrus.Fields{
			"sender_id": senderID,
			"error":     err.Error(),
		})
		return
	}

	prompt := services.BuildPrompt(services.FormatHistory(turns), userText)

	result := th.Replies.Generate(ctx, prompt)
	if result.Failed() {
		th.Logger.Warn("Reply generation fell back", logrus.Fields{
			"sender_id": senderID,
			"failure":   string(result.Failure),
		})
	}
	th.Logger.Info("Generated bot reply", logrus.Fields{
		"sender_id": senderID,
		"reply_len": len(result.Text),
	})

	if err := th.Turns.Append(ctx, senderID, entities.RoleBot, result.Text); err != nil {
		th.Logger.Error("Failed to persist bot turn", logrus.Fields{
			"sender_id": senderID,
			"error":     err.Error(),
		})
		return
	}

	if err := th.Messenger.SendTextMessage(senderID, result.Text); err != nil {
		th.Logger.Error("Delivery failed, message lost", logrus.Fields{
			"sender_id": senderID,
			"error":     err.Error(),
		})
	}
}

func respondOK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

package provider

import (
	"fmt"
	"time"

	"messenger-relay/internal/domain/dto"
	"messenger-relay/internal/infra/logger"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const sendTimeout = 10 * time.Second

// MessengerProvider posts reply text to the platform's Graph API using the
// page access token. Delivery is one attempt, no retry.
type MessengerProvider struct {
	Logger    *logger.Logger
	client    *resty.Client
	version   string
	pageToken string
}

func NewMessengerProvider(log *logger.Logger, baseURL, version, pageToken string) *MessengerProvider {
	if pageToken == "" {
		log.Warn("Page access token not configured; outbound messages will not be delivered")
	}
	return &MessengerProvider{
		Logger:    log,
		client:    resty.New().SetBaseURL(baseURL).SetTimeout(sendTimeout),
		version:   version,
		pageToken: pageToken,
	}
}

// SendTextMessage posts the reply to the recipient. A missing page token is a
// logged no-op; transport failures and non-2xx responses are logged and
// returned, never retried.
func (mp *MessengerProvider) SendTextMessage(recipientID, text string) error {
	if mp.pageToken == "" {
		mp.Logger.Warn("Skipping send: page access token not configured", logrus.Fields{
			"recipient_id": recipientID,
		})
		return nil
	}

	payload := dto.SendMessageRequest{
		Recipient: dto.MessageRecipient{ID: recipientID},
		Message:   dto.MessageBody{Text: text},
	}

	res, err := mp.client.R().
		SetQueryParam("access_token", mp.pageToken).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(fmt.Sprintf("/%s/me/messages", mp.version))
	if err != nil {
		mp.Logger.Error("Failed to send message", logrus.Fields{
			"recipient_id": recipientID,
			"error":        err.Error(),
		})
		return fmt.Errorf("send request failed: %w", err)
	}

	if !res.IsSuccess() {
		mp.Logger.Error("Failed to send message", logrus.Fields{
			"recipient_id": recipientID,
			"status":       res.StatusCode(),
			"body":         res.String(),
		})
		return fmt.Errorf("send returned status %d", res.StatusCode())
	}

	mp.Logger.Info("Sent message", logrus.Fields{
		"recipient_id": recipientID,
		"status":       res.StatusCode(),
	})
	return nil
}

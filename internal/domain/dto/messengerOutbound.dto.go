package dto

type SendMessageRequest struct {
	Recipient MessageRecipient `json:"recipient"`
	Message   MessageBody      `json:"message"`
}

type MessageRecipient struct {
	ID string `json:"id"`
}

type MessageBody struct {
	Text string `json:"text"`
}

package provider

// IMessengerProvider delivers reply text to a recipient on the messaging
// platform. Delivery is best-effort: the returned error is for logging and
// tests only, callers never retry or block on it.
type IMessengerProvider interface {
	SendTextMessage(recipientID, text string) error
}

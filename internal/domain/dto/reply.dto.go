package dto

// FailureKind classifies why a generated reply fell back to the fixed text.
type FailureKind string

const (
	FailureNone         FailureKind = ""
	FailureNoCredential FailureKind = "no_credential"
	FailureTransport    FailureKind = "transport"
	FailureEmpty        FailureKind = "empty_response"
)

// ReplyResult is the outcome of one generation call. Text is always usable:
// when Failure is set it holds the fallback string.
type ReplyResult struct {
	Text    string
	Failure FailureKind
}

func (r ReplyResult) Failed() bool {
	return r.Failure != FailureNone
}
